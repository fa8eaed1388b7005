// Package fabric defines the public types, interfaces and errors for the
// Microsoft Fabric and Power BI REST API client.
//
// The concrete client lives in internal/client and is constructed through
// pkg/fabclient. Consumers of the library program against the interfaces in
// this package.
package fabric
