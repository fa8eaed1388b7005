// Package fabclient provides the main entry point for creating Fabric API
// clients.
package fabclient
