package constants

import "time"

// Default endpoints.
const (
	// DefaultFabricEndpoint is the public Fabric REST endpoint.
	DefaultFabricEndpoint = "https://api.fabric.microsoft.com"

	// DefaultPowerBIEndpoint is the public Power BI REST endpoint.
	DefaultPowerBIEndpoint = "https://api.powerbi.com"

	// DefaultScope is the OAuth scope requested for Fabric tokens.
	DefaultScope = "https://api.fabric.microsoft.com/.default"

	// AADTokenURLFormat builds the AAD v2 token endpoint from a tenant id.
	AADTokenURLFormat = "https://login.microsoftonline.com/%s/oauth2/v2.0/token"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// TokenHTTPTimeout is the timeout for token endpoint requests.
	TokenHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Long-running operation polling.
const (
	// DefaultPollInterval is used for operation polling.
	DefaultPollInterval = 2 * time.Second

	// DefaultOperationPollTimeout bounds a single blocking operation wait.
	DefaultOperationPollTimeout = 5 * time.Minute
)

// Token refresh.
const (
	// TokenExpiryLeeway renews tokens this long before they expire.
	TokenExpiryLeeway = 30 * time.Second
)

// Definition bundle part paths.
const (
	// MountedDataFactoryContentPath addresses the content part of a
	// mounted data factory definition bundle.
	MountedDataFactoryContentPath = "mountedDataFactory-content.json"
)

// Response headers used by long-running operations.
const (
	// OperationIDHeader carries the operation id of a 202 response.
	OperationIDHeader = "x-ms-operation-id"

	// LocationHeader points at the operation status URL of a 202 response.
	LocationHeader = "Location"
)
