package fabric

// Workspace represents a Fabric workspace.
type Workspace struct {
	ID          string `json:"id"                    yaml:"id"`
	DisplayName string `json:"displayName"           yaml:"displayName"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Type        string `json:"type,omitempty"        yaml:"type,omitempty"`
	CapacityID  string `json:"capacityId,omitempty"  yaml:"capacityId,omitempty"`
}

// Item represents a generic Fabric item within a workspace. Type-specific
// endpoints (mounted data factories, KQL querysets, semantic models) all
// return this shape.
type Item struct {
	ID          string `json:"id"                    yaml:"id"`
	DisplayName string `json:"displayName"           yaml:"displayName"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Type        string `json:"type,omitempty"        yaml:"type,omitempty"`
	WorkspaceID string `json:"workspaceId,omitempty" yaml:"workspaceId,omitempty"`
}

// Item type names as used by the Fabric items API.
const (
	ItemTypeLakehouse          = "Lakehouse"
	ItemTypeMountedDataFactory = "MountedDataFactory"
	ItemTypeKQLQueryset        = "KQLQueryset"
	ItemTypeSemanticModel      = "SemanticModel"
	ItemTypeReport             = "Report"
)

// Lakehouse is an Item carrying lakehouse-specific properties. Properties
// are only populated on single-item GETs, not on listings.
type Lakehouse struct {
	Item `yaml:",inline"`

	Properties *LakehouseProperties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// LakehouseProperties holds the storage and SQL endpoint details of a
// lakehouse.
type LakehouseProperties struct {
	OneLakeTablesPath     string                 `json:"oneLakeTablesPath,omitempty"     yaml:"oneLakeTablesPath,omitempty"`
	OneLakeFilesPath      string                 `json:"oneLakeFilesPath,omitempty"      yaml:"oneLakeFilesPath,omitempty"`
	SQLEndpointProperties *SQLEndpointProperties `json:"sqlEndpointProperties,omitempty" yaml:"sqlEndpointProperties,omitempty"`
}

// SQLEndpointProperties describes the generated SQL analytics endpoint of a
// lakehouse. The connection string and endpoint id feed the Direct Lake
// shared expression.
type SQLEndpointProperties struct {
	ConnectionString   string `json:"connectionString"             yaml:"connectionString"`
	ID                 string `json:"id"                           yaml:"id"`
	ProvisioningStatus string `json:"provisioningStatus,omitempty" yaml:"provisioningStatus,omitempty"`
}

// Report represents a Power BI report within a workspace.
type Report struct {
	ID        string `json:"id"               yaml:"id"`
	Name      string `json:"name"             yaml:"name"`
	DatasetID string `json:"datasetId"        yaml:"datasetId"`
	WebURL    string `json:"webUrl,omitempty" yaml:"webUrl,omitempty"`
}

// WorkspaceRef is a resolved workspace: exactly one canonical (name, id)
// pair, produced before any request is dispatched.
type WorkspaceRef struct {
	Name string `json:"name" yaml:"name"`
	ID   string `json:"id"   yaml:"id"`
}

// ItemRef is a resolved item, scoped to the workspace it was resolved in.
type ItemRef struct {
	Name      string       `json:"name" yaml:"name"`
	ID        string       `json:"id"   yaml:"id"`
	Type      string       `json:"type" yaml:"type"`
	Workspace WorkspaceRef `json:"workspace" yaml:"workspace"`
}

// ListResponse represents a continuation-token paginated list response.
type ListResponse[T any] struct {
	Value             []T     `json:"value"                       yaml:"value"`
	ContinuationToken *string `json:"continuationToken,omitempty" yaml:"continuationToken,omitempty"`
	ContinuationURI   *string `json:"continuationUri,omitempty"   yaml:"continuationUri,omitempty"`
}

// DefinitionPart is one named, base64-encoded part of an item definition
// bundle.
type DefinitionPart struct {
	Path        string `json:"path"                  yaml:"path"`
	Payload     string `json:"payload"               yaml:"payload"`
	PayloadType string `json:"payloadType,omitempty" yaml:"payloadType,omitempty"`
}

// Definition is a multi-part item definition, addressed by per-part path
// names.
type Definition struct {
	Format string           `json:"format,omitempty" yaml:"format,omitempty"`
	Parts  []DefinitionPart `json:"parts"            yaml:"parts"`
}

// DefinitionResponse is the envelope returned by getDefinition endpoints.
type DefinitionResponse struct {
	Definition Definition `json:"definition" yaml:"definition"`
}

// Operation represents a Fabric long-running operation.
type Operation struct {
	ID              string          `json:"id"                        yaml:"id"`
	Status          string          `json:"status"                    yaml:"status"`
	CreatedTimeUTC  string          `json:"createdTimeUtc,omitempty"  yaml:"createdTimeUtc,omitempty"`
	LastUpdatedUTC  string          `json:"lastUpdatedTimeUtc,omitempty" yaml:"lastUpdatedTimeUtc,omitempty"`
	PercentComplete int             `json:"percentComplete,omitempty" yaml:"percentComplete,omitempty"`
	Error           *OperationError `json:"error,omitempty"           yaml:"error,omitempty"`
}

// OperationError carries the failure details of a long-running operation.
type OperationError struct {
	ErrorCode string `json:"errorCode"         yaml:"errorCode"`
	Message   string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Operation states.
const (
	OperationNotStarted = "NotStarted"
	OperationRunning    = "Running"
	OperationSucceeded  = "Succeeded"
	OperationFailed     = "Failed"
)

// StorageModeDirectLake is the semantic model storage mode required by the
// Direct Lake connection remapper.
const StorageModeDirectLake = "DirectLake"

// DatabaseQueryExpression is the semantic model expression that holds the
// Direct Lake data source connection.
const DatabaseQueryExpression = "DatabaseQuery"
