package fabric

import (
	"context"
	"time"
)

// WorkspacesClient resolves and lists workspaces.
type WorkspacesClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[Workspace], error)
	ListAll(ctx context.Context) ([]Workspace, error)
	Get(ctx context.Context, workspaceID string) (*Workspace, error)
	// Resolve turns an optional name-or-id into a canonical (name, id)
	// pair. An empty input falls back to the ambient context; a UUID input
	// is looked up by id only; anything else is matched by display name.
	Resolve(ctx context.Context, workspace string) (*WorkspaceRef, error)
}

// ItemsClient manages generic items within a workspace.
type ItemsClient interface {
	List(ctx context.Context, workspaceID string, params *QueryParams) (*ListResponse[Item], error)
	ListAll(ctx context.Context, workspaceID, itemType string) ([]Item, error)
	Get(ctx context.Context, workspaceID, itemID string) (*Item, error)
	Resolve(ctx context.Context, workspace *WorkspaceRef, item, itemType string) (*ItemRef, error)
	Delete(ctx context.Context, workspaceID, itemID string) error
}

// OperationsClient tracks Fabric long-running operations.
type OperationsClient interface {
	Get(ctx context.Context, operationID string) (*Operation, error)
	// PollUntilComplete blocks until the operation reaches a terminal
	// state. Suspension happens entirely inside this call; no partial
	// results are exposed.
	PollUntilComplete(ctx context.Context, operationID string) (*Operation, error)
	GetResult(ctx context.Context, operationID string, result any) error
}

// MountedDataFactoriesClient manages mounted data factory items.
type MountedDataFactoriesClient interface {
	List(ctx context.Context, workspace string) ([]Item, error)
	ListRows(ctx context.Context, workspace string) (*Table, error)
	// GetDefinition returns the decoded mountedDataFactory-content.json
	// part of the item's definition bundle.
	GetDefinition(ctx context.Context, mountedDataFactory, workspace string) (map[string]any, error)
	Delete(ctx context.Context, mountedDataFactory, workspace string) (*ItemRef, error)
}

// KQLQuerysetsClient manages KQL queryset items.
type KQLQuerysetsClient interface {
	List(ctx context.Context, workspace string) ([]Item, error)
	ListRows(ctx context.Context, workspace string) (*Table, error)
	Create(ctx context.Context, name, description, workspace string) (*Item, error)
	Delete(ctx context.Context, name, workspace string) (*ItemRef, error)
}

// LakehousesClient manages lakehouse items.
type LakehousesClient interface {
	List(ctx context.Context, workspace string) ([]Lakehouse, error)
	ListRows(ctx context.Context, workspace string) (*Table, error)
	Get(ctx context.Context, workspaceID, lakehouseID string) (*Lakehouse, error)
	Resolve(ctx context.Context, workspace *WorkspaceRef, lakehouse string) (*ItemRef, error)
	// SharedExpression builds the M expression binding a Direct Lake model
	// to the lakehouse's SQL analytics endpoint.
	SharedExpression(ctx context.Context, workspace *WorkspaceRef, lakehouse string) (string, error)
}

// UpdateDirectLakeConnectionRequest names the model to remap and the
// lakehouse to point it at. Empty workspace fields fall back to the ambient
// context; an empty Lakehouse falls back to the attached lakehouse.
type UpdateDirectLakeConnectionRequest struct {
	Dataset            string
	Workspace          string
	Lakehouse          string
	LakehouseWorkspace string
}

// SemanticModelsClient manages semantic model items.
type SemanticModelsClient interface {
	List(ctx context.Context, workspace string) ([]Item, error)
	Resolve(ctx context.Context, workspace *WorkspaceRef, dataset string) (*ItemRef, error)
	// UpdateDirectLakeConnection rewrites the model's DatabaseQuery
	// expression to the target lakehouse's shared expression. Fails with
	// ErrNotDirectLake (no mutation) when the model is not in Direct Lake
	// storage mode.
	UpdateDirectLakeConnection(ctx context.Context, request *UpdateDirectLakeConnectionRequest) error
}

// ReportsClient manages Power BI reports.
type ReportsClient interface {
	List(ctx context.Context, workspace string) ([]Report, error)
	ListRows(ctx context.Context, workspace string) (*Table, error)
	// Rebind binds the report to the given semantic model.
	Rebind(ctx context.Context, report, dataset, reportWorkspace, datasetWorkspace string) error
	// RebindAll rebinds every report bound to dataset onto newDataset.
	RebindAll(ctx context.Context, dataset, newDataset, datasetWorkspace, newDatasetWorkspace string) error
}

// Client is the full Fabric API client surface.
type Client interface {
	Workspaces() WorkspacesClient
	Items() ItemsClient
	Operations() OperationsClient
	MountedDataFactories() MountedDataFactoriesClient
	KQLQuerysets() KQLQuerysetsClient
	Lakehouses() LakehousesClient
	SemanticModels() SemanticModelsClient
	Reports() ReportsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration.
//
// Authentication precedence: AccessToken, if set, is used directly as a
// static bearer token. Otherwise TenantID/ClientID/ClientSecret drive an
// AAD client-credentials grant against TokenURL (defaulted from TenantID).
type Config struct {
	// APIEndpoint is the Fabric REST endpoint. Defaults to
	// https://api.fabric.microsoft.com.
	APIEndpoint string
	// PowerBIEndpoint is the Power BI REST endpoint used by the reports
	// client. Defaults to https://api.powerbi.com.
	PowerBIEndpoint string

	AccessToken  string
	TenantID     string
	ClientID     string
	ClientSecret string
	TokenURL     string
	Scope        string

	// Ambient supplies the current workspace and attached lakehouse for
	// resolver fallbacks. Optional; resolvers fail with a typed error when
	// it is needed but absent.
	Ambient Ambient
	// ModelConnector supplies metadata handles for the Direct Lake
	// connection remapper. Optional.
	ModelConnector ModelConnector

	Logger    Logger
	Debug     bool
	UserAgent string

	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}
