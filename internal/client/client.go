// Package client implements the fabric.Client interface.
package client

import (
	"fmt"

	"github.com/fabworks-io/fabric-client/internal/auth"
	"github.com/fabworks-io/fabric-client/internal/constants"
	"github.com/fabworks-io/fabric-client/internal/http"
	"github.com/fabworks-io/fabric-client/pkg/fabric"
)

// Client implements fabric.Client.
type Client struct {
	fabricHTTP   *http.Client
	powerBIHTTP  *http.Client
	tokenManager auth.TokenManager
	logger       fabric.Logger
	ambient      fabric.Ambient
	connector    fabric.ModelConnector

	workspaces           *WorkspacesClient
	items                *ItemsClient
	operations           *OperationsClient
	mountedDataFactories *MountedDataFactoriesClient
	kqlQuerysets         *KQLQuerysetsClient
	lakehouses           *LakehousesClient
	semanticModels       *SemanticModelsClient
	reports              *ReportsClient
}

// New creates a new Fabric API client.
func New(config *fabric.Config) (*Client, error) {
	if config == nil {
		return nil, fabric.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, fabric.ErrEndpointRequired
	}

	powerBIEndpoint := config.PowerBIEndpoint
	if powerBIEndpoint == "" {
		powerBIEndpoint = constants.DefaultPowerBIEndpoint
	}

	tokenManager := createTokenManager(config)
	httpOpts := createHTTPClientOptions(config)

	client := &Client{
		fabricHTTP:   http.NewClient(config.APIEndpoint, tokenManager, httpOpts...),
		powerBIHTTP:  http.NewClient(powerBIEndpoint, tokenManager, httpOpts...),
		tokenManager: tokenManager,
		logger:       config.Logger,
		ambient:      config.Ambient,
		connector:    config.ModelConnector,
	}

	client.initializeResourceClients()

	return client, nil
}

// createTokenManager creates the appropriate token manager based on config.
func createTokenManager(config *fabric.Config) auth.TokenManager {
	if config.AccessToken != "" {
		return auth.NewStaticTokenManager(config.AccessToken)
	}

	if config.ClientID != "" && config.ClientSecret != "" {
		return auth.NewClientCredentialsTokenManager(&auth.ClientCredentialsConfig{
			TokenURL:     getTokenURL(config),
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			Scope:        getScope(config),
		})
	}

	return nil // No authentication
}

// getTokenURL returns the token URL from config or the AAD default.
func getTokenURL(config *fabric.Config) string {
	if config.TokenURL != "" {
		return config.TokenURL
	}

	return fmt.Sprintf(constants.AADTokenURLFormat, config.TenantID)
}

// getScope returns the OAuth scope from config or the Fabric default.
func getScope(config *fabric.Config) string {
	if config.Scope != "" {
		return config.Scope
	}

	return constants.DefaultScope
}

// createHTTPClientOptions builds transport options from config.
func createHTTPClientOptions(config *fabric.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.workspaces = NewWorkspacesClient(c.fabricHTTP, c.ambient)
	c.items = NewItemsClient(c.fabricHTTP)
	c.operations = NewOperationsClient(c.fabricHTTP)
	c.mountedDataFactories = NewMountedDataFactoriesClient(c.fabricHTTP, c.workspaces, c.items, c.operations)
	c.kqlQuerysets = NewKQLQuerysetsClient(c.fabricHTTP, c.workspaces, c.items, c.operations)
	c.lakehouses = NewLakehousesClient(c.fabricHTTP, c.workspaces, c.items, c.ambient)
	c.semanticModels = NewSemanticModelsClient(c.workspaces, c.items, c.lakehouses, c.connector)
	c.reports = NewReportsClient(c.powerBIHTTP, c.workspaces, c.items)
}

// Workspaces implements fabric.Client.Workspaces.
func (c *Client) Workspaces() fabric.WorkspacesClient {
	return c.workspaces
}

// Items implements fabric.Client.Items.
func (c *Client) Items() fabric.ItemsClient {
	return c.items
}

// Operations implements fabric.Client.Operations.
func (c *Client) Operations() fabric.OperationsClient {
	return c.operations
}

// MountedDataFactories implements fabric.Client.MountedDataFactories.
func (c *Client) MountedDataFactories() fabric.MountedDataFactoriesClient {
	return c.mountedDataFactories
}

// KQLQuerysets implements fabric.Client.KQLQuerysets.
func (c *Client) KQLQuerysets() fabric.KQLQuerysetsClient {
	return c.kqlQuerysets
}

// Lakehouses implements fabric.Client.Lakehouses.
func (c *Client) Lakehouses() fabric.LakehousesClient {
	return c.lakehouses
}

// SemanticModels implements fabric.Client.SemanticModels.
func (c *Client) SemanticModels() fabric.SemanticModelsClient {
	return c.semanticModels
}

// Reports implements fabric.Client.Reports.
func (c *Client) Reports() fabric.ReportsClient {
	return c.reports
}

// loggerAdapter adapts fabric.Logger to http.Logger.
type loggerAdapter struct {
	logger fabric.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
