package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fabworks-io/fabric-client/internal/http"
	"github.com/fabworks-io/fabric-client/pkg/fabric"
)

// LakehousesClient implements fabric.LakehousesClient.
type LakehousesClient struct {
	httpClient *http.Client
	workspaces *WorkspacesClient
	items      *ItemsClient
	ambient    fabric.Ambient
}

// NewLakehousesClient creates a new lakehouses client.
func NewLakehousesClient(httpClient *http.Client, workspaces *WorkspacesClient, items *ItemsClient, ambient fabric.Ambient) *LakehousesClient {
	return &LakehousesClient{
		httpClient: httpClient,
		workspaces: workspaces,
		items:      items,
		ambient:    ambient,
	}
}

// List implements fabric.LakehousesClient.List.
func (c *LakehousesClient) List(ctx context.Context, workspace string) ([]fabric.Lakehouse, error) {
	ref, err := c.workspaces.Resolve(ctx, workspace)
	if err != nil {
		return nil, err
	}

	return fabric.CollectAll(ctx, pageLister[fabric.Lakehouse]{httpClient: c.httpClient}, "/v1/workspaces/"+ref.ID+"/lakehouses", nil)
}

// ListRows implements fabric.LakehousesClient.ListRows.
func (c *LakehousesClient) ListRows(ctx context.Context, workspace string) (*fabric.Table, error) {
	lakehouses, err := c.List(ctx, workspace)
	if err != nil {
		return nil, err
	}

	return fabric.LakehouseTable(lakehouses), nil
}

// Get implements fabric.LakehousesClient.Get. Single-item GETs carry the
// SQL endpoint properties that listings omit.
func (c *LakehousesClient) Get(ctx context.Context, workspaceID, lakehouseID string) (*fabric.Lakehouse, error) {
	resp, err := c.httpClient.Get(ctx, "/v1/workspaces/"+workspaceID+"/lakehouses/"+lakehouseID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting lakehouse: %w", err)
	}

	var lakehouse fabric.Lakehouse

	err = json.Unmarshal(resp.Body, &lakehouse)
	if err != nil {
		return nil, fmt.Errorf("parsing lakehouse: %w", err)
	}

	return &lakehouse, nil
}

// Resolve implements fabric.LakehousesClient.Resolve. An empty input falls
// back to the ambient attached lakehouse.
func (c *LakehousesClient) Resolve(ctx context.Context, workspace *fabric.WorkspaceRef, lakehouse string) (*fabric.ItemRef, error) {
	if lakehouse == "" {
		if c.ambient == nil {
			return nil, fabric.ErrNoAmbientLakehouse
		}

		lakehouseID, err := c.ambient.CurrentLakehouseID(ctx)
		if err != nil {
			return nil, fmt.Errorf("resolving ambient lakehouse: %w", err)
		}

		lakehouse = lakehouseID
	}

	ref, err := c.items.Resolve(ctx, workspace, lakehouse, fabric.ItemTypeLakehouse)
	if err != nil {
		if fabric.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %q in workspace %q", fabric.ErrLakehouseNotFound, lakehouse, workspace.Name)
		}

		return nil, err
	}

	return ref, nil
}

// SharedExpression implements fabric.LakehousesClient.SharedExpression. It
// builds the M expression pointing a Direct Lake model at the lakehouse's
// SQL analytics endpoint.
func (c *LakehousesClient) SharedExpression(ctx context.Context, workspace *fabric.WorkspaceRef, lakehouse string) (string, error) {
	ref, err := c.Resolve(ctx, workspace, lakehouse)
	if err != nil {
		return "", err
	}

	full, err := c.Get(ctx, workspace.ID, ref.ID)
	if err != nil {
		return "", err
	}

	properties := full.Properties
	if properties == nil || properties.SQLEndpointProperties == nil {
		return "", fmt.Errorf("%w: lakehouse %q", fabric.ErrSQLEndpointUnavailable, ref.Name)
	}

	endpoint := properties.SQLEndpointProperties
	if endpoint.ProvisioningStatus != "" && endpoint.ProvisioningStatus != "Success" {
		return "", fmt.Errorf("%w: lakehouse %q reports %q", fabric.ErrSQLEndpointUnavailable, ref.Name, endpoint.ProvisioningStatus)
	}

	expression := fmt.Sprintf("let\n\tdatabase = Sql.Database(\"%s\", \"%s\")\nin\n\tdatabase",
		endpoint.ConnectionString, endpoint.ID)

	return expression, nil
}
