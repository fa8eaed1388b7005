package client

import (
	"context"
	"fmt"

	"github.com/fabworks-io/fabric-client/pkg/fabric"
)

// SemanticModelsClient implements fabric.SemanticModelsClient.
type SemanticModelsClient struct {
	workspaces *WorkspacesClient
	items      *ItemsClient
	lakehouses *LakehousesClient
	connector  fabric.ModelConnector
}

// NewSemanticModelsClient creates a new semantic models client.
func NewSemanticModelsClient(workspaces *WorkspacesClient, items *ItemsClient, lakehouses *LakehousesClient, connector fabric.ModelConnector) *SemanticModelsClient {
	return &SemanticModelsClient{
		workspaces: workspaces,
		items:      items,
		lakehouses: lakehouses,
		connector:  connector,
	}
}

// List implements fabric.SemanticModelsClient.List.
func (c *SemanticModelsClient) List(ctx context.Context, workspace string) ([]fabric.Item, error) {
	ref, err := c.workspaces.Resolve(ctx, workspace)
	if err != nil {
		return nil, err
	}

	return c.items.ListAll(ctx, ref.ID, fabric.ItemTypeSemanticModel)
}

// Resolve implements fabric.SemanticModelsClient.Resolve.
func (c *SemanticModelsClient) Resolve(ctx context.Context, workspace *fabric.WorkspaceRef, dataset string) (*fabric.ItemRef, error) {
	return c.items.Resolve(ctx, workspace, dataset, fabric.ItemTypeSemanticModel)
}

// UpdateDirectLakeConnection implements
// fabric.SemanticModelsClient.UpdateDirectLakeConnection.
//
// The model metadata handle is acquired, mutated and released within this
// call; Close runs on every exit path. A model outside Direct Lake storage
// mode fails the precondition before any mutation, and a failed commit
// propagates its cause, leaving the prior expression in place.
func (c *SemanticModelsClient) UpdateDirectLakeConnection(ctx context.Context, request *fabric.UpdateDirectLakeConnectionRequest) error {
	if c.connector == nil {
		return fabric.ErrModelConnectorRequired
	}

	workspace, err := c.workspaces.Resolve(ctx, request.Workspace)
	if err != nil {
		return err
	}

	lakehouseWorkspace := workspace

	if request.LakehouseWorkspace != "" && request.LakehouseWorkspace != request.Workspace {
		lakehouseWorkspace, err = c.workspaces.Resolve(ctx, request.LakehouseWorkspace)
		if err != nil {
			return err
		}
	}

	model, err := c.Resolve(ctx, workspace, request.Dataset)
	if err != nil {
		return err
	}

	expression, err := c.lakehouses.SharedExpression(ctx, lakehouseWorkspace, request.Lakehouse)
	if err != nil {
		return err
	}

	handle, err := c.connector.Connect(ctx, workspace.Name, model.Name, false)
	if err != nil {
		return fmt.Errorf("connecting to semantic model %q: %w", model.Name, err)
	}
	defer func() { _ = handle.Close() }()

	if handle.StorageMode() != fabric.StorageModeDirectLake {
		return fmt.Errorf("%w: %q", fabric.ErrNotDirectLake, model.Name)
	}

	err = handle.SetExpression(fabric.DatabaseQueryExpression, expression)
	if err != nil {
		return fmt.Errorf("setting %s expression on %q: %w", fabric.DatabaseQueryExpression, model.Name, err)
	}

	err = handle.Commit()
	if err != nil {
		return fmt.Errorf("%w: %w", fabric.ErrCommitFailed, err)
	}

	return nil
}
