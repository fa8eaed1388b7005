package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/fabworks-io/fabric-client/internal/constants"
	"github.com/fabworks-io/fabric-client/internal/http"
	"github.com/fabworks-io/fabric-client/pkg/fabric"
)

// MountedDataFactoriesClient implements fabric.MountedDataFactoriesClient.
type MountedDataFactoriesClient struct {
	httpClient *http.Client
	workspaces *WorkspacesClient
	items      *ItemsClient
	operations *OperationsClient
}

// NewMountedDataFactoriesClient creates a new mounted data factories
// client.
func NewMountedDataFactoriesClient(httpClient *http.Client, workspaces *WorkspacesClient, items *ItemsClient, operations *OperationsClient) *MountedDataFactoriesClient {
	return &MountedDataFactoriesClient{
		httpClient: httpClient,
		workspaces: workspaces,
		items:      items,
		operations: operations,
	}
}

// List implements fabric.MountedDataFactoriesClient.List. All pages are
// flattened in response order.
func (c *MountedDataFactoriesClient) List(ctx context.Context, workspace string) ([]fabric.Item, error) {
	ref, err := c.workspaces.Resolve(ctx, workspace)
	if err != nil {
		return nil, err
	}

	return fabric.CollectAll(ctx, pageLister[fabric.Item]{httpClient: c.httpClient}, "/v1/workspaces/"+ref.ID+"/mountedDataFactories", nil)
}

// ListRows implements fabric.MountedDataFactoriesClient.ListRows.
func (c *MountedDataFactoriesClient) ListRows(ctx context.Context, workspace string) (*fabric.Table, error) {
	items, err := c.List(ctx, workspace)
	if err != nil {
		return nil, err
	}

	return fabric.MountedDataFactoryTable(items), nil
}

// GetDefinition implements fabric.MountedDataFactoriesClient.GetDefinition.
// The definition request may be long-running; this call blocks until the
// service reports completion, then selects and decodes the content part.
func (c *MountedDataFactoriesClient) GetDefinition(ctx context.Context, mountedDataFactory, workspace string) (map[string]any, error) {
	ref, err := c.workspaces.Resolve(ctx, workspace)
	if err != nil {
		return nil, err
	}

	itemRef, err := c.items.Resolve(ctx, ref, mountedDataFactory, fabric.ItemTypeMountedDataFactory)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/v1/workspaces/"+ref.ID+"/mountedDataFactories/"+itemRef.ID+"/getDefinition", nil)
	if err != nil {
		return nil, fmt.Errorf("getting mounted data factory definition: %w", err)
	}

	var definition fabric.DefinitionResponse

	err = c.operations.awaitResult(ctx, resp, &definition)
	if err != nil {
		return nil, err
	}

	return decodeDefinitionPart(&definition, constants.MountedDataFactoryContentPath)
}

// Delete implements fabric.MountedDataFactoriesClient.Delete. The returned
// ref identifies what was deleted; success means the delete call
// succeeded, not that a follow-up listing already reflects it.
func (c *MountedDataFactoriesClient) Delete(ctx context.Context, mountedDataFactory, workspace string) (*fabric.ItemRef, error) {
	ref, err := c.workspaces.Resolve(ctx, workspace)
	if err != nil {
		return nil, err
	}

	itemRef, err := c.items.Resolve(ctx, ref, mountedDataFactory, fabric.ItemTypeMountedDataFactory)
	if err != nil {
		return nil, err
	}

	_, err = c.httpClient.Delete(ctx, "/v1/workspaces/"+ref.ID+"/mountedDataFactories/"+itemRef.ID)
	if err != nil {
		return nil, fmt.Errorf("deleting mounted data factory: %w", err)
	}

	return itemRef, nil
}

// decodeDefinitionPart selects one named part of a definition bundle,
// base64-decodes it and parses it as JSON. A missing part is a typed
// NotFound, never a crash.
func decodeDefinitionPart(definition *fabric.DefinitionResponse, path string) (map[string]any, error) {
	for _, part := range definition.Definition.Parts {
		if part.Path != path {
			continue
		}

		payload, err := base64.StdEncoding.DecodeString(part.Payload)
		if err != nil {
			return nil, fmt.Errorf("decoding definition part %q: %w", path, err)
		}

		var content map[string]any

		err = json.Unmarshal(payload, &content)
		if err != nil {
			return nil, fmt.Errorf("parsing definition part %q: %w", path, err)
		}

		return content, nil
	}

	return nil, fmt.Errorf("%w: %q", fabric.ErrDefinitionPartNotFound, path)
}
