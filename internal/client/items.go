package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/fabworks-io/fabric-client/internal/http"
	"github.com/fabworks-io/fabric-client/pkg/fabric"
)

// ItemsClient implements fabric.ItemsClient.
type ItemsClient struct {
	httpClient *http.Client
}

// NewItemsClient creates a new items client.
func NewItemsClient(httpClient *http.Client) *ItemsClient {
	return &ItemsClient{
		httpClient: httpClient,
	}
}

// List implements fabric.ItemsClient.List.
func (c *ItemsClient) List(ctx context.Context, workspaceID string, params *fabric.QueryParams) (*fabric.ListResponse[fabric.Item], error) {
	if params == nil {
		params = fabric.NewQueryParams()
	}

	return pageLister[fabric.Item]{httpClient: c.httpClient}.ListWithPath(ctx, "/v1/workspaces/"+workspaceID+"/items", params)
}

// ListAll implements fabric.ItemsClient.ListAll. An empty itemType lists
// items of every type.
func (c *ItemsClient) ListAll(ctx context.Context, workspaceID, itemType string) ([]fabric.Item, error) {
	params := fabric.NewQueryParams().WithType(itemType)

	return fabric.CollectAll(ctx, pageLister[fabric.Item]{httpClient: c.httpClient}, "/v1/workspaces/"+workspaceID+"/items", params)
}

// Get implements fabric.ItemsClient.Get.
func (c *ItemsClient) Get(ctx context.Context, workspaceID, itemID string) (*fabric.Item, error) {
	resp, err := c.httpClient.Get(ctx, "/v1/workspaces/"+workspaceID+"/items/"+itemID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}

	var item fabric.Item

	err = json.Unmarshal(resp.Body, &item)
	if err != nil {
		return nil, fmt.Errorf("parsing item: %w", err)
	}

	return &item, nil
}

// Resolve implements fabric.ItemsClient.Resolve. A UUID input is looked up
// by id; anything else is matched against display names within the
// workspace and item type.
func (c *ItemsClient) Resolve(ctx context.Context, workspace *fabric.WorkspaceRef, item, itemType string) (*fabric.ItemRef, error) {
	if uuid.Validate(item) == nil {
		found, err := c.Get(ctx, workspace.ID, item)
		if err != nil {
			if fabric.IsNotFound(err) {
				return nil, fmt.Errorf("%w: %q in workspace %q", fabric.ErrItemNotFound, item, workspace.Name)
			}

			return nil, err
		}

		return &fabric.ItemRef{
			Name:      found.DisplayName,
			ID:        found.ID,
			Type:      found.Type,
			Workspace: *workspace,
		}, nil
	}

	items, err := c.ListAll(ctx, workspace.ID, itemType)
	if err != nil {
		return nil, err
	}

	for _, candidate := range items {
		if candidate.DisplayName == item {
			resolvedType := candidate.Type
			if resolvedType == "" {
				resolvedType = itemType
			}

			return &fabric.ItemRef{
				Name:      candidate.DisplayName,
				ID:        candidate.ID,
				Type:      resolvedType,
				Workspace: *workspace,
			}, nil
		}
	}

	return nil, fmt.Errorf("%w: %s %q in workspace %q", fabric.ErrItemNotFound, itemType, item, workspace.Name)
}

// Delete implements fabric.ItemsClient.Delete. One request, no
// confirmation step, no post-condition check.
func (c *ItemsClient) Delete(ctx context.Context, workspaceID, itemID string) error {
	_, err := c.httpClient.Delete(ctx, "/v1/workspaces/"+workspaceID+"/items/"+itemID)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}

	return nil
}
