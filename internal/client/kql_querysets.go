package client

import (
	"context"
	"fmt"

	"github.com/fabworks-io/fabric-client/internal/http"
	"github.com/fabworks-io/fabric-client/pkg/fabric"
)

// KQLQuerysetsClient implements fabric.KQLQuerysetsClient.
type KQLQuerysetsClient struct {
	httpClient *http.Client
	workspaces *WorkspacesClient
	items      *ItemsClient
	operations *OperationsClient
}

// NewKQLQuerysetsClient creates a new KQL querysets client.
func NewKQLQuerysetsClient(httpClient *http.Client, workspaces *WorkspacesClient, items *ItemsClient, operations *OperationsClient) *KQLQuerysetsClient {
	return &KQLQuerysetsClient{
		httpClient: httpClient,
		workspaces: workspaces,
		items:      items,
		operations: operations,
	}
}

// List implements fabric.KQLQuerysetsClient.List.
func (c *KQLQuerysetsClient) List(ctx context.Context, workspace string) ([]fabric.Item, error) {
	ref, err := c.workspaces.Resolve(ctx, workspace)
	if err != nil {
		return nil, err
	}

	return fabric.CollectAll(ctx, pageLister[fabric.Item]{httpClient: c.httpClient}, "/v1/workspaces/"+ref.ID+"/kqlQuerysets", nil)
}

// ListRows implements fabric.KQLQuerysetsClient.ListRows.
func (c *KQLQuerysetsClient) ListRows(ctx context.Context, workspace string) (*fabric.Table, error) {
	items, err := c.List(ctx, workspace)
	if err != nil {
		return nil, err
	}

	return fabric.KQLQuerysetTable(items), nil
}

// kqlQuerysetCreateRequest is the create payload.
type kqlQuerysetCreateRequest struct {
	DisplayName string `json:"displayName"`
	Description string `json:"description,omitempty"`
}

// Create implements fabric.KQLQuerysetsClient.Create. Creation may be
// long-running; this call blocks until the item exists.
func (c *KQLQuerysetsClient) Create(ctx context.Context, name, description, workspace string) (*fabric.Item, error) {
	ref, err := c.workspaces.Resolve(ctx, workspace)
	if err != nil {
		return nil, err
	}

	body := kqlQuerysetCreateRequest{
		DisplayName: name,
		Description: description,
	}

	resp, err := c.httpClient.Post(ctx, "/v1/workspaces/"+ref.ID+"/kqlQuerysets", body)
	if err != nil {
		return nil, fmt.Errorf("creating KQL queryset: %w", err)
	}

	var item fabric.Item

	err = c.operations.awaitResult(ctx, resp, &item)
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// Delete implements fabric.KQLQuerysetsClient.Delete.
func (c *KQLQuerysetsClient) Delete(ctx context.Context, name, workspace string) (*fabric.ItemRef, error) {
	ref, err := c.workspaces.Resolve(ctx, workspace)
	if err != nil {
		return nil, err
	}

	itemRef, err := c.items.Resolve(ctx, ref, name, fabric.ItemTypeKQLQueryset)
	if err != nil {
		return nil, err
	}

	_, err = c.httpClient.Delete(ctx, "/v1/workspaces/"+ref.ID+"/kqlQuerysets/"+itemRef.ID)
	if err != nil {
		return nil, fmt.Errorf("deleting KQL queryset: %w", err)
	}

	return itemRef, nil
}
