package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/fabworks-io/fabric-client/internal/http"
	"github.com/fabworks-io/fabric-client/pkg/fabric"
)

// pageLister adapts the transport to fabric.PageLister for one resource
// type.
type pageLister[T any] struct {
	httpClient *http.Client
}

// ListWithPath implements fabric.PageLister.
func (l pageLister[T]) ListWithPath(ctx context.Context, path string, params *fabric.QueryParams) (*fabric.ListResponse[T], error) {
	resp, err := l.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", path, err)
	}

	var list fabric.ListResponse[T]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing list response: %w", err)
	}

	return &list, nil
}

// WorkspacesClient implements fabric.WorkspacesClient.
type WorkspacesClient struct {
	httpClient *http.Client
	ambient    fabric.Ambient
}

// NewWorkspacesClient creates a new workspaces client.
func NewWorkspacesClient(httpClient *http.Client, ambient fabric.Ambient) *WorkspacesClient {
	return &WorkspacesClient{
		httpClient: httpClient,
		ambient:    ambient,
	}
}

// List implements fabric.WorkspacesClient.List.
func (c *WorkspacesClient) List(ctx context.Context, params *fabric.QueryParams) (*fabric.ListResponse[fabric.Workspace], error) {
	if params == nil {
		params = fabric.NewQueryParams()
	}

	return pageLister[fabric.Workspace]{httpClient: c.httpClient}.ListWithPath(ctx, "/v1/workspaces", params)
}

// ListAll implements fabric.WorkspacesClient.ListAll.
func (c *WorkspacesClient) ListAll(ctx context.Context) ([]fabric.Workspace, error) {
	return fabric.CollectAll(ctx, pageLister[fabric.Workspace]{httpClient: c.httpClient}, "/v1/workspaces", nil)
}

// Get implements fabric.WorkspacesClient.Get.
func (c *WorkspacesClient) Get(ctx context.Context, workspaceID string) (*fabric.Workspace, error) {
	resp, err := c.httpClient.Get(ctx, "/v1/workspaces/"+workspaceID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting workspace: %w", err)
	}

	var workspace fabric.Workspace

	err = json.Unmarshal(resp.Body, &workspace)
	if err != nil {
		return nil, fmt.Errorf("parsing workspace: %w", err)
	}

	return &workspace, nil
}

// Resolve implements fabric.WorkspacesClient.Resolve.
//
// An empty input defers to the ambient context. A UUID input is looked up
// by id only; any other input is matched against display names, so a
// workspace whose name happens to look up nothing fails with a typed
// NotFound rather than degrading.
func (c *WorkspacesClient) Resolve(ctx context.Context, workspace string) (*fabric.WorkspaceRef, error) {
	if workspace == "" {
		if c.ambient == nil {
			return nil, fabric.ErrNoAmbientWorkspace
		}

		workspaceID, err := c.ambient.CurrentWorkspaceID(ctx)
		if err != nil {
			return nil, fmt.Errorf("resolving ambient workspace: %w", err)
		}

		return c.refByID(ctx, workspaceID)
	}

	if uuid.Validate(workspace) == nil {
		return c.refByID(ctx, workspace)
	}

	workspaces, err := c.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, candidate := range workspaces {
		if candidate.DisplayName == workspace {
			return &fabric.WorkspaceRef{Name: candidate.DisplayName, ID: candidate.ID}, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", fabric.ErrWorkspaceNotFound, workspace)
}

// refByID fetches the workspace to complete the canonical (name, id) pair.
func (c *WorkspacesClient) refByID(ctx context.Context, workspaceID string) (*fabric.WorkspaceRef, error) {
	workspace, err := c.Get(ctx, workspaceID)
	if err != nil {
		if fabric.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %q", fabric.ErrWorkspaceNotFound, workspaceID)
		}

		return nil, err
	}

	return &fabric.WorkspaceRef{Name: workspace.DisplayName, ID: workspace.ID}, nil
}
