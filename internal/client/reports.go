package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/fabworks-io/fabric-client/internal/http"
	"github.com/fabworks-io/fabric-client/pkg/fabric"
)

// ReportsClient implements fabric.ReportsClient against the Power BI
// endpoint.
type ReportsClient struct {
	httpClient *http.Client
	workspaces *WorkspacesClient
	items      *ItemsClient
}

// NewReportsClient creates a new reports client.
func NewReportsClient(httpClient *http.Client, workspaces *WorkspacesClient, items *ItemsClient) *ReportsClient {
	return &ReportsClient{
		httpClient: httpClient,
		workspaces: workspaces,
		items:      items,
	}
}

// List implements fabric.ReportsClient.List.
func (c *ReportsClient) List(ctx context.Context, workspace string) ([]fabric.Report, error) {
	ref, err := c.workspaces.Resolve(ctx, workspace)
	if err != nil {
		return nil, err
	}

	return c.listByWorkspaceID(ctx, ref.ID)
}

func (c *ReportsClient) listByWorkspaceID(ctx context.Context, workspaceID string) ([]fabric.Report, error) {
	resp, err := c.httpClient.Get(ctx, "/v1.0/myorg/groups/"+workspaceID+"/reports", nil)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}

	var list fabric.ListResponse[fabric.Report]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing reports list: %w", err)
	}

	return list.Value, nil
}

// ListRows implements fabric.ReportsClient.ListRows.
func (c *ReportsClient) ListRows(ctx context.Context, workspace string) (*fabric.Table, error) {
	reports, err := c.List(ctx, workspace)
	if err != nil {
		return nil, err
	}

	return fabric.ReportTable(reports), nil
}

// resolveReport matches a report by id or name within a workspace.
func (c *ReportsClient) resolveReport(ctx context.Context, workspace *fabric.WorkspaceRef, report string) (*fabric.Report, error) {
	reports, err := c.listByWorkspaceID(ctx, workspace.ID)
	if err != nil {
		return nil, err
	}

	byID := uuid.Validate(report) == nil

	for _, candidate := range reports {
		if byID && candidate.ID == report || !byID && candidate.Name == report {
			return &candidate, nil
		}
	}

	return nil, fmt.Errorf("%w: %q in workspace %q", fabric.ErrReportNotFound, report, workspace.Name)
}

// rebindRequest is the Rebind payload.
type rebindRequest struct {
	DatasetID string `json:"datasetId"`
}

// Rebind implements fabric.ReportsClient.Rebind. An empty datasetWorkspace
// defaults to the report's workspace.
func (c *ReportsClient) Rebind(ctx context.Context, report, dataset, reportWorkspace, datasetWorkspace string) error {
	workspace, err := c.workspaces.Resolve(ctx, reportWorkspace)
	if err != nil {
		return err
	}

	targetWorkspace := workspace

	if datasetWorkspace != "" && datasetWorkspace != reportWorkspace {
		targetWorkspace, err = c.workspaces.Resolve(ctx, datasetWorkspace)
		if err != nil {
			return err
		}
	}

	resolved, err := c.resolveReport(ctx, workspace, report)
	if err != nil {
		return err
	}

	model, err := c.items.Resolve(ctx, targetWorkspace, dataset, fabric.ItemTypeSemanticModel)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Post(ctx, "/v1.0/myorg/groups/"+workspace.ID+"/reports/"+resolved.ID+"/Rebind", rebindRequest{DatasetID: model.ID})
	if err != nil {
		return fmt.Errorf("rebinding report %q: %w", resolved.Name, err)
	}

	return nil
}

// RebindAll implements fabric.ReportsClient.RebindAll. Every report in the
// dataset's workspace that is bound to dataset is rebound to newDataset.
func (c *ReportsClient) RebindAll(ctx context.Context, dataset, newDataset, datasetWorkspace, newDatasetWorkspace string) error {
	if dataset == newDataset {
		return fmt.Errorf("%w: %q", fabric.ErrSameDataset, dataset)
	}

	workspace, err := c.workspaces.Resolve(ctx, datasetWorkspace)
	if err != nil {
		return err
	}

	if newDatasetWorkspace == "" {
		newDatasetWorkspace = workspace.ID
	}

	model, err := c.items.Resolve(ctx, workspace, dataset, fabric.ItemTypeSemanticModel)
	if err != nil {
		return err
	}

	reports, err := c.listByWorkspaceID(ctx, workspace.ID)
	if err != nil {
		return err
	}

	for _, report := range reports {
		if report.DatasetID != model.ID {
			continue
		}

		err = c.Rebind(ctx, report.ID, newDataset, workspace.ID, newDatasetWorkspace)
		if err != nil {
			return err
		}
	}

	return nil
}
