package client

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/fabworks-io/fabric-client/internal/constants"
	"github.com/fabworks-io/fabric-client/internal/http"
	"github.com/fabworks-io/fabric-client/pkg/fabric"
)

// OperationsClient implements fabric.OperationsClient.
type OperationsClient struct {
	httpClient   *http.Client
	pollInterval time.Duration
	pollTimeout  time.Duration
}

// NewOperationsClient creates a new operations client.
func NewOperationsClient(httpClient *http.Client) *OperationsClient {
	return &OperationsClient{
		httpClient:   httpClient,
		pollInterval: constants.DefaultPollInterval,
		pollTimeout:  constants.DefaultOperationPollTimeout,
	}
}

// Get implements fabric.OperationsClient.Get.
func (c *OperationsClient) Get(ctx context.Context, operationID string) (*fabric.Operation, error) {
	resp, err := c.httpClient.Get(ctx, "/v1/operations/"+operationID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting operation: %w", err)
	}

	var operation fabric.Operation

	err = json.Unmarshal(resp.Body, &operation)
	if err != nil {
		return nil, fmt.Errorf("parsing operation: %w", err)
	}

	return &operation, nil
}

// PollUntilComplete implements fabric.OperationsClient.PollUntilComplete.
// It polls the operation until it reaches a terminal state (Succeeded or
// Failed).
func (c *OperationsClient) PollUntilComplete(ctx context.Context, operationID string) (*fabric.Operation, error) {
	pollCtx, cancel := context.WithTimeout(ctx, c.pollTimeout)
	defer cancel()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	// First check immediately
	operation, err := c.Get(pollCtx, operationID)
	if err != nil {
		return nil, fmt.Errorf("getting operation status: %w", err)
	}

	if isOperationComplete(operation) {
		return checkOperation(operation)
	}

	for {
		select {
		case <-pollCtx.Done():
			// Return the last known state on timeout
			return operation, fmt.Errorf("timeout waiting for operation to complete: %w", pollCtx.Err())
		case <-ticker.C:
			operation, err = c.Get(pollCtx, operationID)
			if err != nil {
				return nil, fmt.Errorf("getting operation status: %w", err)
			}

			if isOperationComplete(operation) {
				return checkOperation(operation)
			}
		}
	}
}

// GetResult implements fabric.OperationsClient.GetResult.
func (c *OperationsClient) GetResult(ctx context.Context, operationID string, result any) error {
	resp, err := c.httpClient.Get(ctx, "/v1/operations/"+operationID+"/result", nil)
	if err != nil {
		return fmt.Errorf("getting operation result: %w", err)
	}

	err = json.Unmarshal(resp.Body, result)
	if err != nil {
		return fmt.Errorf("parsing operation result: %w", err)
	}

	return nil
}

// isOperationComplete checks if an operation is in a terminal state.
func isOperationComplete(operation *fabric.Operation) bool {
	return operation.Status == fabric.OperationSucceeded || operation.Status == fabric.OperationFailed
}

// checkOperation maps a terminal operation to its error, if any.
func checkOperation(operation *fabric.Operation) (*fabric.Operation, error) {
	if operation.Status == fabric.OperationFailed {
		return operation, fmt.Errorf("%w: %s", fabric.ErrOperationFailed, formatOperationError(operation))
	}

	return operation, nil
}

// formatOperationError formats an operation failure for display.
func formatOperationError(operation *fabric.Operation) string {
	if operation.Error == nil {
		return "no error details available"
	}

	if operation.Error.Message == "" {
		return operation.Error.ErrorCode
	}

	return fmt.Sprintf("%s: %s", operation.Error.ErrorCode, operation.Error.Message)
}

// operationID extracts the operation id from a 202 response, preferring
// the x-ms-operation-id header and falling back to the Location URL.
func operationID(resp *http.Response) (string, error) {
	if id := resp.Headers.Get(constants.OperationIDHeader); id != "" {
		return id, nil
	}

	location := resp.Headers.Get(constants.LocationHeader)
	if location == "" {
		return "", fabric.ErrOperationLocationMissing
	}

	segments := strings.Split(strings.TrimSuffix(location, "/"), "/")

	return segments[len(segments)-1], nil
}

// awaitResult decodes a possibly long-running response into result. A 200
// or 201 decodes directly; a 202 blocks on the operation and fetches its
// result.
func (c *OperationsClient) awaitResult(ctx context.Context, resp *http.Response, result any) error {
	if resp.StatusCode != nethttp.StatusAccepted {
		err := json.Unmarshal(resp.Body, result)
		if err != nil {
			return fmt.Errorf("parsing response: %w", err)
		}

		return nil
	}

	opID, err := operationID(resp)
	if err != nil {
		return err
	}

	_, err = c.PollUntilComplete(ctx, opID)
	if err != nil {
		return err
	}

	return c.GetResult(ctx, opID, result)
}
