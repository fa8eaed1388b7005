package fabric

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents an error response from the Fabric or Power BI API.
type APIError struct {
	StatusCode int    `json:"-"                   yaml:"-"`
	ErrorCode  string `json:"errorCode"           yaml:"errorCode"`
	Message    string `json:"message"             yaml:"message"`
	RequestID  string `json:"requestId,omitempty" yaml:"requestId,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.ErrorCode == "" {
		return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
	}

	return fmt.Sprintf("%s: %s (status %d)", e.ErrorCode, e.Message, e.StatusCode)
}

// Common Fabric error codes.
const (
	ErrorCodeItemNotFound      = "ItemNotFound"
	ErrorCodeEntityNotFound    = "EntityNotFound"
	ErrorCodeWorkspaceNotFound = "WorkspaceNotFound"
	ErrorCodeOperationFailed   = "OperationFailed"
)

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired           = errors.New("config is required")
	ErrEndpointRequired         = errors.New("API endpoint is required")
	ErrWorkspaceNotFound        = errors.New("workspace not found")
	ErrItemNotFound             = errors.New("item not found")
	ErrLakehouseNotFound        = errors.New("lakehouse not found")
	ErrReportNotFound           = errors.New("report not found")
	ErrDefinitionPartNotFound   = errors.New("definition part not found")
	ErrNoAmbientWorkspace       = errors.New("no workspace given and no ambient workspace available")
	ErrNoAmbientLakehouse       = errors.New("no lakehouse given and no ambient lakehouse attached")
	ErrNotDirectLake            = errors.New("semantic model is not in Direct Lake storage mode")
	ErrSameDataset              = errors.New("source and target semantic models are the same")
	ErrModelConnectorRequired   = errors.New("no model connector configured")
	ErrSQLEndpointUnavailable   = errors.New("lakehouse SQL endpoint is not provisioned")
	ErrOperationFailed          = errors.New("operation failed")
	ErrOperationLocationMissing = errors.New("accepted response carries no operation id")
	ErrCommitFailed             = errors.New("committing semantic model changes failed")
)

// IsNotFound reports whether err denotes a missing workspace, item,
// lakehouse, report or definition part.
func IsNotFound(err error) bool {
	switch {
	case errors.Is(err, ErrWorkspaceNotFound),
		errors.Is(err, ErrItemNotFound),
		errors.Is(err, ErrLakehouseNotFound),
		errors.Is(err, ErrReportNotFound),
		errors.Is(err, ErrDefinitionPartNotFound):
		return true
	}

	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsPreconditionFailed reports whether err denotes an operation attempted
// on an item not in the required mode.
func IsPreconditionFailed(err error) bool {
	return errors.Is(err, ErrNotDirectLake) || errors.Is(err, ErrSameDataset)
}

// IsRemoteFailure reports whether err denotes a failed remote call or a
// failed metadata commit, as opposed to a missing entity or a violated
// precondition.
func IsRemoteFailure(err error) bool {
	if errors.Is(err, ErrCommitFailed) || errors.Is(err, ErrOperationFailed) {
		return true
	}

	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode != http.StatusNotFound
	}

	return false
}
