package fabric

import "context"

// ModelConnector opens scoped handles to a semantic model's object model.
// Implementations typically speak XMLA to the workspace; the client treats
// the connector as a black-box collaborator.
type ModelConnector interface {
	// Connect acquires a handle to the named model, keyed by workspace and
	// model name. A read-only handle rejects mutations.
	Connect(ctx context.Context, workspace, model string, readOnly bool) (ModelHandle, error)
}

// ModelHandle is a scoped connection to one semantic model's metadata. It
// must be acquired, mutated and released within a single bounded scope;
// Close is safe to call whether or not Commit ran.
type ModelHandle interface {
	// StorageMode returns the model's storage mode, e.g. "DirectLake".
	StorageMode() string
	// Expression returns the named model expression.
	Expression(name string) (string, error)
	// SetExpression stages a new value for the named expression. Nothing is
	// visible remotely until Commit.
	SetExpression(name, expression string) error
	// Commit writes staged changes to the service.
	Commit() error
	// Close releases the handle, discarding uncommitted changes.
	Close() error
}
