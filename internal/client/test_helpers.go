package client

import (
	"context"
	"errors"
	"sync"

	"github.com/fabworks-io/fabric-client/pkg/fabric"
)

// Test static errors.
var (
	ErrTestCommitRejected = errors.New("commit rejected")
	ErrTestConnectFailed  = errors.New("connect failed")
)

// TestClientOption tweaks the config of a test client.
type TestClientOption func(*fabric.Config)

// WithTestAmbient injects an ambient context.
func WithTestAmbient(ambient fabric.Ambient) TestClientOption {
	return func(config *fabric.Config) {
		config.Ambient = ambient
	}
}

// WithTestConnector injects a model connector.
func WithTestConnector(connector fabric.ModelConnector) TestClientOption {
	return func(config *fabric.Config) {
		config.ModelConnector = connector
	}
}

// NewTestClient creates a client with both endpoints pointed at the given
// base URL and no token manager.
func NewTestClient(baseURL string, opts ...TestClientOption) *Client {
	config := &fabric.Config{
		APIEndpoint:     baseURL,
		PowerBIEndpoint: baseURL,
	}

	for _, opt := range opts {
		opt(config)
	}

	client, err := New(config)
	if err != nil {
		panic(err)
	}

	return client
}

// fakeModelHandle records mutations for assertions. Staged expressions
// only become visible in Committed after a successful Commit.
type fakeModelHandle struct {
	mu          sync.Mutex
	storageMode string
	committed   map[string]string
	staged      map[string]string
	commitErr   error
	setCalls    int
	commitCalls int
	closed      bool
}

func newFakeModelHandle(storageMode string, expressions map[string]string) *fakeModelHandle {
	committed := make(map[string]string, len(expressions))
	for name, expression := range expressions {
		committed[name] = expression
	}

	return &fakeModelHandle{
		storageMode: storageMode,
		committed:   committed,
		staged:      map[string]string{},
	}
}

func (h *fakeModelHandle) StorageMode() string {
	return h.storageMode
}

func (h *fakeModelHandle) Expression(name string) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	expression, ok := h.committed[name]
	if !ok {
		return "", fabric.ErrItemNotFound
	}

	return expression, nil
}

func (h *fakeModelHandle) SetExpression(name, expression string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.setCalls++
	h.staged[name] = expression

	return nil
}

func (h *fakeModelHandle) Commit() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.commitCalls++

	if h.commitErr != nil {
		return h.commitErr
	}

	for name, expression := range h.staged {
		h.committed[name] = expression
	}

	h.staged = map[string]string{}

	return nil
}

func (h *fakeModelHandle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true

	return nil
}

// fakeModelConnector hands out a fixed handle.
type fakeModelConnector struct {
	handle     *fakeModelHandle
	connectErr error
}

func (c *fakeModelConnector) Connect(ctx context.Context, workspace, model string, readOnly bool) (fabric.ModelHandle, error) {
	if c.connectErr != nil {
		return nil, c.connectErr
	}

	return c.handle, nil
}
