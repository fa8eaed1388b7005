package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabworks-io/fabric-client/pkg/fabric"
)

// directLakeServer serves workspace, semantic model and lakehouse routes
// for the connection remap tests.
func directLakeServer(t *testing.T) *httptest.Server {
	t.Helper()

	return mdfServer(t, func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/v1/workspaces/" + testWorkspaceID + "/items":
			switch request.URL.Query().Get("type") {
			case fabric.ItemTypeSemanticModel:
				_ = json.NewEncoder(writer).Encode(fabric.ListResponse[fabric.Item]{
					Value: []fabric.Item{{ID: testModelID, DisplayName: "SalesModel"}},
				})
			case fabric.ItemTypeLakehouse:
				_ = json.NewEncoder(writer).Encode(fabric.ListResponse[fabric.Item]{
					Value: []fabric.Item{{ID: testLakehouseID, DisplayName: "MyLakehouse"}},
				})
			default:
				t.Errorf("unexpected item type filter: %q", request.URL.Query().Get("type"))
			}
		case "/v1/workspaces/" + testWorkspaceID + "/lakehouses/" + testLakehouseID:
			_ = json.NewEncoder(writer).Encode(fabric.Lakehouse{
				Item: fabric.Item{ID: testLakehouseID, DisplayName: "MyLakehouse"},
				Properties: &fabric.LakehouseProperties{
					SQLEndpointProperties: &fabric.SQLEndpointProperties{
						ConnectionString:   "server.datawarehouse.fabric.microsoft.com",
						ID:                 "endpoint-id",
						ProvisioningStatus: "Success",
					},
				},
			})
		default:
			t.Errorf("unexpected request: %s", request.URL.Path)
		}
	})
}

func TestSemanticModelsClient_UpdateDirectLakeConnection(t *testing.T) {
	t.Parallel()

	request := &fabric.UpdateDirectLakeConnectionRequest{
		Dataset:   "SalesModel",
		Workspace: "Sales",
		Lakehouse: "MyLakehouse",
	}

	t.Run("rewrites the shared expression and commits", func(t *testing.T) {
		t.Parallel()

		server := directLakeServer(t)
		defer server.Close()

		handle := newFakeModelHandle(fabric.StorageModeDirectLake, map[string]string{
			fabric.DatabaseQueryExpression: "let\n\tdatabase = Sql.Database(\"old-server\", \"old-endpoint\")\nin\n\tdatabase",
		})
		client := NewTestClient(server.URL, WithTestConnector(&fakeModelConnector{handle: handle}))

		err := client.semanticModels.UpdateDirectLakeConnection(context.Background(), request)
		require.NoError(t, err)

		assert.Equal(t, 1, handle.setCalls)
		assert.Equal(t, 1, handle.commitCalls)
		assert.True(t, handle.closed)

		expected := "let\n\tdatabase = Sql.Database(\"server.datawarehouse.fabric.microsoft.com\", \"endpoint-id\")\nin\n\tdatabase"
		assert.Equal(t, expected, handle.committed[fabric.DatabaseQueryExpression])
	})

	t.Run("non direct lake model fails before any mutation", func(t *testing.T) {
		t.Parallel()

		server := directLakeServer(t)
		defer server.Close()

		handle := newFakeModelHandle("Import", nil)
		client := NewTestClient(server.URL, WithTestConnector(&fakeModelConnector{handle: handle}))

		err := client.semanticModels.UpdateDirectLakeConnection(context.Background(), request)
		require.ErrorIs(t, err, fabric.ErrNotDirectLake)
		assert.True(t, fabric.IsPreconditionFailed(err))
		assert.Contains(t, err.Error(), "SalesModel")

		assert.Zero(t, handle.setCalls)
		assert.Zero(t, handle.commitCalls)
		assert.True(t, handle.closed)
	})

	t.Run("commit failure propagates and leaves the model untouched", func(t *testing.T) {
		t.Parallel()

		server := directLakeServer(t)
		defer server.Close()

		before := "let\n\tdatabase = Sql.Database(\"old-server\", \"old-endpoint\")\nin\n\tdatabase"
		handle := newFakeModelHandle(fabric.StorageModeDirectLake, map[string]string{
			fabric.DatabaseQueryExpression: before,
		})
		handle.commitErr = ErrTestCommitRejected

		client := NewTestClient(server.URL, WithTestConnector(&fakeModelConnector{handle: handle}))

		err := client.semanticModels.UpdateDirectLakeConnection(context.Background(), request)
		require.ErrorIs(t, err, fabric.ErrCommitFailed)
		require.ErrorIs(t, err, ErrTestCommitRejected)
		assert.True(t, fabric.IsRemoteFailure(err))

		assert.Equal(t, before, handle.committed[fabric.DatabaseQueryExpression])
		assert.True(t, handle.closed)
	})

	t.Run("connect failure is wrapped", func(t *testing.T) {
		t.Parallel()

		server := directLakeServer(t)
		defer server.Close()

		client := NewTestClient(server.URL, WithTestConnector(&fakeModelConnector{connectErr: ErrTestConnectFailed}))

		err := client.semanticModels.UpdateDirectLakeConnection(context.Background(), request)
		require.ErrorIs(t, err, ErrTestConnectFailed)
	})

	t.Run("missing lakehouse fails before connecting", func(t *testing.T) {
		t.Parallel()

		server := mdfServer(t, func(writer http.ResponseWriter, req *http.Request) {
			switch req.URL.Query().Get("type") {
			case fabric.ItemTypeSemanticModel:
				_ = json.NewEncoder(writer).Encode(fabric.ListResponse[fabric.Item]{
					Value: []fabric.Item{{ID: testModelID, DisplayName: "SalesModel"}},
				})
			default:
				_ = json.NewEncoder(writer).Encode(fabric.ListResponse[fabric.Item]{})
			}
		})
		defer server.Close()

		connector := &fakeModelConnector{handle: newFakeModelHandle(fabric.StorageModeDirectLake, nil)}
		client := NewTestClient(server.URL, WithTestConnector(connector))

		err := client.semanticModels.UpdateDirectLakeConnection(context.Background(), request)
		require.ErrorIs(t, err, fabric.ErrLakehouseNotFound)
		assert.Zero(t, connector.handle.setCalls)
	})

	t.Run("no connector configured", func(t *testing.T) {
		t.Parallel()

		client := NewTestClient("http://unused.invalid")

		err := client.semanticModels.UpdateDirectLakeConnection(context.Background(), request)
		require.ErrorIs(t, err, fabric.ErrModelConnectorRequired)
	})
}
