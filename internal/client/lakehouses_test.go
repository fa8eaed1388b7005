package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabworks-io/fabric-client/pkg/fabric"
)

func lakehouseItemsHandler(writer http.ResponseWriter) {
	_ = json.NewEncoder(writer).Encode(fabric.ListResponse[fabric.Item]{
		Value: []fabric.Item{{ID: testLakehouseID, DisplayName: "MyLakehouse"}},
	})
}

func TestLakehousesClient_Resolve(t *testing.T) {
	t.Parallel()

	workspace := &fabric.WorkspaceRef{Name: "Sales", ID: testWorkspaceID}

	t.Run("empty input uses ambient lakehouse", func(t *testing.T) {
		t.Parallel()

		server := mdfServer(t, func(writer http.ResponseWriter, request *http.Request) {
			require.Equal(t, "/v1/workspaces/"+testWorkspaceID+"/items/"+testLakehouseID, request.URL.Path)

			_ = json.NewEncoder(writer).Encode(fabric.Item{ID: testLakehouseID, DisplayName: "MyLakehouse", Type: fabric.ItemTypeLakehouse})
		})
		defer server.Close()

		client := NewTestClient(server.URL, WithTestAmbient(&fabric.StaticAmbient{
			WorkspaceID: testWorkspaceID,
			LakehouseID: testLakehouseID,
		}))

		ref, err := client.lakehouses.Resolve(context.Background(), workspace, "")
		require.NoError(t, err)
		assert.Equal(t, testLakehouseID, ref.ID)
	})

	t.Run("empty input without ambient fails", func(t *testing.T) {
		t.Parallel()

		client := NewTestClient("http://unused.invalid")

		_, err := client.lakehouses.Resolve(context.Background(), workspace, "")
		require.ErrorIs(t, err, fabric.ErrNoAmbientLakehouse)
	})

	t.Run("name miss is a lakehouse not found", func(t *testing.T) {
		t.Parallel()

		server := mdfServer(t, func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode(fabric.ListResponse[fabric.Item]{})
		})
		defer server.Close()

		client := NewTestClient(server.URL)

		_, err := client.lakehouses.Resolve(context.Background(), workspace, "Missing")
		require.ErrorIs(t, err, fabric.ErrLakehouseNotFound)
		assert.True(t, fabric.IsNotFound(err))
	})
}

func TestLakehousesClient_SharedExpression(t *testing.T) {
	t.Parallel()

	workspace := &fabric.WorkspaceRef{Name: "Sales", ID: testWorkspaceID}

	t.Run("builds the database query expression", func(t *testing.T) {
		t.Parallel()

		server := mdfServer(t, func(writer http.ResponseWriter, request *http.Request) {
			switch request.URL.Path {
			case "/v1/workspaces/" + testWorkspaceID + "/items":
				lakehouseItemsHandler(writer)
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
		defer server.Close()

		client := NewTestClient(server.URL)

		expression, err := client.lakehouses.SharedExpression(context.Background(), workspace, "MyLakehouse")
		require.NoError(t, err)

		expected := "let\n\tdatabase = Sql.Database(\"server.datawarehouse.fabric.microsoft.com\", \"endpoint-id\")\nin\n\tdatabase"
		assert.Equal(t, expected, expression)
	})

	t.Run("missing sql endpoint", func(t *testing.T) {
		t.Parallel()

		server := mdfServer(t, func(writer http.ResponseWriter, request *http.Request) {
			switch request.URL.Path {
			case "/v1/workspaces/" + testWorkspaceID + "/items":
				lakehouseItemsHandler(writer)
			default:
				_ = json.NewEncoder(writer).Encode(fabric.Lakehouse{
					Item: fabric.Item{ID: testLakehouseID, DisplayName: "MyLakehouse"},
				})
			}
		})
		defer server.Close()

		client := NewTestClient(server.URL)

		_, err := client.lakehouses.SharedExpression(context.Background(), workspace, "MyLakehouse")
		require.ErrorIs(t, err, fabric.ErrSQLEndpointUnavailable)
	})

	t.Run("endpoint still provisioning", func(t *testing.T) {
		t.Parallel()

		server := mdfServer(t, func(writer http.ResponseWriter, request *http.Request) {
			switch request.URL.Path {
			case "/v1/workspaces/" + testWorkspaceID + "/items":
				lakehouseItemsHandler(writer)
			default:
				_ = json.NewEncoder(writer).Encode(fabric.Lakehouse{
					Item: fabric.Item{ID: testLakehouseID, DisplayName: "MyLakehouse"},
					Properties: &fabric.LakehouseProperties{
						SQLEndpointProperties: &fabric.SQLEndpointProperties{
							ConnectionString:   "server",
							ID:                 "endpoint-id",
							ProvisioningStatus: "InProgress",
						},
					},
				})
			}
		})
		defer server.Close()

		client := NewTestClient(server.URL)

		_, err := client.lakehouses.SharedExpression(context.Background(), workspace, "MyLakehouse")
		require.ErrorIs(t, err, fabric.ErrSQLEndpointUnavailable)
		assert.Contains(t, err.Error(), "InProgress")
	})
}
