package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabworks-io/fabric-client/internal/constants"
	"github.com/fabworks-io/fabric-client/pkg/fabric"
)

func TestKQLQuerysetsClient_ListRows(t *testing.T) {
	t.Parallel()

	server := mdfServer(t, func(writer http.ResponseWriter, request *http.Request) {
		require.Equal(t, "/v1/workspaces/"+testWorkspaceID+"/kqlQuerysets", request.URL.Path)

		_ = json.NewEncoder(writer).Encode(fabric.ListResponse[fabric.Item]{
			Value: []fabric.Item{
				{ID: "q1", DisplayName: "Queries", Description: "ad hoc"},
			},
		})
	})
	defer server.Close()

	client := NewTestClient(server.URL)

	table, err := client.kqlQuerysets.ListRows(context.Background(), "Sales")
	require.NoError(t, err)

	assert.Equal(t, []string{"KQL Queryset Name", "KQL Queryset Id", "Description"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Queries", table.Rows[0]["KQL Queryset Name"])
}

func TestKQLQuerysetsClient_Create(t *testing.T) {
	t.Parallel()

	t.Run("created directly", func(t *testing.T) {
		t.Parallel()

		server := mdfServer(t, func(writer http.ResponseWriter, request *http.Request) {
			require.Equal(t, http.MethodPost, request.Method)
			require.Equal(t, "/v1/workspaces/"+testWorkspaceID+"/kqlQuerysets", request.URL.Path)

			body, err := io.ReadAll(request.Body)
			require.NoError(t, err)

			var payload map[string]string
			require.NoError(t, json.Unmarshal(body, &payload))
			assert.Equal(t, "Queries", payload["displayName"])
			assert.Equal(t, "ad hoc", payload["description"])

			writer.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(writer).Encode(fabric.Item{ID: "q1", DisplayName: "Queries", Type: fabric.ItemTypeKQLQueryset})
		})
		defer server.Close()

		client := NewTestClient(server.URL)

		item, err := client.kqlQuerysets.Create(context.Background(), "Queries", "ad hoc", "Sales")
		require.NoError(t, err)
		assert.Equal(t, "q1", item.ID)
	})

	t.Run("created via long-running operation", func(t *testing.T) {
		t.Parallel()

		server := mdfServer(t, func(writer http.ResponseWriter, request *http.Request) {
			switch request.URL.Path {
			case "/v1/workspaces/" + testWorkspaceID + "/kqlQuerysets":
				writer.Header().Set(constants.LocationHeader, "https://example.test/v1/operations/op-create")
				writer.WriteHeader(http.StatusAccepted)
			case "/v1/operations/op-create":
				_ = json.NewEncoder(writer).Encode(fabric.Operation{ID: "op-create", Status: fabric.OperationSucceeded})
			case "/v1/operations/op-create/result":
				_ = json.NewEncoder(writer).Encode(fabric.Item{ID: "q2", DisplayName: "Queries", Type: fabric.ItemTypeKQLQueryset})
			default:
				t.Errorf("unexpected request: %s", request.URL.Path)
			}
		})
		defer server.Close()

		client := NewTestClient(server.URL)
		client.operations.pollInterval = 10 * time.Millisecond

		item, err := client.kqlQuerysets.Create(context.Background(), "Queries", "", "Sales")
		require.NoError(t, err)
		assert.Equal(t, "q2", item.ID)
	})
}

func TestKQLQuerysetsClient_Delete(t *testing.T) {
	t.Parallel()

	var deletes int

	server := mdfServer(t, func(writer http.ResponseWriter, request *http.Request) {
		switch {
		case request.URL.Path == "/v1/workspaces/"+testWorkspaceID+"/items":
			require.Equal(t, fabric.ItemTypeKQLQueryset, request.URL.Query().Get("type"))

			_ = json.NewEncoder(writer).Encode(fabric.ListResponse[fabric.Item]{
				Value: []fabric.Item{{ID: "q1", DisplayName: "Queries"}},
			})
		case request.Method == http.MethodDelete:
			require.Equal(t, "/v1/workspaces/"+testWorkspaceID+"/kqlQuerysets/q1", request.URL.Path)

			deletes++

			writer.WriteHeader(http.StatusOK)
		default:
			t.Errorf("unexpected request: %s %s", request.Method, request.URL.Path)
		}
	})
	defer server.Close()

	client := NewTestClient(server.URL)

	ref, err := client.kqlQuerysets.Delete(context.Background(), "Queries", "Sales")
	require.NoError(t, err)
	assert.Equal(t, 1, deletes)
	assert.Equal(t, "q1", ref.ID)
}
