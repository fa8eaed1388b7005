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

const (
	testWorkspaceID = "11111111-1111-1111-1111-111111111111"
	testLakehouseID = "22222222-2222-2222-2222-222222222222"
	testItemID      = "33333333-3333-3333-3333-333333333333"
	testModelID     = "44444444-4444-4444-4444-444444444444"
	testReportID    = "55555555-5555-5555-5555-555555555555"
)

func TestWorkspacesClient_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("by id never lists", func(t *testing.T) {
		t.Parallel()

		var paths []string

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			paths = append(paths, request.URL.Path)

			require.Equal(t, "/v1/workspaces/"+testWorkspaceID, request.URL.Path)
			_ = json.NewEncoder(writer).Encode(fabric.Workspace{ID: testWorkspaceID, DisplayName: "Sales"})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		ref, err := client.Workspaces().Resolve(context.Background(), testWorkspaceID)
		require.NoError(t, err)
		assert.Equal(t, "Sales", ref.Name)
		assert.Equal(t, testWorkspaceID, ref.ID)
		assert.Equal(t, []string{"/v1/workspaces/" + testWorkspaceID}, paths)
	})

	t.Run("by name lists and matches", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			require.Equal(t, "/v1/workspaces", request.URL.Path)

			_ = json.NewEncoder(writer).Encode(fabric.ListResponse[fabric.Workspace]{
				Value: []fabric.Workspace{
					{ID: "other-id", DisplayName: "Marketing"},
					{ID: testWorkspaceID, DisplayName: "Sales"},
				},
			})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		ref, err := client.Workspaces().Resolve(context.Background(), "Sales")
		require.NoError(t, err)
		assert.Equal(t, testWorkspaceID, ref.ID)
	})

	t.Run("by name not found", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode(fabric.ListResponse[fabric.Workspace]{})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		ref, err := client.Workspaces().Resolve(context.Background(), "Missing")
		require.Error(t, err)
		require.ErrorIs(t, err, fabric.ErrWorkspaceNotFound)
		assert.True(t, fabric.IsNotFound(err))
		assert.Nil(t, ref)
	})

	t.Run("by id not found", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(writer).Encode(fabric.APIError{ErrorCode: "WorkspaceNotFound", Message: "workspace does not exist"})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		_, err := client.Workspaces().Resolve(context.Background(), testWorkspaceID)
		require.ErrorIs(t, err, fabric.ErrWorkspaceNotFound)
	})

	t.Run("empty input uses ambient workspace", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			require.Equal(t, "/v1/workspaces/"+testWorkspaceID, request.URL.Path)
			_ = json.NewEncoder(writer).Encode(fabric.Workspace{ID: testWorkspaceID, DisplayName: "Sales"})
		}))
		defer server.Close()

		client := NewTestClient(server.URL, WithTestAmbient(&fabric.StaticAmbient{WorkspaceID: testWorkspaceID}))

		ref, err := client.Workspaces().Resolve(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, "Sales", ref.Name)
	})

	t.Run("empty input without ambient fails", func(t *testing.T) {
		t.Parallel()

		client := NewTestClient("http://unused.invalid")

		_, err := client.Workspaces().Resolve(context.Background(), "")
		require.ErrorIs(t, err, fabric.ErrNoAmbientWorkspace)
	})
}

func TestWorkspacesClient_ListAll_Pagination(t *testing.T) {
	t.Parallel()

	token := "page-2"

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		require.Equal(t, "/v1/workspaces", request.URL.Path)

		if request.URL.Query().Get("continuationToken") == "" {
			_ = json.NewEncoder(writer).Encode(fabric.ListResponse[fabric.Workspace]{
				Value:             []fabric.Workspace{{ID: "a", DisplayName: "A"}, {ID: "b", DisplayName: "B"}},
				ContinuationToken: &token,
			})

			return
		}

		_ = json.NewEncoder(writer).Encode(fabric.ListResponse[fabric.Workspace]{
			Value: []fabric.Workspace{{ID: "c", DisplayName: "C"}},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	workspaces, err := client.Workspaces().ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, workspaces, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{workspaces[0].DisplayName, workspaces[1].DisplayName, workspaces[2].DisplayName})
}
