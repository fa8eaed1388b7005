package fabclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabworks-io/fabric-client/pkg/fabric"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := New(nil)
		require.ErrorIs(t, err, fabric.ErrConfigRequired)
	})

	t.Run("defaults the endpoints", func(t *testing.T) {
		t.Parallel()

		config := &fabric.Config{AccessToken: "token"}

		client, err := New(config)
		require.NoError(t, err)
		require.NotNil(t, client)

		assert.Equal(t, "https://api.fabric.microsoft.com", config.APIEndpoint)
		assert.Equal(t, "https://api.powerbi.com", config.PowerBIEndpoint)
	})

	t.Run("normalizes the endpoint", func(t *testing.T) {
		t.Parallel()

		config := &fabric.Config{
			APIEndpoint: "api.example.com/",
			AccessToken: "token",
		}

		_, err := New(config)
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com", config.APIEndpoint)
	})

	t.Run("keeps an explicit http scheme", func(t *testing.T) {
		t.Parallel()

		config := &fabric.Config{
			APIEndpoint: "http://localhost:8080",
			AccessToken: "token",
		}

		_, err := New(config)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", config.APIEndpoint)
	})
}

func TestNormalizeEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"api.fabric.microsoft.com", "https://api.fabric.microsoft.com"},
		{"https://api.fabric.microsoft.com/", "https://api.fabric.microsoft.com"},
		{"http://localhost:8080/", "http://localhost:8080"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, normalizeEndpoint(tt.input))
	}
}
