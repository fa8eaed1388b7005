package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fabworks-io/fabric-client/pkg/fabric"
)

func TestNormalizeItemType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"lakehouse", fabric.ItemTypeLakehouse},
		{"Lakehouse", fabric.ItemTypeLakehouse},
		{"mounteddatafactory", fabric.ItemTypeMountedDataFactory},
		{"MountedDataFactory", fabric.ItemTypeMountedDataFactory},
		{"kqlqueryset", fabric.ItemTypeKQLQueryset},
		{"semanticmodel", fabric.ItemTypeSemanticModel},
		{"report", fabric.ItemTypeReport},
		{"notebook", "Notebook"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, normalizeItemType(tt.input), "input %q", tt.input)
	}
}

func TestCreateClient_NoCredentials(t *testing.T) {
	_, err := CreateClient()
	assert.ErrorIs(t, err, ErrNoCredentials)
}
