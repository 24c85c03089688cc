package embedded

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tables, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "1231-0105 東京", tables.Trip.Name)
	assert.Len(t, tables.Trip.Days, 6)

	assert.Len(t, tables.Overrides, 21)
	assert.Len(t, tables.Gmail, 3)
	assert.Len(t, tables.Inventory.Folders, 13)
	assert.Len(t, tables.Inventory.ManualFolders, 6)
	assert.NotEmpty(t, tables.Aliases)
	assert.NotEmpty(t, tables.Descriptions.Entries)
}

func TestDatasetKeysJoin(t *testing.T) {
	tables, err := Load()
	require.NoError(t, err)

	// Every gmail reservation key must also appear among the override
	// keys; the mail jump always annotates a curated attachment row.
	overrideKeys := make(map[string]bool)
	for _, row := range tables.Overrides {
		overrideKeys[row.Key()] = true
	}
	for _, row := range tables.Gmail {
		assert.True(t, overrideKeys[row.Key()], "gmail row %q has no override row", row.Title)
	}

	// Every manual folder mapping must point at a real folder.
	for key, folder := range tables.Inventory.ManualFolders {
		_, ok := tables.Inventory.Folders[folder]
		assert.True(t, ok, "manual mapping %q points at unknown folder %q", key, folder)
	}
}
