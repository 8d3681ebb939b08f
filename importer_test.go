package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsImportFile(t *testing.T) {
	assert.True(t, isImportFile("batch.json"))
	assert.True(t, isImportFile("BATCH.JSON"))
	assert.False(t, isImportFile("batch.json.done"))
	assert.False(t, isImportFile("batch.json.bad"))
	assert.False(t, isImportFile("receipt.png"))
}

func TestMarkImported(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "batch.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0644))
	markImported(path, ".done")
	_, err := os.Stat(path + ".done")
	assert.NoError(t, err)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
