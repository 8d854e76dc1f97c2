package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	store, err := NewConfigStore(dir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
	_, statErr := os.Stat(dir)
	assert.NoError(t, statErr)
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("history.keep", 25))
	require.NoError(t, store.Set("check.external", []string{"java.", "javax."}))
	require.NoError(t, store.Set("output.color", true))

	assert.Equal(t, 25, store.GetInt("history.keep"))
	assert.Equal(t, []string{"java.", "javax."}, store.GetStringSlice("check.external"))
	assert.True(t, store.GetBool("output.color"))
}

func TestConfigStore_Get_MissingKey(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("nope")
	assert.False(t, ok)
	assert.Equal(t, "", store.GetString("nope"))
	assert.Equal(t, 0, store.GetInt("nope"))
	assert.False(t, store.GetBool("nope"))
	assert.Nil(t, store.GetStringSlice("nope"))
}

func TestConfigStore_PersistsAcrossLoads(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("layers.domain", []string{"entities", "model"}))
	require.NoError(t, store.Set("history.keep", 10))

	// A fresh store reads the same file.
	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"entities", "model"}, reopened.GetStringSlice("layers.domain"))
	assert.Equal(t, 10, reopened.GetInt("history.keep"))
}

func TestConfigStore_LoadsNestedTOML(t *testing.T) {
	dir := t.TempDir()
	content := `[check]
external = ["org.springframework."]
exclude = ["testdata"]

[history]
keep = 5
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"org.springframework."}, store.GetStringSlice("check.external"))
	assert.Equal(t, []string{"testdata"}, store.GetStringSlice("check.exclude"))
	assert.Equal(t, 5, store.GetInt("history.keep"))
}

func TestConfigStore_Keys(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("history.keep", 5))
	require.NoError(t, store.Set("check.exclude", []string{"vendor"}))

	assert.Equal(t, []string{"check.exclude", "history.keep"}, store.Keys())
}

func TestConfigStore_WritesNestedTables(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("check.external", []string{"java."}))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[check]")
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("history.keep", 1))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
