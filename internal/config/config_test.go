package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chtmp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	chtmp(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
	assert.False(t, Exists())
}

func TestSaveAndLoad(t *testing.T) {
	chtmp(t)

	saved := &Config{
		InputPath:  "results.json",
		OutputPath: "results.conf",
	}
	require.NoError(t, Save(saved))
	assert.True(t, Exists())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestLoad_InvalidJSON(t *testing.T) {
	chtmp(t)

	require.NoError(t, os.MkdirAll(".confmark", 0755))
	require.NoError(t, os.WriteFile(Path(), []byte("{not json"), 0644))

	_, err := Load()
	assert.Error(t, err)
}
