package config

import (
	"path/filepath"
	"testing"

	"actlog/internal/app"
	"actlog/internal/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvDir, "")
	t.Setenv(EnvBackend, "")
	t.Setenv(EnvVariant, "")
	t.Setenv(EnvDebug, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultDir(), cfg.Dir)
	assert.Equal(t, kv.BackendJSON, cfg.Backend)
	assert.Equal(t, app.VariantActivities, cfg.Variant)
	assert.False(t, cfg.Debug)
}

func TestLoad_FromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDir, dir)
	t.Setenv(EnvBackend, "sqlite")
	t.Setenv(EnvVariant, "tasks")
	t.Setenv(EnvDebug, "1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, kv.BackendSQLite, cfg.Backend)
	assert.Equal(t, app.VariantTasks, cfg.Variant)
	assert.True(t, cfg.Debug)
	assert.Equal(t, filepath.Join(dir, "debug.log"), cfg.DebugLogPath())

	a, err := cfg.Open()
	require.NoError(t, err)
	defer a.Close()
	assert.Equal(t, app.VariantTasks, a.Variant)
}

func TestLoad_RejectsUnknown(t *testing.T) {
	t.Setenv(EnvBackend, "etcd")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv(EnvBackend, "")
	t.Setenv(EnvVariant, "notes")
	_, err = Load()
	assert.Error(t, err)
}

func TestResolve_BlankDirUsesDefault(t *testing.T) {
	cfg, err := Resolve("  ", "memory", "tasks", false)
	require.NoError(t, err)
	assert.Equal(t, DefaultDir(), cfg.Dir)
	assert.Equal(t, kv.BackendMemory, cfg.Backend)
	assert.Equal(t, app.VariantTasks, cfg.Variant)
}
