package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SAVETREE_LOG_DIR", " /tmp/logs ")
	t.Setenv("SAVETREE_DEBUG", "true")
	t.Setenv("SAVETREE_TOGGLES", "/etc/savetree/config.yaml")

	cfg := Load()
	require.Equal(t, "/tmp/logs", cfg.LogDir)
	require.True(t, cfg.Debug)
	require.Equal(t, "/etc/savetree/config.yaml", cfg.TogglesPath)
}

func TestLoadBadBoolFallsBack(t *testing.T) {
	t.Setenv("SAVETREE_DEBUG", "maybe")
	require.False(t, Load().Debug)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("SAVETREE_TOGGLES=from-dotenv.yaml\n"), 0o644))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// godotenv never overrides variables that are already set
	t.Setenv("SAVETREE_TOGGLES", "")
	os.Unsetenv("SAVETREE_TOGGLES")

	require.Equal(t, "from-dotenv.yaml", Load().TogglesPath)
}
