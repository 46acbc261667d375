package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docshift-labs/docshift/internal/cli/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultPagesDir, cfg.PagesDir)
	assert.Equal(t, config.DefaultInclude, cfg.Include)
	assert.Equal(t, config.DefaultOutput, cfg.OutputFormat)
	assert.Empty(t, cfg.OutDir)
	assert.False(t, cfg.Verify)
	assert.Greater(t, cfg.Workers, 0)
	assert.Empty(t, config.GetConfigFileUsed())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docshift.yaml")
	content := `pages_dir: website/pages
out_dir: migrated
include:
  - "*.js"
workers: 3
verify: true
fail_fast: true
output: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "website/pages", cfg.PagesDir)
	assert.Equal(t, "migrated", cfg.OutDir)
	assert.Equal(t, []string{"*.js"}, cfg.Include)
	assert.Equal(t, 3, cfg.Workers)
	assert.True(t, cfg.Verify)
	assert.True(t, cfg.FailFast)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, path, config.GetConfigFileUsed())
}

func TestLoadExplicitFileMissing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docshift.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pages_dir: from-file\nworkers: 2\n"), 0o644))

	t.Setenv("DOCSHIFT_PAGES_DIR", "from-env")

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.PagesDir)
	assert.Equal(t, 2, cfg.Workers)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Setenv("DOCSHIFT_PAGES_DIR", "from-env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("pages-dir", "", "")
	flags.Bool("fail-fast", false, "")
	require.NoError(t, flags.Set("pages-dir", "from-flag"))
	require.NoError(t, flags.Set("fail-fast", "true"))

	cfg, err := config.Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.PagesDir)
	assert.True(t, cfg.FailFast)
}

func TestLoadUnsetFlagsDoNotOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docshift.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pages_dir: from-file\n"), 0o644))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("pages-dir", "", "")

	cfg, err := config.Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.PagesDir)
}

func TestLoadZeroWorkersFallsBackToCPUs(t *testing.T) {
	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Greater(t, cfg.Workers, 0)
}
