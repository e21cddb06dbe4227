package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "data/*.csv", cfg.Input.Pattern)
	assert.Equal(t, 10, cfg.Analysis.MomentumWindow)
	assert.Equal(t, 10, cfg.Analysis.ZoneCount)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.NotEmpty(t, cfg.Watch.Cron)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
input:
  pattern: "quotes/*.txt"
analysis:
  momentum_window: 20
  zone_count: 5
output:
  format: json
watch:
  cron: "0 0 * * * *"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "quotes/*.txt", cfg.Input.Pattern)
	assert.Equal(t, 20, cfg.Analysis.MomentumWindow)
	assert.Equal(t, 5, cfg.Analysis.ZoneCount)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "0 0 * * * *", cfg.Watch.Cron)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ANALYSER_PATTERN", "env/*.csv")
	t.Setenv("ANALYSER_WINDOW", "7")
	t.Setenv("ANALYSER_FORMAT", "json")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "env/*.csv", cfg.Input.Pattern)
	assert.Equal(t, 7, cfg.Analysis.MomentumWindow)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: [unbalanced"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	cfg.Analysis.MomentumWindow = -1
	assert.Error(t, cfg.Validate())

	cfg.Analysis.MomentumWindow = 10
	cfg.Output.Format = "xml"
	assert.Error(t, cfg.Validate())
}
