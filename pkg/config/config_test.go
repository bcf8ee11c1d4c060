package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyhub-apps/pdfstructure/pkg/classify"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/app/input", cfg.Input.Dir)
	assert.Equal(t, "/app/output", cfg.Output.Dir)
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.Equal(t, classify.DefaultConfig(), cfg.ClassifierConfig())
	assert.Equal(t, LayoutConfig{YTolerance: 3, WordGapRatio: 0.3, ColumnGap: 12, BlockGapRatio: 0.7}, cfg.Layout)
	assert.Equal(t, LogConfig{Level: "info", Format: "text", MaxSizeMB: 10, MaxBackups: 3, MaxAgeDays: 28}, cfg.Log)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "pdfstructure.yaml", `
input:
  dir: ./in
batch:
  workers: 2
classifier:
  title_font_size: 20
log:
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "./in", cfg.Input.Dir)
	assert.Equal(t, "/app/output", cfg.Output.Dir)
	assert.Equal(t, 2, cfg.Batch.Workers)
	assert.Equal(t, 20.0, cfg.Classifier.TitleFontSize)
	assert.Equal(t, 14.0, cfg.Classifier.HeadingFontSize)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Batch.Workers)
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeFile(t, "broken.yaml", "batch: [workers\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("PDFSTRUCTURE_BATCH_WORKERS", "8")
	t.Setenv("PDFSTRUCTURE_OUTPUT_DIR", "/tmp/out")
	t.Setenv("PDFSTRUCTURE_LAYOUT_COLUMN_GAP", "20")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Batch.Workers)
	assert.Equal(t, "/tmp/out", cfg.Output.Dir)
	assert.Equal(t, 20.0, cfg.Layout.ColumnGap)
}

func TestLoadDotEnv(t *testing.T) {
	const key = "PDFSTRUCTURE_DOTENV_PROBE"
	t.Cleanup(func() { os.Unsetenv(key) })

	path := writeFile(t, ".env", key+"=from-dotenv\n")
	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "from-dotenv", os.Getenv(key))

	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"zero workers", func(c *Config) { c.Batch.Workers = 0 }, "batch.workers"},
		{"empty input", func(c *Config) { c.Input.Dir = "" }, "input.dir"},
		{"empty output", func(c *Config) { c.Output.Dir = "" }, "output.dir"},
		{"thresholds out of order", func(c *Config) { c.Classifier.HeadingFontSize = 18 }, "title >= heading"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "not a valid logrus Level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLayoutOptions(t *testing.T) {
	assert.Len(t, Default().LayoutOptions(), 4)
}
