package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test,
// standing in for testing.T.Chdir which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func TestInitializeConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, "eng+vie", cfg.OCR.Language)
	assert.Equal(t, 6, cfg.OCR.PageSegMode)
	assert.Equal(t, 300, cfg.OCR.DPI)
	assert.True(t, cfg.OCR.Preprocess)
	assert.Equal(t, 4, cfg.Processing.Workers)
	assert.True(t, cfg.Categorization.Enabled)
	assert.Equal(t, "categories.yaml", cfg.Categorization.CategoriesFile)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SNAP_LOG_LEVEL", "debug")
	t.Setenv("SNAP_PROCESSING_WORKERS", "8")
	t.Setenv("SNAP_OCR_LANGUAGE", "eng")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 8, cfg.Processing.Workers)
	assert.Equal(t, "eng", cfg.OCR.Language)
}

func TestInitializeConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad log level", "SNAP_LOG_LEVEL", "loud"},
		{"bad log format", "SNAP_LOG_FORMAT", "xml"},
		{"multi-char delimiter", "SNAP_CSV_DELIMITER", ";;"},
		{"page seg mode out of range", "SNAP_OCR_PAGE_SEG_MODE", "99"},
		{"zero workers", "SNAP_PROCESSING_WORKERS", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv(tt.key, tt.value)

			_, err := InitializeConfig()
			assert.Error(t, err)
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SNAP_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("SNAP_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("SNAP_TEST_MISSING", "fallback"))
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, "debug", logger.GetLevel().String())
}
