package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeTempFile(t, "run.yaml", `
output: json
workers: 4
verbose: true
metrics_file: /tmp/uptime.prom
log:
  level: debug
  format: json
`)
	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "/tmp/uptime.prom", cfg.MetricsFile)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, LogFormatJSON, cfg.Log.Format)
}

func TestLoad_JSON(t *testing.T) {
	path := writeTempFile(t, "run.json", `{"output": "yaml", "log": {"level": "info"}}`)
	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, OutputYAML, cfg.Output)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := writeTempFile(t, "run.yml", "workers: 2\n")
	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"unsupported extension", "run.toml", "output = 'text'"},
		{"invalid yaml", "run.yaml", "output: [unclosed"},
		{"invalid output", "run.yaml", "output: xml"},
		{"invalid workers", "run.yaml", "workers: 0"},
		{"invalid log level", "run.yaml", "log:\n  level: loud"},
		{"invalid log format", "run.yaml", "log:\n  format: logfmt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, tt.file, tt.content)
			_, err := Load(context.Background(), path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(context.Background(), "/nonexistent/run.yaml")
	assert.Error(t, err)
}

func TestDefaultConfig_IsValid(t *testing.T) {
	assert.NoError(t, Validate(DefaultConfig()))
}
