package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	require.NotNil(t, config)

	assert.Equal(t, "text", config.Output.Format)
	assert.Equal(t, 1e-6, config.Numeric.Epsilon)
	assert.Equal(t, 0, config.Batch.Workers)
	assert.Equal(t, "INFO", config.Log.Level)
	assert.NoError(t, config.Validate())
}

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfig_YAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "worldmath.yaml")
	data := []byte("output:\n  format: cbor\nnumeric:\n  epsilon: 0.001\nbatch:\n  workers: 4\n")
	require.NoError(t, os.WriteFile(configPath, data, 0o644))

	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "cbor", config.Output.Format)
	assert.Equal(t, 0.001, config.Numeric.Epsilon)
	assert.Equal(t, 4, config.Batch.Workers)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, "INFO", config.Log.Level)
}

func TestLoadConfig_JSON(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "worldmath.json")
	data := []byte(`{"output": {"format": "yaml"}, "log": {"level": "debug"}}`)
	require.NoError(t, os.WriteFile(configPath, data, 0o644))

	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "yaml", config.Output.Format)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, 1e-6, config.Numeric.Epsilon)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("WORLDMATH_OUTPUT_FORMAT", "json")
	t.Setenv("WORLDMATH_NUMERIC_EPSILON", "1e-9")
	t.Setenv("WORLDMATH_BATCH_WORKERS", "8")
	t.Setenv("WORLDMATH_LOG_LEVEL", "WARN")

	configPath := filepath.Join(t.TempDir(), "worldmath.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("output:\n  format: cbor\n"), 0o644))

	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "json", config.Output.Format, "environment beats file")
	assert.Equal(t, 1e-9, config.Numeric.Epsilon)
	assert.Equal(t, 8, config.Batch.Workers)
	assert.Equal(t, "WARN", config.Log.Level)
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid_config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"output": {"format": "json"}, invalid json}`), 0o644))

	config, err := LoadConfig(configPath)
	require.Error(t, err)
	assert.Nil(t, config)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "worldmath.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("batch:\n  workers: -2\n"), 0o644))

	config, err := LoadConfig(configPath)
	require.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "batch.workers")
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	original := DefaultConfig()
	original.Output.Format = "cbor"
	original.Numeric.Epsilon = 0.25
	original.Batch.Workers = 3
	original.Log.Level = "ERROR"

	for _, name := range []string{"saved.json", "saved.yaml", "saved.yml"} {
		t.Run(name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), name)
			require.NoError(t, SaveConfig(original, configPath))

			loaded, err := LoadConfig(configPath)
			require.NoError(t, err)
			assert.Equal(t, original, loaded)
		})
	}
}

func TestSaveConfig_Errors(t *testing.T) {
	assert.Error(t, SaveConfig(nil, filepath.Join(t.TempDir(), "nil.json")))

	err := SaveConfig(DefaultConfig(), filepath.Join(t.TempDir(), "missing", "dir", "config.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"yml alias", func(c *Config) { c.Output.Format = "yml" }, false},
		{"unknown format", func(c *Config) { c.Output.Format = "xml" }, true},
		{"zero epsilon", func(c *Config) { c.Numeric.Epsilon = 0 }, true},
		{"negative epsilon", func(c *Config) { c.Numeric.Epsilon = -1e-6 }, true},
		{"negative workers", func(c *Config) { c.Batch.Workers = -1 }, true},
		{"lowercase level", func(c *Config) { c.Log.Level = "warn" }, false},
		{"unknown level", func(c *Config) { c.Log.Level = "TRACE" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(config)
			err := config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
