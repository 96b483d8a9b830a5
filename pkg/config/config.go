// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-worldmath/pkg/codec"
	"github.com/opd-ai/go-worldmath/pkg/mathd"
)

// EnvPrefix is prepended to every environment override, for example
// WORLDMATH_BATCH_WORKERS for batch.workers.
const EnvPrefix = "WORLDMATH"

// Config contains configuration for the worldmath tools
type Config struct {
	Output  OutputConfig  `json:"output" yaml:"output" mapstructure:"output"`
	Numeric NumericConfig `json:"numeric" yaml:"numeric" mapstructure:"numeric"`
	Batch   BatchConfig   `json:"batch" yaml:"batch" mapstructure:"batch"`
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
}

// OutputConfig controls how vectors are written
type OutputConfig struct {
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// NumericConfig contains tolerance settings for comparisons
type NumericConfig struct {
	Epsilon float64 `json:"epsilon" yaml:"epsilon" mapstructure:"epsilon"`
}

// BatchConfig controls parallel transforms. Zero workers means one per CPU.
type BatchConfig struct {
	Workers int `json:"workers" yaml:"workers" mapstructure:"workers"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level string `json:"level" yaml:"level" mapstructure:"level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Output:  OutputConfig{Format: string(codec.FormatText)},
		Numeric: NumericConfig{Epsilon: mathd.ZeroTolerance},
		Batch:   BatchConfig{Workers: 0},
		Log:     LogConfig{Level: "INFO"},
	}
}

// LoadConfig loads a configuration from a YAML or JSON file, chosen by
// extension, and applies WORLDMATH_* environment overrides. An empty path
// yields the defaults with environment overrides applied.
func LoadConfig(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

func newViper() *viper.Viper {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("numeric.epsilon", defaults.Numeric.Epsilon)
	v.SetDefault("batch.workers", defaults.Batch.Workers)
	v.SetDefault("log.level", defaults.Log.Level)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// SaveConfig saves a configuration to a file. Files ending in .yaml or .yml
// are written as YAML, everything else as JSON.
func SaveConfig(config *Config, path string) error {
	if config == nil {
		return errors.New("config is nil")
	}

	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(config)
	default:
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the configuration values for consistency
func (c *Config) Validate() error {
	if _, err := codec.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if !(c.Numeric.Epsilon > 0) {
		return fmt.Errorf("numeric.epsilon must be positive, got %v", c.Numeric.Epsilon)
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("batch.workers must not be negative, got %d", c.Batch.Workers)
	}
	switch strings.ToUpper(c.Log.Level) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		return fmt.Errorf("log.level %q is not one of DEBUG, INFO, WARN, ERROR", c.Log.Level)
	}
	return nil
}
