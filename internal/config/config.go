// Package config handles loading and validation of application configuration.
// The configuration file is optional; without one the defaults apply.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFileName is looked up in the report directory when no path is given.
	DefaultFileName = "workreport.yml"
	// DefaultLogLevel keeps diagnostic output quiet unless something goes wrong.
	DefaultLogLevel = "warn"
	// DefaultKeepDays is the retention period used when none is configured.
	DefaultKeepDays = 30
)

// ErrInvalidConfig is returned when a configuration file fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

//go:embed config.template.yml
var configTemplate string

// RetentionConfig controls removal of archived reports from the report directory.
type RetentionConfig struct {
	Enabled  bool `yaml:"enabled"`
	KeepDays int  `yaml:"keep_days" validate:"gte=1"`
}

// Config represents the complete application configuration.
type Config struct {
	LogLevel  string          `yaml:"log_level" validate:"oneof=debug info warn error"`
	Retention RetentionConfig `yaml:"retention"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Retention: RetentionConfig{
			Enabled:  false,
			KeepDays: DefaultKeepDays,
		},
	}
}

// GetTemplate returns the commented YAML configuration template.
func GetTemplate() string {
	return configTemplate
}

// Load reads the configuration for a report directory. When configFile is
// empty, DefaultFileName inside baseDir is used if it exists and the defaults
// otherwise. An explicitly named file must exist.
func Load(configFile, baseDir string) (*Config, error) {
	if configFile == "" {
		candidate := filepath.Join(baseDir, DefaultFileName)
		if _, err := os.Stat(candidate); err != nil {
			if os.IsNotExist(err) {
				slog.Debug("no configuration file, using defaults", "path", candidate)
				return Default(), nil
			}
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
		configFile = candidate
	}

	return LoadConfig(configFile)
}

// LoadConfig reads and validates configuration from the specified YAML file.
// Missing keys keep their default values.
func LoadConfig(configFile string) (*Config, error) {
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configFile)
	}

	// #nosec G304 -- configFile is provided by the user via the --config flag
	// or is the fixed file name inside the report directory.
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	config.LogLevel = strings.ToLower(strings.TrimSpace(config.LogLevel))
	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevel
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	slog.Info("loaded configuration", "file", configFile)
	return config, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.StructNamespace() {
	case "Config.LogLevel":
		return fmt.Sprintf("log_level must be one of debug, info, warn, error (got %q)", fe.Value())
	case "Config.Retention.KeepDays":
		return fmt.Sprintf("retention.keep_days must be at least 1 (got %v)", fe.Value())
	}
	return fmt.Sprintf("%s failed %q validation", fe.Namespace(), fe.Tag())
}
