package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/dotenv/internal/provider"
)

const (
	defaultLogLevel = "warn"
)

// Config aggregates runtime configuration resolved from multiple sources.
type Config struct {
	EnvFile           string `yaml:"env_file"`
	FailOnMissingFile bool   `yaml:"fail_on_missing_file"`
	FailOnInvalidFile bool   `yaml:"fail_on_invalid_file"`
	LogLevel          string `yaml:"log_level"`
}

// yamlConfig represents the YAML configuration file structure. Pointers
// distinguish "false" from "not present".
type yamlConfig struct {
	EnvFile           string `yaml:"env_file"`
	FailOnMissingFile *bool  `yaml:"fail_on_missing_file"`
	FailOnInvalidFile *bool  `yaml:"fail_on_invalid_file"`
	LogLevel          string `yaml:"log_level"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile        string
	EnvFile           *string
	FailOnMissingFile *bool
	FailOnInvalidFile *bool
	LogLevel          *string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > Environment variables > YAML config > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	if err := applyEnvConfig(&cfg); err != nil {
		return Config{}, err
	}

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadSettings converts the fail flags into provider load settings.
func (c Config) LoadSettings() provider.LoadSettings {
	settings := provider.None
	if c.FailOnMissingFile {
		settings |= provider.FailOnMissingFile
	}
	if c.FailOnInvalidFile {
		settings |= provider.FailOnInvalidFile
	}
	return settings
}

func defaultConfig() Config {
	return Config{
		EnvFile:  provider.DefaultPath,
		LogLevel: defaultLogLevel,
	}
}

func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.EnvFile != "" {
		cfg.EnvFile = yamlCfg.EnvFile
	}
	if yamlCfg.FailOnMissingFile != nil {
		cfg.FailOnMissingFile = *yamlCfg.FailOnMissingFile
	}
	if yamlCfg.FailOnInvalidFile != nil {
		cfg.FailOnInvalidFile = *yamlCfg.FailOnInvalidFile
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
}

func applyEnvConfig(cfg *Config) error {
	if file := strings.TrimSpace(os.Getenv("DOTENV_FILE")); file != "" {
		cfg.EnvFile = file
	}

	if raw := strings.TrimSpace(os.Getenv("DOTENV_FAIL_ON_MISSING")); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("parse DOTENV_FAIL_ON_MISSING: %w", err)
		}
		cfg.FailOnMissingFile = value
	}

	if raw := strings.TrimSpace(os.Getenv("DOTENV_FAIL_ON_INVALID")); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("parse DOTENV_FAIL_ON_INVALID: %w", err)
		}
		cfg.FailOnInvalidFile = value
	}

	if level := strings.TrimSpace(os.Getenv("DOTENV_LOG_LEVEL")); level != "" {
		cfg.LogLevel = level
	}

	return nil
}

func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.EnvFile != nil && *overrides.EnvFile != "" {
		cfg.EnvFile = *overrides.EnvFile
	}
	if overrides.FailOnMissingFile != nil {
		cfg.FailOnMissingFile = *overrides.FailOnMissingFile
	}
	if overrides.FailOnInvalidFile != nil {
		cfg.FailOnInvalidFile = *overrides.FailOnInvalidFile
	}
	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}
}

func validateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.EnvFile) == "" {
		return fmt.Errorf("env file path cannot be empty")
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	return nil
}
