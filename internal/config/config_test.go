package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/eugenenazirov/dotenv/internal/provider"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DOTENV_FILE", "DOTENV_FAIL_ON_MISSING", "DOTENV_FAIL_ON_INVALID", "DOTENV_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dotenv.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.EnvFile != provider.DefaultPath {
		t.Fatalf("expected default env file %s, got %s", provider.DefaultPath, cfg.EnvFile)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("expected default log level, got %s", cfg.LogLevel)
	}
	if cfg.LoadSettings() != provider.None {
		t.Fatalf("expected lenient defaults, got %s", cfg.LoadSettings())
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	path := writeYAML(t, "env_file: from-yaml.env\nfail_on_missing_file: true\nfail_on_invalid_file: true\nlog_level: debug\n")
	t.Setenv("DOTENV_FILE", "from-env.env")
	t.Setenv("DOTENV_FAIL_ON_INVALID", "false")

	cfg, err := Load(&CLIOverrides{ConfigFile: path})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.EnvFile != "from-env.env" {
		t.Fatalf("expected env to override YAML, got %s", cfg.EnvFile)
	}
	if !cfg.FailOnMissingFile || cfg.FailOnInvalidFile {
		t.Fatalf("unexpected fail flags: %+v", cfg)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected YAML log level, got %s", cfg.LogLevel)
	}

	file := "from-flag.env"
	strict := true
	cfg, err = Load(&CLIOverrides{ConfigFile: path, EnvFile: &file, FailOnInvalidFile: &strict})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.EnvFile != file {
		t.Fatalf("expected flag to override env, got %s", cfg.EnvFile)
	}
	if want := provider.FailOnMissingFile | provider.FailOnInvalidFile; cfg.LoadSettings() != want {
		t.Fatalf("expected %s, got %s", want, cfg.LoadSettings())
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing YAML file", func(t *testing.T) {
		clearEnv(t)
		if _, err := Load(&CLIOverrides{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml")}); err == nil {
			t.Fatalf("expected error for missing config file")
		}
	})

	t.Run("malformed YAML", func(t *testing.T) {
		clearEnv(t)
		if _, err := Load(&CLIOverrides{ConfigFile: writeYAML(t, "env_file: [unterminated")}); err == nil {
			t.Fatalf("expected error for malformed YAML")
		}
	})

	t.Run("invalid boolean", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DOTENV_FAIL_ON_MISSING", "sometimes")
		if _, err := Load(nil); err == nil {
			t.Fatalf("expected error for invalid boolean")
		}
	})

	t.Run("invalid log level", func(t *testing.T) {
		clearEnv(t)
		level := "loud"
		if _, err := Load(&CLIOverrides{LogLevel: &level}); err == nil {
			t.Fatalf("expected error for invalid log level")
		}
	})
}
