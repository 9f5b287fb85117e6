package environment

import (
	"fmt"
	"os"

	"github.com/eugenenazirov/dotenv/internal/setting"
)

// Environment provides get/set access to variables by key.
type Environment interface {
	Lookup(key string) (string, bool)
	Set(key, value string) error
	Unset(key string) error
}

type processEnvironment struct{}

// Process returns the environment of the current process. Only process scope
// is read or written.
func Process() Environment {
	return processEnvironment{}
}

func (processEnvironment) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (processEnvironment) Set(key, value string) error {
	if err := os.Setenv(key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (processEnvironment) Unset(key string) error {
	if err := os.Unsetenv(key); err != nil {
		return fmt.Errorf("unset %s: %w", key, err)
	}
	return nil
}

// Capture reads the current value of key as a Setting.
func Capture(env Environment, key string) (setting.Setting, error) {
	value, ok := env.Lookup(key)
	return setting.FromLookup(key, value, ok)
}

// Apply writes s to env, removing the variable when the value is absent.
func Apply(env Environment, s setting.Setting) error {
	if value, ok := s.Lookup(); ok {
		return env.Set(s.Key(), value)
	}
	return env.Unset(s.Key())
}
