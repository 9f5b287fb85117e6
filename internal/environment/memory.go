package environment

import (
	"errors"
	"maps"
	"strings"
	"sync"
)

// ErrInvalidKey indicates a key the memory store refuses, mirroring the
// restrictions of the process environment.
var ErrInvalidKey = errors.New("environment key must be non-empty and must not contain '=' or NUL")

// Memory keeps variables in-memory and guards access with a RWMutex.
type Memory struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewMemory initialises the store with a copy of initial.
func NewMemory(initial map[string]string) *Memory {
	vars := make(map[string]string, len(initial))
	maps.Copy(vars, initial)
	return &Memory{vars: vars}
}

// Lookup returns the value for key and whether it is defined.
func (m *Memory) Lookup(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.vars[key]
	return value, ok
}

// Set validates key and stores value.
func (m *Memory) Set(key, value string) error {
	if !validKey(key) {
		return ErrInvalidKey
	}

	m.mu.Lock()
	m.vars[key] = value
	m.mu.Unlock()

	return nil
}

// Unset removes key. Removing an undefined key is not an error.
func (m *Memory) Unset(key string) error {
	m.mu.Lock()
	delete(m.vars, key)
	m.mu.Unlock()

	return nil
}

// Snapshot returns a defensive copy of the stored variables.
func (m *Memory) Snapshot() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return maps.Clone(m.vars)
}

func validKey(key string) bool {
	return key != "" && !strings.ContainsAny(key, "=\x00")
}
