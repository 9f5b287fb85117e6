package manager

import (
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/eugenenazirov/dotenv/internal/environment"
	"github.com/eugenenazirov/dotenv/internal/provider"
	"github.com/eugenenazirov/dotenv/internal/setting"
)

// Option configures a Manager.
type Option func(*Manager)

// WithEnvironment overrides the environment the manager mutates (primarily for tests).
func WithEnvironment(env environment.Environment) Option {
	return func(m *Manager) {
		if env != nil {
			m.env = env
		}
	}
}

// WithLogger sets the manager logger.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// Manager tracks one load/unload session against an environment.
type Manager struct {
	provider provider.Provider
	env      environment.Environment
	logger   *zap.Logger

	mu            sync.Mutex
	loaded        bool
	previousState []setting.Setting
}

// New creates a Manager backed by p. The process environment is used unless
// overridden.
func New(p provider.Provider, opts ...Option) *Manager {
	m := &Manager{
		provider: p,
		env:      environment.Process(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load applies the provider settings in order, recording the value each key
// held immediately before it was overwritten. Provider errors are returned
// unchanged and leave the environment untouched.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loaded {
		return nil
	}

	settings, err := m.provider.Get()
	if err != nil {
		return err
	}

	for _, s := range settings {
		previous, err := environment.Capture(m.env, s.Key())
		if err != nil {
			m.rollback()
			return fmt.Errorf("capture %s: %w", s.Key(), err)
		}
		if err := environment.Apply(m.env, s); err != nil {
			m.rollback()
			return fmt.Errorf("apply setting: %w", err)
		}
		m.previousState = append(m.previousState, previous)
	}

	m.loaded = true
	m.logger.Debug("environment loaded", zap.Int("settings", len(settings)))
	return nil
}

// Unload restores the values captured by the last Load.
func (m *Manager) Unload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.loaded {
		return nil
	}

	if err := m.restore(); err != nil {
		return err
	}

	m.loaded = false
	m.logger.Debug("environment unloaded")
	return nil
}

// Loaded reports whether Load has been applied and not yet reverted.
func (m *Manager) Loaded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.loaded
}

// PreviousState returns a copy of the captured snapshot in capture order.
func (m *Manager) PreviousState() []setting.Setting {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.previousState)
}

// restore writes the snapshot back in capture order and clears it.
func (m *Manager) restore() error {
	for i, previous := range m.previousState {
		if err := environment.Apply(m.env, previous); err != nil {
			m.previousState = m.previousState[i:]
			return fmt.Errorf("restore setting: %w", err)
		}
	}
	m.previousState = nil
	return nil
}

// rollback undoes a partially applied Load. Restoring in reverse order puts
// back the oldest value when a key occurs more than once. The snapshot is
// dropped even when a restore fails: the manager is not loaded, so nothing
// may write it back later.
func (m *Manager) rollback() {
	slices.Reverse(m.previousState)
	if err := m.restore(); err != nil {
		m.logger.Warn("rollback of partial load failed", zap.Error(err))
	}
	m.previousState = nil
}
