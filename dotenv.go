package dotenv

import (
	"sync"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/eugenenazirov/dotenv/internal/environment"
	"github.com/eugenenazirov/dotenv/internal/manager"
	"github.com/eugenenazirov/dotenv/internal/provider"
	"github.com/eugenenazirov/dotenv/internal/setting"
)

// LoadSettings selects whether a missing or malformed file is an error.
type LoadSettings = provider.LoadSettings

// Flags accepted by Install and WithLoadSettings.
const (
	None              = provider.None
	FailOnMissingFile = provider.FailOnMissingFile
	FailOnInvalidFile = provider.FailOnInvalidFile
)

// Setting is a single key/value pair read from the file.
type Setting = setting.Setting

// Provider supplies settings to a Session.
type Provider = provider.Provider

// Environment is the variable store a Session mutates.
type Environment = environment.Environment

var (
	defaultMu      sync.Mutex
	defaultSession *Session
)

// Install loads the ".env" file into the process environment. The first call
// creates the process-wide session with the OR of settings; later calls reuse
// it and only load again after an Uninstall.
func Install(settings ...LoadSettings) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultSession == nil {
		var flags LoadSettings
		for _, s := range settings {
			flags |= s
		}
		defaultSession = NewSession(WithLoadSettings(flags))
	}
	return defaultSession.Install()
}

// Uninstall restores the variables changed by Install.
func Uninstall() error {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultSession == nil {
		return ErrNotInstalled
	}
	return defaultSession.Uninstall()
}

// SessionOption configures a Session.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	provider     Provider
	env          Environment
	fs           afero.Fs
	path         string
	loadSettings LoadSettings
	logger       *zap.Logger
}

// WithProvider replaces the JSON file provider. File related options are
// ignored when set.
func WithProvider(p Provider) SessionOption {
	return func(cfg *sessionConfig) {
		cfg.provider = p
	}
}

// WithEnvironment replaces the process environment.
func WithEnvironment(env Environment) SessionOption {
	return func(cfg *sessionConfig) {
		cfg.env = env
	}
}

// WithFileSystem sets the file system the ".env" file is read from.
func WithFileSystem(fsys afero.Fs) SessionOption {
	return func(cfg *sessionConfig) {
		cfg.fs = fsys
	}
}

// WithPath reads settings from path instead of ".env".
func WithPath(path string) SessionOption {
	return func(cfg *sessionConfig) {
		cfg.path = path
	}
}

// WithLoadSettings sets the fail flags of the file provider.
func WithLoadSettings(settings LoadSettings) SessionOption {
	return func(cfg *sessionConfig) {
		cfg.loadSettings = settings
	}
}

// WithLogger sets the logger of the session and its file provider.
func WithLogger(logger *zap.Logger) SessionOption {
	return func(cfg *sessionConfig) {
		cfg.logger = logger
	}
}

// Session is one coordinated load/unload cycle over an environment.
type Session struct {
	manager *manager.Manager
}

// NewSession builds a session reading ".env" from the working directory into
// the process environment unless overridden by opts.
func NewSession(opts ...SessionOption) *Session {
	cfg := sessionConfig{
		env:    environment.Process(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := cfg.provider
	if p == nil {
		p = provider.NewJSONFile(
			provider.WithFileSystem(cfg.fs),
			provider.WithPath(cfg.path),
			provider.WithLoadSettings(cfg.loadSettings),
			provider.WithLogger(cfg.logger),
		)
	}

	return &Session{
		manager: manager.New(p,
			manager.WithEnvironment(cfg.env),
			manager.WithLogger(cfg.logger),
		),
	}
}

// Install applies the settings. It does nothing while already installed.
func (s *Session) Install() error {
	return s.manager.Load()
}

// Uninstall restores the environment captured by Install. It does nothing
// when the session is not installed.
func (s *Session) Uninstall() error {
	return s.manager.Unload()
}

// Installed reports whether the settings are currently applied.
func (s *Session) Installed() bool {
	return s.manager.Loaded()
}
