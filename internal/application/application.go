package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/eugenenazirov/dotenv"
	"github.com/eugenenazirov/dotenv/internal/config"
	"github.com/eugenenazirov/dotenv/internal/provider"
	"github.com/eugenenazirov/dotenv/internal/setting"
)

// waitDelay bounds how long Exec waits for output pipes after the command
// exits or is cancelled.
const waitDelay = 2 * time.Second

// App encapsulates the provider and session built from configuration.
type App struct {
	provider *provider.JSONFile
	session  *dotenv.Session
	logger   *zap.Logger
}

// Option configures App construction.
type Option func(*options)

type options struct {
	fs  afero.Fs
	env dotenv.Environment
}

// WithFileSystem overrides the file system settings are read from (primarily for tests).
func WithFileSystem(fsys afero.Fs) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

// WithEnvironment overrides the environment the session mutates (primarily for tests).
func WithEnvironment(env dotenv.Environment) Option {
	return func(o *options) {
		o.env = env
	}
}

// New initializes the application from the provided configuration.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) *App {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	p := provider.NewJSONFile(
		provider.WithFileSystem(o.fs),
		provider.WithPath(cfg.EnvFile),
		provider.WithLoadSettings(cfg.LoadSettings()),
		provider.WithLogger(logger),
	)

	sessionOpts := []dotenv.SessionOption{
		dotenv.WithProvider(p),
		dotenv.WithLogger(logger),
	}
	if o.env != nil {
		sessionOpts = append(sessionOpts, dotenv.WithEnvironment(o.env))
	}

	return &App{
		provider: p,
		session:  dotenv.NewSession(sessionOpts...),
		logger:   logger,
	}
}

// Settings returns the settings read from the configured file.
func (a *App) Settings() ([]setting.Setting, error) {
	return a.provider.Get()
}

// Exec installs the settings, runs name with args and restores the
// environment afterwards. The child's exit code is returned; a non-zero exit
// is not an error.
func (a *App) Exec(ctx context.Context, name string, args []string, stdin io.Reader, stdout, stderr io.Writer) (code int, err error) {
	if err := a.session.Install(); err != nil {
		return 0, err
	}
	defer func() {
		if uninstallErr := a.session.Uninstall(); uninstallErr != nil && err == nil {
			err = fmt.Errorf("restore environment: %w", uninstallErr)
		}
	}()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.WaitDelay = waitDelay

	a.logger.Debug("running command", zap.String("command", name), zap.Strings("args", args))
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, fmt.Errorf("run %s: %w", name, err)
	}
	return 0, nil
}
