package provider

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/eugenenazirov/dotenv/internal/setting"
)

// DefaultPath is the configuration file read when no path is given,
// relative to the working directory.
const DefaultPath = ".env"

var (
	errNotObject   = errors.New("top-level JSON value is not an object")
	errInvalidUTF8 = errors.New("file is not valid UTF-8")
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Option configures a JSONFile provider.
type Option func(*JSONFile)

// WithFileSystem overrides the file system the provider reads from (primarily for tests).
func WithFileSystem(fsys afero.Fs) Option {
	return func(p *JSONFile) {
		if fsys != nil {
			p.fs = fsys
		}
	}
}

// WithPath overrides the configuration file location.
func WithPath(path string) Option {
	return func(p *JSONFile) {
		if path != "" {
			p.path = path
		}
	}
}

// WithLoadSettings selects which file conditions fail Get.
func WithLoadSettings(settings LoadSettings) Option {
	return func(p *JSONFile) {
		p.loadSettings = settings
	}
}

// WithLogger sets the logger used to report files that were skipped.
func WithLogger(logger *zap.Logger) Option {
	return func(p *JSONFile) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// JSONFile reads settings from a flat JSON object stored in a file.
type JSONFile struct {
	fs           afero.Fs
	path         string
	loadSettings LoadSettings
	logger       *zap.Logger

	mu       sync.Mutex
	settings []setting.Setting
	cached   bool
}

// NewJSONFile creates a provider reading DefaultPath from the OS file system
// unless overridden by opts.
func NewJSONFile(opts ...Option) *JSONFile {
	p := &JSONFile{
		fs:     afero.NewOsFs(),
		path:   DefaultPath,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Path returns the file the provider reads.
func (p *JSONFile) Path() string {
	return p.path
}

// Get returns the settings sorted by key. The first successful read is cached;
// a ConfigFileError is not, so a later call reads the file again.
func (p *JSONFile) Get() ([]setting.Setting, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.cached {
		settings, err := p.read()
		if err != nil {
			return nil, err
		}
		p.settings = settings
		p.cached = true
	}

	return slices.Clone(p.settings), nil
}

func (p *JSONFile) read() ([]setting.Setting, error) {
	exists, err := afero.Exists(p.fs, p.path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", p.path, err)
	}
	if !exists {
		return p.missing()
	}

	data, err := afero.ReadFile(p.fs, p.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return p.missing()
		}
		return nil, fmt.Errorf("read %s: %w", p.path, err)
	}

	settings, err := parse(data)
	if err != nil {
		if p.loadSettings.Has(FailOnInvalidFile) {
			return nil, &ConfigFileError{Kind: Invalid, Path: p.path, Err: err}
		}
		p.logger.Warn("ignoring invalid settings file", zap.String("path", p.path), zap.Error(err))
		return []setting.Setting{}, nil
	}

	p.logger.Debug("settings file read", zap.String("path", p.path), zap.Int("settings", len(settings)))
	return settings, nil
}

func (p *JSONFile) missing() ([]setting.Setting, error) {
	if p.loadSettings.Has(FailOnMissingFile) {
		return nil, &ConfigFileError{Kind: Missing, Path: p.path}
	}
	p.logger.Debug("settings file not found", zap.String("path", p.path))
	return []setting.Setting{}, nil
}

// parse decodes a flat JSON object from UTF-8 text, ignoring a leading byte
// order mark. A null value produces an unset setting.
func parse(data []byte) ([]setting.Setting, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return nil, errInvalidUTF8
	}

	var raw map[string]*string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errNotObject
	}

	settings := make([]setting.Setting, 0, len(raw))
	for key, value := range raw {
		var (
			s   setting.Setting
			err error
		)
		if value == nil {
			s, err = setting.NewUnset(key)
		} else {
			s, err = setting.New(key, *value)
		}
		if err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}

	slices.SortFunc(settings, func(a, b setting.Setting) int {
		return strings.Compare(a.Key(), b.Key())
	})
	return settings, nil
}
