package dotenv

import (
	"errors"

	"github.com/eugenenazirov/dotenv/internal/provider"
)

// ErrNotInstalled is returned by Uninstall when Install was never called.
var ErrNotInstalled = errors.New("dotenv: Uninstall called before Install")

// ConfigFileError reports a missing or malformed configuration file when the
// matching fail flag is set.
type ConfigFileError = provider.ConfigFileError

var (
	// ErrMissingFile matches a ConfigFileError for a missing file via errors.Is.
	ErrMissingFile = provider.ErrMissingFile
	// ErrInvalidFile matches a ConfigFileError for a malformed file via errors.Is.
	ErrInvalidFile = provider.ErrInvalidFile
)
