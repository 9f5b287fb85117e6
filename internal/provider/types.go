package provider

import "github.com/eugenenazirov/dotenv/internal/setting"

// Provider supplies settings from a backing source.
type Provider interface {
	Get() ([]setting.Setting, error)
}

// LoadSettings selects which file conditions are reported as errors.
type LoadSettings int

const (
	// None treats a missing or invalid file as having no settings.
	None LoadSettings = 0
	// FailOnMissingFile reports a missing file as a ConfigFileError.
	FailOnMissingFile LoadSettings = 1
	// FailOnInvalidFile reports a malformed file as a ConfigFileError.
	FailOnInvalidFile LoadSettings = 2
)

// Has reports whether all bits of flag are set.
func (s LoadSettings) Has(flag LoadSettings) bool {
	return s&flag == flag
}

func (s LoadSettings) String() string {
	switch s {
	case None:
		return "none"
	case FailOnMissingFile:
		return "fail-on-missing"
	case FailOnInvalidFile:
		return "fail-on-invalid"
	case FailOnMissingFile | FailOnInvalidFile:
		return "fail-on-missing|fail-on-invalid"
	default:
		return "unknown"
	}
}
