package provider

import "errors"

const (
	// FileMissingMessage is the message of a ConfigFileError of kind Missing.
	FileMissingMessage = ".env file is missing."
	// FileInvalidMessage is the message of a ConfigFileError of kind Invalid.
	FileInvalidMessage = ".env file is invalid."
)

var (
	// ErrMissingFile matches any ConfigFileError of kind Missing via errors.Is.
	ErrMissingFile = errors.New(FileMissingMessage)
	// ErrInvalidFile matches any ConfigFileError of kind Invalid via errors.Is.
	ErrInvalidFile = errors.New(FileInvalidMessage)
)

// ErrorKind classifies a ConfigFileError.
type ErrorKind int

const (
	// Missing means the configuration file does not exist.
	Missing ErrorKind = iota + 1
	// Invalid means the file exists but is not a flat string-to-string JSON object.
	Invalid
)

func (k ErrorKind) String() string {
	switch k {
	case Missing:
		return "missing"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// ConfigFileError is returned when the configuration file is missing or
// malformed and the provider was configured to fail on that condition.
type ConfigFileError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *ConfigFileError) Error() string {
	if e.Kind == Missing {
		return FileMissingMessage
	}
	return FileInvalidMessage
}

// Unwrap returns the underlying parse error, if any.
func (e *ConfigFileError) Unwrap() error {
	return e.Err
}

// Is matches the ErrMissingFile and ErrInvalidFile sentinels.
func (e *ConfigFileError) Is(target error) bool {
	switch target {
	case ErrMissingFile:
		return e.Kind == Missing
	case ErrInvalidFile:
		return e.Kind == Invalid
	}
	return false
}
