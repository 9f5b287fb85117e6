package setting

import "errors"

// ErrEmptyKey is returned when a Setting is constructed without a key.
var ErrEmptyKey = errors.New("setting key cannot be empty")
