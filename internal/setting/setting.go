package setting

import (
	"fmt"
	"hash/fnv"
)

// Setting is an immutable key/value pair. The zero value is not valid; use
// New or NewUnset.
type Setting struct {
	key   string
	value string
	set   bool
}

// New creates a Setting with a present value. An empty value is still present.
func New(key, value string) (Setting, error) {
	if key == "" {
		return Setting{}, ErrEmptyKey
	}
	return Setting{key: key, value: value, set: true}, nil
}

// NewUnset creates a Setting whose value is absent.
func NewUnset(key string) (Setting, error) {
	if key == "" {
		return Setting{}, ErrEmptyKey
	}
	return Setting{key: key}, nil
}

// FromLookup builds a Setting from the result of an environment lookup.
func FromLookup(key, value string, ok bool) (Setting, error) {
	if !ok {
		return NewUnset(key)
	}
	return New(key, value)
}

// MustNew is like New but panics on an empty key.
func MustNew(key, value string) Setting {
	s, err := New(key, value)
	if err != nil {
		panic(fmt.Sprintf("setting: %v", err))
	}
	return s
}

// Key returns the setting key.
func (s Setting) Key() string {
	return s.key
}

// Value returns the setting value, or "" when the value is absent.
func (s Setting) Value() string {
	return s.value
}

// IsSet reports whether the value is present.
func (s Setting) IsSet() bool {
	return s.set
}

// Lookup mirrors os.LookupEnv.
func (s Setting) Lookup() (string, bool) {
	return s.value, s.set
}

// Equal reports whether both settings have the same key and value. An absent
// value only equals another absent value.
func (s Setting) Equal(other Setting) bool {
	return s.key == other.key && s.value == other.value && s.set == other.set
}

// Hash is derived from the key, combined with the value when it is non-empty.
// Equal settings always hash equally.
func (s Setting) Hash() uint64 {
	h := sum(s.key)
	if s.value != "" {
		h ^= sum(s.value)
	}
	return h
}

func (s Setting) String() string {
	if !s.set {
		return s.key
	}
	return s.key + "=" + s.value
}

func sum(v string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(v))
	return h.Sum64()
}
