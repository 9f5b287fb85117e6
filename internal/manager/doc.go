// Package manager applies settings from a provider to an environment and
// restores the previous values on demand.
//
// Load is idempotent: once loaded, further calls return immediately without
// querying the provider. Unload restores every key touched by the last Load
// to the value it held right before that key was overwritten, then forgets
// the snapshot. Unload on a manager that is not loaded does nothing.
package manager
