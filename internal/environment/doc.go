// Package environment abstracts the key/value store the manager mutates.
// Process targets the real process-scope variables; Memory is a guarded
// in-memory table used for embedding and tests.
package environment
