// Package provider reads settings from a backing source. JSONFile reads a
// flat JSON object of string keys to string values from a file (".env" in
// the working directory by default) and caches the first successful result
// for the lifetime of the provider: later changes on disk are not observed,
// construct a new provider to re-read the file.
//
// Whether a missing or malformed file is an error is controlled by
// LoadSettings. When a condition is not configured to fail, it yields an
// empty result.
package provider
