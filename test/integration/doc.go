// Package integration exercises the public dotenv API against the real
// process environment and working directory.
package integration
