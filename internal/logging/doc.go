// Package logging builds the zap logger used by the dotenv command.
package logging
