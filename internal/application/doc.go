// Package application provides dependency wiring for the dotenv command.
// It builds the settings provider and session from the resolved
// configuration, keeping the main package focused on CLI parsing.
package application
