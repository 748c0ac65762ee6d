// Package logging provides logging utilities for potview.
//
// This package provides two categories of output:
//   - Debug logging: structured logs for debugging (via slog)
//   - User output: formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("resolving pot", "name", name)
//	logging.Warn("invalid bridge file", "path", path, "error", err)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("No pots found under %s", jailsDir)
//	logging.UserWarning("system configuration is incomplete")
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
package logging
