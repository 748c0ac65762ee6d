// Package errors provides typed errors with exit codes for potview.
//
// # Error Types
//
// PotError is the base error type that wraps an error with an exit code:
//
//	type PotError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess        = 0  // Success
//	ExitGeneralError   = 1  // General/unknown errors
//	ExitConfigError    = 2  // System configuration error
//	ExitBridgeConfig   = 3  // Bridge definition invalid
//	ExitPotConfig      = 4  // Pot configuration invalid
//	ExitProbeFailed    = 5  // jls probe could not be spawned
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.BridgeConfig(path, cause)
//	errors.InvalidAddress(pot, key, value)
//	errors.ProbeFailed(name, cause)
//
// main extracts the exit code with GetExitCode(err).
package errors
