package errors

import (
	"errors"
	"fmt"
)

// Exit codes for potview
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitConfigError  = 2
	ExitBridgeConfig = 3
	ExitPotConfig    = 4
	ExitProbeFailed  = 5
)

// PotError is the base error type for potview
type PotError struct {
	Code    int
	Message string
	Cause   error
}

func (e *PotError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *PotError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *PotError) ExitCode() int {
	return e.Code
}

// New creates a new PotError
func New(code int, message string) *PotError {
	return &PotError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a PotError
func Wrap(code int, message string, cause error) *PotError {
	return &PotError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// ConfigError returns an error for system configuration issues
func ConfigError(message string) *PotError {
	return New(ExitConfigError, message)
}

// IncompleteConfig returns an error for a system configuration that is
// missing required fields
func IncompleteConfig() *PotError {
	return New(ExitConfigError, "system configuration is incomplete")
}

// BridgeConfig returns an error for an invalid bridge definition
func BridgeConfig(path string, cause error) *PotError {
	return Wrap(ExitBridgeConfig, fmt.Sprintf("invalid bridge definition %s", path), cause)
}

// BridgeFieldMissing returns an error for a bridge definition missing a
// mandatory field
func BridgeFieldMissing(field string) *PotError {
	return New(ExitBridgeConfig, fmt.Sprintf("bridge definition is missing %s", field))
}

// GatewayNotInNetwork returns an error for a bridge whose gateway lies
// outside its network
func GatewayNotInNetwork(gateway, network string) *PotError {
	return New(ExitBridgeConfig, fmt.Sprintf("gateway %s is not inside network %s", gateway, network))
}

// InvalidAddress returns an error for a pot configuration field that is
// present but does not parse as an IP address
func InvalidAddress(pot, key, value string) *PotError {
	return New(ExitPotConfig, fmt.Sprintf("pot %s: %s=%s is not a valid address", pot, key, value))
}

// ProbeFailed returns an error when the jail probe tool cannot be spawned
func ProbeFailed(name string, cause error) *PotError {
	return Wrap(ExitProbeFailed, fmt.Sprintf("cannot probe jail %s", name), cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *PotError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var potErr *PotError
	if errors.As(err, &potErr) {
		return potErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
