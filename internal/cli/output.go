package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/tickspan/internal/temporal"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Domain failure (validation errors, schedule conflicts, invalid operands)
	ExitCommandError = 2 // Command error (invalid paths, database not found, etc.)
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose/diagnostic output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *CLIError   `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string      `json:"code"`              // "E001", "E102", etc.
	Message string      `json:"message"`           // human-readable message
	Details interface{} `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// VerboseLog outputs a message only if verbose mode is enabled.
// Uses ErrWriter if set, otherwise falls back to Writer.
// When format is JSON, verbose logs go to ErrWriter to avoid corrupting JSON output.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeScanError   = "E002" // Directory scan error
	ErrCodeNoFiles     = "E003" // No CUE files found
	ErrCodeLoadFailed  = "E004" // CUE load failed
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeBuildFailed = "E006" // CUE build failed
	ErrCodeStoreFailed = "E007" // Store open/write error

	// Domain errors mirror the temporal error codes.
	ErrCodeInvalidRange       = "E101" // Interval end precedes start
	ErrCodeResolutionMismatch = "E102" // Operands at different resolutions
	ErrCodeLossyConversion    = "E103" // Exact conversion would lose precision
	ErrCodeOverflow           = "E104" // Tick arithmetic overflow
	ErrCodeBadOperand         = "E105" // Unparseable instant, resolution, or policy
)

// domainErrorCode maps a typed temporal error to its CLI error code.
func domainErrorCode(err error) string {
	var te *temporal.Error
	if !errors.As(err, &te) {
		return ErrCodeGeneric
	}
	switch te.Code {
	case temporal.CodeInvalidRange:
		return ErrCodeInvalidRange
	case temporal.CodeResolutionMismatch:
		return ErrCodeResolutionMismatch
	case temporal.CodeLossyConversion:
		return ErrCodeLossyConversion
	case temporal.CodeOverflow:
		return ErrCodeOverflow
	default:
		return ErrCodeGeneric
	}
}

// domainError reports the error in the configured format and converts it
// to an ExitError. Domain failures are exit code 1.
func domainError(formatter *OutputFormatter, err error) error {
	code := domainErrorCode(err)
	_ = formatter.Error(code, err.Error(), nil)
	return WrapExitError(ExitFailure, code, err)
}

// operandError reports an unparseable operand. Operand problems are
// command errors (exit code 2): the invocation itself is malformed.
func operandError(formatter *OutputFormatter, err error) error {
	_ = formatter.Error(ErrCodeBadOperand, err.Error(), nil)
	return WrapExitError(ExitCommandError, ErrCodeBadOperand, err)
}
