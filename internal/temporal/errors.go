package temporal

import (
	"errors"
	"fmt"
)

// Code categorizes temporal errors.
type Code string

const (
	// CodeInvalidRange indicates an interval whose end precedes its start.
	CodeInvalidRange Code = "INVALID_RANGE"

	// CodeResolutionMismatch indicates operands at different resolutions
	// were combined without an explicit conversion.
	CodeResolutionMismatch Code = "RESOLUTION_MISMATCH"

	// CodeLossyConversion indicates a narrowing conversion under the exact
	// policy would discard a non-zero remainder.
	CodeLossyConversion Code = "LOSSY_CONVERSION"

	// CodeOverflow indicates tick arithmetic exceeded the int64 range.
	CodeOverflow Code = "OVERFLOW"
)

// Error represents a failure detected by a tickspan operation.
//
// Every failure is a caller-correctable input problem: operations are
// deterministic and side-effect-free, so retrying with unchanged input
// never changes the outcome. Error includes structured fields so callers
// can report exactly which operands were at fault.
type Error struct {
	// Code identifies the error category.
	Code Code

	// Op names the operation that failed (e.g., "Compare", "Convert").
	Op string

	// Message is a human-readable description.
	Message string

	// Details contains additional context (operand values, resolutions).
	Details map[string]string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInvalidRange returns true if the error is an invalid-range error.
// Uses errors.As to handle wrapped errors.
func IsInvalidRange(err error) bool {
	return hasCode(err, CodeInvalidRange)
}

// IsResolutionMismatch returns true if the error is a resolution-mismatch error.
// Uses errors.As to handle wrapped errors.
func IsResolutionMismatch(err error) bool {
	return hasCode(err, CodeResolutionMismatch)
}

// IsLossyConversion returns true if the error is a lossy-conversion error.
// Uses errors.As to handle wrapped errors.
func IsLossyConversion(err error) bool {
	return hasCode(err, CodeLossyConversion)
}

// IsOverflow returns true if the error is an overflow error.
// Uses errors.As to handle wrapped errors.
func IsOverflow(err error) bool {
	return hasCode(err, CodeOverflow)
}

func hasCode(err error, code Code) bool {
	var te *Error
	if errors.As(err, &te) {
		return te.Code == code
	}
	return false
}

// NewResolutionMismatch creates an Error for operands at different resolutions.
func NewResolutionMismatch(op string, a, b Resolution) *Error {
	return &Error{
		Code:    CodeResolutionMismatch,
		Op:      op,
		Message: fmt.Sprintf("operands at different resolutions (%s vs %s); convert explicitly first", a, b),
		Details: map[string]string{
			"left":  a.String(),
			"right": b.String(),
		},
	}
}

// NewInvalidRange creates an Error for an interval whose end precedes its start.
func NewInvalidRange(op string, startTicks, endTicks int64, res Resolution) *Error {
	return &Error{
		Code:    CodeInvalidRange,
		Op:      op,
		Message: fmt.Sprintf("end %d precedes start %d at %s resolution", endTicks, startTicks, res),
		Details: map[string]string{
			"start":      fmt.Sprintf("%d", startTicks),
			"end":        fmt.Sprintf("%d", endTicks),
			"resolution": res.String(),
		},
	}
}

// NewLossyConversion creates an Error for a narrowing conversion that would
// discard a non-zero remainder under the exact policy.
func NewLossyConversion(op string, ticks int64, from, to Resolution, remainder int64) *Error {
	return &Error{
		Code:    CodeLossyConversion,
		Op:      op,
		Message: fmt.Sprintf("%d %s ticks are not a whole number of %s units (remainder %d)", ticks, from, to, remainder),
		Details: map[string]string{
			"ticks":     fmt.Sprintf("%d", ticks),
			"from":      from.String(),
			"to":        to.String(),
			"remainder": fmt.Sprintf("%d", remainder),
		},
	}
}

// NewOverflow creates an Error for tick arithmetic exceeding int64 range.
func NewOverflow(op string, detail string) *Error {
	return &Error{
		Code:    CodeOverflow,
		Op:      op,
		Message: detail,
	}
}
