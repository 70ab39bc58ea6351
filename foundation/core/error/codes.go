// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by the conversion verbs. The three
//              strict failure kinds (unparseable date, out of range ordinal,
//              malformed time) each have their own code.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-08-14 v0.2.0: Replaced service codes with conversion codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Date and time conversion
	CodeUnparseableDate Code = "UNPARSEABLE_DATE"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"
	CodeMalformedTime   Code = "MALFORMED_TIME"

	// Decimal arithmetic
	CodeInvalidDecimal Code = "INVALID_DECIMAL"
	CodeDivisionByZero Code = "DIVISION_BY_ZERO"
	CodeArithmetic     Code = "ARITHMETIC"

	// Verb dispatch
	CodeUnknownVerb   Code = "UNKNOWN_VERB"
	CodeArgumentCount Code = "ARGUMENT_COUNT"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeNotFound      Code = "NOT_FOUND"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeUnparseableDate, CodeValueOutOfRange, CodeMalformedTime,
		CodeInvalidDecimal, CodeDivisionByZero, CodeArithmetic,
		CodeUnknownVerb, CodeArgumentCount,
		CodeConfigError, CodeInvalidConfig, CodeNotFound:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeUnparseableDate, CodeValueOutOfRange, CodeMalformedTime:
		return "conversion"
	case CodeInvalidDecimal, CodeDivisionByZero, CodeArithmetic:
		return "arithmetic"
	case CodeUnknownVerb, CodeArgumentCount:
		return "dispatch"
	case CodeConfigError, CodeInvalidConfig, CodeNotFound:
		return "configuration"
	default:
		return "generic"
	}
}
