// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. Conversion failures on a
//              single cell are low severity; configuration problems are high.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2025-08-22
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2025-08-14 v0.2.0: Severity mapping for conversion codes
// - 2025-08-22 v0.2.1: Removed alerting helper

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a failure confined to one value, e.g. one cell
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a setup error that affects every subsequent call
	SeverityHigh

	// SeverityCritical indicates an internal invariant was broken
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeConfigError, CodeInvalidConfig:
		return SeverityHigh

	case CodeInvalidInput, CodeUnparseableDate, CodeValueOutOfRange, CodeMalformedTime,
		CodeInvalidDecimal, CodeDivisionByZero, CodeUnknownVerb, CodeArgumentCount,
		CodeNotFound:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
