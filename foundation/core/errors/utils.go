// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Provides common error constructors used across all tabfun
//              foundation modules for consistent error patterns.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-07-26 v0.1.1: Enhanced OutOfRange function with "validation failed:" prefix
// - 2025-08-14 v0.2.0: Conversion constructors for timex, mathx and verbs

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/tabfun/foundation/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  mdwerror.Severity
	code      mdwerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: mdwerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.code == "" {
		eb.code = mdwerror.CodeUnknown
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}

	return err.
		WithCode(eb.code).
		WithDetails(eb.details).
		WithOperation(eb.operation).
		WithSeverity(eb.severity)
}

// =============================================================================
// STANDARD ERROR CREATION FUNCTIONS
// =============================================================================

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s: %v", module, operation, input).
		Code(mdwerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(mdwerror.SeverityLow).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("value %v out of range [%v, %v] in %s.%s", value, min, max, module, operation).
		Code(mdwerror.CodeValueOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(mdwerror.SeverityLow).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s operation failed", module, operation).
		Cause(cause).
		Code(mdwerror.CodeInternal).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// ExtractDetails extracts all details from a tabfun error
func ExtractDetails(err error) map[string]interface{} {
	if mdwErr, ok := err.(*mdwerror.Error); ok {
		return mdwErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// =============================================================================
// MODULE-SPECIFIC CONVENIENCE FUNCTIONS
// =============================================================================

// TimeX convenience functions
func TimexUnparseableDate(operation string, input interface{}) *mdwerror.Error {
	return NewErrorBuilder("timex").
		Operation(operation).
		Messagef("cannot interpret %q as a date", fmt.Sprint(input)).
		Code(mdwerror.CodeUnparseableDate).
		Detail("input", input).
		Severity(mdwerror.SeverityLow).
		Build()
}

func TimexOutOfRange(operation string, value, min, max interface{}) *mdwerror.Error {
	return OutOfRange("timex", operation, value, min, max)
}

func TimexMalformedTime(operation, input string, cause error) *mdwerror.Error {
	return NewErrorBuilder("timex").
		Operation(operation).
		Messagef("malformed time %q", input).
		Cause(cause).
		Code(mdwerror.CodeMalformedTime).
		Detail("input", input).
		Severity(mdwerror.SeverityLow).
		Build()
}

// MathX convenience functions
func MathxDivisionByZero(operation string) *mdwerror.Error {
	return NewErrorBuilder("mathx").
		Operation(operation).
		Message("division by zero").
		Code(mdwerror.CodeDivisionByZero).
		Severity(mdwerror.SeverityLow).
		Build()
}

func MathxInvalidDecimal(input string) *mdwerror.Error {
	return NewErrorBuilder("mathx").
		Operation("parse").
		Messagef("invalid decimal %q", input).
		Code(mdwerror.CodeInvalidDecimal).
		Detail("input", input).
		Severity(mdwerror.SeverityLow).
		Build()
}

func MathxArithmetic(operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder("mathx").
		Operation(operation).
		Messagef("%s: arithmetic condition", operation).
		Cause(cause).
		Code(mdwerror.CodeArithmetic).
		Severity(mdwerror.SeverityLow).
		Build()
}

func MathxInvalidInput(operation string, input interface{}, expected string) *mdwerror.Error {
	return InvalidInput("mathx", operation, input, expected)
}

// Verb registry convenience functions
func VerbsUnknown(name string) *mdwerror.Error {
	return NewErrorBuilder("verbs").
		Operation("call").
		Messagef("unknown verb %q", name).
		Code(mdwerror.CodeUnknownVerb).
		Detail("verb", name).
		Severity(mdwerror.SeverityLow).
		Build()
}

// VerbsArity reports a wrong argument count; a negative max means no upper bound
func VerbsArity(name string, got, min, max int) *mdwerror.Error {
	expected := fmt.Sprintf("%d to %d", min, max)
	if max < 0 {
		expected = fmt.Sprintf("at least %d", min)
	}
	return NewErrorBuilder("verbs").
		Operation("call").
		Messagef("verb %s takes %s arguments, got %d", name, expected, got).
		Code(mdwerror.CodeArgumentCount).
		Detail("verb", name).
		Detail("got", got).
		Detail("min", min).
		Detail("max", max).
		Severity(mdwerror.SeverityLow).
		Build()
}

// Config convenience functions
func ConfigInvalid(key string, value interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder("config").
		Operation("validate").
		Messagef("invalid configuration %s=%v: %s", key, value, reason).
		Code(mdwerror.CodeInvalidConfig).
		Detail("key", key).
		Detail("value", value).
		Detail("reason", reason).
		Severity(mdwerror.SeverityHigh).
		Build()
}
