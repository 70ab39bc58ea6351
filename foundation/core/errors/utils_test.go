// File: utils_test.go
// Title: Shared Error Handling Utilities Tests
// Description: Tests for shared error handling utilities to ensure consistent
//              error patterns across all tabfun foundation modules.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14

package errors

import (
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/tabfun/foundation/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Message("test error").
			Detail("key", "value").
			Severity(mdwerror.SeverityHigh).
			Build()

		if err == nil {
			t.Fatal("Expected error, got nil")
		}

		details := err.Details()
		if details["module"] != "testmodule" {
			t.Errorf("Expected module 'testmodule', got %v", details["module"])
		}
		if details["operation"] != "test_op" {
			t.Errorf("Expected operation 'test_op', got %v", details["operation"])
		}
		if details["key"] != "value" {
			t.Errorf("Expected detail key 'value', got %v", details["key"])
		}
		if err.Severity() != mdwerror.SeverityHigh {
			t.Errorf("Expected high severity, got %v", err.Severity())
		}
		if err.Code() != mdwerror.CodeUnknown {
			t.Errorf("Expected default code UNKNOWN, got %v", err.Code())
		}
	})

	t.Run("default message", func(t *testing.T) {
		err := NewErrorBuilder("timex").Operation("hr").Build()
		if err.Error() != "timex.hr failed" {
			t.Errorf("Error() = %q", err.Error())
		}
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("strconv failure")
		err := NewErrorBuilder("timex").Cause(cause).Message("bad field").Build()
		if !errors.Is(err, cause) {
			t.Error("built error should wrap its cause")
		}
	})
}

func TestModuleConstructors(t *testing.T) {
	testCases := []struct {
		name   string
		err    *mdwerror.Error
		code   mdwerror.Code
		module string
		text   string
	}{
		{"unparseable date", TimexUnparseableDate("parse_date", "31/31/2031"), mdwerror.CodeUnparseableDate, "timex", "31/31/2031"},
		{"out of range", TimexOutOfRange("from_ordinal", 0, 1, 3652059), mdwerror.CodeValueOutOfRange, "timex", "out of range"},
		{"malformed time", TimexMalformedTime("hr", "1:xx", errors.New("bad")), mdwerror.CodeMalformedTime, "timex", "1:xx"},
		{"division by zero", MathxDivisionByZero("quo"), mdwerror.CodeDivisionByZero, "mathx", "division by zero"},
		{"invalid decimal", MathxInvalidDecimal("abc"), mdwerror.CodeInvalidDecimal, "mathx", "abc"},
		{"arithmetic", MathxArithmetic("ln", errors.New("invalid operation")), mdwerror.CodeArithmetic, "mathx", "ln"},
		{"invalid input", MathxInvalidInput("factors", 0, "positive integer"), mdwerror.CodeInvalidInput, "mathx", "factors"},
		{"unknown verb", VerbsUnknown("frobnicate"), mdwerror.CodeUnknownVerb, "verbs", "frobnicate"},
		{"arity", VerbsArity("hms", 3, 1, 1), mdwerror.CodeArgumentCount, "verbs", "got 3"},
		{"config", ConfigInvalid("precision", 0, "must be positive"), mdwerror.CodeInvalidConfig, "config", "precision"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code() != tc.code {
				t.Errorf("Code() = %v, want %v", tc.err.Code(), tc.code)
			}
			if got := ExtractModule(tc.err); got != tc.module {
				t.Errorf("ExtractModule() = %q, want %q", got, tc.module)
			}
			if !strings.Contains(tc.err.Error(), tc.text) {
				t.Errorf("Error() = %q, want it to contain %q", tc.err.Error(), tc.text)
			}
		})
	}
}

func TestExtractFromForeignError(t *testing.T) {
	plain := errors.New("plain")
	if ExtractDetails(plain) != nil {
		t.Error("ExtractDetails on plain error should be nil")
	}
	if ExtractModule(plain) != "" {
		t.Error("ExtractModule on plain error should be empty")
	}
}

func TestOperationFailed(t *testing.T) {
	cause := errors.New("boom")
	err := OperationFailed("config", "load", cause)
	if !errors.Is(err, cause) {
		t.Error("OperationFailed should wrap the cause")
	}
	if err.Severity() != mdwerror.SeverityHigh {
		t.Errorf("Severity() = %v", err.Severity())
	}
}
