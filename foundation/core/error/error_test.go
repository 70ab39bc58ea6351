// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and metadata.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2025-08-14 v0.2.0: Conversion codes, chain-aware HasCode

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap tabfun error keeps code",
			err:      New("bad date").WithCode(CodeUnparseableDate),
			message:  "parse_date",
			wantMsg:  "parse_date: bad date",
			wantCode: CodeUnparseableDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("wrapped error should match its cause with errors.Is")
			}
		})
	}
}

func TestWrapTruncatesDeepChains(t *testing.T) {
	var err error = New("root")
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, fmt.Sprintf("level %d", i))
	}

	mdwErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if chainDepth(mdwErr) > MaxErrorChainDepth+1 {
		t.Errorf("chain depth = %d, want <= %d", chainDepth(mdwErr), MaxErrorChainDepth+1)
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	testCases := []struct {
		code Code
		want Severity
	}{
		{CodeUnparseableDate, SeverityLow},
		{CodeValueOutOfRange, SeverityLow},
		{CodeMalformedTime, SeverityLow},
		{CodeInvalidConfig, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeArithmetic, SeverityMedium},
	}

	for _, tc := range testCases {
		t.Run(string(tc.code), func(t *testing.T) {
			err := New("x").WithCode(tc.code)
			if err.Severity() != tc.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tc.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidInput)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity overwritten: %v", explicit.Severity())
	}
}

func TestHasCodeWalksChain(t *testing.T) {
	inner := New("ordinal 0 out of range").WithCode(CodeValueOutOfRange)
	outer := fmt.Errorf("date verb: %w", inner)

	if !HasCode(outer, CodeValueOutOfRange) {
		t.Error("HasCode should find code through fmt.Errorf wrapping")
	}
	if HasCode(outer, CodeMalformedTime) {
		t.Error("HasCode reported a code that is not present")
	}
	if HasCode(nil, CodeValueOutOfRange) {
		t.Error("HasCode(nil) should be false")
	}
	if GetCode(outer) != CodeValueOutOfRange {
		t.Errorf("GetCode() = %v", GetCode(outer))
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode on plain error should be CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity on plain error should be SeverityMedium")
	}
}

func TestDetails(t *testing.T) {
	err := New("x").
		WithDetail("input", "31/31/2031").
		WithDetails(map[string]interface{}{"strategy": "formats", "tried": 23}).
		WithOperation("parse_date")

	details := err.Details()
	if details["input"] != "31/31/2031" || details["tried"] != 23 {
		t.Errorf("Details() = %v", details)
	}

	details["input"] = "mutated"
	if err.Details()["input"] != "31/31/2031" {
		t.Error("Details() should return a copy")
	}

	if err.Operation() != "parse_date" {
		t.Errorf("Operation() = %q", err.Operation())
	}

	s := err.String()
	for _, want := range []string{"Error: x", "Operation: parse_date", "input=31/31/2031"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("cause"), "outer").WithCode(CodeMalformedTime).WithOperation("hr")

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("json.Marshal() error: %v", jerr)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if decoded["code"] != string(CodeMalformedTime) {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["cause"] != "cause" {
		t.Errorf("cause = %v", decoded["cause"])
	}
	if decoded["operation"] != "hr" {
		t.Errorf("operation = %v", decoded["operation"])
	}
}

func TestCodeCategory(t *testing.T) {
	testCases := []struct {
		code Code
		want string
	}{
		{CodeUnparseableDate, "conversion"},
		{CodeInvalidDecimal, "arithmetic"},
		{CodeUnknownVerb, "dispatch"},
		{CodeInvalidConfig, "configuration"},
		{CodeUnknown, "generic"},
	}
	for _, tc := range testCases {
		if got := tc.code.Category(); got != tc.want {
			t.Errorf("%s.Category() = %q, want %q", tc.code, got, tc.want)
		}
		if !tc.code.IsValid() {
			t.Errorf("%s.IsValid() = false", tc.code)
		}
	}
	if Code("NOPE").IsValid() {
		t.Error("unknown code reported valid")
	}
}
