// File: base_test.go
// Title: Base Conversion and SI Tests
// Description: Tests for hexadecimal and octal rendering and SI formatting.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial implementation

package mathx

import (
	"strings"
	"testing"

	mdwerror "github.com/msto63/tabfun/foundation/core/error"
)

func TestToBase(t *testing.T) {
	c := DefaultContext()

	testCases := []struct {
		name  string
		input string
		base  int
		want  string
	}{
		{"hex fraction", "3.14", 16, "0x3.23d70a3d70"},
		{"oct fraction", "3.14", 8, "0o3.1075341217"},
		{"hex integer", "100", 16, "0x64"},
		{"oct integer", "100", 8, "0o144"},
		{"hex integer with zero fraction", "100.00", 16, "0x64"},
		{"hex zero", "0", 16, "0x0"},
		{"oct zero", "0", 8, "0o0"},
		{"hex half", "0.5", 16, "0x0.8"},
		{"oct eighth", "0.125", 8, "0o0.1"},
		{"negative hex", "-255", 16, "-0xff"},
		{"negative fraction", "-3.14", 16, "-0x3.23d70a3d70"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := c.ToBase(MustNewDecimal(tc.input), tc.base)
			if err != nil {
				t.Fatalf("ToBase(%s, %d) unexpected error: %v", tc.input, tc.base, err)
			}
			if got != tc.want {
				t.Errorf("ToBase(%s, %d) = %q, want %q", tc.input, tc.base, got, tc.want)
			}
		})
	}
}

func TestToBaseBoundedExpansion(t *testing.T) {
	for _, precision := range []int{4, 12, 20} {
		c := mustContext(t, precision)
		third, err := c.Quo(One(), MustNewDecimal("3"))
		if err != nil {
			t.Fatalf("Quo unexpected error: %v", err)
		}

		got, err := c.ToHex(third)
		if err != nil {
			t.Fatalf("ToHex unexpected error: %v", err)
		}
		if !strings.HasPrefix(got, "0x0.") {
			t.Errorf("ToHex(1/3) = %q, want 0x0. prefix", got)
		}
		if len(got) > precision+2 {
			t.Errorf("ToHex(1/3) at precision %d = %q, longer than %d", precision, got, precision+2)
		}
	}
}

func TestToBaseErrors(t *testing.T) {
	c := DefaultContext()

	if _, err := c.ToBase(One(), 2); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("ToBase(1, 2) error = %v, want INVALID_INPUT", err)
	}
	if _, err := c.ToOct(MustNewDecimal("Infinity")); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("ToOct(Infinity) error = %v, want INVALID_INPUT", err)
	}
}

func TestSI(t *testing.T) {
	c := DefaultContext()

	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"expand mega", "10M", "10000000"},
		{"expand kilo with space", ".2 k", "200.0"},
		{"expand formatted", "12.315 M", "12315000.000"},
		{"expand giga", "1.5G", "1500000000.0"},
		{"format mega", "12315350", "12.315 M"},
		{"format unit", "10", "10.000"},
		{"format kilo", "1000", "1.000 k"},
		{"format negative", "-1500", "-1.500 k"},
		{"format below one", "0.5", "0.500"},
		{"format zero", "0", "0.000"},
		{"format exa", "2e18", "2.000 E"},
		{"text passthrough", "Heading", "Heading"},
		{"empty passthrough", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.SI(tc.input); got != tc.want {
				t.Errorf("SI(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSIRoundTrip(t *testing.T) {
	c := DefaultContext()

	for _, input := range []string{"12315350", "4200", "987654321", "15"} {
		formatted := c.SI(input)
		back := MustNewDecimal(c.SI(formatted))
		orig := MustNewDecimal(input)

		diff, err := c.Sub(back, orig)
		if err != nil {
			t.Fatalf("Sub unexpected error: %v", err)
		}
		// three decimals of the chosen prefix bound the display error
		limit, _ := c.Quo(orig.Abs(), MustNewDecimal("1000"))
		if diff.Abs().Cmp(limit) > 0 {
			t.Errorf("SI(SI(%s)) = %s via %q", input, back, formatted)
		}
	}
}
