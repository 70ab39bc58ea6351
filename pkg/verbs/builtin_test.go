// File: builtin_test.go
// Title: Builtin Verb Tests
// Description: End to end tests of every builtin verb through Registry.Call
//              with a fixed today anchor.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-20
// Modified: 2025-08-20
//
// Change History:
// - 2025-08-20 v0.1.0: Initial implementation

package verbs

import (
	"testing"

	mdwconfig "github.com/msto63/tabfun/foundation/core/config"
	mdwerror "github.com/msto63/tabfun/foundation/core/error"
	mdwtimex "github.com/msto63/tabfun/foundation/utils/timex"
)

func fixedEnv(t *testing.T) *Env {
	t.Helper()
	s := mdwconfig.DefaultSettings()
	s.Today = "2022-03-17"
	s.LogLevel = "error"
	env, err := NewEnv(s)
	if err != nil {
		t.Fatalf("NewEnv() unexpected error: %v", err)
	}
	return env
}

func TestBuiltinVerbs(t *testing.T) {
	r := newBuiltinRegistry(t)
	env := fixedEnv(t)

	testCases := []struct {
		verb string
		args []string
		want string
	}{
		// dates
		{"date", []string{"730486"}, "2001-01-01"},
		{"date", []string{"10"}, "2022-03-27"},
		{"date", []string{"730486", "%a"}, "Mon"},
		{"date", []string{"3652060"}, "1970-02-12T06:27:40"},
		{"parse_date", []string{"22 November 2022"}, "738481"},
		{"parse_date", []string{"Sunday"}, "738234"},
		{"ordinal", []string{"2001-01-01"}, "730486"},
		{"base", nil, "738231"},
		{"base", []string{"2022-W47-2"}, "738481"},
		{"dow", []string{"2001-01-01"}, "Mon"},
		{"dow", nil, "Thu"},
		{"make_date", []string{"2023", "13", "43"}, "2024-02-12"},
		{"make_date", []string{"2023", "13", "43", "%d/%m/%Y"}, "12/02/2024"},
		{"epoch", []string{"2000-12-31 23:59:59"}, "978307199"},
		{"uk_tax_year", []string{"2023-04-05"}, "TY22/23"},
		{"taxyear", []string{"2023-04-06"}, "TY23/24"},

		// clock
		{"hms", []string{"1.5"}, "1:30:00.000"},
		{"hms", []string{"90", "mins"}, "1:30:00.000"},
		{"hms", []string{"3723", "s"}, "1:02:03.000"},
		{"hr", []string{"1:30"}, "1.5"},
		{"mins", []string{"1:30"}, "90"},
		{"secs", []string{"1:02:03"}, "3723"},
		{"as_time", []string{"4 p.m."}, "16:00"},
		{"as_time", []string{"12 midnight"}, "00:00"},

		// trigonometry
		{"sind", []string{"30"}, "0.5"},
		{"cosd", []string{"90"}, "0"},
		{"tand", []string{"45"}, "1"},
		{"tand", []string{"90"}, "Infinity"},
		{"sin", []string{"1"}, "0.8414709848"},
		{"degrees", []string{"1"}, "57.2957795131"},
		{"radians", []string{"180"}, "3.14159265359"},
		{"radians", []string{"45"}, "0.7853981634"},
		{"degrees", []string{"6.28318530718"}, "360"},
		{"tand", []string{"359999999999910"}, "Infinity"},
		{"pyth_add", []string{"5", "12"}, "13"},
		{"pyth", []string{"1", "1"}, "1.41421356237"},
		{"angle", []string{"4", "3"}, "36.8698976462"},
		{"dir", []string{"45"}, "0.7071067812 0.7071067812"},
		{"mexp", []string{"256"}, "2.71828182846"},
		{"mlog", []string{"1"}, "0"},

		// numerals
		{"hex", []string{"3.14"}, "0x3.23d70a3d70"},
		{"oct", []string{"100"}, "0o144"},
		{"si", []string{"12315350"}, "12.315 M"},
		{"si", []string{"10M"}, "10000000"},

		// integers
		{"factors", []string{"817"}, "19 43"},
		{"factors", []string{"1"}, ""},
		{"factors", []string{"1000039"}, "1000039"},
		{"gcd", []string{"299", "702"}, "13"},
		{"gcd", []string{"34", "3.14"}, "1"},
		{"gcd", nil, "0"},
		{"lcm", []string{"34", "3"}, "102"},
		{"comb", []string{"34", "3"}, "5984"},
		{"perm", []string{"11", "7"}, "1663200"},
	}

	for _, tc := range testCases {
		t.Run(tc.verb, func(t *testing.T) {
			got, err := r.Call(env, tc.verb, tc.args...)
			if err != nil {
				t.Fatalf("Call(%s %v) unexpected error: %v", tc.verb, tc.args, err)
			}
			if got != tc.want {
				t.Errorf("Call(%s %v) = %q, want %q", tc.verb, tc.args, got, tc.want)
			}
		})
	}
}

func TestStrictVerbErrors(t *testing.T) {
	r := newBuiltinRegistry(t)
	env := fixedEnv(t)

	testCases := []struct {
		verb  string
		args  []string
		check func(error) bool
	}{
		{"parse_date", []string{"not a date"}, mdwtimex.IsUnparseable},
		{"uk_tax_year", []string{"someday"}, mdwtimex.IsUnparseable},
		{"dow", []string{"0"}, mdwtimex.IsUnparseable},
		{"hr", []string{"1:xx"}, mdwtimex.IsMalformedTime},
		{"make_date", []string{"10000", "1", "1"}, mdwtimex.IsOutOfRange},
		{"make_date", []string{"x", "1", "1"}, hasCode(mdwerror.CodeInvalidInput)},
		{"hms", []string{"abc"}, hasCode(mdwerror.CodeInvalidInput)},
		{"hms", []string{"1", "fortnights"}, hasCode(mdwerror.CodeInvalidInput)},
		{"sin", []string{"abc"}, hasCode(mdwerror.CodeInvalidInput)},
		{"factors", []string{"0"}, hasCode(mdwerror.CodeInvalidInput)},
		{"factors", []string{"1e30"}, hasCode(mdwerror.CodeInvalidInput)},
		{"comb", []string{"-1", "2"}, hasCode(mdwerror.CodeInvalidInput)},
		{"mlog", []string{"-1"}, hasCode(mdwerror.CodeArithmetic)},
		{"hex", []string{"Infinity"}, hasCode(mdwerror.CodeInvalidInput)},
		{"sin", []string{"1", "2"}, hasCode(mdwerror.CodeArgumentCount)},
		{"hms", nil, hasCode(mdwerror.CodeArgumentCount)},
	}

	for _, tc := range testCases {
		t.Run(tc.verb, func(t *testing.T) {
			_, err := r.Call(env, tc.verb, tc.args...)
			if !tc.check(err) {
				t.Errorf("Call(%s %v) error = %v, wrong kind", tc.verb, tc.args, err)
			}
		})
	}
}

func hasCode(code mdwerror.Code) func(error) bool {
	return func(err error) bool {
		return mdwerror.HasCode(err, code)
	}
}

func TestLenientVerbsNeverFail(t *testing.T) {
	r := newBuiltinRegistry(t)
	env := fixedEnv(t)

	inputs := []string{"", "garbage", "-99999999999999999999999", "9223372036854775807", "12:75 pm", "1e400"}

	for _, name := range r.Names() {
		def, err := r.Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%s) unexpected error: %v", name, err)
		}
		if !def.Lenient {
			continue
		}
		for _, input := range inputs {
			if _, err := r.Call(env, name, input); err != nil {
				t.Errorf("lenient verb %s(%q) failed: %v", name, input, err)
			}
		}
	}

	if got, _ := r.Call(env, "date", "garbage"); got != "2022-03-17" {
		t.Errorf("date(garbage) = %q, want today", got)
	}
	if got, _ := r.Call(env, "as_time", "spam"); got != "spam" {
		t.Errorf("as_time(spam) = %q, want passthrough", got)
	}
}

func TestEnvPrecision(t *testing.T) {
	r := newBuiltinRegistry(t)
	s := mdwconfig.DefaultSettings()
	s.Precision = 6
	env, err := NewEnv(s)
	if err != nil {
		t.Fatalf("NewEnv() unexpected error: %v", err)
	}

	if got, err := r.Call(env, "sin", "1"); err != nil || got != "0.8415" {
		t.Errorf("sin(1) at precision 6 = %q, %v; want 0.8415", got, err)
	}
	if got, err := r.Call(fixedEnv(t), "sin", "1"); err != nil || got != "0.8414709848" {
		t.Errorf("sin(1) at precision 12 = %q, %v; want 0.8414709848", got, err)
	}
}

func TestNewEnv(t *testing.T) {
	env := fixedEnv(t)
	if env.Today.IsWallClock() || env.Today.String() != "2022-03-17" {
		t.Errorf("Today = %v, want fixed 2022-03-17", env.Today)
	}
	if env.Math.Precision() != 12 {
		t.Errorf("Precision() = %d, want 12", env.Math.Precision())
	}
	if env.Thresholds != mdwtimex.DefaultThresholds() {
		t.Errorf("Thresholds = %+v, want defaults", env.Thresholds)
	}

	s := mdwconfig.DefaultSettings()
	s.Precision = 0
	if _, err := NewEnv(s); !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Errorf("NewEnv(precision 0) error = %v, want INVALID_CONFIG", err)
	}
}

func TestEnvPinned(t *testing.T) {
	env := DefaultEnv()
	if !env.Today.IsWallClock() {
		t.Fatal("DefaultEnv should follow the wall clock")
	}

	pinned := env.Pinned()
	if pinned.Today.IsWallClock() {
		t.Error("Pinned() should fix the anchor")
	}
	if !env.Today.IsWallClock() {
		t.Error("Pinned() must not modify the receiver")
	}

	fixed := fixedEnv(t)
	if got := fixed.Pinned().Today.String(); got != "2022-03-17" {
		t.Errorf("Pinned() of a fixed anchor = %q, want 2022-03-17", got)
	}
}
