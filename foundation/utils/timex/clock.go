// File: clock.go
// Title: Sexagesimal and Clock Phrase Conversions
// Description: Conversion between fractional quantities and H:MM:SS.sss text,
//              and normalisation of 12-hour clock phrases to HH:MM.
// Author: msto63
// Version: v0.1.1
// Created: 2025-08-14
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-14 v0.1.0: Initial implementation
// - 2025-08-18 v0.1.1: ParseUnit for verb unit labels

package timex

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	mdwerrors "github.com/msto63/tabfun/foundation/core/errors"
)

// Unit names the unit of a fractional clock quantity
type Unit int

const (
	// UnitHours is the unit of the leading H field
	UnitHours Unit = iota

	// UnitMinutes counts minutes
	UnitMinutes

	// UnitSeconds counts seconds
	UnitSeconds
)

// String returns the unit name
func (u Unit) String() string {
	switch u {
	case UnitHours:
		return "hours"
	case UnitMinutes:
		return "minutes"
	case UnitSeconds:
		return "seconds"
	default:
		return "unknown"
	}
}

var unitLabels = map[string]Unit{
	"h": UnitHours, "hr": UnitHours, "hrs": UnitHours, "hour": UnitHours, "hours": UnitHours,
	"d": UnitHours, "deg": UnitHours, "degrees": UnitHours,
	"m": UnitMinutes, "min": UnitMinutes, "mins": UnitMinutes, "minute": UnitMinutes, "minutes": UnitMinutes,
	"s": UnitSeconds, "sec": UnitSeconds, "secs": UnitSeconds, "second": UnitSeconds, "seconds": UnitSeconds,
}

// ParseUnit reads a unit label such as "h", "mins" or "seconds". Degrees
// count as hours. An empty label is hours.
func ParseUnit(label string) (Unit, error) {
	l := strings.ToLower(strings.TrimSpace(label))
	if l == "" {
		return UnitHours, nil
	}
	if u, ok := unitLabels[l]; ok {
		return u, nil
	}
	return UnitHours, mdwerrors.InvalidInput("timex", "ParseUnit", label, "hours, minutes or seconds")
}

// shift is the exponent offset used by FromSexagesimal for u
func (u Unit) shift() int {
	return int(u)
}

// ToSexagesimal formats value, counted in unit, as H:MM:SS.sss. The leading
// field is floored and unpadded; degrees format the same way as hours.
func ToSexagesimal(value float64, unit Unit) string {
	hours := value / math.Pow(60, float64(unit.shift()))

	hh := math.Floor(hours)
	r := hours - hh
	r *= 60
	mm := math.Floor(r)
	r -= mm

	return fmt.Sprintf("%d:%02d:%06.3f", int64(hh), int64(mm), r*60)
}

// FromSexagesimal reads colon separated fields and returns
// Σ field[i] * 60^(shift-i): shift 0 gives hours, 1 minutes, 2 seconds.
// Empty or non-numeric fields give an error satisfying IsMalformedTime.
func FromSexagesimal(text string, shift int) (float64, error) {
	total := 0.0
	for i, field := range strings.Split(text, ":") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return 0, mdwerrors.TimexMalformedTime("FromSexagesimal", text, err)
		}
		total += v * math.Pow(60, float64(shift-i))
	}
	return total, nil
}

// Hours reads H:MM:SS.sss as fractional hours
func Hours(text string) (float64, error) {
	return FromSexagesimal(text, UnitHours.shift())
}

// Minutes reads H:MM:SS.sss as fractional minutes
func Minutes(text string) (float64, error) {
	return FromSexagesimal(text, UnitMinutes.shift())
}

// Seconds reads H:MM:SS.sss as fractional seconds
func Seconds(text string) (float64, error) {
	return FromSexagesimal(text, UnitSeconds.shift())
}

var (
	noonPhrases     = map[string]bool{"noon": true, "12noon": true, "12pm": true, "1200pm": true}
	midnightPhrases = map[string]bool{"midnight": true, "12midnight": true, "12am": true, "1200am": true}
)

// NormalizeClockPhrase turns a 12-hour phrase such as "4 p.m." or
// "11:59 a.m." into 24-hour HH:MM. Whitespace, dots and colons are ignored.
// Text outside that grammar is returned unchanged.
func NormalizeClockPhrase(text string) string {
	ts := strings.Join(strings.Fields(strings.ToLower(text)), "")
	ts = strings.NewReplacer(".", "", ":", "").Replace(ts)

	switch {
	case noonPhrases[ts]:
		return "12:00"
	case midnightPhrases[ts]:
		return "00:00"
	}

	var pm bool
	switch {
	case strings.HasSuffix(ts, "am"):
	case strings.HasSuffix(ts, "pm"):
		pm = true
	default:
		return text
	}

	digits := ts[:len(ts)-2]
	if len(digits) < 1 || len(digits) > 4 || !isDigits(digits) {
		return text
	}

	hh, mm := digits, "0"
	if len(digits) > 2 {
		hh, mm = digits[:len(digits)-2], digits[len(digits)-2:]
	}
	hour, _ := strconv.Atoi(hh)
	minute, _ := strconv.Atoi(mm)
	if minute > 59 {
		return text
	}

	hour %= 12
	if pm {
		hour += 12
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
