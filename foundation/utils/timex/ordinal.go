// File: ordinal.go
// Title: Calendar Day Ordinals
// Description: Conversion between proleptic Gregorian dates and day ordinals
//              where ordinal 1 is 0001-01-01.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial implementation

package timex

import (
	"time"

	"cloud.google.com/go/civil"

	mdwerrors "github.com/msto63/tabfun/foundation/core/errors"
)

// Ordinal is a day count in the proleptic Gregorian calendar, 1 = 0001-01-01
type Ordinal int64

const (
	// MinOrdinal is the ordinal of 0001-01-01
	MinOrdinal Ordinal = 1

	// MaxOrdinal is the ordinal of 9999-12-31
	MaxOrdinal Ordinal = 3652059
)

const (
	minYear = 1
	maxYear = 9999
)

var ordinalEpoch = civil.Date{Year: 1, Month: time.January, Day: 1}

// ToOrdinal returns the ordinal of year-month-day. Months above 12 and days
// beyond the end of the month roll forward into the following months.
func ToOrdinal(year int, month time.Month, day int) (Ordinal, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() < minYear || t.Year() > maxYear {
		return 0, mdwerrors.TimexOutOfRange("ToOrdinal", t.Format("2006-01-02"), "0001-01-01", "9999-12-31")
	}
	return OrdinalOf(civil.DateOf(t)), nil
}

// OrdinalOf returns the ordinal of a civil date inside the supported range
func OrdinalOf(d civil.Date) Ordinal {
	return Ordinal(d.DaysSince(ordinalEpoch)) + MinOrdinal
}

// FromOrdinal returns the date of ordinal n
func FromOrdinal(n int64) (civil.Date, error) {
	if n < int64(MinOrdinal) || n > int64(MaxOrdinal) {
		return civil.Date{}, mdwerrors.TimexOutOfRange("FromOrdinal", n, MinOrdinal, MaxOrdinal)
	}
	return ordinalEpoch.AddDays(int(n - int64(MinOrdinal))), nil
}

// Valid reports whether o lies in [MinOrdinal, MaxOrdinal]
func (o Ordinal) Valid() bool {
	return o >= MinOrdinal && o <= MaxOrdinal
}

// Date returns the calendar date of o
func (o Ordinal) Date() (civil.Date, error) {
	return FromOrdinal(int64(o))
}

// AddDays returns o shifted by n days
func (o Ordinal) AddDays(n int64) Ordinal {
	return o + Ordinal(n)
}

// isoWeekday returns 1 for Monday through 7 for Sunday
func isoWeekday(d civil.Date) int {
	wd := int(d.In(time.UTC).Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
