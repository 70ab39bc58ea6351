// File: format.go
// Title: Magnitude Based Date Formatting
// Description: FormatDate renders a bare integer as a date by classifying its
//              magnitude as a day offset, an epoch timestamp or an ordinal.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial implementation

package timex

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/ncruces/go-strftime"
)

const (
	// DefaultDayOffsetLimit bounds |n| for integers read as day offsets
	DefaultDayOffsetLimit int64 = 1000

	// DefaultEpochMillisFloor is the value above which integers are epoch
	// milliseconds, roughly the year 5138 as epoch seconds
	DefaultEpochMillisFloor int64 = 100_000_000_000
)

// last representable instant, 9999-12-31T23:59:59.999
const (
	maxEpochSeconds int64 = 253402300799
	maxEpochMillis  int64 = 253402300799999
)

// Thresholds holds the magnitude boundaries used by FormatDate
type Thresholds struct {
	// DayOffsetLimit: |n| below it is a signed day offset from today
	DayOffsetLimit int64

	// EpochMillisFloor: n above it is milliseconds since the Unix epoch
	EpochMillisFloor int64
}

// DefaultThresholds returns the reference boundaries 1000 and 10^11
func DefaultThresholds() Thresholds {
	return Thresholds{
		DayOffsetLimit:   DefaultDayOffsetLimit,
		EpochMillisFloor: DefaultEpochMillisFloor,
	}
}

// moment is a resolved date with an optional time of day
type moment struct {
	at      civil.DateTime
	hasTime bool
}

func dateMoment(d civil.Date) moment {
	return moment{at: civil.DateTime{Date: d}}
}

func (m moment) iso() string {
	if !m.hasTime {
		return m.at.Date.String()
	}
	s := m.at.In(time.UTC).Format("2006-01-02T15:04:05")
	if micros := m.at.Time.Nanosecond / 1000; micros != 0 {
		s += fmt.Sprintf(".%06d", micros)
	}
	return s
}

func (m moment) format(format string) string {
	if format == "" {
		return m.iso()
	}
	return strftime.Format(format, m.at.In(time.UTC))
}

// FormatDate renders n with the default thresholds; see Thresholds.FormatDate
func FormatDate(n int64, format string, today Anchor) string {
	return DefaultThresholds().FormatDate(n, format, today)
}

// FormatDate renders n as a date, classifying it in order as:
//
//   - |n| < DayOffsetLimit: today plus n days
//   - n > EpochMillisFloor: milliseconds since 1970-01-01T00:00:00Z
//   - n > MaxOrdinal: seconds since 1970-01-01T00:00:00Z
//   - otherwise: an ordinal
//
// Values that land outside years 1 to 9999 render today's date. Without a
// format the result is ISO 8601, with a time part only for epoch values.
func (th Thresholds) FormatDate(n int64, format string, today Anchor) string {
	return th.resolve(n, today).format(format)
}

func (th Thresholds) resolve(n int64, today Anchor) moment {
	fallback := dateMoment(today.Today())

	switch {
	case n > -th.DayOffsetLimit && n < th.DayOffsetLimit:
		o := today.Ordinal().AddDays(n)
		d, err := o.Date()
		if err != nil {
			return fallback
		}
		return dateMoment(d)

	case n > th.EpochMillisFloor:
		if n > maxEpochMillis {
			return fallback
		}
		return epochMoment(time.UnixMilli(n))

	case n > int64(MaxOrdinal):
		if n > maxEpochSeconds {
			return fallback
		}
		return epochMoment(time.Unix(n, 0))

	default:
		d, err := FromOrdinal(n)
		if err != nil {
			return fallback
		}
		return dateMoment(d)
	}
}

func epochMoment(t time.Time) moment {
	return moment{at: civil.DateTimeOf(t.UTC()), hasTime: true}
}

// FormatDateText is FormatDate for cell text. Blank text means 0 (today);
// text that is not an integer, or does not fit 64 bits, renders today.
func FormatDateText(text, format string, today Anchor) string {
	return DefaultThresholds().FormatDateText(text, format, today)
}

// FormatDateText is FormatDate for cell text; see the package function
func (th Thresholds) FormatDateText(text, format string, today Anchor) string {
	text = strings.TrimSpace(text)
	if text == "" {
		text = "0"
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return dateMoment(today.Today()).format(format)
	}
	return th.FormatDate(n, format, today)
}
