// Package timex interprets ambiguous cell values as calendar dates and times.
//
// Package: timex
// Title: Date and Time Interpretation for tabfun Verbs
// Description: This package converts loosely formatted values found in table
//              cells into calendar dates and back. It covers day ordinals,
//              a prioritised date format cascade, magnitude based formatting
//              of bare integers, sexagesimal clock values, 12-hour clock
//              phrases and the UK fiscal year.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2025-08-14 v0.2.0: Rebuilt around day ordinals and explicit today anchors
//
// # Day Ordinals
//
// An Ordinal counts days in the proleptic Gregorian calendar so that ordinal 1
// is 0001-01-01 and MaxOrdinal is 9999-12-31:
//
//	o, _ := timex.ToOrdinal(2001, time.January, 1) // 730486
//	d, _ := timex.FromOrdinal(730486)              // 2001-01-01
//
// Month and day overflow roll forward, so ToOrdinal(2023, 13, 1) is the
// ordinal of 2024-01-01. FromOrdinal fails outside [MinOrdinal, MaxOrdinal].
//
// # Today Anchors
//
// Weekday names and small day offsets are resolved against an Anchor. The
// zero Anchor reads the wall clock (UTC) on every call and never caches it;
// ParseAnchor and AnchorAt pin it:
//
//	today, _ := timex.ParseAnchor("2022-03-17")
//	o, _ := timex.ParseDate("Sunday", today) // 2022-03-20
//
// # Strict and Lenient Functions
//
// ParseDate, FromOrdinal, FromSexagesimal and the functions built on them
// return typed errors (see IsUnparseable, IsOutOfRange, IsMalformedTime).
// FormatDate, NormalizeClockPhrase and EpochFromDateTime never fail: they fall
// back to today's date or return the input unchanged.
//
// # Format Cascade
//
// ParseDate tries ordinals, then weekday names, then an ordered table of
// date formats in which day-first forms come before month-first forms. The
// table is listed by DateFormats.
package timex
