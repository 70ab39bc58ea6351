// File: level.go
// Title: Log Levels
// Description: Log levels from trace to fatal, their long and short names and
//              parsing of level names from settings files and flags.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-08-22
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with log levels
// - 2025-08-14 v0.2.0: Removed audit level and console colours
// - 2025-08-22 v0.3.0: Names come from one table; accepts settings aliases

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace logs one entry per verb call
	LevelTrace Level = iota
	// LevelDebug logs failed calls and fallbacks
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	// LevelFatal ends the program after logging
	LevelFatal
)

var levelNames = [...]struct {
	long  string
	short string
}{
	LevelTrace: {"trace", "TRC"},
	LevelDebug: {"debug", "DBG"},
	LevelInfo:  {"info", "INF"},
	LevelWarn:  {"warn", "WRN"},
	LevelError: {"error", "ERR"},
	LevelFatal: {"fatal", "FTL"},
}

// spellings accepted in addition to the long and short names
var levelAliases = map[string]Level{
	"information": LevelInfo,
	"warning":     LevelWarn,
}

func (l Level) valid() bool {
	return l >= LevelTrace && l <= LevelFatal
}

// String returns the lower case level name used in JSON output
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l].long
}

// ShortString returns the three letter tag used by the text formatter
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelNames[l].short
}

// enabled reports whether l passes the minimum level
func (l Level) enabled(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel reads a level name; case and surrounding space are ignored
func ParseLevel(level string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(level))
	for l, n := range levelNames {
		if name == n.long || name == strings.ToLower(n.short) {
			return Level(l), nil
		}
	}
	if l, ok := levelAliases[name]; ok {
		return l, nil
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError reports an unknown level or format name
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel is the level used when settings name none
func DefaultLevel() Level {
	return LevelInfo
}
