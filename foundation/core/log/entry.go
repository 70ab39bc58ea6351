// File: entry.go
// Title: Log Entries
// Description: The Entry handed to formatters. An entry combines the logger's
//              persistent context with the fields of a single call.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-08-22
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation of log entries
// - 2025-08-14 v0.2.0: Trimmed user context
// - 2025-08-22 v0.3.0: Entries are built from the logger context

package log

import (
	"time"
)

// Fields holds structured key-value context
type Fields map[string]interface{}

// Entry is one formatted log record
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string

	// RequestID identifies one value within a batch, CorrelationID the batch
	RequestID     string
	CorrelationID string

	Fields   Fields
	Error    error
	Duration time.Duration
}

// newEntry builds an entry from the logger context. Call fields override
// context fields with the same key.
func (l *Logger) newEntry(level Level, message string, err error, fields []Fields) *Entry {
	size := len(l.contextFields)
	for _, f := range fields {
		size += len(f)
	}

	entry := &Entry{
		Timestamp:     time.Now(),
		Level:         level,
		Message:       message,
		Logger:        l.name,
		RequestID:     l.requestID,
		CorrelationID: l.correlationID,
		Fields:        make(Fields, size),
		Error:         err,
	}
	for k, v := range l.contextFields {
		entry.Fields[k] = v
	}
	for _, f := range fields {
		for k, v := range f {
			entry.Fields[k] = v
		}
	}
	return entry
}
