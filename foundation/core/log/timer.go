// File: timer.go
// Title: Performance Timer
// Description: Measures the duration of an operation and logs it when stopped.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2025-08-22
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation of performance timing
// - 2025-08-14 v0.2.0: Dropped checkpoints
// - 2025-08-22 v0.2.1: Timer fields passed through unmerged

package log

import (
	"time"
)

// Timer measures an operation and logs its duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates and starts a new timer
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the level the completion entry is logged at
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to the completion entry
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop logs the completion entry and returns the elapsed time.
// Calling Stop more than once logs only the first time.
func (t *Timer) Stop() time.Duration {
	return t.stop(nil)
}

// StopWithError logs the completion entry with err attached
func (t *Timer) StopWithError(err error) time.Duration {
	return t.stop(err)
}

func (t *Timer) stop(err error) time.Duration {
	duration := t.Elapsed()
	if t.stopped {
		return duration
	}
	t.stopped = true

	fields := Fields{
		"operation":   t.operation,
		"duration_ms": float64(duration.Nanoseconds()) / 1000000,
	}

	level := t.level
	message := t.operation + " completed"
	if err != nil {
		message = t.operation + " failed"
		if level < LevelWarn {
			level = LevelWarn
		}
	}
	t.logger.log(level, message, err, t.fields, fields)
	return duration
}
