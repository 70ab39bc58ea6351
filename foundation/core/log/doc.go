// Package log provides structured logging for the tabfun verb layer.
//
// Package: log
// Title: tabfun Structured Logging Framework
// Description: This package implements structured logging with levels, persistent
//              context fields, JSON and text output and integration with the
//              tabfun error type. The conversion functions themselves never log;
//              the verb registry and the command line harness do.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-08-14 v0.2.0: Dropped async buffering and audit level
//
// Usage:
//   import mdwlog "github.com/msto63/tabfun/foundation/core/log"
//
//   logger := mdwlog.New().
//     WithLevel(mdwlog.LevelDebug).
//     WithFormat(mdwlog.FormatText).
//     WithField("component", "verbs")
//
//   logger.Debug("verb fell back to today", mdwlog.Fields{"verb": "date"})
//   logger.LogError(err)
package log
