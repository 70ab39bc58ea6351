// File: env.go
// Title: Verb Evaluation Environment
// Description: Env carries the precision context, the today anchor, the
//              magnitude thresholds and the logger into every verb call.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-20
// Modified: 2025-08-20
//
// Change History:
// - 2025-08-20 v0.1.0: Initial implementation

package verbs

import (
	mdwconfig "github.com/msto63/tabfun/foundation/core/config"
	mdwlog "github.com/msto63/tabfun/foundation/core/log"
	mdwmathx "github.com/msto63/tabfun/foundation/utils/mathx"
	mdwtimex "github.com/msto63/tabfun/foundation/utils/timex"
)

// Env is the explicit state a verb may read. It is never modified by a
// call, so one Env can serve concurrent callers.
type Env struct {
	Math       *mdwmathx.Context
	Today      mdwtimex.Anchor
	Thresholds mdwtimex.Thresholds
	Logger     *mdwlog.Logger
}

// DefaultEnv uses 12 digits, the wall clock, the default thresholds and a
// discarding logger
func DefaultEnv() *Env {
	return &Env{
		Math:       mdwmathx.DefaultContext(),
		Today:      mdwtimex.WallClock(),
		Thresholds: mdwtimex.DefaultThresholds(),
		Logger:     mdwlog.Discard(),
	}
}

// NewEnv builds an Env from validated settings
func NewEnv(s mdwconfig.Settings) (*Env, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	ctx, err := mdwmathx.NewContext(s.Precision)
	if err != nil {
		return nil, err
	}

	today := mdwtimex.WallClock()
	if s.Today != "" {
		if today, err = mdwtimex.ParseAnchor(s.Today); err != nil {
			return nil, err
		}
	}

	return &Env{
		Math:  ctx,
		Today: today,
		Thresholds: mdwtimex.Thresholds{
			DayOffsetLimit:   s.DayOffsetLimit,
			EpochMillisFloor: s.EpochMillisFloor,
		},
		Logger: s.Logger(),
	}, nil
}

// Pinned returns a copy whose wall-clock anchor is frozen at the current
// instant, so a batch of calls sees one "today"
func (e *Env) Pinned() *Env {
	c := *e
	c.Today = e.Today.Pin()
	return &c
}

// WithLogger returns a copy logging to logger
func (e *Env) WithLogger(logger *mdwlog.Logger) *Env {
	c := *e
	c.Logger = logger
	return &c
}

func (e *Env) logger() *mdwlog.Logger {
	if e.Logger == nil {
		return mdwlog.Discard()
	}
	return e.Logger
}

func (e *Env) math() *mdwmathx.Context {
	if e.Math == nil {
		return mdwmathx.DefaultContext()
	}
	return e.Math
}
