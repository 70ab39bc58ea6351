// File: settings.go
// Title: Typed tabfun Settings
// Description: Typed settings read from a Config: decimal precision, magnitude
//              thresholds for integer date interpretation, an optional fixed
//              "today" anchor and logger options.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial implementation

package config

import (
	"strings"

	"cloud.google.com/go/civil"

	mdwerrors "github.com/msto63/tabfun/foundation/core/errors"
	mdwlog "github.com/msto63/tabfun/foundation/core/log"
)

// EnvPrefix is the prefix of environment overrides
const EnvPrefix = "TABFUN"

// MaxPrecision bounds the decimal precision a configuration may request
const MaxPrecision = 100

// Keys of the settings document
const (
	KeyPrecision        = "precision"
	KeyDayOffsetLimit   = "day_offset_limit"
	KeyEpochMillisFloor = "epoch_millis_floor"
	KeyToday            = "today"
	KeyLogLevel         = "log.level"
	KeyLogFormat        = "log.format"
)

// Settings holds the values the verb layer is built from
type Settings struct {
	Precision        int
	DayOffsetLimit   int64
	EpochMillisFloor int64
	Today            string
	LogLevel         string
	LogFormat        string
}

// DefaultSettings returns the reference behaviour: 12 significant digits,
// day offsets below 1000 and epoch milliseconds above 10^11.
func DefaultSettings() Settings {
	return Settings{
		Precision:        12,
		DayOffsetLimit:   1000,
		EpochMillisFloor: 100_000_000_000,
		LogLevel:         "info",
		LogFormat:        "text",
	}
}

// SettingsFrom reads Settings from cfg, keeping defaults for absent keys
func SettingsFrom(cfg *Config) Settings {
	def := DefaultSettings()
	return Settings{
		Precision:        cfg.GetInt(KeyPrecision, def.Precision),
		DayOffsetLimit:   cfg.GetInt64(KeyDayOffsetLimit, def.DayOffsetLimit),
		EpochMillisFloor: cfg.GetInt64(KeyEpochMillisFloor, def.EpochMillisFloor),
		Today:            strings.TrimSpace(cfg.GetString(KeyToday, def.Today)),
		LogLevel:         cfg.GetString(KeyLogLevel, def.LogLevel),
		LogFormat:        cfg.GetString(KeyLogFormat, def.LogFormat),
	}
}

// LoadSettings loads and validates Settings from filePath. An empty path
// yields the defaults with environment overrides applied.
func LoadSettings(filePath string) (Settings, error) {
	cfg := Empty(EnvPrefix)
	if filePath != "" {
		loaded, err := LoadWithOptions(filePath, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: EnvPrefix,
		})
		if err != nil {
			return Settings{}, err
		}
		cfg = loaded
	}

	settings := SettingsFrom(cfg)
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Validate checks that every setting is usable
func (s Settings) Validate() error {
	if s.Precision < 1 || s.Precision > MaxPrecision {
		return mdwerrors.ConfigInvalid(KeyPrecision, s.Precision, "must be between 1 and 100")
	}
	if s.DayOffsetLimit <= 0 {
		return mdwerrors.ConfigInvalid(KeyDayOffsetLimit, s.DayOffsetLimit, "must be positive")
	}
	if s.EpochMillisFloor <= 0 {
		return mdwerrors.ConfigInvalid(KeyEpochMillisFloor, s.EpochMillisFloor, "must be positive")
	}
	if s.Today != "" {
		if _, err := civil.ParseDate(s.Today); err != nil {
			return mdwerrors.ConfigInvalid(KeyToday, s.Today, "must be a YYYY-MM-DD date")
		}
	}
	if _, err := mdwlog.ParseLevel(s.LogLevel); err != nil {
		return mdwerrors.ConfigInvalid(KeyLogLevel, s.LogLevel, err.Error())
	}
	if _, err := mdwlog.ParseFormat(s.LogFormat); err != nil {
		return mdwerrors.ConfigInvalid(KeyLogFormat, s.LogFormat, err.Error())
	}
	return nil
}

// Logger builds a logger from the log settings. Settings that passed
// Validate never fail here.
func (s Settings) Logger() *mdwlog.Logger {
	level, _ := mdwlog.ParseLevel(s.LogLevel)
	format, _ := mdwlog.ParseFormat(s.LogFormat)
	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Name:   "tabfun",
	})
}
