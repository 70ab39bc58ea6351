// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads tabfun settings from TOML or YAML files
//              with environment variable overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-08-14 v0.2.0: Added Settings, dropped discovery and hot-reloading

/*
Package config provides configuration loading for tabfun.

Two layers are exposed. Config is a generic, thread-safe key/value view over a
TOML or YAML document with dot-notation access and environment overrides.
Settings is the typed view the verb layer consumes:

	precision          = 12                # significant digits for decimal math
	day_offset_limit   = 1000              # |n| below this is a day offset
	epoch_millis_floor = 100000000000      # n above this is epoch milliseconds
	today              = "2022-03-17"      # optional fixed anchor

	[log]
	level  = "info"
	format = "text"

Every key can be overridden from the environment with the TABFUN_ prefix,
for example TABFUN_PRECISION=20 or TABFUN_LOG_LEVEL=debug.

	settings, err := mdwconfig.LoadSettings("tabfun.toml")
	if err != nil {
		return err
	}

Settings are read-only after loading. They are validated by LoadSettings and
converted into an explicit evaluation environment by the verbs package.
*/
package config
