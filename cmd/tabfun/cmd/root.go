package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mdwconfig "github.com/msto63/tabfun/foundation/core/config"
	mdwlog "github.com/msto63/tabfun/foundation/core/log"
	"github.com/msto63/tabfun/pkg/verbs"
)

var (
	cfgFile       string
	today         string
	precision     int
	logLevel      string
	abbreviations bool
)

var rootCmd = &cobra.Command{
	Use:   "tabfun",
	Short: "tabfun - scalar conversion verbs for table columns",
	Long: `tabfun exposes the date, clock and fixed-precision math conversions
used by computed table columns as named verbs.

This command is a harness for the verb library. It calls verbs on values
given on the command line or on stdin; it does not evaluate tables.

Settings are read from a TOML or YAML file (--config) and from
TABFUN_* environment variables; flags override both.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().StringVar(&today, "today", "", "fixed today anchor as YYYY-MM-DD (default: wall clock)")
	rootCmd.PersistentFlags().IntVar(&precision, "precision", 0, "significant digits for decimal math (default: from config, 12)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&abbreviations, "abbrev", false, "accept unique verb prefixes")
}

// loadSettings applies flag overrides to the configured settings
func loadSettings() (mdwconfig.Settings, error) {
	settings, err := mdwconfig.LoadSettings(cfgFile)
	if err != nil {
		return mdwconfig.Settings{}, err
	}
	if today != "" {
		settings.Today = today
	}
	if precision != 0 {
		settings.Precision = precision
	}
	if logLevel != "" {
		settings.LogLevel = logLevel
	}
	return settings, nil
}

// setup builds the registry and environment shared by the subcommands
func setup() (*verbs.Registry, *verbs.Env, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, nil, err
	}

	env, err := verbs.NewEnv(settings)
	if err != nil {
		return nil, nil, err
	}
	mdwlog.SetDefault(env.Logger)

	reg, err := verbs.New(verbs.Options{
		Logger:              env.Logger,
		EnableAbbreviations: abbreviations,
	})
	if err != nil {
		return nil, nil, err
	}
	return reg, env, nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
