package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var callCmd = &cobra.Command{
	Use:   "call <verb> [args...]",
	Short: "Call one verb",
	Long: `Calls a verb with the given arguments and prints the result.

Examples:
  tabfun call parse_date "22 November 2022"
  tabfun call --today 2022-03-17 date 10
  tabfun call --precision 20 mexp 256`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCall,
}

func init() {
	rootCmd.AddCommand(callCmd)
}

func runCall(cmd *cobra.Command, args []string) error {
	reg, env, err := setup()
	if err != nil {
		printError("setup failed", err)
		return err
	}

	result, err := reg.Call(env, args[0], args[1:]...)
	if err != nil {
		printError(args[0], err)
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}
