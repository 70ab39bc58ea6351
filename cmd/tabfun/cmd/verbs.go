package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var verbsCmd = &cobra.Command{
	Use:   "verbs",
	Short: "List the available verbs",
	RunE:  runVerbs,
}

func init() {
	rootCmd.AddCommand(verbsCmd)
}

func runVerbs(cmd *cobra.Command, args []string) error {
	reg, _, err := setup()
	if err != nil {
		printError("setup failed", err)
		return err
	}

	out := cmd.OutOrStdout()
	for _, name := range reg.Names() {
		def, err := reg.Lookup(name)
		if err != nil {
			return err
		}

		mode := "strict"
		if def.Lenient {
			mode = "lenient"
		}
		fmt.Fprintf(out, "  %-12s %-26s %-8s %s\n", def.Name, def.Usage, mode, def.Description)
		if len(def.Aliases) > 0 {
			fmt.Fprintf(out, "  %-12s aliases: %s\n", "", strings.Join(def.Aliases, ", "))
		}
	}
	return nil
}
