package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/tabfun/foundation/core/log"
)

var batchExtra []string

var batchCmd = &cobra.Command{
	Use:   "batch <verb> [values...]",
	Short: "Call one verb for many values",
	Long: `Calls a verb once per value, the way a computed column is filled.
Values come from the arguments or, when none are given, one per line
from stdin. Every call of a batch sees the same today anchor.

Failed calls print "#ERR <message>" and the command exits non-zero.

Examples:
  tabfun batch parse_date "22 November 2022" "next friday"
  cat dates.txt | tabfun batch date --with "%d/%m/%Y"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringSliceVar(&batchExtra, "with", nil, "extra arguments appended to every call")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	reg, env, err := setup()
	if err != nil {
		printError("setup failed", err)
		return err
	}

	verb := args[0]
	values := args[1:]
	if len(values) == 0 {
		values, err = readLines(cmd.InOrStdin())
		if err != nil {
			printError("reading stdin failed", err)
			return err
		}
	}

	logger := env.Logger.WithCorrelationID(uuid.New().String()).WithField("verb", verb)
	batchEnv := env.Pinned().WithLogger(logger)
	timer := logger.StartTimer("batch").WithField("values", len(values))

	out := cmd.OutOrStdout()
	failed := 0
	for i, value := range values {
		rowEnv := batchEnv.WithLogger(logger.WithRequestID(strconv.Itoa(i + 1)))
		callArgs := append([]string{value}, batchExtra...)
		result, err := reg.Call(rowEnv, verb, callArgs...)
		if err != nil {
			failed++
			fmt.Fprintf(out, "#ERR %v\n", err)
			continue
		}
		fmt.Fprintln(out, result)
	}
	timer.Stop()

	logger.Info("batch finished", mdwlog.Fields{
		"values": len(values),
		"failed": failed,
		"today":  batchEnv.Today.String(),
	})

	if failed > 0 {
		return fmt.Errorf("%d of %d values failed", failed, len(values))
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
