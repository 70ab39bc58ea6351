package main

import (
	"os"

	"github.com/msto63/tabfun/cmd/tabfun/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
