// Command lr0gen is the thin external shell around the grammar and
// driver packages: it augments a grammar, prints its canonical
// collection and ACTION/GOTO table, and drives the shift-reduce parser
// over an input line, exactly what the original tool's main() did
// before it was decomposed into a reusable library.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootFlags = struct {
	configPath *string
}{}

var rootCmd = &cobra.Command{
	Use:           "lr0gen",
	Short:         "Build LR(0) parsing tables and drive a shift-reduce parser",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootFlags.configPath = rootCmd.PersistentFlags().String("config", "lr0table.yaml", "path to an optional YAML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
