package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kfx-lang/lr0table/tester"
)

func init() {
	cmd := &cobra.Command{
		Use:   "test <scenario file>...",
		Short: "Run declarative grammar/input/expected-outcome scenario fixtures",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runTest,
	}
	rootCmd.AddCommand(cmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	failures := 0
	for _, path := range args {
		results, err := tester.RunFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		for _, r := range results {
			fmt.Println(r)
			if !r.Passed {
				failures++
			}
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d scenario(s) failed", failures)
	}
	return nil
}
