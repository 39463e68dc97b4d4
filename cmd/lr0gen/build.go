package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kfx-lang/lr0table/compressor"
	"github.com/kfx-lang/lr0table/config"
	"github.com/kfx-lang/lr0table/diag"
	"github.com/kfx-lang/lr0table/grammar"
	"github.com/kfx-lang/lr0table/render"
	"github.com/kfx-lang/lr0table/specfmt"
)

var buildFlags = struct {
	strictConflicts *bool
	jsonOut         *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "build <grammar id>",
		Short: "Augment a grammar and print its canonical collection and parsing table",
		Args:  cobra.ExactArgs(1),
		RunE:  runBuild,
	}
	buildFlags.strictConflicts = cmd.Flags().Bool("strict-conflicts", false, "treat any reported conflict as a fatal error")
	buildFlags.jsonOut = cmd.Flags().String("json", "", "also write the deduplicated ACTION/GOTO table to this file as JSON")
	rootCmd.AddCommand(cmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(*rootFlags.configPath)
	if err != nil {
		return err
	}
	if *buildFlags.strictConflicts {
		cfg.StrictConflicts = true
	}

	_, _, table, err := buildGrammar(cfg, args[0])
	if err != nil {
		return err
	}

	render.States(os.Stdout, table.Automaton, table.Prods)
	render.Table(os.Stdout, table)
	if len(table.Conflicts) > 0 {
		render.Conflicts(os.Stderr, table.Conflicts)
	}

	if *buildFlags.jsonOut != "" {
		if err := compressor.WriteTableJSON(*buildFlags.jsonOut, table); err != nil {
			return fmt.Errorf("writing %s: %w", *buildFlags.jsonOut, err)
		}
		fmt.Printf("table written to %s\n", *buildFlags.jsonOut)
	}
	return nil
}

// buildGrammar loads, classifies, and augments grammar id into a
// parsing table, reporting diagnostics to stderr. It is shared by the
// build, parse, and repl subcommands.
func buildGrammar(cfg *config.Config, id string) (*grammar.ProductionSet, *grammar.SymbolSet, *grammar.Table, error) {
	stream := diag.NewStream()
	prods, err := specfmt.ReadGrammarFile(cfg.GrammarDir, id, stream)
	printWarnings(stream)
	if err != nil {
		return nil, nil, nil, err
	}

	syms := grammar.ClassifySymbols(prods)
	automaton := grammar.BuildAutomaton(prods, syms)
	table := grammar.BuildTable(automaton, prods, syms)

	if len(table.Conflicts) > 0 && cfg.StrictConflicts {
		return nil, nil, nil, fmt.Errorf("%d conflicts reported and --strict-conflicts is set", len(table.Conflicts))
	}

	return prods, syms, table, nil
}

func printWarnings(stream *diag.Stream) {
	for _, e := range stream.Entries() {
		if e.Severity() == diag.Warning {
			fmt.Fprintln(os.Stderr, e.Error())
		}
	}
}
