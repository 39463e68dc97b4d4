package main

import (
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/kfx-lang/lr0table/config"
	"github.com/kfx-lang/lr0table/render"
)

func init() {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactively prompt for a grammar id and an input line, the way the original tool did",
		RunE:  runRepl,
	}
	rootCmd.AddCommand(cmd)
}

// runRepl reproduces the original program's interactive shell: prompt
// for a grammar id, build and print its table, then prompt for an
// input line and drive the parser over it. github.com/chzyer/readline
// replaces the original's raw cin >>.
func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(*rootFlags.configPath)
	if err != nil {
		return err
	}

	rl, err := readline.New("grammar id> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	pterm.Info.Println("LR(0) Parsing")

	id, err := rl.Readline()
	if err != nil {
		return err
	}

	_, _, table, err := buildGrammar(cfg, id)
	if err != nil {
		pterm.Error.Println(err.Error())
		return nil
	}

	render.States(os.Stdout, table.Automaton, table.Prods)
	render.Table(os.Stdout, table)
	if len(table.Conflicts) > 0 {
		render.Conflicts(os.Stderr, table.Conflicts)
	}

	rl.SetPrompt("input> ")
	line, err := rl.Readline()
	if err != nil {
		return err
	}

	if err := parseAndReport(cfg, id, table, line); err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}
	return nil
}
