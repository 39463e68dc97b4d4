// Package render implements the console-output side of a build or
// parse: state listing with dotted items, the ACTION/GOTO table, and
// the trace table. It renders with github.com/pterm/pterm the way
// npillmayer/gorgo's REPL renders its trees and messages, rather than
// hand-padding columns the way the original C++ program's
// table_to_string did.
package render

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/kfx-lang/lr0table/driver"
	"github.com/kfx-lang/lr0table/grammar"
)

// States prints every state's id and its dotted items.
func States(w io.Writer, a *grammar.Automaton, prods *grammar.ProductionSet) {
	pterm.DefaultSection.WithWriter(w).Println("Canonical Collection")
	for id, state := range a.States {
		lines := make([]string, len(state.Items))
		for i, it := range state.Items {
			lines[i] = it.String(prods)
		}
		fmt.Fprintln(w, pterm.FgLightBlue.Sprintf("state %d", id))
		for _, l := range lines {
			fmt.Fprintln(w, "  "+l)
		}
	}
}

// Table prints the ACTION/GOTO table as a single grid, columns for
// every terminal (ACTION) then every nonterminal (GOTO), one row per
// state.
func Table(w io.Writer, t *grammar.Table) {
	syms := t.Syms

	header := []string{"state"}
	for _, term := range syms.Terminals {
		header = append(header, term.Name)
	}
	for _, nt := range syms.NonTerminals {
		header = append(header, nt.Name)
	}

	data := pterm.TableData{header}
	for s := range t.Automaton.States {
		sid := grammar.StateID(s)
		row := []string{fmt.Sprintf("%d", sid)}
		for _, term := range syms.Terminals {
			row = append(row, actionCell(t.Action(sid, term)))
		}
		for _, nt := range syms.NonTerminals {
			if next, ok := t.GoTo(sid, nt); ok {
				row = append(row, fmt.Sprintf("%d", next))
			} else {
				row = append(row, "")
			}
		}
		data = append(data, row)
	}

	tbl, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		fmt.Fprintf(w, "(failed to render table: %v)\n", err)
		return
	}
	fmt.Fprintln(w, tbl)
}

func actionCell(a grammar.Action) string {
	switch a.Type {
	case grammar.ActionShift:
		return fmt.Sprintf("s%d", a.State)
	case grammar.ActionReduce:
		return fmt.Sprintf("r%d", a.Prod)
	case grammar.ActionAccept:
		return "acc"
	default:
		return ""
	}
}

// Conflicts prints every recorded conflict to w, meant to be called
// with stderr.
func Conflicts(w io.Writer, conflicts []grammar.Conflict) {
	for _, c := range conflicts {
		pterm.Warning.WithWriter(w).Printfln(
			"%v conflict in state %d on %q: kept %v, discarded %v",
			c.Kind, c.State, c.Symbol.Name, describeAction(c.Incumbent), describeAction(c.Discarded))
	}
}

func describeAction(a grammar.Action) string {
	switch a.Type {
	case grammar.ActionShift:
		return fmt.Sprintf("shift %d", a.State)
	case grammar.ActionReduce:
		return fmt.Sprintf("reduce %d", a.Prod)
	case grammar.ActionAccept:
		return "accept"
	default:
		return "error"
	}
}

// Trace prints the trace table with columns Process | LookAhead |
// Symbol | Stack, matching the original tool's trace file layout.
func Trace(w io.Writer, prods *grammar.ProductionSet, trace []driver.TraceEntry) {
	data := pterm.TableData{{"Process", "LookAhead", "Symbol", "Stack"}}
	for _, e := range trace {
		data = append(data, []string{
			processCell(prods, e),
			fmt.Sprintf("%d", e.Pointer),
			e.Lookahead.Name,
			e.StackAfter,
		})
	}
	tbl, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		fmt.Fprintf(w, "(failed to render trace: %v)\n", err)
		return
	}
	fmt.Fprintln(w, tbl)
}

func processCell(prods *grammar.ProductionSet, e driver.TraceEntry) string {
	switch e.Kind {
	case driver.StepShift:
		return fmt.Sprintf("Action(%d, %v) = Shift %d", e.State, e.Lookahead.Name, e.NextState)
	case driver.StepReduce:
		p, _ := prods.ByIndex(e.Prod)
		return fmt.Sprintf("Action(%d, %v) = Reduce %v", e.State, e.Lookahead.Name, p)
	case driver.StepAccept:
		return fmt.Sprintf("Action(%d, %v) = Accept", e.State, e.Lookahead.Name)
	default:
		return "?"
	}
}
