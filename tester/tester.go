// Package tester runs declarative grammar/input/expected-outcome
// fixtures the way nihei9/vartan's tester package runs on-disk test
// cases against a compiled grammar, but reading YAML instead of a
// custom tree-diff format.
package tester

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kfx-lang/lr0table/diag"
	"github.com/kfx-lang/lr0table/driver"
	"github.com/kfx-lang/lr0table/grammar"
)

// Scenario is one fixture: a grammar given inline as production lines,
// an input line, and the outcome a correct build+parse must reach.
type Scenario struct {
	Name              string   `yaml:"name"`
	Grammar           []string `yaml:"grammar"`
	Input             string   `yaml:"input"`
	Want              string   `yaml:"want"` // "accepted" or "rejected"
	WantConflicts     int      `yaml:"wantConflicts"`
	WantStates        int      `yaml:"wantStates"`
}

// Result is the outcome of running one Scenario.
type Result struct {
	Scenario *Scenario
	Passed   bool
	Messages []string
}

func (r *Result) String() string {
	if r.Passed {
		return fmt.Sprintf("PASS %v", r.Scenario.Name)
	}
	return fmt.Sprintf("FAIL %v: %v", r.Scenario.Name, r.Messages)
}

// LoadFile reads a YAML file holding a list of scenarios.
func LoadFile(path string) ([]*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var scenarios []*Scenario
	if err := yaml.Unmarshal(data, &scenarios); err != nil {
		return nil, err
	}
	return scenarios, nil
}

// Run builds the scenario's grammar and drives its input through the
// resulting table, checking the outcome against the scenario's
// expectations.
func Run(s *Scenario) *Result {
	r := &Result{Scenario: s, Passed: true}

	stream := diag.NewStream()
	prods, err := grammar.ParseProductions(s.Grammar, stream)
	if err != nil {
		r.Passed = false
		r.Messages = append(r.Messages, fmt.Sprintf("build failed: %v", err))
		return r
	}

	syms := grammar.ClassifySymbols(prods)
	automaton := grammar.BuildAutomaton(prods, syms)
	table := grammar.BuildTable(automaton, prods, syms)

	if s.WantStates != 0 && len(automaton.States) != s.WantStates {
		r.Passed = false
		r.Messages = append(r.Messages, fmt.Sprintf("state count = %d, want %d", len(automaton.States), s.WantStates))
	}
	if len(table.Conflicts) != s.WantConflicts {
		r.Passed = false
		r.Messages = append(r.Messages, fmt.Sprintf("conflicts = %d, want %d", len(table.Conflicts), s.WantConflicts))
	}

	tokens := tokenize(s.Input)
	result, err := driver.Run(table, tokens)
	if err != nil {
		r.Passed = false
		r.Messages = append(r.Messages, fmt.Sprintf("parse error: %v", err))
		return r
	}

	got := "rejected"
	if result.Verdict == driver.Accepted {
		got = "accepted"
	}
	if got != s.Want {
		r.Passed = false
		r.Messages = append(r.Messages, fmt.Sprintf("verdict = %v, want %v", got, s.Want))
	}

	return r
}

func tokenize(line string) []grammar.Symbol {
	var tokens []grammar.Symbol
	field := ""
	flush := func() {
		if field != "" {
			tokens = append(tokens, grammar.Symbol{Name: field})
			field = ""
		}
	}
	for _, r := range line {
		if r == ' ' || r == '\t' {
			flush()
			continue
		}
		field += string(r)
	}
	flush()
	tokens = append(tokens, grammar.Symbol{Name: "$"})
	return tokens
}

// RunFile loads and runs every scenario in path.
func RunFile(path string) ([]*Result, error) {
	scenarios, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	results := make([]*Result, len(scenarios))
	for i, s := range scenarios {
		results[i] = Run(s)
	}
	return results, nil
}
