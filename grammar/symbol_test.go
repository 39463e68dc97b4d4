package grammar

import (
	"testing"

	"github.com/kfx-lang/lr0table/diag"
)

func mustParse(t *testing.T, lines []string) *ProductionSet {
	t.Helper()
	stream := diag.NewStream()
	prods, err := ParseProductions(lines, stream)
	if err != nil {
		t.Fatalf("ParseProductions() error = %v", err)
	}
	return prods
}

func TestClassifySymbolsDisjointAndEOFIsTerminal(t *testing.T) {
	prods := mustParse(t, []string{
		"E -> E + T",
		"E -> T",
		"T -> id",
	})
	syms := ClassifySymbols(prods)

	for _, nt := range syms.NonTerminals {
		if syms.IsTerminal(nt) {
			t.Errorf("%v classified as both terminal and nonterminal", nt)
		}
	}

	if !syms.IsTerminal(symbolEOF) {
		t.Error("$ must be a terminal")
	}
	if syms.IsNonTerminal(symbolEOF) {
		t.Error("$ must never be a nonterminal")
	}
}

func TestClassifySymbolsOrderedByName(t *testing.T) {
	prods := mustParse(t, []string{
		"S -> b a",
	})
	syms := ClassifySymbols(prods)

	for i := 1; i < len(syms.Terminals); i++ {
		if syms.Terminals[i-1].Name >= syms.Terminals[i].Name {
			t.Errorf("terminals not sorted: %v", syms.Terminals)
		}
	}
}
