package compressor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kfx-lang/lr0table/diag"
	"github.com/kfx-lang/lr0table/grammar"
)

func buildTable(t *testing.T, lines []string) *grammar.Table {
	t.Helper()
	stream := diag.NewStream()
	prods, err := grammar.ParseProductions(lines, stream)
	if err != nil {
		t.Fatalf("ParseProductions() error = %v", err)
	}
	syms := grammar.ClassifySymbols(prods)
	a := grammar.BuildAutomaton(prods, syms)
	return grammar.BuildTable(a, prods, syms)
}

func TestEncodeTableColumnsMatchClassifiedSymbols(t *testing.T) {
	table := buildTable(t, []string{
		"S -> A A",
		"A -> a A",
		"A -> b",
	})

	orig, columns, err := EncodeTable(table)
	if err != nil {
		t.Fatalf("EncodeTable() error = %v", err)
	}

	wantCols := len(table.Syms.Terminals) + len(table.Syms.NonTerminals)
	if len(columns) != wantCols {
		t.Fatalf("len(columns) = %d, want %d", len(columns), wantCols)
	}
	if orig.ColCount != wantCols {
		t.Fatalf("orig.ColCount = %d, want %d", orig.ColCount, wantCols)
	}
	if orig.RowCount != len(table.Automaton.States) {
		t.Fatalf("orig.RowCount = %d, want %d", orig.RowCount, len(table.Automaton.States))
	}
}

func TestWriteTableJSONProducesReadableFile(t *testing.T) {
	table := buildTable(t, []string{
		"S -> A A",
		"A -> a A",
		"A -> b",
	})

	path := filepath.Join(t.TempDir(), "table.json")
	if err := WriteTableJSON(path, table); err != nil {
		t.Fatalf("WriteTableJSON() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("WriteTableJSON produced an empty file")
	}
}
