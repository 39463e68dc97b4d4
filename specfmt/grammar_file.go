// Package specfmt implements the file-facing side of a build or parse:
// opening a grammar file, tokenizing an input line, and writing a
// trace file, all of it a thin shell around the pure grammar and
// driver packages.
package specfmt

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kfx-lang/lr0table/diag"
	"github.com/kfx-lang/lr0table/grammar"
)

// GrammarDir is the default directory grammar files live under. The
// original tool's convention names this directory "grammar"; the
// default here is "grammars" (plural) purely to avoid colliding with
// this repository's own grammar/ package directory when the CLI is
// run from the module root. Set GrammarDir to "grammar" via config to
// match that convention literally in a deployed layout that doesn't
// have the collision.
const GrammarDir = "grammars"

// TraceDir is the default directory trace files live under
// ("parsable_strings/<id>/<compressed>.txt").
const TraceDir = "parsable_strings"

// ReadGrammarFile opens grammarDir/id.txt, reads its non-empty lines,
// and parses them with grammar.ParseProductions. Opening the file is
// fatal (GrammarOpenFailure) on failure; the file handle is closed
// before this function returns, successfully or not.
func ReadGrammarFile(grammarDir, id string, stream *diag.Stream) (*grammar.ProductionSet, error) {
	path := filepath.Join(grammarDir, id+".txt")

	f, err := os.Open(path)
	if err != nil {
		e := diag.New(diag.KindGrammarOpenFailure, fmt.Errorf("cannot open grammar file %s: %w", path, err))
		stream.Report(e)
		return nil, e
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		e := diag.New(diag.KindGrammarOpenFailure, fmt.Errorf("cannot read grammar file %s: %w", path, err))
		stream.Report(e)
		return nil, e
	}

	return grammar.ParseProductions(lines, stream)
}

// TokenizeInputLine splits a line on whitespace and appends the
// synthetic end marker. In the character-level variant of the original
// tool each character was a token; the whitespace-token dialect used
// here is the superset, so a single-character-per-token grammar is
// simply the case where every symbol happens to be one character wide.
func TokenizeInputLine(line string) []grammar.Symbol {
	fields := strings.Fields(line)
	tokens := make([]grammar.Symbol, 0, len(fields)+1)
	for _, f := range fields {
		tokens = append(tokens, grammar.Symbol{Name: f})
	}
	tokens = append(tokens, grammar.Symbol{Name: "$"})
	return tokens
}
