package compressor

import (
	"encoding/json"
	"os"

	"github.com/kfx-lang/lr0table/grammar"
)

// A cell code packs an ACTION or GOTO cell into a single int: the low
// 3 bits hold the code, the remaining bits hold the payload (shift's
// or goto's target state, or reduce's production index). Accept and
// error carry no payload. Packing ACTION and GOTO the same way lets
// them share one dense table.
const (
	codeError = iota
	codeShift
	codeReduce
	codeAccept
	codeGoto
)

func encodeActionCell(a grammar.Action) int {
	switch a.Type {
	case grammar.ActionShift:
		return codeShift | int(a.State)<<3
	case grammar.ActionReduce:
		return codeReduce | int(a.Prod)<<3
	case grammar.ActionAccept:
		return codeAccept
	default:
		return codeError
	}
}

func encodeGotoCell(state grammar.StateID, ok bool) int {
	if !ok {
		return codeError
	}
	return codeGoto | int(state)<<3
}

// EncodeTable flattens a *grammar.Table into the dense row-major
// OriginalTable shape CompressUnique expects. Columns are the
// classified terminals (encoding ACTION) followed by the classified
// nonterminals (encoding GOTO), in the same sorted order
// grammar.ClassifySymbols produces, so the column layout is stable
// across runs of the same grammar.
func EncodeTable(t *grammar.Table) (*OriginalTable, []grammar.Symbol, error) {
	columns := make([]grammar.Symbol, 0, len(t.Syms.Terminals)+len(t.Syms.NonTerminals))
	columns = append(columns, t.Syms.Terminals...)
	columns = append(columns, t.Syms.NonTerminals...)

	entries := make([]int, 0, len(t.Automaton.States)*len(columns))
	for s := range t.Automaton.States {
		state := grammar.StateID(s)
		for _, term := range t.Syms.Terminals {
			entries = append(entries, encodeActionCell(t.Action(state, term)))
		}
		for _, nonTerm := range t.Syms.NonTerminals {
			next, ok := t.GoTo(state, nonTerm)
			entries = append(entries, encodeGotoCell(next, ok))
		}
	}

	orig, err := NewOriginalTable(entries, len(columns))
	if err != nil {
		return nil, nil, err
	}
	return orig, columns, nil
}

// tableDocument is the JSON artifact WriteTableJSON produces: the
// deduplicated table plus the column headers needed to make sense of
// it, since UniqueEntriesTable alone carries no symbol names.
type tableDocument struct {
	Columns []string            `json:"columns"`
	Table   *UniqueEntriesTable `json:"table"`
}

// WriteTableJSON encodes t, deduplicates its rows with CompressUnique,
// and writes the result to path as JSON.
func WriteTableJSON(path string, t *grammar.Table) error {
	orig, columns, err := EncodeTable(t)
	if err != nil {
		return err
	}

	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Name
	}

	doc := tableDocument{
		Columns: names,
		Table:   CompressUnique(orig),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
