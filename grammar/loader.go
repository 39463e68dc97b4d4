package grammar

import (
	"fmt"
	"strings"

	"github.com/kfx-lang/lr0table/diag"
)

// ParseProductions is a pure function over already-read text lines;
// opening the grammar file itself is the specfmt package's concern,
// kept out of the core grammar-building code.
//
// Each non-empty line holds one production `lhs -> tok1 tok2 ...`. A
// line with no `->` is reported on stream as InvalidProductionLine and
// skipped. The augmented production
// `S' -> S0` is prepended and assigned index 0; S0 is the LHS of the
// first line that parsed. A grammar that yields zero user productions
// is EmptyGrammar, which is fatal.
func ParseProductions(lines []string, stream *diag.Stream) (*ProductionSet, error) {
	var prods []*Production
	nextIndex := ProductionIndex(1)

	for lineNo, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		lhs, rhs, ok := splitProduction(line)
		if !ok {
			stream.Report(diag.New(diag.KindInvalidProductionLine, fmt.Errorf("missing '->' in production")).
				WithLocation("grammar", lineNo+1, raw))
			continue
		}
		if lhs == symbolStart.Name {
			stream.Report(diag.New(diag.KindInvalidProductionLine, fmt.Errorf("%q is reserved for the augmented start symbol", symbolStart.Name)).
				WithLocation("grammar", lineNo+1, raw))
			continue
		}

		prods = append(prods, &Production{
			Index: nextIndex,
			LHS:   newSymbol(lhs),
			RHS:   toSymbols(rhs),
		})
		nextIndex++
	}

	if len(prods) == 0 {
		err := diag.New(diag.KindEmptyGrammar, fmt.Errorf("grammar contains no valid productions"))
		stream.Report(err)
		return nil, err
	}

	start := &Production{
		Index: augmentedProductionIndex,
		LHS:   symbolStart,
		RHS:   []Symbol{prods[0].LHS},
	}
	all := append([]*Production{start}, prods...)

	return newProductionSet(all), nil
}

// splitProduction splits a trimmed grammar line at the first "->". The
// arrow may be flush against the LHS or surrounded by whitespace.
func splitProduction(line string) (lhs string, rhs string, ok bool) {
	i := strings.Index(line, "->")
	if i < 0 {
		return "", "", false
	}
	lhs = strings.TrimSpace(line[:i])
	rhs = strings.TrimSpace(line[i+2:])
	if lhs == "" {
		return "", "", false
	}
	return lhs, rhs, true
}

// toSymbols whitespace-splits an RHS string into symbols. An empty
// string denotes epsilon and yields a nil (zero-length) slice, never a
// one-element slice holding the empty string.
func toSymbols(rhs string) []Symbol {
	fields := strings.Fields(rhs)
	if len(fields) == 0 {
		return nil
	}
	syms := make([]Symbol, len(fields))
	for i, f := range fields {
		syms[i] = newSymbol(f)
	}
	return syms
}
