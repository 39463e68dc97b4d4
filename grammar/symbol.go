package grammar

import "sort"

// Symbol is an opaque grammar atom. Two symbols with the same Name
// denote the same grammar symbol regardless of how they were obtained.
type Symbol struct {
	Name string
}

func newSymbol(name string) Symbol {
	return Symbol{Name: name}
}

func (s Symbol) String() string {
	return s.Name
}

func (s Symbol) isNil() bool {
	return s.Name == ""
}

// symbolStart and symbolEOF are the synthetic symbols the loader and
// the classifier introduce. The loader rejects a user production whose
// LHS is symbolStart; user RHS symbols are not checked against either
// name.
var (
	symbolStart = newSymbol("S'")
	symbolEOF   = newSymbol("$")
)

// SymbolSet partitions the grammar's symbols into terminals and
// nonterminals: a symbol is a nonterminal iff it appears as the LHS of
// some production; every other symbol occurring in any RHS is a
// terminal. $ is always a terminal and is added even if the grammar
// text never mentions it.
type SymbolSet struct {
	Terminals    []Symbol
	NonTerminals []Symbol

	isTerminal    map[Symbol]bool
	isNonTerminal map[Symbol]bool
}

// ClassifySymbols partitions prods' symbols into SymbolSet.Terminals
// and SymbolSet.NonTerminals. Both output slices are sorted by symbol
// name so that table columns are stable across runs.
func ClassifySymbols(prods *ProductionSet) *SymbolSet {
	nonTerms := map[Symbol]bool{}
	for _, p := range prods.all {
		nonTerms[p.LHS] = true
	}

	terms := map[Symbol]bool{symbolEOF: true}
	for _, p := range prods.all {
		for _, sym := range p.RHS {
			if !nonTerms[sym] {
				terms[sym] = true
			}
		}
	}

	ss := &SymbolSet{
		isTerminal:    terms,
		isNonTerminal: nonTerms,
	}
	for sym := range terms {
		ss.Terminals = append(ss.Terminals, sym)
	}
	for sym := range nonTerms {
		ss.NonTerminals = append(ss.NonTerminals, sym)
	}
	sort.Slice(ss.Terminals, func(i, j int) bool { return ss.Terminals[i].Name < ss.Terminals[j].Name })
	sort.Slice(ss.NonTerminals, func(i, j int) bool { return ss.NonTerminals[i].Name < ss.NonTerminals[j].Name })

	return ss
}

// IsTerminal reports whether sym was classified as a terminal.
func (ss *SymbolSet) IsTerminal(sym Symbol) bool {
	return ss.isTerminal[sym]
}

// IsNonTerminal reports whether sym was classified as a nonterminal.
func (ss *SymbolSet) IsNonTerminal(sym Symbol) bool {
	return ss.isNonTerminal[sym]
}
