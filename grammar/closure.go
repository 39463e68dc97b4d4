package grammar

// Closure computes CLOSURE(I): starting from items, while some item
// `A -> alpha . B beta` has B a nonterminal, add `B -> . gamma` for
// every B-production, until no new item appears. Epsilon productions
// introduce complete items directly and participate like any other
// production.
//
// Closure is pure with respect to its inputs: it never mutates items
// or prods, and calling it twice on equal inputs yields equal outputs.
func Closure(items []Item, prods *ProductionSet, syms *SymbolSet) []Item {
	seen := map[Item]bool{}
	var result []Item
	var worklist []Item

	add := func(it Item) {
		if seen[it] {
			return
		}
		seen[it] = true
		result = append(result, it)
		worklist = append(worklist, it)
	}
	for _, it := range items {
		add(it)
	}

	for len(worklist) > 0 {
		it := worklist[0]
		worklist = worklist[1:]

		sym, ok := it.DottedSymbol(prods)
		if !ok || !syms.IsNonTerminal(sym) {
			continue
		}
		for _, p := range prods.ByLHS(sym) {
			add(newItem(p.Index, 0))
		}
	}

	return result
}

// Goto computes GOTO(I, X): advance the dot past X in every applicable
// item of I, then take the closure. Returns nil if
// no item in I has X immediately after its dot.
func Goto(items []Item, x Symbol, prods *ProductionSet, syms *SymbolSet) []Item {
	var moved []Item
	for _, it := range items {
		sym, ok := it.DottedSymbol(prods)
		if !ok || sym != x {
			continue
		}
		moved = append(moved, it.advance())
	}
	if len(moved) == 0 {
		return nil
	}
	return Closure(moved, prods, syms)
}
