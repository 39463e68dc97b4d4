package grammar

import "sort"

// StateID is the dense, stable identifier assigned to an item set in
// discovery order, starting at 0. State 0 is always
// CLOSURE({(0, 0)}), the closure of the augmented start item.
type StateID int

const initialStateID StateID = 0

// Automaton is the canonical collection: the states of the LR(0)
// DFA-of-item-sets and the transition function delta computed while
// building it.
type Automaton struct {
	States []*ItemSet
	// Transitions[s][sym] = t, delta(s, X) = t.
	Transitions []map[Symbol]StateID
}

// BuildAutomaton is the worklist-driven canonical collection builder.
// State ids and transitions depend only on the grammar and on the
// fixed, sorted symbol iteration order below, so two runs over the
// same grammar produce byte-identical automata.
func BuildAutomaton(prods *ProductionSet, syms *SymbolSet) *Automaton {
	start := newItemSet(Closure([]Item{newItem(augmentedProductionIndex, 0)}, prods, syms))

	a := &Automaton{}
	keyToState := map[string]StateID{}

	intern := func(set *ItemSet) StateID {
		if id, ok := keyToState[set.Key]; ok {
			return id
		}
		id := StateID(len(a.States))
		keyToState[set.Key] = id
		a.States = append(a.States, set)
		a.Transitions = append(a.Transitions, map[Symbol]StateID{})
		return id
	}

	intern(start)

	for s := StateID(0); int(s) < len(a.States); s++ {
		state := a.States[s]

		symSet := map[Symbol]bool{}
		for _, it := range state.Items {
			if sym, ok := it.DottedSymbol(prods); ok {
				symSet[sym] = true
			}
		}
		var symList []Symbol
		for sym := range symSet {
			symList = append(symList, sym)
		}
		sort.Slice(symList, func(i, j int) bool { return symList[i].Name < symList[j].Name })

		for _, x := range symList {
			items := Goto(state.Items, x, prods, syms)
			if len(items) == 0 {
				continue
			}
			j := newItemSet(items)
			t := intern(j)
			a.Transitions[s][x] = t
		}
	}

	return a
}
