package grammar

// ActionType names the three non-error actions plus the absence of one,
// mirroring nihei9/vartan's grammar/parsing_table.go ActionType.
type ActionType string

const (
	ActionError  = ActionType("error")
	ActionShift  = ActionType("shift")
	ActionReduce = ActionType("reduce")
	ActionAccept = ActionType("accept")
)

// Action is one ACTION table cell.
type Action struct {
	Type  ActionType
	State StateID         // valid when Type == ActionShift
	Prod  ProductionIndex // valid when Type == ActionReduce
}

var errorAction = Action{Type: ActionError}

// ConflictKind distinguishes the two conflict shapes the table
// synthesizer recognizes.
type ConflictKind string

const (
	ConflictShiftReduce  = ConflictKind("shift/reduce")
	ConflictReduceReduce = ConflictKind("reduce/reduce")
)

// Conflict records a collision in an ACTION cell: two distinct entries
// were assigned to the same (state, symbol), and the table keeps
// Incumbent while Discarded loses, per resolveConflict's policy.
type Conflict struct {
	Kind      ConflictKind
	State     StateID
	Symbol    Symbol
	Incumbent Action
	Discarded Action
}

// Table holds the synthesized ACTION and GOTO tables plus every
// conflict encountered while building them.
type Table struct {
	Automaton *Automaton
	Prods     *ProductionSet
	Syms      *SymbolSet

	action    []map[Symbol]Action
	goTo      []map[Symbol]StateID
	Conflicts []Conflict
}

// Action looks up ACTION[state][sym]. A missing entry is ActionError.
func (t *Table) Action(state StateID, sym Symbol) Action {
	a, ok := t.action[state][sym]
	if !ok {
		return errorAction
	}
	return a
}

// GoTo looks up GOTO[state][sym]. ok is false if the entry is
// undefined.
func (t *Table) GoTo(state StateID, sym Symbol) (StateID, bool) {
	s, ok := t.goTo[state][sym]
	return s, ok
}

// BuildTable synthesizes the ACTION and GOTO tables: for every state
// and every item in it, fill ACTION (shift/reduce/accept) and GOTO,
// recording a Conflict
// whenever two different entries would land in the same ACTION cell.
//
// Conflict policy:
//   - shift vs reduce: keep shift;
//   - reduce vs reduce: keep the first-assigned reduction;
//   - anything vs accept: keep accept when the accepting item is
//     production 0, otherwise keep whichever was assigned first.
//
// GOTO conflicts cannot occur: GOTO is a function of delta, which is
// already deterministic by construction.
func BuildTable(a *Automaton, prods *ProductionSet, syms *SymbolSet) *Table {
	t := &Table{
		Automaton: a,
		Prods:     prods,
		Syms:      syms,
		action:    make([]map[Symbol]Action, len(a.States)),
		goTo:      make([]map[Symbol]StateID, len(a.States)),
	}
	for s := range a.States {
		t.action[s] = map[Symbol]Action{}
		t.goTo[s] = map[Symbol]StateID{}
	}

	for s, state := range a.States {
		sid := StateID(s)

		for sym, next := range a.Transitions[sid] {
			if syms.IsTerminal(sym) {
				t.assignAction(sid, sym, Action{Type: ActionShift, State: next})
			} else {
				t.goTo[sid][sym] = next
			}
		}

		for _, it := range state.Items {
			if !it.IsComplete(prods) {
				continue
			}
			if it.Prod == augmentedProductionIndex {
				t.assignAction(sid, symbolEOF, Action{Type: ActionAccept})
				continue
			}
			for _, term := range syms.Terminals {
				t.assignAction(sid, term, Action{Type: ActionReduce, Prod: it.Prod})
			}
		}
	}

	return t
}

// assignAction writes act into ACTION[state][sym], resolving and
// recording a conflict if a different entry is already there.
func (t *Table) assignAction(state StateID, sym Symbol, act Action) {
	incumbent, exists := t.action[state][sym]
	if !exists {
		t.action[state][sym] = act
		return
	}
	if incumbent == act {
		return
	}

	winner := resolveConflict(incumbent, act)
	kind := ConflictReduceReduce
	if incumbent.Type == ActionShift || act.Type == ActionShift {
		kind = ConflictShiftReduce
	}
	t.Conflicts = append(t.Conflicts, Conflict{
		Kind:      kind,
		State:     state,
		Symbol:    sym,
		Incumbent: incumbent,
		Discarded: act,
	})
	t.action[state][sym] = winner
}

// resolveConflict picks the surviving action for a colliding ACTION
// cell. incumbent was assigned first.
func resolveConflict(incumbent, challenger Action) Action {
	if incumbent.Type == ActionAccept {
		return incumbent
	}
	if challenger.Type == ActionAccept {
		return challenger
	}
	if incumbent.Type == ActionShift || challenger.Type == ActionShift {
		if incumbent.Type == ActionShift {
			return incumbent
		}
		return challenger
	}
	// reduce/reduce: first assigned wins.
	return incumbent
}
