package grammar

import "testing"

func buildTable(t *testing.T, lines []string) (*ProductionSet, *SymbolSet, *Table) {
	t.Helper()
	prods, syms, a := buildAutomaton(t, lines)
	return prods, syms, BuildTable(a, prods, syms)
}

func TestBuildTableAcceptOnAugmentedProduction(t *testing.T) {
	_, _, table := buildTable(t, []string{"S -> a"})

	// Find the state reached after shifting 'a' from state 0, then
	// after reaching S via GOTO from state 0: that's the accepting
	// state.
	a := table.Automaton
	sOnA, ok := a.Transitions[initialStateID][newSymbol("a")]
	if !ok {
		t.Fatal("no transition on 'a' from state 0")
	}
	act := table.Action(sOnA, symbolEOF)
	if act.Type != ActionReduce {
		t.Fatalf("action after shifting 'a' = %v, want reduce", act.Type)
	}

	sOnS, ok := table.GoTo(initialStateID, newSymbol("S"))
	if !ok {
		t.Fatal("no GOTO on 'S' from state 0")
	}
	if acc := table.Action(sOnS, symbolEOF); acc.Type != ActionAccept {
		t.Fatalf("action on $ after GOTO on 'S' = %v, want accept", acc.Type)
	}
}

func TestBuildTableShiftReduceConflictPrefersShift(t *testing.T) {
	// S -> aS | a: state {S -> a.S, S -> a., S -> .aS, S -> .a} has a
	// shift/reduce conflict on 'a'.
	_, _, table := buildTable(t, []string{"S -> a S", "S -> a"})

	found := false
	for _, c := range table.Conflicts {
		if c.Kind == ConflictShiftReduce && c.Symbol.Name == "a" {
			found = true
			winner := table.Action(c.State, c.Symbol)
			if winner.Type != ActionShift {
				t.Errorf("resolved action = %v, want shift", winner.Type)
			}
		}
	}
	if !found {
		t.Fatal("expected a shift/reduce conflict on 'a'")
	}
}

func TestBuildTableReduceReduceKeepsFirstAssigned(t *testing.T) {
	// A grammar with a genuine reduce/reduce conflict: S->A, S->B,
	// A->a, B->a. The state reached after shifting 'a' from state 0
	// contains both A->a. and B->a., which both reduce on every
	// terminal.
	_, _, table := buildTable(t, []string{"S -> A", "S -> B", "A -> a", "B -> a"})

	rrCount := 0
	for _, c := range table.Conflicts {
		if c.Kind == ConflictReduceReduce {
			rrCount++
			if c.Incumbent.Type != ActionReduce || c.Discarded.Type != ActionReduce {
				t.Errorf("reduce/reduce conflict has non-reduce action: %+v", c)
			}
		}
	}
	if rrCount == 0 {
		t.Fatal("expected at least one reduce/reduce conflict")
	}
}

func TestBuildTableDeterministicAcrossRuns(t *testing.T) {
	lines := []string{"S -> a S", "S -> a"}
	_, _, t1 := buildTable(t, lines)
	_, _, t2 := buildTable(t, lines)

	if len(t1.Conflicts) != len(t2.Conflicts) {
		t.Fatalf("conflict counts differ: %d vs %d", len(t1.Conflicts), len(t2.Conflicts))
	}
	for i := range t1.Conflicts {
		if t1.Conflicts[i] != t2.Conflicts[i] {
			t.Fatalf("conflict %d differs between runs: %+v vs %+v", i, t1.Conflicts[i], t2.Conflicts[i])
		}
	}
}
