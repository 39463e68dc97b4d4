package grammar

import (
	"testing"

	"github.com/kfx-lang/lr0table/diag"
)

func TestParseProductionsAugments(t *testing.T) {
	stream := diag.NewStream()
	prods, err := ParseProductions([]string{
		"E -> E + T",
		"E -> T",
	}, stream)
	if err != nil {
		t.Fatalf("ParseProductions() error = %v", err)
	}

	if len(prods.All()) != 3 {
		t.Fatalf("len(All()) = %d, want 3", len(prods.All()))
	}

	start := prods.StartProduction()
	if start.LHS != symbolStart {
		t.Errorf("start.LHS = %v, want %v", start.LHS, symbolStart)
	}
	if len(start.RHS) != 1 || start.RHS[0].Name != "E" {
		t.Errorf("start.RHS = %v, want [E]", start.RHS)
	}
	if prods.StartSymbol().Name != "E" {
		t.Errorf("StartSymbol() = %v, want E", prods.StartSymbol())
	}
}

func TestParseProductionsSkipsInvalidLines(t *testing.T) {
	stream := diag.NewStream()
	prods, err := ParseProductions([]string{
		"E : E + T", // no arrow
		"",
		"E -> T",
	}, stream)
	if err != nil {
		t.Fatalf("ParseProductions() error = %v", err)
	}
	if len(prods.All()) != 2 { // augmented + 1 valid user production
		t.Fatalf("len(All()) = %d, want 2", len(prods.All()))
	}

	warnings := stream.Entries()
	if len(warnings) != 1 || warnings[0].Kind != diag.KindInvalidProductionLine {
		t.Fatalf("Entries() = %v, want one InvalidProductionLine", warnings)
	}
}

func TestParseProductionsEmptyGrammarIsFatal(t *testing.T) {
	stream := diag.NewStream()
	_, err := ParseProductions([]string{"not a production"}, stream)
	if err == nil {
		t.Fatal("expected an error for an empty grammar")
	}
	var derr *diag.Error
	if !errorsAs(err, &derr) || derr.Kind != diag.KindEmptyGrammar {
		t.Errorf("error = %v, want KindEmptyGrammar", err)
	}
	if !stream.HasFatal() {
		t.Error("stream.HasFatal() = false, want true")
	}
}

func TestParseProductionsEpsilonIsEmptySlice(t *testing.T) {
	stream := diag.NewStream()
	prods, err := ParseProductions([]string{"S -> ( S )", "S ->"}, stream)
	if err != nil {
		t.Fatalf("ParseProductions() error = %v", err)
	}
	eps, ok := prods.ByIndex(2)
	if !ok {
		t.Fatal("production 2 not found")
	}
	if eps.RHS != nil {
		t.Errorf("RHS = %v, want nil (epsilon)", eps.RHS)
	}
	if !eps.IsEmpty() {
		t.Error("IsEmpty() = false, want true")
	}
}

func TestParseProductionsRejectsReservedStartName(t *testing.T) {
	stream := diag.NewStream()
	_, err := ParseProductions([]string{"S' -> a", "S -> a"}, stream)
	if err != nil {
		t.Fatalf("ParseProductions() error = %v", err)
	}
	warnings := stream.Entries()
	if len(warnings) != 1 || warnings[0].Kind != diag.KindInvalidProductionLine {
		t.Fatalf("Entries() = %v, want one InvalidProductionLine for reserved S'", warnings)
	}
}

// errorsAs avoids importing the "errors" package purely for As() in
// this file; diag.Error is always returned directly by ParseProductions.
func errorsAs(err error, target **diag.Error) bool {
	e, ok := err.(*diag.Error)
	if !ok {
		return false
	}
	*target = e
	return true
}
