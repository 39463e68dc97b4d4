package diag

import (
	"errors"
	"strings"
	"testing"
)

func TestReportReturnsWhetherFatal(t *testing.T) {
	s := NewStream()
	fatal := s.Report(New(KindEmptyGrammar, errors.New("no productions")))
	if !fatal {
		t.Error("Report(EmptyGrammar) = false, want true")
	}

	warn := s.Report(New(KindInvalidProductionLine, errors.New("missing arrow")))
	if warn {
		t.Error("Report(InvalidProductionLine) = true, want false")
	}

	if !s.HasFatal() {
		t.Error("HasFatal() = false, want true")
	}
	if len(s.Entries()) != 2 {
		t.Fatalf("len(Entries()) = %d, want 2", len(s.Entries()))
	}
}

func TestErrorIncludesLocation(t *testing.T) {
	e := New(KindInvalidProductionLine, errors.New("missing arrow")).
		WithLocation("grammar/1.txt", 3, "S : a")

	msg := e.Error()
	if msg == "" {
		t.Fatal("Error() returned empty string")
	}
	if !strings.Contains(msg, "grammar/1.txt:3") {
		t.Errorf("Error() = %q, want it to contain %q", msg, "grammar/1.txt:3")
	}
	if got := e.Unwrap(); got == nil {
		t.Error("Unwrap() = nil, want the wrapped cause")
	}
}
