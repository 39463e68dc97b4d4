// Package driver implements a deterministic shift-reduce stack machine
// and its trace production.
package driver

import (
	"fmt"

	"github.com/kfx-lang/lr0table/diag"
	"github.com/kfx-lang/lr0table/grammar"
)

// Stack is the parser stack s0 X1 s1 X2 s2 ..., alternating state ids
// and symbols. Rather than one slice whose even positions are states
// and odd positions are symbols, it keeps two parallel slices, which
// avoids interface{} entirely; states always holds one more entry than
// symbols.
type Stack struct {
	states  []grammar.StateID
	symbols []grammar.Symbol
}

func newStack() *Stack {
	return &Stack{states: []grammar.StateID{0}}
}

// Top returns the state on top of the stack.
func (s *Stack) Top() grammar.StateID {
	return s.states[len(s.states)-1]
}

func (s *Stack) push(sym grammar.Symbol, state grammar.StateID) {
	s.symbols = append(s.symbols, sym)
	s.states = append(s.states, state)
}

// pop removes the top n symbols together with the states above them.
func (s *Stack) pop(n int) {
	s.states = s.states[:len(s.states)-n]
	s.symbols = s.symbols[:len(s.symbols)-n]
}

// Snapshot renders the stack as an alternating "s0 X1 s1 X2 s2 ..."
// string for trace records.
func (s *Stack) Snapshot() string {
	out := fmt.Sprintf("%v", s.states[0])
	for i, sym := range s.symbols {
		out += fmt.Sprintf(" %v %v", sym, s.states[i+1])
	}
	return out
}

// StepKind names the driver's per-step trace entries.
type StepKind string

const (
	StepShift  = StepKind("shift")
	StepReduce = StepKind("reduce")
	StepAccept = StepKind("accept")
)

// TraceEntry is one trace record: {kind, input_pointer, lookahead,
// stack_snapshot}, plus enough of the action taken to render
// "Action(state, symbol) = ..." messages.
type TraceEntry struct {
	Kind       StepKind
	State      grammar.StateID
	Lookahead  grammar.Symbol
	Pointer    int
	NextState  grammar.StateID       // valid when Kind == StepShift
	Prod       grammar.ProductionIndex // valid when Kind == StepReduce
	StackAfter string
}

// Verdict is the driver's terminal state (a Running/Accepted/Rejected
// state machine, minus Running which never outlives Run).
type Verdict string

const (
	Accepted Verdict = "accepted"
	Rejected Verdict = "rejected"
)

// Result is what Run returns: the final verdict and the full trace
// produced getting there.
type Result struct {
	Verdict Verdict
	Trace   []TraceEntry
}

// Run drives table over tokens, which must already end with the $ end
// marker. It never mutates table; the stack and trace it
// builds are owned exclusively by this call.
func Run(table *grammar.Table, tokens []grammar.Symbol) (*Result, error) {
	stack := newStack()
	cursor := 0
	var trace []TraceEntry

	for {
		state := stack.Top()
		if cursor >= len(tokens) {
			return nil, fmt.Errorf("driver: token stream must be terminated by $")
		}
		lookahead := tokens[cursor]

		act := table.Action(state, lookahead)
		switch act.Type {
		case grammar.ActionShift:
			stack.push(lookahead, act.State)
			cursor++
			trace = append(trace, TraceEntry{
				Kind:       StepShift,
				State:      state,
				Lookahead:  lookahead,
				Pointer:    cursor,
				NextState:  act.State,
				StackAfter: stack.Snapshot(),
			})

		case grammar.ActionReduce:
			prod, ok := table.Prods.ByIndex(act.Prod)
			if !ok {
				return nil, fmt.Errorf("driver: unknown production %v", act.Prod)
			}

			// Epsilon reductions pop zero entries.
			stack.pop(len(prod.RHS))

			base := stack.Top()
			next, ok := table.GoTo(base, prod.LHS)
			if !ok {
				return nil, diag.New(diag.KindInconsistentTable,
					fmt.Errorf("no GOTO[%v][%v] after reducing by %v", base, prod.LHS, prod))
			}
			stack.push(prod.LHS, next)

			trace = append(trace, TraceEntry{
				Kind:       StepReduce,
				State:      base,
				Lookahead:  lookahead,
				Pointer:    cursor,
				Prod:       act.Prod,
				StackAfter: stack.Snapshot(),
			})

		case grammar.ActionAccept:
			trace = append(trace, TraceEntry{
				Kind:       StepAccept,
				State:      state,
				Lookahead:  lookahead,
				Pointer:    cursor,
				StackAfter: stack.Snapshot(),
			})
			return &Result{Verdict: Accepted, Trace: trace}, nil

		default:
			return &Result{Verdict: Rejected, Trace: trace}, nil
		}
	}
}
