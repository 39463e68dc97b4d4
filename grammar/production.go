package grammar

import "fmt"

// ProductionIndex is the stable 0-based index assigned to a production
// at load time. Index 0 is always the augmented production `S' -> S0`.
type ProductionIndex int

const augmentedProductionIndex ProductionIndex = 0

// Production is a pair (LHS, RHS). RHS may be empty, denoting an
// epsilon production; it is never a one-element slice holding an
// empty string.
type Production struct {
	Index ProductionIndex
	LHS   Symbol
	RHS   []Symbol
}

func (p *Production) String() string {
	if len(p.RHS) == 0 {
		return fmt.Sprintf("%v ->", p.LHS)
	}
	s := fmt.Sprintf("%v ->", p.LHS)
	for _, sym := range p.RHS {
		s += " " + sym.Name
	}
	return s
}

// IsEmpty reports whether the production's RHS is epsilon.
func (p *Production) IsEmpty() bool {
	return len(p.RHS) == 0
}

// ProductionSet is the ordered, indexed production list that the
// loader produces and every later stage consumes read-only.
type ProductionSet struct {
	all       []*Production
	byLHS     map[Symbol][]*Production
	startProd *Production
}

func newProductionSet(prods []*Production) *ProductionSet {
	ps := &ProductionSet{
		all:   prods,
		byLHS: map[Symbol][]*Production{},
	}
	for _, p := range prods {
		ps.byLHS[p.LHS] = append(ps.byLHS[p.LHS], p)
	}
	ps.startProd = prods[augmentedProductionIndex]
	return ps
}

// All returns every production, indexed 0..P-1.
func (ps *ProductionSet) All() []*Production {
	return ps.all
}

// ByIndex looks a production up by its stable index. It underlies the
// driver's reduce step and any production-number reverse lookup.
func (ps *ProductionSet) ByIndex(i ProductionIndex) (*Production, bool) {
	if i < 0 || int(i) >= len(ps.all) {
		return nil, false
	}
	return ps.all[i], true
}

// ByLHS returns every production whose LHS is sym, in load order.
func (ps *ProductionSet) ByLHS(sym Symbol) []*Production {
	return ps.byLHS[sym]
}

// StartProduction returns the augmented production S' -> S0.
func (ps *ProductionSet) StartProduction() *Production {
	return ps.startProd
}

// StartSymbol returns S0, the LHS of the first user-supplied
// production.
func (ps *ProductionSet) StartSymbol() Symbol {
	return ps.startProd.RHS[0]
}
