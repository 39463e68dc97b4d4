package grammar

import (
	"fmt"
	"sort"

	"github.com/cnf/structhash"
)

// Item is an LR(0) item (prod, dot). 0 <= Dot <= len(RHS(prod)).
type Item struct {
	Prod ProductionIndex
	Dot  int
}

// itemKeyPair is the (prod,dot) shape structhash sees; keeping it
// separate from Item means adding fields to Item later (e.g. a cached
// dotted symbol) never perturbs the canonical key.
type itemKeyPair struct {
	Prod int
	Dot  int
}

func newItem(prod ProductionIndex, dot int) Item {
	return Item{Prod: prod, Dot: dot}
}

// IsKernel reports whether the item is a kernel item: dot > 0, or it is
// the augmented start item (prod 0, dot 0).
func (it Item) IsKernel() bool {
	return it.Dot > 0 || it.Prod == augmentedProductionIndex
}

// IsComplete reports whether the item's dot has reached the end of the
// production's RHS.
func (it Item) IsComplete(prods *ProductionSet) bool {
	p, ok := prods.ByIndex(it.Prod)
	if !ok {
		return false
	}
	return it.Dot >= len(p.RHS)
}

// DottedSymbol returns the symbol immediately after the dot and true,
// or the zero Symbol and false if the item is complete.
func (it Item) DottedSymbol(prods *ProductionSet) (Symbol, bool) {
	p, ok := prods.ByIndex(it.Prod)
	if !ok || it.Dot >= len(p.RHS) {
		return Symbol{}, false
	}
	return p.RHS[it.Dot], true
}

// advance returns the item with the dot moved one symbol to the right.
func (it Item) advance() Item {
	return Item{Prod: it.Prod, Dot: it.Dot + 1}
}

func (it Item) String(prods *ProductionSet) string {
	p, ok := prods.ByIndex(it.Prod)
	if !ok {
		return fmt.Sprintf("<unknown production %v>", it.Prod)
	}
	s := p.LHS.Name + " ->"
	for i, sym := range p.RHS {
		if i == it.Dot {
			s += " ."
		}
		s += " " + sym.Name
	}
	if it.Dot == len(p.RHS) {
		s += " ."
	}
	return s
}

// ItemSet is a state of the canonical collection: a set of items,
// kept in lexicographic (prod,dot) order, identified by its canonical
// key, a structhash digest of those sorted pairs.
type ItemSet struct {
	Key   string
	Items []Item
}

// newItemSet sorts and deduplicates items and computes the canonical
// key with structhash over the sorted (prod,dot) pairs, see
// DESIGN.md.
func newItemSet(items []Item) *ItemSet {
	seen := map[Item]bool{}
	var uniq []Item
	for _, it := range items {
		if seen[it] {
			continue
		}
		seen[it] = true
		uniq = append(uniq, it)
	}
	sort.Slice(uniq, func(i, j int) bool {
		if uniq[i].Prod != uniq[j].Prod {
			return uniq[i].Prod < uniq[j].Prod
		}
		return uniq[i].Dot < uniq[j].Dot
	})

	pairs := make([]itemKeyPair, len(uniq))
	for i, it := range uniq {
		pairs[i] = itemKeyPair{Prod: int(it.Prod), Dot: it.Dot}
	}
	key, err := structhash.Hash(pairs, 1)
	if err != nil {
		// pairs is a plain slice of plain structs; structhash can only
		// fail on types it cannot reflect over.
		panic(fmt.Sprintf("grammar: cannot hash item set: %v", err))
	}

	return &ItemSet{Key: key, Items: uniq}
}

// Equal reports whether two item sets have the same canonical key.
func (s *ItemSet) Equal(o *ItemSet) bool {
	return s.Key == o.Key
}
