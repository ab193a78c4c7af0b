package pattern

import "github.com/kegliz/latticecut/lattice"

// VecPattern assigns an explicit Order to a subset of a lattice's primal
// edges by edge index. It is the representation produced by exhaustive
// DFS-coloring search, as opposed to BitPattern's compact encoding.
type VecPattern struct {
	orders []Order
	set    []bool
}

func newVecPattern(n int) VecPattern {
	return VecPattern{orders: make([]Order, n), set: make([]bool, n)}
}

func (p VecPattern) clone() VecPattern {
	return VecPattern{orders: append([]Order(nil), p.orders...), set: append([]bool(nil), p.set...)}
}

func (p VecPattern) get(edgeIndex int) (Order, bool) {
	if edgeIndex < 0 || edgeIndex >= len(p.orders) || !p.set[edgeIndex] {
		return 0, false
	}
	return p.orders[edgeIndex], true
}

func (p VecPattern) setOrder(edgeIndex int, o Order) {
	p.orders[edgeIndex] = o
	p.set[edgeIndex] = true
}

// Lookup returns the order assigned to primal edge (n1,n2), or ok=false
// if that edge is not real or has not been assigned.
func (p VecPattern) Lookup(lat *lattice.Lattice, n1, n2 lattice.Point) (Order, bool) {
	idx, ok := lat.PrimalEdgeBetween(n1, n2)
	if !ok || !lat.RealAt(idx) {
		return 0, false
	}
	return p.get(idx)
}

// OrderVec materializes the pattern as a dense slice over edge indices,
// with zero-value Order at unassigned/non-real slots.
func (p VecPattern) OrderVec() []Order {
	out := make([]Order, len(p.orders))
	copy(out, p.orders)
	return out
}
