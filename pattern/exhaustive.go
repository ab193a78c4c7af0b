package pattern

import "github.com/kegliz/latticecut/lattice"

// SearchVecPatterns exhaustively enumerates every VecPattern consistent
// with the constraint that, at every qubit, the orders assigned to its
// real incident edges are a permutation of the four labels restricted to
// whichever labels its neighbors across those edges can still accept.
// It walks qubits in row-major id order, coloring one qubit's unassigned
// incident edges at a time. This mirrors the DFS-coloring search used for
// small lattices where a full bit-pattern sweep is unnecessary or where
// the lattice geometry makes the BitPattern diagonal-line encoding
// inapplicable.
func SearchVecPatterns(lat *lattice.Lattice) []VecPattern {
	base := newVecPattern(lat.NumEdges())
	return searchVecRec(lat, base, lat.QubitPoints(), 0)
}

func searchVecRec(lat *lattice.Lattice, pat VecPattern, nodes []lattice.Point, next int) []VecPattern {
	if next >= len(nodes) {
		return []VecPattern{pat.clone()}
	}
	node := nodes[next]
	unassignedOrders, unassignedEdges := unassignedOrdersAndEdges(lat, node, pat)
	if len(unassignedEdges) == 0 {
		return searchVecRec(lat, pat, nodes, next+1)
	}

	var results []VecPattern
	for _, perm := range permutations(unassignedOrders, len(unassignedEdges)) {
		ok := true
		for k, e := range unassignedEdges {
			n1, n2 := lat.InverseEdge(e)
			target := n1
			if target == node {
				target = n2
			}
			allowed, _ := unassignedOrdersAndEdges(lat, target, pat)
			if !containsOrder(allowed, perm[k]) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		newPat := pat.clone()
		for k, e := range unassignedEdges {
			newPat.setOrder(e, perm[k])
		}
		results = append(results, searchVecRec(lat, newPat, nodes, next+1)...)
	}
	return results
}

// unassignedOrdersAndEdges returns, for a qubit's real incident edges, the
// edges not yet assigned an order and the set of orders still free to use
// there (the four labels minus whatever its assigned incident edges
// already use).
func unassignedOrdersAndEdges(lat *lattice.Lattice, node lattice.Point, pat VecPattern) ([]Order, []int) {
	used := map[Order]bool{}
	var unassigned []int
	for _, nb := range lat.PrimalNeighbors(node) {
		if !nb.Real {
			continue
		}
		if o, ok := pat.get(nb.EdgeIndex); ok {
			used[o] = true
		} else {
			unassigned = append(unassigned, nb.EdgeIndex)
		}
	}
	var free []Order
	for _, o := range []Order{A, B, C, D} {
		if !used[o] {
			free = append(free, o)
		}
	}
	return free, unassigned
}

func containsOrder(os []Order, o Order) bool {
	for _, x := range os {
		if x == o {
			return true
		}
	}
	return false
}

// permutations returns every way of choosing k elements from pool,
// without repetition, in order.
func permutations(pool []Order, k int) [][]Order {
	if k == 0 {
		return [][]Order{{}}
	}
	if k > len(pool) {
		return nil
	}
	var out [][]Order
	used := make([]bool, len(pool))
	var cur []Order
	var rec func()
	rec = func() {
		if len(cur) == k {
			out = append(out, append([]Order(nil), cur...))
			return
		}
		for i, o := range pool {
			if used[i] {
				continue
			}
			used[i] = true
			cur = append(cur, o)
			rec()
			cur = cur[:len(cur)-1]
			used[i] = false
		}
	}
	rec()
	return out
}
