// Package cutenum enumerates the candidate cut paths through a lattice's
// dual graph: depth-bounded DFS between boundary-node pairs, deduplicated
// modulo virtual edges and filtered by a balance bound.
package cutenum

import "github.com/kegliz/latticecut/lattice"

// Cut is one candidate bipartition of the lattice: the dual path that
// traces it and the full set of primal edges (real or virtual) it
// crosses.
type Cut struct {
	DualPath  []lattice.Point
	Edges     []int
	Unbalance int
}
