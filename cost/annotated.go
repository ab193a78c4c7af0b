package cost

import (
	"github.com/kegliz/latticecut/cutenum"
	"github.com/kegliz/latticecut/lattice"
)

// dcdCandidate is one (eCut, eOutside) pair eligible for DCD fusion:
// eOutside is the real primal edge extending past one endpoint of eCut
// along the same diagonal, chosen because exactly one of the two possible
// extensions is real. OutsideOnCut records whether eOutside is itself one
// of the cut's real edges, which earns an extra unit of fused length.
type dcdCandidate struct {
	ECut, EOutside int
	OutsideOnCut   bool
}

// cutAnnotated is a Cut wrapped with the real-only cut-edge list and the
// wedge/DCD fusion candidates precomputed from the lattice geometry, so
// that per-pattern scoring need not recompute them.
type cutAnnotated struct {
	split           []int
	unbalance       int
	wedgeCandidates [][2]int
	dcdCandidates   []dcdCandidate
}

func wrapCut(lat *lattice.Lattice, cut cutenum.Cut) cutAnnotated {
	var split []int
	for _, e := range cut.Edges {
		if lat.RealAt(e) {
			split = append(split, e)
		}
	}

	var wedge [][2]int
	for i := 0; i < len(split); i++ {
		a1, b1 := lat.InverseEdge(split[i])
		for j := i + 1; j < len(split); j++ {
			a2, b2 := lat.InverseEdge(split[j])
			if a1 == a2 || a1 == b2 || b1 == a2 || b1 == b2 {
				wedge = append(wedge, [2]int{split[i], split[j]})
			}
		}
	}

	inSplit := make(map[int]bool, len(split))
	for _, e := range split {
		inSplit[e] = true
	}

	var dcd []dcdCandidate
	for _, e := range split {
		n1, n2 := lat.InverseEdge(e)
		inc1 := lattice.Point{X: 2*n1.X - n2.X, Y: 2*n1.Y - n2.Y}
		inc2 := lattice.Point{X: 2*n2.X - n1.X, Y: 2*n2.Y - n1.Y}

		e1, ok1 := lat.PrimalEdgeBetween(n1, inc1)
		real1 := ok1 && lat.RealAt(e1)
		e2, ok2 := lat.PrimalEdgeBetween(n2, inc2)
		real2 := ok2 && lat.RealAt(e2)

		switch {
		case real1 && !real2:
			dcd = append(dcd, dcdCandidate{ECut: e, EOutside: e1, OutsideOnCut: inSplit[e1]})
		case real2 && !real1:
			dcd = append(dcd, dcdCandidate{ECut: e, EOutside: e2, OutsideOnCut: inSplit[e2]})
		}
	}

	return cutAnnotated{split: split, unbalance: cut.Unbalance, wedgeCandidates: wedge, dcdCandidates: dcd}
}
