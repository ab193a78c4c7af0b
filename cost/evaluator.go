package cost

import (
	"math"

	"github.com/kegliz/latticecut/lattice"
	"github.com/kegliz/latticecut/pattern"
)

// computeOrderVec materializes the order a pattern assigns to every real
// primal edge of the lattice, indexed by edge index.
func computeOrderVec(lat *lattice.Lattice, pat pattern.BitPattern) []pattern.Order {
	vec := make([]pattern.Order, lat.NumEdges())
	for i := 0; i < lat.NumEdges(); i++ {
		if !lat.RealAt(i) {
			continue
		}
		a, b := lat.InverseEdge(i)
		o, _ := pat.Lookup(lat, a, b)
		vec[i] = o
	}
	return vec
}

// evalCost scores one (pattern, cut) pair against orderInfo, applying
// fusion passes in the fixed order start/end elision, wedge, DCD. used
// must be sized for the lattice's edge count and orderInfo's depth, and
// is reset before returning.
func evalCost(edgeOrderVec []pattern.Order, cut cutAnnotated, info orderInfo, used *usedBoard) float64 {
	depth := info.depth()

	gates := 0
	for _, e := range cut.split {
		gates += info.orderCount[edgeOrderVec[e]]
	}

	startOrder := info.ordering[0]
	endOrder := info.ordering[depth]
	swaps := 0
	for _, e := range cut.split {
		o := edgeOrderVec[e]
		if o == startOrder {
			used.setUsed(0, e)
			swaps++
		}
		if o == endOrder {
			used.setUsed(depth, e)
			swaps++
		}
	}

	wedges := 0
	for _, ww := range info.wedge {
		for _, wc := range cut.wedgeCandidates {
			e1, e2 := wc[0], wc[1]
			if matchWedge(edgeOrderVec, used, ww, e1, e2) {
				wedges++
				continue
			}
			if matchWedge(edgeOrderVec, used, ww, e2, e1) {
				wedges++
			}
		}
	}

	dcds := 0
	for _, dw := range info.dcd {
		for _, dc := range cut.dcdCandidates {
			if edgeOrderVec[dc.ECut] != dw.o1 || edgeOrderVec[dc.EOutside] != dw.o2 {
				continue
			}
			if used.isUsed(dw.beat, dc.ECut) || used.isUsed(dw.beat+2, dc.ECut) || used.isUsed(dw.beat+1, dc.EOutside) {
				continue
			}
			used.setUsed(dw.beat, dc.ECut)
			used.setUsed(dw.beat+2, dc.ECut)
			used.setUsed(dw.beat+1, dc.EOutside)
			dcds++
			if dc.OutsideOnCut {
				dcds++
			}
		}
	}

	used.reset()

	length := float64(gates-dcds-wedges) - float64(swaps)/2
	u := float64(cut.unbalance)
	return math.Pow(4, length+u/4) + math.Pow(4, length-u/4)
}

// matchWedge tries to fuse a wedge candidate with a beat's (o1,o2) window
// by assigning e1 to the earlier beat and e2 to the later one. It returns
// whether a fresh fusion was recorded.
func matchWedge(edgeOrderVec []pattern.Order, used *usedBoard, ww wedgeWindow, e1, e2 int) bool {
	if edgeOrderVec[e1] != ww.o1 || edgeOrderVec[e2] != ww.o2 {
		return false
	}
	if used.isUsed(ww.beat, e1) || used.isUsed(ww.beat+1, e2) {
		return false
	}
	used.setUsed(ww.beat, e1)
	used.setUsed(ww.beat+1, e2)
	return true
}
