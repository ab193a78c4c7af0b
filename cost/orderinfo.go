package cost

import "github.com/kegliz/latticecut/pattern"

type wedgeWindow struct {
	beat   int
	o1, o2 pattern.Order
}

type dcdWindow struct {
	beat   int
	o1, o2 pattern.Order
}

// orderInfo is the per-gate-ordering precomputation shared by every
// (pattern, cut) pair scored against that ordering: the count of each
// order label in the repeating schedule, and the beat windows where a
// wedge or DCD fusion is structurally possible.
type orderInfo struct {
	ordering   []pattern.Order
	orderCount [4]int
	wedge      []wedgeWindow
	dcd        []dcdWindow
}

func newOrderInfo(ordering []pattern.Order) orderInfo {
	var counts [4]int
	for _, o := range ordering {
		counts[o]++
	}

	var wedge []wedgeWindow
	for i := 0; i+1 < len(ordering); i++ {
		o1, o2 := ordering[i], ordering[i+1]
		if pattern.IsElementary(o1, o2) {
			continue
		}
		wedge = append(wedge, wedgeWindow{beat: i, o1: o1, o2: o2})
	}

	var dcd []dcdWindow
	for i := 0; i+2 < len(ordering); i++ {
		o1, o2, o3 := ordering[i], ordering[i+1], ordering[i+2]
		if o1 != o3 {
			continue
		}
		if pattern.IsElementary(o1, o2) {
			dcd = append(dcd, dcdWindow{beat: i, o1: o1, o2: o2})
		}
	}

	return orderInfo{ordering: ordering, orderCount: counts, wedge: wedge, dcd: dcd}
}

func (oi orderInfo) depth() int { return len(oi.ordering) - 1 }
