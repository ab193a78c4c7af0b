package lattice

import (
	"fmt"
	"sort"

	"golang.org/x/exp/slices"
)

// DualNeighbor is one edge out of a dual (router) node.
type DualNeighbor struct {
	To        Point
	EdgeIndex int
	Real      bool
}

// PrimalNeighbor is one edge out of a primal (qubit) node.
type PrimalNeighbor struct {
	To        Point
	EdgeIndex int
	Real      bool
}

type primalEdge struct {
	A, B Point
}

type dualEdge struct {
	A, B Point
}

// Lattice is the primal qubit graph and its dual router graph for a
// width x height checkerboard topology, built once from a Config and
// queried read-only afterward.
type Lattice struct {
	width, height int
	qubitAtOrigin bool

	qubitID    map[Point]int
	qubitPoint []Point

	unusedQubits map[int]bool

	primal []primalEdge
	dual   []dualEdge
	real   []bool

	primalAdj map[Point][]int
	dualAdj   map[Point][]int

	boundary map[Point]bool

	numSlash, numBackSlash int
}

// New builds a Lattice from cfg, validating coordinates and the
// single-connectedness invariant.
func New(cfg Config) (*Lattice, error) {
	l := &Lattice{
		width:         cfg.Width,
		height:        cfg.Height,
		qubitAtOrigin: cfg.QubitAtOrigin,
		qubitID:       map[Point]int{},
		unusedQubits:  map[int]bool{},
		primalAdj:     map[Point][]int{},
		dualAdj:       map[Point][]int{},
	}

	for y := 0; y < l.height; y++ {
		for x := 0; x < l.width; x++ {
			p := Point{x, y}
			if isQubit(x, y, l.qubitAtOrigin) {
				id := len(l.qubitPoint)
				l.qubitID[p] = id
				l.qubitPoint = append(l.qubitPoint, p)
			}
		}
	}
	nQubits := len(l.qubitPoint)

	for _, q := range cfg.UnusedQubits {
		if q < 0 || q >= nQubits {
			return nil, fmt.Errorf("%w: unused qubit %d", ErrInvalidCoordinates, q)
		}
		l.unusedQubits[q] = true
	}
	unusedCouplers := map[[2]int]bool{}
	for _, c := range cfg.UnusedCouplers {
		if c.A < 0 || c.A >= nQubits || c.B < 0 || c.B >= nQubits {
			return nil, fmt.Errorf("%w: unused coupler (%d,%d)", ErrInvalidCoordinates, c.A, c.B)
		}
		unusedCouplers[canon(c.A, c.B)] = true
	}

	l.buildEdges(unusedCouplers)
	l.computeSlashCounts()

	if err := l.verifySingleConnected(); err != nil {
		return nil, err
	}

	l.computeBoundary()
	l.pruneDanglingNodes()

	return l, nil
}

func canon(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// isQubit reports whether (x,y) carries a qubit under the checkerboard
// placement rooted at qubitAtOrigin.
func isQubit(x, y int, qubitAtOrigin bool) bool {
	if y%2 == 0 {
		if qubitAtOrigin {
			return x%2 == 0
		}
		return x%2 == 1
	}
	if qubitAtOrigin {
		return x%2 == 1
	}
	return x%2 == 0
}

func (l *Lattice) buildEdges(unusedCouplers map[[2]int]bool) {
	n := (l.width - 1) * (l.height - 1)
	l.primal = make([]primalEdge, n)
	l.dual = make([]dualEdge, n)
	l.real = make([]bool, n)

	for row := 0; row < l.height-1; row++ {
		for col := 0; col < l.width-1; col++ {
			idx := row*(l.width-1) + col
			var p1, p2 Point
			if isQubit(col, row, l.qubitAtOrigin) {
				p1, p2 = Point{col, row}, Point{col + 1, row + 1}
			} else {
				p1, p2 = Point{col, row + 1}, Point{col + 1, row}
			}
			l.primal[idx] = primalEdge{p1, p2}
			d1, d2 := DualityMap(p1, p2)
			l.dual[idx] = dualEdge{d1, d2}

			id1, id2 := l.qubitID[p1], l.qubitID[p2]
			real := !l.unusedQubits[id1] && !l.unusedQubits[id2] && !unusedCouplers[canon(id1, id2)]
			l.real[idx] = real

			l.primalAdj[p1] = append(l.primalAdj[p1], idx)
			l.primalAdj[p2] = append(l.primalAdj[p2], idx)
			l.dualAdj[d1] = append(l.dualAdj[d1], idx)
			l.dualAdj[d2] = append(l.dualAdj[d2], idx)
		}
	}
}

func (l *Lattice) computeSlashCounts() {
	sCounts := map[int]int{}
	dCounts := map[int]int{}
	for _, p := range l.qubitPoint {
		sCounts[p.X+p.Y]++
		dCounts[p.X-p.Y]++
	}
	l.numSlash = 0
	for _, c := range sCounts {
		if c >= 2 {
			l.numSlash++
		}
	}
	l.numBackSlash = 0
	for _, c := range dCounts {
		if c >= 2 {
			l.numBackSlash++
		}
	}
}

func (l *Lattice) verifySingleConnected() error {
	used := make([]int, 0, len(l.qubitPoint))
	for id := range l.qubitPoint {
		if !l.unusedQubits[id] {
			used = append(used, id)
		}
	}
	if len(used) == 0 {
		return nil
	}

	adj := map[int][]int{}
	for idx, e := range l.primal {
		if !l.real[idx] {
			continue
		}
		id1, id2 := l.qubitID[e.A], l.qubitID[e.B]
		adj[id1] = append(adj[id1], id2)
		adj[id2] = append(adj[id2], id1)
	}

	visited := map[int]bool{used[0]: true}
	stack := []int{used[0]}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nb := range adj[n] {
			if !visited[nb] {
				visited[nb] = true
				stack = append(stack, nb)
			}
		}
	}

	for _, id := range used {
		if !visited[id] {
			return ErrTopologyDisconnected
		}
	}
	return nil
}

func (l *Lattice) computeBoundary() {
	l.boundary = map[Point]bool{}
	var stack []Point
	for p := range l.dualAdj {
		if p.X == 0 || p.X == l.width-1 || p.Y == 0 || p.Y == l.height-1 {
			if !l.boundary[p] {
				l.boundary[p] = true
				stack = append(stack, p)
			}
		}
	}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, idx := range l.dualAdj[p] {
			if l.real[idx] {
				continue
			}
			e := l.dual[idx]
			other := e.A
			if other == p {
				other = e.B
			}
			if !l.boundary[other] {
				l.boundary[other] = true
				stack = append(stack, other)
			}
		}
	}
}

func (l *Lattice) pruneDanglingNodes() {
	var dangling []Point
	for p, idxs := range l.dualAdj {
		allVirtual := true
		for _, idx := range idxs {
			if l.real[idx] {
				allVirtual = false
				break
			}
		}
		if allVirtual {
			dangling = append(dangling, p)
		}
	}
	for _, p := range dangling {
		delete(l.dualAdj, p)
		delete(l.boundary, p)
	}
}

// Width, Height and QubitAtOrigin report the lattice's grid parameters.
func (l *Lattice) Width() int          { return l.width }
func (l *Lattice) Height() int         { return l.height }
func (l *Lattice) QubitAtOrigin() bool { return l.qubitAtOrigin }

// NumEdges returns the total number of primal/dual edge slots, (width-1)*(height-1).
func (l *Lattice) NumEdges() int { return len(l.primal) }

// DualNodeCount returns the number of dual router nodes remaining after
// dangling-node pruning.
func (l *Lattice) DualNodeCount() int { return len(l.dualAdj) }

// DualEdgeCount returns the number of dual edges whose both endpoints
// survived dangling-node pruning, the same survivorship DualNeighbors
// filters by at query time.
func (l *Lattice) DualEdgeCount() int {
	count := 0
	for _, e := range l.dual {
		_, okA := l.dualAdj[e.A]
		_, okB := l.dualAdj[e.B]
		if okA && okB {
			count++
		}
	}
	return count
}

// NumSlash and NumBackSlash report the bit budget used by BitPattern for
// each diagonal orientation.
func (l *Lattice) NumSlash() int     { return l.numSlash }
func (l *Lattice) NumBackSlash() int { return l.numBackSlash }

// RealAt reports whether primal/dual edge i is real (both its endpoints
// used and its coupler not broken).
func (l *Lattice) RealAt(i int) bool { return l.real[i] }

// InverseEdge returns the primal qubit endpoints of edge index i.
func (l *Lattice) InverseEdge(i int) (Point, Point) {
	e := l.primal[i]
	return e.A, e.B
}

// DualEdge returns the dual router endpoints of edge index i.
func (l *Lattice) DualEdge(i int) (Point, Point) {
	e := l.dual[i]
	return e.A, e.B
}

// EdgeIndex computes the stable index shared by a primal edge and its
// dual counterpart from their endpoints.
func EdgeIndex(n1, n2 Point, width int) int {
	return ((n1.Y+n2.Y)/2)*(width-1) + (n1.X+n2.X)/2
}

// EdgeIndex is the bound form of the package-level EdgeIndex for this
// lattice's width.
func (l *Lattice) EdgeIndex(n1, n2 Point) int { return EdgeIndex(n1, n2, l.width) }

// PrimalEdgeBetween returns the edge index of the primal edge joining two
// diagonally adjacent qubit points, if both are qubits of this lattice.
func (l *Lattice) PrimalEdgeBetween(n1, n2 Point) (int, bool) {
	if _, ok := l.qubitID[n1]; !ok {
		return 0, false
	}
	if _, ok := l.qubitID[n2]; !ok {
		return 0, false
	}
	return l.EdgeIndex(n1, n2), true
}

// QubitID returns the row-major id of a qubit point.
func (l *Lattice) QubitID(p Point) (int, bool) {
	id, ok := l.qubitID[p]
	return id, ok
}

// QubitPoints returns every qubit point (used or not) in row-major id order.
func (l *Lattice) QubitPoints() []Point { return append([]Point(nil), l.qubitPoint...) }

// UsedQubitPoints returns the qubit points that are not marked unused.
func (l *Lattice) UsedQubitPoints() []Point {
	out := make([]Point, 0, len(l.qubitPoint))
	for id, p := range l.qubitPoint {
		if !l.unusedQubits[id] {
			out = append(out, p)
		}
	}
	return out
}

// BoundaryNodes returns the dual boundary node set in a fixed,
// lexicographic order.
func (l *Lattice) BoundaryNodes() []Point {
	out := make([]Point, 0, len(l.boundary))
	for p := range l.boundary {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// IsBoundary reports whether p is a (post-pruning) dual boundary node.
func (l *Lattice) IsBoundary(p Point) bool { return l.boundary[p] }

// DualNeighbors returns the pruned, sorted neighbor list of a dual node.
func (l *Lattice) DualNeighbors(p Point) []DualNeighbor {
	idxs := l.dualAdj[p]
	out := make([]DualNeighbor, 0, len(idxs))
	for _, idx := range idxs {
		e := l.dual[idx]
		to := e.A
		if to == p {
			to = e.B
		}
		if _, ok := l.dualAdj[to]; !ok {
			// Neighbor was pruned as a dangling node.
			continue
		}
		out = append(out, DualNeighbor{To: to, EdgeIndex: idx, Real: l.real[idx]})
	}
	slices.SortFunc(out, func(a, b DualNeighbor) bool { return a.To.Less(b.To) })
	return out
}

// PrimalNeighbors returns the full (real and virtual) neighbor list of a
// primal node.
func (l *Lattice) PrimalNeighbors(p Point) []PrimalNeighbor {
	idxs := l.primalAdj[p]
	out := make([]PrimalNeighbor, 0, len(idxs))
	for _, idx := range idxs {
		e := l.primal[idx]
		to := e.A
		if to == p {
			to = e.B
		}
		out = append(out, PrimalNeighbor{To: to, EdgeIndex: idx, Real: l.real[idx]})
	}
	return out
}

// SlashIndex returns the 1-based diagonal-line index used by BitPattern to
// address the "/" (1..=NumSlash) or "\\" (NumSlash+1..=NumSlash+NumBackSlash)
// line a primal edge lies on.
func (l *Lattice) SlashIndex(n1, n2 Point) int {
	a, b := minMax(n1, n2)
	isSlash := a.Y > b.Y
	if isSlash {
		offset := 0
		if !l.qubitAtOrigin {
			offset = 1
		}
		return offset + (a.X+a.Y)/2
	}
	offset := 0
	if (l.qubitAtOrigin && l.height%2 == 0) || (!l.qubitAtOrigin && l.height%2 == 1) {
		offset = 1
	}
	return offset + (l.height-1-b.Y+b.X)/2 + l.numSlash
}
