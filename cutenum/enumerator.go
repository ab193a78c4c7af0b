package cutenum

import (
	"strconv"
	"strings"

	"github.com/kegliz/latticecut/lattice"
)

// Enumerator finds candidate Cuts in a lattice subject to depth and
// balance bounds.
type Enumerator struct {
	lat          *lattice.Lattice
	minDepth     int
	maxDepth     int
	maxUnbalance int
}

// New builds an Enumerator. It returns ErrInfeasibleBounds if
// minDepth > maxDepth.
func New(lat *lattice.Lattice, minDepth, maxDepth, maxUnbalance int) (*Enumerator, error) {
	if minDepth > maxDepth {
		return nil, ErrInfeasibleBounds
	}
	return &Enumerator{lat: lat, minDepth: minDepth, maxDepth: maxDepth, maxUnbalance: maxUnbalance}, nil
}

// Enumerate returns every Cut between distinct boundary-node pairs that
// satisfies the depth bounds, deduplicated modulo virtual dual edges, and
// filtered to the configured unbalance bound.
func (e *Enumerator) Enumerate() []Cut {
	boundary := e.lat.BoundaryNodes()

	var paths [][]lattice.Point
	for i := 0; i < len(boundary)-1; i++ {
		from := boundary[i]
		tos := boundary[i+1:]
		e.searchPathsBetween(from, tos, &paths)
	}

	splits := make([][]int, len(paths))
	for i, p := range paths {
		splits[i] = pathToSplit(e.lat, p)
	}
	splits, paths = dedupVirtual(e.lat, splits, paths)

	used := e.lat.UsedQubitPoints()
	cuts := make([]Cut, 0, len(splits))
	for i, split := range splits {
		if len(used) == 0 {
			continue
		}
		unb := computeUnbalance(e.lat, used, split)
		if unb > e.maxUnbalance {
			continue
		}
		cuts = append(cuts, Cut{DualPath: paths[i], Edges: split, Unbalance: unb})
	}
	return cuts
}

type frameIter struct {
	neighbors []lattice.DualNeighbor
	pos       int
}

func newFrameIter(lat *lattice.Lattice, p lattice.Point) *frameIter {
	return &frameIter{neighbors: lat.DualNeighbors(p)}
}

func (f *frameIter) next() (lattice.DualNeighbor, bool) {
	if f.pos >= len(f.neighbors) {
		return lattice.DualNeighbor{}, false
	}
	n := f.neighbors[f.pos]
	f.pos++
	return n, true
}

// searchPathsBetween performs an iterative DFS with an explicit visited
// stack and per-frame neighbor iterators from "from" to every node in
// "tos", where depth counts only real dual edges crossed. A target reached
// with depth in [minDepth,maxDepth) is recorded. When a frame's next step
// would bring the depth to maxDepth, that frame is the frontier: if the
// neighbor is a target, the path to it (of depth maxDepth) is recorded;
// otherwise the frame's remaining children are scanned and the path to the
// first target among them is recorded. minDepth is not checked at the
// frontier. The frame is then popped.
func (e *Enumerator) searchPathsBetween(from lattice.Point, tos []lattice.Point, out *[][]lattice.Point) {
	isTo := make(map[lattice.Point]bool, len(tos))
	for _, t := range tos {
		isTo[t] = true
	}

	visited := []lattice.Point{from}
	onPath := map[lattice.Point]bool{from: true}
	depths := []int{0}
	stack := []*frameIter{newFrameIter(e.lat, from)}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		nb, ok := top.next()
		if !ok {
			p := visited[len(visited)-1]
			delete(onPath, p)
			visited = visited[:len(visited)-1]
			depths = depths[:len(depths)-1]
			stack = stack[:len(stack)-1]
			continue
		}

		curDepth := depths[len(depths)-1]
		delta := 0
		if nb.Real {
			delta = 1
		}
		newDepth := curDepth + delta

		if newDepth < e.maxDepth {
			if isTo[nb.To] {
				if newDepth >= e.minDepth {
					*out = append(*out, appendPath(visited, nb.To))
				}
				continue
			}
			if !e.lat.IsBoundary(nb.To) && !onPath[nb.To] {
				visited = append(visited, nb.To)
				onPath[nb.To] = true
				depths = append(depths, newDepth)
				stack = append(stack, newFrameIter(e.lat, nb.To))
			}
			continue
		}

		if isTo[nb.To] {
			*out = append(*out, appendPath(visited, nb.To))
		} else {
			for {
				nb2, ok2 := top.next()
				if !ok2 {
					break
				}
				if isTo[nb2.To] {
					*out = append(*out, appendPath(visited, nb2.To))
					break
				}
			}
		}
		p := visited[len(visited)-1]
		delete(onPath, p)
		visited = visited[:len(visited)-1]
		depths = depths[:len(depths)-1]
		stack = stack[:len(stack)-1]
	}
}

func appendPath(visited []lattice.Point, last lattice.Point) []lattice.Point {
	out := make([]lattice.Point, len(visited)+1)
	copy(out, visited)
	out[len(visited)] = last
	return out
}

func pathToSplit(lat *lattice.Lattice, path []lattice.Point) []int {
	split := make([]int, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		p1, p2 := lattice.DualityMap(path[i], path[i+1])
		split = append(split, lat.EdgeIndex(p1, p2))
	}
	return split
}

func dedupVirtual(lat *lattice.Lattice, splits [][]int, paths [][]lattice.Point) ([][]int, [][]lattice.Point) {
	seen := map[string]bool{}
	var outSplits [][]int
	var outPaths [][]lattice.Point
	for i, split := range splits {
		var realOnly []int
		for _, e := range split {
			if lat.RealAt(e) {
				realOnly = append(realOnly, e)
			}
		}
		key := keyOf(realOnly)
		if seen[key] {
			continue
		}
		seen[key] = true
		outSplits = append(outSplits, split)
		outPaths = append(outPaths, paths[i])
	}
	return outSplits, outPaths
}

func keyOf(xs []int) string {
	var sb strings.Builder
	for _, x := range xs {
		sb.WriteString(strconv.Itoa(x))
		sb.WriteByte(',')
	}
	return sb.String()
}

// computeUnbalance removes the split's real edges from the full primal
// graph (real and virtual edges otherwise intact), then DFS from any used
// qubit and returns the absolute difference between reachable and
// unreachable used-qubit counts.
func computeUnbalance(lat *lattice.Lattice, usedQubits []lattice.Point, split []int) int {
	excluded := map[int]bool{}
	for _, e := range split {
		if lat.RealAt(e) {
			excluded[e] = true
		}
	}
	usedSet := map[lattice.Point]bool{}
	for _, q := range usedQubits {
		usedSet[q] = true
	}

	visited := map[lattice.Point]bool{usedQubits[0]: true}
	stack := []lattice.Point{usedQubits[0]}
	count := 0
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if usedSet[p] {
			count++
		}
		for _, nb := range lat.PrimalNeighbors(p) {
			if excluded[nb.EdgeIndex] {
				continue
			}
			if !visited[nb.To] {
				visited[nb.To] = true
				stack = append(stack, nb.To)
			}
		}
	}

	other := len(usedQubits) - count
	if count > other {
		return count - other
	}
	return other - count
}
