// Package lattice builds the primal qubit graph and its dual router graph
// for a two-dimensional quantum-processor topology, and exposes the edge
// indexing, boundary, and adjacency queries the rest of the search
// pipeline is built on.
package lattice

// Point is an integer 2-D coordinate. Primal qubits and dual routers share
// the same grid.
type Point struct {
	X, Y int
}

// Less orders points lexicographically, first by X then by Y. It is the
// tie-breaker used when enumerating boundary pairs.
func (p Point) Less(o Point) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	return p.Y < o.Y
}

func minMax(a, b Point) (Point, Point) {
	if a.Less(b) {
		return a, b
	}
	return b, a
}

// DualityMap sends a primal edge to its dual edge and back (it is its own
// inverse): ((x1,y1),(x2,y2)) <-> ((x1,y2),(x2,y1)), the two corners of the
// unit cell that the input edge does not touch.
func DualityMap(n1, n2 Point) (Point, Point) {
	return Point{n1.X, n2.Y}, Point{n2.X, n1.Y}
}
