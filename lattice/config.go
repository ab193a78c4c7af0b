package lattice

// Coupler identifies an unused primal edge by the pair of qubit ids it
// connects. Order does not matter.
type Coupler struct {
	A, B int
}

// Config describes a lattice topology: its grid size, checkerboard
// placement, and the qubits/couplers that are broken and must be treated
// as non-real.
type Config struct {
	Width, Height  int
	QubitAtOrigin  bool
	UnusedQubits   []int
	UnusedCouplers []Coupler
}
