package lattice

import "errors"

// Sentinel errors returned by Lattice construction and queries. Callers
// should compare with errors.Is.
var (
	// ErrTopologyDisconnected is returned when the used qubits and real
	// couplers of a topology do not form a single connected component.
	ErrTopologyDisconnected = errors.New("lattice: topology is not single connected")

	// ErrInvalidCoordinates is returned when an unused-qubit id or
	// unused-coupler endpoint falls outside the lattice's qubit range.
	ErrInvalidCoordinates = errors.New("lattice: qubit id or coupler endpoint out of range")
)
