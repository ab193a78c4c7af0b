// Package testutil centralizes fixture lattices and orderings shared by
// the pattern/cutenum/cost test suites, mirroring qc/testutil's
// TestConfig/predefined-fixture pattern.
package testutil

import (
	"testing"
	"time"

	"github.com/kegliz/latticecut/lattice"
	"github.com/kegliz/latticecut/pattern"
	"github.com/stretchr/testify/require"
)

const (
	DefaultTestTimeout = 10 * time.Second

	// DefaultWidth and DefaultHeight match spec.md's default topology.
	DefaultWidth  = 12
	DefaultHeight = 11
)

// DefaultOrdering is the canonical 8-beat A,B,C,D,A,B,C,D schedule used
// throughout the cost-evaluator tests.
var DefaultOrdering = []pattern.Order{pattern.A, pattern.B, pattern.C, pattern.D, pattern.A, pattern.B, pattern.C, pattern.D}

// DefaultLattice builds the spec.md-default 12x11 topology with no broken
// qubits or couplers.
func DefaultLattice(t *testing.T) *lattice.Lattice {
	t.Helper()
	l, err := lattice.New(lattice.Config{Width: DefaultWidth, Height: DefaultHeight})
	require.NoError(t, err, "default lattice must construct cleanly")
	return l
}

// LatticeWithUnusedQubits builds the default topology with the given
// qubit ids marked unused.
func LatticeWithUnusedQubits(t *testing.T, qubits ...int) *lattice.Lattice {
	t.Helper()
	l, err := lattice.New(lattice.Config{
		Width: DefaultWidth, Height: DefaultHeight,
		UnusedQubits: qubits,
	})
	require.NoError(t, err, "lattice with unused qubits %v must construct cleanly", qubits)
	return l
}

// SmallLattice builds a 4x3 topology, small enough for exhaustive
// VecPattern enumeration in tests.
func SmallLattice(t *testing.T) *lattice.Lattice {
	t.Helper()
	l, err := lattice.New(lattice.Config{Width: 4, Height: 3})
	require.NoError(t, err, "small lattice must construct cleanly")
	return l
}
