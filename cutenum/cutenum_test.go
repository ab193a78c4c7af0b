package cutenum_test

import (
	"strconv"
	"testing"

	"github.com/kegliz/latticecut/cutenum"
	"github.com/kegliz/latticecut/internal/testutil"
	"github.com/kegliz/latticecut/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInfeasibleBounds(t *testing.T) {
	l := testutil.SmallLattice(t)
	_, err := cutenum.New(l, 5, 2, 6)
	require.ErrorIs(t, err, cutenum.ErrInfeasibleBounds)
}

func TestEnumerateProducesCutsWithinUnbalanceBound(t *testing.T) {
	l := testutil.SmallLattice(t)
	maxUnbalance := 6
	en, err := cutenum.New(l, 0, max(l.Width(), l.Height()), maxUnbalance)
	require.NoError(t, err)

	cuts := en.Enumerate()
	require.NotEmpty(t, cuts, "a small connected lattice must have at least one feasible cut")
	for _, c := range cuts {
		assert.LessOrEqual(t, c.Unbalance, maxUnbalance)
		assert.NotEmpty(t, c.DualPath)
		for _, e := range c.Edges {
			assert.GreaterOrEqual(t, e, 0)
			assert.Less(t, e, l.NumEdges())
		}
	}
}

func TestEnumerateDedupsByRealEdgesOnly(t *testing.T) {
	l := testutil.DefaultLattice(t)
	en, err := cutenum.New(l, 0, max(l.Width(), l.Height()), l.NumEdges())
	require.NoError(t, err)

	cuts := en.Enumerate()
	seen := map[string]bool{}
	for _, c := range cuts {
		var key string
		for _, e := range c.Edges {
			if l.RealAt(e) {
				key += strconv.Itoa(e) + ","
			}
		}
		assert.False(t, seen[key], "real-edge projection of cuts must be deduplicated")
		seen[key] = true
	}
}

func TestUnbalanceIsSymmetricUnderSideLabeling(t *testing.T) {
	l := testutil.SmallLattice(t)
	en, err := cutenum.New(l, 0, max(l.Width(), l.Height()), l.NumEdges())
	require.NoError(t, err)

	cuts := en.Enumerate()
	require.NotEmpty(t, cuts)

	used := l.UsedQubitPoints()
	for _, c := range cuts {
		excluded := map[int]bool{}
		for _, e := range c.Edges {
			if l.RealAt(e) {
				excluded[e] = true
			}
		}

		reachableFrom := func(start lattice.Point) int {
			visited := map[lattice.Point]bool{start: true}
			stack := []lattice.Point{start}
			count := 0
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				count++
				for _, nb := range l.PrimalNeighbors(p) {
					if excluded[nb.EdgeIndex] || visited[nb.To] {
						continue
					}
					visited[nb.To] = true
					stack = append(stack, nb.To)
				}
			}
			return count
		}

		a := reachableFrom(used[0])
		// Any qubit not reached from used[0] is on "the other side"; the
		// unbalance must not depend on which side we call c1.
		var otherSide lattice.Point
		found := false
		for _, q := range used {
			visited := map[lattice.Point]bool{used[0]: true}
			stack := []lattice.Point{used[0]}
			reached := map[lattice.Point]bool{}
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				reached[p] = true
				for _, nb := range l.PrimalNeighbors(p) {
					if excluded[nb.EdgeIndex] || visited[nb.To] {
						continue
					}
					visited[nb.To] = true
					stack = append(stack, nb.To)
				}
			}
			if !reached[q] {
				otherSide = q
				found = true
				break
			}
		}
		if !found {
			continue
		}
		b := reachableFrom(otherSide)
		diff := a - b
		if diff < 0 {
			diff = -diff
		}
		assert.Equal(t, c.Unbalance, diff)
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
