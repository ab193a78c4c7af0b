package cost_test

import (
	"math"
	"testing"

	"github.com/kegliz/latticecut/cost"
	"github.com/kegliz/latticecut/cutenum"
	"github.com/kegliz/latticecut/internal/testutil"
	"github.com/kegliz/latticecut/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enumerateCuts(t *testing.T, maxUnbalance int) (*cutenum.Enumerator, []cutenum.Cut) {
	t.Helper()
	l := testutil.DefaultLattice(t)
	en, err := cutenum.New(l, 0, max(l.Width(), l.Height()), maxUnbalance)
	require.NoError(t, err)
	return en, en.Enumerate()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func TestEvaluateRejectsEmptyInput(t *testing.T) {
	l := testutil.DefaultLattice(t)
	_, cuts := enumerateCuts(t, 6)
	require.NotEmpty(t, cuts)

	_, err := cost.Evaluate(l, nil, cuts, cost.Options{Ordering: testutil.DefaultOrdering})
	assert.ErrorIs(t, err, cost.ErrEmptyInput)

	patterns := pattern.NewBitSource(l).Enumerate(4)
	_, err = cost.Evaluate(l, patterns, nil, cost.Options{Ordering: testutil.DefaultOrdering})
	assert.ErrorIs(t, err, cost.ErrEmptyInput)
}

func TestEvaluateReturnsWinnersAtTheMaxMinCost(t *testing.T) {
	l := testutil.DefaultLattice(t)
	_, cuts := enumerateCuts(t, 6)
	require.NotEmpty(t, cuts)

	patterns := pattern.NewBitSource(l).Enumerate(32)
	require.NotEmpty(t, patterns)

	records, err := cost.Evaluate(l, patterns, cuts, cost.Options{Ordering: testutil.DefaultOrdering, Workers: 4})
	require.NoError(t, err)
	require.NotEmpty(t, records)

	first := records[0].Cost
	for _, r := range records[1:] {
		assert.InDelta(t, first, r.Cost, 1e-9, "every returned record must tie at the max-min cost")
	}
	for _, r := range records {
		assert.GreaterOrEqual(t, r.CutIndex, 0)
		assert.Less(t, r.CutIndex, len(cuts))
	}
}

func TestEvaluateIsDeterministicAcrossWorkerCounts(t *testing.T) {
	l := testutil.DefaultLattice(t)
	_, cuts := enumerateCuts(t, 6)
	require.NotEmpty(t, cuts)
	patterns := pattern.NewBitSource(l).Enumerate(16)
	require.NotEmpty(t, patterns)

	seq, err := cost.Evaluate(l, patterns, cuts, cost.Options{Ordering: testutil.DefaultOrdering, Workers: 1})
	require.NoError(t, err)
	par, err := cost.Evaluate(l, patterns, cuts, cost.Options{Ordering: testutil.DefaultOrdering, Workers: 8})
	require.NoError(t, err)

	require.Len(t, par, len(seq))
	seqBits := map[uint64]bool{}
	for _, r := range seq {
		seqBits[r.Pattern.Bits()] = true
	}
	for _, r := range par {
		assert.True(t, seqBits[r.Pattern.Bits()], "max-min winners must not depend on worker partitioning")
	}
}

func TestCostFormulaMonotoneInUnbalanceAtFixedLength(t *testing.T) {
	// cost(L, u) = 4^(L+u/4) + 4^(L-u/4) is strictly increasing in |u| for
	// fixed L, since it is the sum of a growing and a shrinking exponential
	// whose growing term dominates for u>0.
	costAt := func(length, u float64) float64 {
		return math.Pow(4, length+u/4) + math.Pow(4, length-u/4)
	}
	base := costAt(5, 0)
	bigger := costAt(5, 4)
	assert.Greater(t, bigger, base)
	assert.Greater(t, costAt(5, 8), bigger)
}

func TestCostFormulaMonotoneInLength(t *testing.T) {
	costAt := func(length, u float64) float64 {
		return math.Pow(4, length+u/4) + math.Pow(4, length-u/4)
	}
	assert.Greater(t, costAt(6, 2), costAt(5, 2))
}
