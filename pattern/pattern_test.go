package pattern_test

import (
	"testing"

	"github.com/kegliz/latticecut/internal/testutil"
	"github.com/kegliz/latticecut/lattice"
	"github.com/kegliz/latticecut/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderParseRoundTrip(t *testing.T) {
	for _, o := range []pattern.Order{pattern.A, pattern.B, pattern.C, pattern.D} {
		parsed, err := pattern.ParseOrder(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, parsed)
	}
	_, err := pattern.ParseOrder("Z")
	assert.ErrorIs(t, err, pattern.ErrInvalidOrder)
}

func TestIsElementary(t *testing.T) {
	assert.True(t, pattern.IsElementary(pattern.A, pattern.B))
	assert.True(t, pattern.IsElementary(pattern.B, pattern.A))
	assert.True(t, pattern.IsElementary(pattern.C, pattern.D))
	assert.False(t, pattern.IsElementary(pattern.A, pattern.C))
}

func TestBitSourceCountsDefaultLattice(t *testing.T) {
	l := testutil.DefaultLattice(t)
	src := pattern.NewBitSource(l)
	assert.Equal(t, uint64(1)<<21, src.Count(), "scenario 6: default lattice yields 2^21 patterns")
}

func TestBitSourceCountsWithUnusedQubits(t *testing.T) {
	l6 := testutil.LatticeWithUnusedQubits(t, 6)
	assert.Equal(t, uint64(1)<<20, pattern.NewBitSource(l6).Count(), "scenario 6: unusedQubits=[6] yields 2^20")

	lMany := testutil.LatticeWithUnusedQubits(t, 54, 60, 4, 5, 11, 17)
	assert.Equal(t, uint64(1)<<19, pattern.NewBitSource(lMany).Count(), "scenario 6: yields 2^19")
}

func TestBitSourceEnumerateRespectsMax(t *testing.T) {
	l := testutil.DefaultLattice(t)
	src := pattern.NewBitSource(l)
	out := src.Enumerate(5)
	assert.Len(t, out, 5)
}

func TestBitPatternReprRoundTripOnExamples(t *testing.T) {
	l := testutil.DefaultLattice(t)
	numSlash, numBack := l.NumSlash(), l.NumBackSlash()

	allZero, err := pattern.ParseRepr("0_0000000000_1_0000000000", numSlash, numBack)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), allZero.Bits())

	bit0Only, err := pattern.ParseRepr("1_0000000000_0_0000000000", numSlash, numBack)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), bit0Only.Bits())

	for _, p := range []pattern.BitPattern{allZero, bit0Only} {
		repr := pattern.Repr(p, numSlash, numBack)
		again, err := pattern.ParseRepr(repr, numSlash, numBack)
		require.NoError(t, err)
		assert.Equal(t, p.Bits(), again.Bits())
	}
}

func TestBitPatternReprRejectsMalformedInput(t *testing.T) {
	_, err := pattern.ParseRepr("garbage", 10, 10)
	assert.ErrorIs(t, err, pattern.ErrParseError)

	// bit0 and its complement must disagree.
	_, err = pattern.ParseRepr("0_0000000000_0_0000000000", 10, 10)
	assert.ErrorIs(t, err, pattern.ErrParseError)
}

func TestBitPatternLookupOnlyCoversRealEdges(t *testing.T) {
	l := testutil.DefaultLattice(t)
	p := pattern.NewBitPattern(0, 1+l.NumSlash()+l.NumBackSlash())

	for i := 0; i < l.NumEdges(); i++ {
		a, b := l.InverseEdge(i)
		_, ok := p.Lookup(l, a, b)
		assert.Equal(t, l.RealAt(i), ok, "orderVec assigns None exactly to non-real edges")
	}
}

func TestBitPatternAllZeroFourNeighborCycle(t *testing.T) {
	l := testutil.DefaultLattice(t)
	p := pattern.NewBitPattern(0, 1+l.NumSlash()+l.NumBackSlash())

	for _, q := range l.UsedQubitPoints() {
		if q.Y%2 != 1 {
			continue
		}
		neighbors := map[[2]int]lattice.Point{
			{1, -1}:  {X: q.X + 1, Y: q.Y - 1},
			{-1, 1}:  {X: q.X - 1, Y: q.Y + 1},
			{1, 1}:   {X: q.X + 1, Y: q.Y + 1},
			{-1, -1}: {X: q.X - 1, Y: q.Y - 1},
		}
		expected := map[[2]int]pattern.Order{
			{1, -1}:  pattern.A,
			{-1, 1}:  pattern.B,
			{1, 1}:   pattern.C,
			{-1, -1}: pattern.D,
		}
		for dir, to := range neighbors {
			idx, ok := l.PrimalEdgeBetween(q, to)
			if !ok || !l.RealAt(idx) {
				continue
			}
			order, ok := p.Lookup(l, q, to)
			require.True(t, ok)
			assert.Equal(t, expected[dir], order, "all-zero pattern four-neighbor cycle at %v toward %v", q, to)
		}
	}
}

func TestSearchVecPatternsSmallLattice(t *testing.T) {
	l := testutil.SmallLattice(t)
	results := pattern.SearchVecPatterns(l)
	assert.Len(t, results, 168, "scenario 8: 4x3 lattice yields exactly 168 patterns")
}

func TestBitPatternAgreesWithExhaustiveSearchOnSmallLattice(t *testing.T) {
	l := testutil.SmallLattice(t)
	vecPatterns := pattern.SearchVecPatterns(l)
	require.NotEmpty(t, vecPatterns)

	bitPatterns := pattern.NewBitSource(l).Enumerate(0)

	vecKeys := map[string]bool{}
	for _, vp := range vecPatterns {
		vecKeys[orderVecKey(l, vp.OrderVec())] = true
	}

	require.NotEmpty(t, bitPatterns)
	for _, bp := range bitPatterns {
		vec := make([]pattern.Order, l.NumEdges())
		for i := 0; i < l.NumEdges(); i++ {
			if !l.RealAt(i) {
				continue
			}
			a, b := l.InverseEdge(i)
			o, _ := bp.Lookup(l, a, b)
			vec[i] = o
		}
		assert.True(t, vecKeys[orderVecKey(l, vec)],
			"BitPattern %s must reproduce a coloring the exhaustive VecPattern search also finds", pattern.Repr(bp, l.NumSlash(), l.NumBackSlash()))
	}
}

func orderVecKey(l *lattice.Lattice, vec []pattern.Order) string {
	out := make([]byte, 0, len(vec))
	for i, o := range vec {
		if !l.RealAt(i) {
			out = append(out, '.')
			continue
		}
		out = append(out, byte('A'+int(o)))
	}
	return string(out)
}
