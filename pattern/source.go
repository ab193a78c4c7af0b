package pattern

import "github.com/kegliz/latticecut/lattice"

// Source enumerates every BitPattern of a lattice's bit width that does
// not set a "dead" diagonal bit — one whose diagonal line carries no real
// primal edge, and so can never be observed by Lookup. Enumerate builds the
// whole list in memory; patterns are not produced one at a time.
type Source struct {
	lat      *lattice.Lattice
	nBits    int
	deadBits map[int]bool
}

// NewBitSource builds a Source over lat's diagonal-line bit budget.
func NewBitSource(lat *lattice.Lattice) *Source {
	nSlash, nBack := lat.NumSlash(), lat.NumBackSlash()
	return &Source{
		lat:      lat,
		nBits:    1 + nSlash + nBack,
		deadBits: deadSlashIndices(lat, nSlash, nBack),
	}
}

func deadSlashIndices(lat *lattice.Lattice, nSlash, nBack int) map[int]bool {
	live := map[int]bool{}
	for i := 0; i < lat.NumEdges(); i++ {
		if !lat.RealAt(i) {
			continue
		}
		a, b := lat.InverseEdge(i)
		live[lat.SlashIndex(a, b)] = true
	}
	dead := map[int]bool{}
	for i := 1; i <= nSlash+nBack; i++ {
		if !live[i] {
			dead[i] = true
		}
	}
	return dead
}

// NBits returns the declared bit width of patterns this source emits.
func (s *Source) NBits() int { return s.nBits }

// DeadBits returns the set of diagonal-line bit indices with no real
// primal edge (and so are forced to 0 in every emitted pattern).
func (s *Source) DeadBits() map[int]bool {
	out := make(map[int]bool, len(s.deadBits))
	for k := range s.deadBits {
		out[k] = true
	}
	return out
}

// Count returns the total number of distinct patterns this source emits,
// 2^(nBits-len(deadBits)).
func (s *Source) Count() uint64 {
	return uint64(1) << uint(s.nBits-len(s.deadBits))
}

// Enumerate returns every pattern this source emits, in increasing
// bit-vector order, stopping early once maxPatterns have been collected
// (maxPatterns<=0 means unbounded).
func (s *Source) Enumerate(maxPatterns int) []BitPattern {
	total := uint64(1) << uint(s.nBits)
	var out []BitPattern
	for n := uint64(0); n < total; n++ {
		live := true
		for bit := range s.deadBits {
			if n&(uint64(1)<<uint(bit)) != 0 {
				live = false
				break
			}
		}
		if !live {
			continue
		}
		out = append(out, BitPattern{bits: n, nBits: s.nBits})
		if maxPatterns > 0 && len(out) >= maxPatterns {
			break
		}
	}
	return out
}
