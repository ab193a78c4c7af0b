package cost

// usedBoard is a reusable bitset tracking, for every (beat, edge) pair,
// whether that edge has already been consumed by a fusion at that beat.
// It is sized once per worker and reset between cuts rather than
// reallocated.
type usedBoard struct {
	flags  []bool
	nEdges int
}

func newUsedBoard(nEdges, depth int) *usedBoard {
	return &usedBoard{flags: make([]bool, nEdges*(depth+1)), nEdges: nEdges}
}

func (u *usedBoard) index(beat, edge int) int { return beat*u.nEdges + edge }

func (u *usedBoard) isUsed(beat, edge int) bool { return u.flags[u.index(beat, edge)] }

func (u *usedBoard) setUsed(beat, edge int) { u.flags[u.index(beat, edge)] = true }

func (u *usedBoard) reset() {
	for i := range u.flags {
		u.flags[i] = false
	}
}
