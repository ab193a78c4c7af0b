package cost

import (
	"math"
	"runtime"
	"sync"

	"github.com/kegliz/latticecut/cutenum"
	"github.com/kegliz/latticecut/internal/logger"
	"github.com/kegliz/latticecut/lattice"
	"github.com/kegliz/latticecut/pattern"
)

// Record is one winning (pattern, cut) pair: the cut that minimizes cost
// for Pattern, paired with that minimum cost.
type Record struct {
	Pattern  pattern.BitPattern
	CutIndex int
	Cost     float64
}

// Options configures one evaluation run.
type Options struct {
	// Ordering is the repeating two-qubit-gate schedule; the start/end
	// elision pass matches cut edges against its first and its last entry
	// separately.
	Ordering []pattern.Order
	// Workers caps the number of goroutines scoring patterns
	// concurrently. Zero or negative means runtime.NumCPU().
	Workers int
	Log     *logger.Logger
}

// Evaluate scores every pattern against every cut and returns the set of
// patterns that tie for the highest minimum-over-cuts cost (the
// max-min reduction). It partitions patterns statically across Workers
// goroutines, mirroring the teacher's RunParallelStatic shot partitioning.
func Evaluate(lat *lattice.Lattice, patterns []pattern.BitPattern, cuts []cutenum.Cut, opts Options) ([]Record, error) {
	if len(patterns) == 0 || len(cuts) == 0 {
		return nil, ErrEmptyInput
	}

	info := newOrderInfo(opts.Ordering)
	wrapped := make([]cutAnnotated, len(cuts))
	for i, c := range cuts {
		wrapped[i] = wrapCut(lat, c)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(patterns) {
		workers = len(patterns)
	}

	log := opts.Log
	if log != nil {
		log.Info().
			Int("patterns", len(patterns)).
			Int("cuts", len(cuts)).
			Int("workers", workers).
			Msg("cost: starting max-min evaluation")
	}

	type best struct {
		cutIdx int
		cost   float64
	}
	results := make([]best, len(patterns))

	per := len(patterns) / workers
	extra := len(patterns) % workers
	nEdges := lat.NumEdges()
	depth := info.depth()

	var wg sync.WaitGroup
	start := 0
	for w := 0; w < workers; w++ {
		cnt := per
		if w < extra {
			cnt++
		}
		end := start + cnt
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			used := newUsedBoard(nEdges, depth)
			for pi := lo; pi < hi; pi++ {
				vec := computeOrderVec(lat, patterns[pi])
				bestCut, bestCost := -1, math.Inf(1)
				for ci, cut := range wrapped {
					c := evalCost(vec, cut, info, used)
					if c < bestCost {
						bestCost = c
						bestCut = ci
					}
				}
				results[pi] = best{cutIdx: bestCut, cost: bestCost}
			}
		}(start, end)
		start = end
	}
	wg.Wait()

	maxCost := math.Inf(-1)
	for _, r := range results {
		if r.cost > maxCost {
			maxCost = r.cost
		}
	}

	var records []Record
	for pi, r := range results {
		if r.cost == maxCost {
			records = append(records, Record{Pattern: patterns[pi], CutIndex: r.cutIdx, Cost: r.cost})
		}
	}

	if log != nil {
		log.Info().
			Float64("maxMinCost", maxCost).
			Int("winners", len(records)).
			Msg("cost: max-min evaluation finished")
	}

	return records, nil
}
