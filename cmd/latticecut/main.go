// Command latticecut searches a quantum-processor lattice topology for the
// cut/pattern pairs that maximize the minimum classical-simulation cost of
// a repeating two-qubit gate schedule, the way cmd/cli wires the teacher's
// builder and simulator together and pretty-prints the result.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kegliz/latticecut/cost"
	"github.com/kegliz/latticecut/cutenum"
	"github.com/kegliz/latticecut/internal/config"
	"github.com/kegliz/latticecut/internal/logger"
	"github.com/kegliz/latticecut/internal/resultsapi"
	"github.com/kegliz/latticecut/lattice"
	"github.com/kegliz/latticecut/pattern"

	"github.com/google/uuid"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configFile     = flag.String("config", "", "path to a JSON/YAML/TOML configuration file")
		width          = flag.Int("x", 0, "lattice width (overrides config)")
		height         = flag.Int("y", 0, "lattice height (overrides config)")
		unusedQubits   = flag.String("unused-qubits", "", "comma-separated qubit ids to mark unused")
		unusedCouplers = flag.String("unused-couplers", "", "comma-separated qid:qid pairs to mark unused")
		minDepth       = flag.Int("min-depth", -1, "minimum cut depth (overrides config)")
		maxDepth       = flag.Int("max-depth", -1, "maximum cut depth (overrides config)")
		maxUnbalance   = flag.Int("max-unbalance", -1, "maximum cut unbalance (overrides config)")
		orderFlag      = flag.String("order", "", "gate ordering as a run of A/B/C/D letters (overrides config)")
		patternsFlag   = flag.String("patterns", "", "comma-separated pattern string representations to evaluate instead of enumerating (overrides config)")
		maxPatterns    = flag.Int("max-patterns", -1, "cap on enumerated patterns, 0 means unbounded (overrides config)")
		logFile        = flag.String("log", "", "write logs to this file instead of stdout")
		saveConfig     = flag.String("save-config", "", "write the resolved configuration to this file and exit")
		debug          = flag.Bool("debug", false, "enable debug logging")
		serve          = flag.Bool("serve", false, "start the results API after evaluation and block")
		port           = flag.Int("port", 8080, "results API port, used with --serve")
	)
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	applyFlagOverrides(cfg, *width, *height, *unusedQubits, *unusedCouplers, *minDepth, *maxDepth, *maxUnbalance, *orderFlag, *maxPatterns, *debug)
	if *patternsFlag != "" {
		cfg.Patterns = nil
		for _, s := range strings.Split(*patternsFlag, ",") {
			if s = strings.TrimSpace(s); s != "" {
				cfg.Patterns = append(cfg.Patterns, s)
			}
		}
	}

	if *saveConfig != "" {
		if err := config.Save(cfg, *saveConfig); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	log := newRunLogger(*logFile, *debug)

	runID := uuid.Must(uuid.NewRandom())
	rlog := log.SpawnForRun(runID.String())

	if b, err := json.MarshalIndent(cfg, "", "  "); err == nil {
		rlog.Info().Msg(string(b))
	}

	start := time.Now()
	run, err := evaluate(cfg, runID, rlog)
	if err != nil {
		rlog.Error().Err(err).Msg("evaluation failed")
		return 1
	}
	elapsed := time.Since(start)

	rlog.Info().
		Int("numCuts", run.NumCuts).
		Int("winners", len(run.Records)).
		Dur("elapsed", elapsed).
		Msg("evaluation finished")

	for _, r := range run.Records {
		rlog.Info().
			Str("pattern", pattern.Repr(r.Pattern, run.Lattice.NumSlash(), run.Lattice.NumBackSlash())).
			Int("cutIndex", r.CutIndex).
			Float64("cost", r.Cost).
			Msg("winning pattern")
	}

	if *serve {
		store := resultsapi.NewStore()
		store.Set(run)
		srv := resultsapi.NewServer(resultsapi.Options{Debug: *debug, Store: store})
		if err := srv.Listen(*port, false); err != nil {
			rlog.Error().Err(err).Msg("results API stopped")
			return 1
		}
	}
	return 0
}

func newRunLogger(logFile string, debug bool) *logger.Logger {
	log := logger.NewLogger(logger.LoggerOptions{Debug: debug})
	if logFile == "" {
		return log
	}
	f, err := os.Create(logFile)
	if err != nil {
		return log
	}
	return &logger.Logger{Logger: log.Output(f)}
}

func applyFlagOverrides(cfg *config.Config, width, height int, unusedQubits, unusedCouplers string, minDepth, maxDepth, maxUnbalance int, order string, maxPatterns int, debug bool) {
	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}
	if unusedQubits != "" {
		cfg.UnusedQubits = parseIntList(unusedQubits)
	}
	if unusedCouplers != "" {
		cfg.UnusedCouplers = parseCouplerList(unusedCouplers)
	}
	if minDepth >= 0 {
		cfg.MinDepth = minDepth
	}
	if maxDepth >= 0 {
		cfg.MaxDepth = maxDepth
	}
	if maxUnbalance >= 0 {
		cfg.MaxUnbalance = maxUnbalance
	}
	if order != "" {
		cfg.Ordering = strings.Split(order, "")
	}
	if maxPatterns >= 0 {
		cfg.MaxPatterns = maxPatterns
	}
	if debug {
		cfg.Debug = true
	}
}

func parseIntList(s string) []int {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if v, err := strconv.Atoi(part); err == nil {
			out = append(out, v)
		}
	}
	return out
}

func parseCouplerList(s string) [][2]int {
	var out [][2]int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		ab := strings.SplitN(part, ":", 2)
		if len(ab) != 2 {
			continue
		}
		a, errA := strconv.Atoi(ab[0])
		b, errB := strconv.Atoi(ab[1])
		if errA == nil && errB == nil {
			out = append(out, [2]int{a, b})
		}
	}
	return out
}

// evaluate runs the full Lattice -> {PatternSource, CutEnumerator} ->
// CostEvaluator pipeline against cfg.
func evaluate(cfg *config.Config, runID uuid.UUID, log *logger.Logger) (*resultsapi.Run, error) {
	lat, err := lattice.New(cfg.LatticeConfig())
	if err != nil {
		return nil, err
	}

	enumerator, err := cutenum.New(lat, cfg.MinDepth, cfg.MaxDepth, cfg.MaxUnbalance)
	if err != nil {
		return nil, err
	}
	cuts := enumerator.Enumerate()

	var patterns []pattern.BitPattern
	if len(cfg.Patterns) > 0 {
		patterns = make([]pattern.BitPattern, 0, len(cfg.Patterns))
		for _, s := range cfg.Patterns {
			p, err := pattern.ParseRepr(s, lat.NumSlash(), lat.NumBackSlash())
			if err != nil {
				return nil, err
			}
			patterns = append(patterns, p)
		}
	} else {
		patterns = pattern.NewBitSource(lat).Enumerate(cfg.MaxPatterns)
	}

	ordering, err := cfg.OrderingSequence()
	if err != nil {
		return nil, err
	}

	records, err := cost.Evaluate(lat, patterns, cuts, cost.Options{Ordering: ordering, Log: log})
	if err != nil {
		return nil, err
	}

	return &resultsapi.Run{
		ID:      runID,
		Lattice: lat,
		NumCuts: len(cuts),
		Records: records,
	}, nil
}
