// Package resultsapi exposes the most recently completed evaluation run
// over HTTP: a health check, a lattice summary, and the winning records.
// It is adapted from the teacher's internal/app + internal/server(/router)
// trio, generalized from the quantum-playground circuit API to this
// domain's run/records model.
package resultsapi

import (
	"context"
	"sync"

	"github.com/kegliz/latticecut/cost"
	"github.com/kegliz/latticecut/internal/logger"
	"github.com/kegliz/latticecut/internal/server"
	"github.com/kegliz/latticecut/internal/server/router"
	"github.com/kegliz/latticecut/lattice"
	"github.com/kegliz/latticecut/pattern"

	"github.com/google/uuid"
)

// Run is a completed evaluation: the lattice it searched, the cut count,
// and the winning records.
type Run struct {
	ID      uuid.UUID
	Lattice *lattice.Lattice
	NumCuts int
	Records []cost.Record
}

// Store holds the latest completed Run, guarded for concurrent access
// between the CLI's evaluation goroutine and the HTTP handlers.
type Store struct {
	mu  sync.RWMutex
	run *Run
}

// NewStore returns an empty Store.
func NewStore() *Store { return &Store{} }

// Set records a newly completed run, replacing any previous one.
func (s *Store) Set(r *Run) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.run = r
}

// Get returns the latest run, or nil if none has completed yet.
func (s *Store) Get() *Run {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.run
}

// Server is the results HTTP API.
type Server struct {
	logger *logger.Logger
	router *router.Router
	store  *Store
}

// Options configures a new Server.
type Options struct {
	Debug bool
	Store *Store
}

// NewServer builds a Server with a fresh logger and router via
// server.NewLoggerAndRouter, the same CORS + request-logging middleware
// stack the teacher's internal/server wires for internal/app.
func NewServer(opts Options) *Server {
	log, r := server.NewLoggerAndRouter(server.EngineOptions{Debug: opts.Debug})
	s := &Server{logger: log, router: r, store: opts.Store}
	r.SetRoutes(s.routes())
	return s
}

// Listen starts the HTTP server on port, optionally bound to localhost only.
func (s *Server) Listen(port int, localOnly bool) error {
	s.logger.Info().Int("port", port).Bool("localOnly", localOnly).Msg("starting results API")
	return s.router.Start(port, localOnly)
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.router.Shutdown(ctx)
}

func (s *Server) routes() []*router.Route {
	return []*router.Route{
		{Name: "healthz", Method: "GET", Pattern: "/healthz", HandlerFunc: s.handleHealthz},
		{Name: "lattice", Method: "GET", Pattern: "/lattice", HandlerFunc: s.handleLattice},
		{Name: "records", Method: "GET", Pattern: "/records", HandlerFunc: s.handleRecords},
	}
}

// patternRepr is used by the /records handler; it needs the lattice's
// diagonal-line bit widths, which only the stored run's lattice knows.
func patternRepr(l *lattice.Lattice, p pattern.BitPattern) string {
	return pattern.Repr(p, l.NumSlash(), l.NumBackSlash())
}
