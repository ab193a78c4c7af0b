package resultsapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleLattice(c *gin.Context) {
	run := s.store.Get()
	if run == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no run completed yet"})
		return
	}
	l := run.Lattice
	c.JSON(http.StatusOK, gin.H{
		"runId":         run.ID,
		"width":         l.Width(),
		"height":        l.Height(),
		"qubitAtOrigin": l.QubitAtOrigin(),
		"numEdges":      l.NumEdges(),
		"numQubits":     len(l.QubitPoints()),
		"numBoundary":   len(l.BoundaryNodes()),
		"numCuts":       run.NumCuts,
	})
}

type recordDTO struct {
	Pattern  string  `json:"pattern"`
	CutIndex int     `json:"cutIndex"`
	Cost     float64 `json:"cost"`
}

func (s *Server) handleRecords(c *gin.Context) {
	run := s.store.Get()
	if run == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no run completed yet"})
		return
	}
	out := make([]recordDTO, len(run.Records))
	for i, r := range run.Records {
		out[i] = recordDTO{
			Pattern:  patternRepr(run.Lattice, r.Pattern),
			CutIndex: r.CutIndex,
			Cost:     r.Cost,
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"runId":   run.ID,
		"records": out,
	})
}
