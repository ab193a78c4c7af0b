package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kegliz/latticecut/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 12, c.Width)
	assert.Equal(t, 11, c.Height)
	assert.False(t, c.QubitAtOrigin)
	assert.Equal(t, 0, c.MinDepth)
	assert.Equal(t, 12, c.MaxDepth, "maxDepth defaults to max(width,height) when unset")
	assert.Equal(t, 6, c.MaxUnbalance)
	assert.Equal(t, []string{"A", "B", "C", "D", "A", "B", "C", "D"}, c.Ordering)
}

func TestLoadFromFileOverridesDefaultsAndMaxDepth(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"width":20,"height":6,"maxDepth":3}`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, c.Width)
	assert.Equal(t, 6, c.Height)
	assert.Equal(t, 3, c.MaxDepth, "explicit maxDepth must not be overridden by the dynamic default")
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	c, err := Load("")
	require.NoError(t, err)
	c.Width = 8
	c.Height = 7
	require.NoError(t, Save(c, path))

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, reloaded.Width)
	assert.Equal(t, 7, reloaded.Height)
}

func TestOrderingSequenceParsesLabels(t *testing.T) {
	c := &Config{Ordering: []string{"A", "B", "C", "D"}}
	seq, err := c.OrderingSequence()
	require.NoError(t, err)
	assert.Equal(t, []pattern.Order{pattern.A, pattern.B, pattern.C, pattern.D}, seq)
}

func TestOrderingSequenceRejectsInvalidLabel(t *testing.T) {
	c := &Config{Ordering: []string{"A", "Z"}}
	_, err := c.OrderingSequence()
	require.Error(t, err)
	require.ErrorIs(t, err, pattern.ErrInvalidOrder)
}

func TestLatticeConfigConvertsCouplers(t *testing.T) {
	c := &Config{Width: 12, Height: 11, UnusedCouplers: [][2]int{{1, 2}, {3, 4}}}
	lc := c.LatticeConfig()
	require.Len(t, lc.UnusedCouplers, 2)
	assert.Equal(t, 1, lc.UnusedCouplers[0].A)
	assert.Equal(t, 2, lc.UnusedCouplers[0].B)
}
