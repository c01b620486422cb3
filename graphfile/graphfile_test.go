package graphfile_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/graphfile"
)

// quiet discards skip diagnostics so lenient-mode tests stay silent.
var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestParse_WellFormed(t *testing.T) {
	input := `('A', 'B', 1, [0, 0], [1, 0])
('B', 'C', 2, [1, 0], [2, 1])
`
	g, err := graphfile.Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())

	w, err := g.EdgeWeight("B", "C")
	require.NoError(t, err)
	assert.Equal(t, int64(2), w)

	b, ok := g.Node("B")
	require.True(t, ok)
	assert.Equal(t, 1, b.X)
	assert.Equal(t, 0, b.Y)
}

func TestParse_SkipsMalformedLines(t *testing.T) {
	// Middle line misses a coordinate bracket; neighbors of it still load.
	input := `('A', 'B', 1, [0, 0], [1, 0])
('B', 'C', 2, [1, 0], 2, 1])
('C', 'D', 3, [2, 1], [3, 1])
`
	g, err := graphfile.Parse(strings.NewReader(input), graphfile.WithLogger(quiet))
	require.NoError(t, err, "malformed lines are recovered, not fatal")

	assert.Equal(t, 2, g.EdgeCount(), "only the well-formed lines load")
	assert.True(t, g.HasNode("A"))
	assert.True(t, g.HasNode("D"))
	_, err = g.EdgeWeight("B", "C")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound, "the skipped edge must not exist")
}

func TestParse_StrictMode(t *testing.T) {
	input := "('A', 'B', one, [0, 0], [1, 0])\n"
	_, err := graphfile.Parse(strings.NewReader(input), graphfile.WithStrict())
	assert.ErrorIs(t, err, graphfile.ErrMalformedLine)
}

func TestParse_ToleratesWhitespaceAndBlankLines(t *testing.T) {
	input := "\n  ('a', 'b', 4, [ -1 , 2 ], [3, -4])  \n\n"
	g, err := graphfile.Parse(strings.NewReader(input))
	require.NoError(t, err)

	a, ok := g.Node("A")
	require.True(t, ok, "labels canonicalize to uppercase")
	assert.Equal(t, -1, a.X)
	assert.Equal(t, 2, a.Y)

	w, err := g.EdgeWeight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, int64(4), w)
}

func TestParse_RejectsEmptyLabel(t *testing.T) {
	input := "('  ', 'B', 1, [0, 0], [1, 0])\n"
	g, err := graphfile.Parse(strings.NewReader(input), graphfile.WithLogger(quiet))
	require.NoError(t, err)
	assert.Equal(t, 0, g.EdgeCount(), "a blank label is a malformed line")
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.txt")
	content := "('A', 'B', 1, [0, 0], [1, 0])\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	g, err := graphfile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())

	_, err = graphfile.Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
