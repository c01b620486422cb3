package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wayfind/search"
)

func TestPlotFilename(t *testing.T) {
	cases := []struct {
		alg      search.Algorithm
		filename string
		want     string
	}{
		{search.Breadth, "map.txt", "breadth_map.png"},
		{search.Depth, "data/map.txt", "depth_map.png"},
		{search.Best, "map", "best_map.png"},
		{search.AStar, "map.txt", "astar_map.png"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, plotFilename(c.alg, c.filename))
	}
}

func TestFormatSnapshot(t *testing.T) {
	plain := search.Snapshot{
		Algorithm: search.Breadth,
		Entries:   []search.Entry{{ID: "B"}, {ID: "C"}},
	}
	assert.Equal(t, "[B C]", formatSnapshot(plain))

	best := search.Snapshot{
		Algorithm: search.Best,
		Entries:   []search.Entry{{ID: "B", Priority: 2}},
	}
	assert.Equal(t, "[B;2]", formatSnapshot(best))

	astar := search.Snapshot{
		Algorithm: search.AStar,
		Entries:   []search.Entry{{ID: "B", GCost: 1, HCost: 1.5, Priority: 2.5}},
	}
	assert.Equal(t, "[B;1;1.5;2.5]", formatSnapshot(astar))
}
