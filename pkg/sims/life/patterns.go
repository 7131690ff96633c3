package life

import (
	"fmt"
	"sort"

	"mad-life/pkg/core"
)

// Pattern is a set of live-cell offsets relative to an anchor, as (row, col).
type Pattern [][2]int

// Patterns holds the named seed patterns.
var Patterns = map[string]Pattern{
	"block":   {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	"blinker": {{0, -1}, {0, 0}, {0, 1}},
	"toad":    {{0, 0}, {0, 1}, {0, 2}, {1, -1}, {1, 0}, {1, 1}},
	"beacon":  {{0, 0}, {0, 1}, {1, 0}, {2, 3}, {3, 2}, {3, 3}},
	"glider":  {{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
}

// PatternNames lists the registered pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(Patterns))
	for name := range Patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Place sets the cells of p alive with the anchor at (row, col), wrapping
// around the grid edges.
func Place(g *core.Grid, p Pattern, row, col int) {
	for _, off := range p {
		r, c := g.Wrap(row+off[0], col+off[1])
		g.Set(r, c, true)
	}
}

// PlaceNamed stamps the named pattern at the centre of the grid.
func PlaceNamed(g *core.Grid, name string) error {
	p, ok := Patterns[name]
	if !ok {
		return fmt.Errorf("unknown pattern %q", name)
	}
	Place(g, p, g.Height()/2, g.Width()/2)
	return nil
}
