// Package life implements Conway's Game of Life on a toroidal grid.
package life

import (
	"mad-life/pkg/core"
)

// Neighbors counts the live cells among the eight toroidally adjacent
// neighbours of (row, col). On a grid one cell wide or tall a cell can be its
// own neighbour, and it is counted as often as the wraparound reaches it.
func Neighbors(g *core.Grid, row, col int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			ny, nx := g.Wrap(row+dy, col+dx)
			if g.Get(ny, nx) {
				n++
			}
		}
	}
	return n
}

// Alive applies the B3/S23 rule to one cell.
func Alive(alive bool, neighbors int) bool {
	switch {
	case neighbors < 2 || neighbors > 3:
		return false
	case alive:
		return true
	default:
		return neighbors == 3
	}
}

// Step returns the next generation of g in a freshly allocated grid. The
// input is never modified.
func Step(g *core.Grid) *core.Grid {
	size := g.Size()
	next := core.MustGrid(size.W, size.H)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if Alive(g.Get(y, x), Neighbors(g, y, x)) {
				next.Set(y, x, true)
			}
		}
	}
	return next
}
