package core

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidSize is returned when a grid is requested with a non-positive dimension.
var ErrInvalidSize = errors.New("grid dimensions must be positive")

// Grid stores a fixed W×H matrix of live/dead cells in row-major order.
type Grid struct {
	w, h int
	data []bool
}

// NewGrid allocates a grid with every cell dead.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	return &Grid{w: w, h: h, data: make([]bool, w*h)}, nil
}

// MustGrid is NewGrid for dimensions known to be valid.
func MustGrid(w, h int) *Grid {
	g, err := NewGrid(w, h)
	if err != nil {
		panic(err)
	}
	return g
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Index returns the linear slice index for (row, col). It panics when the
// coordinates fall outside the grid.
func (g *Grid) Index(row, col int) int {
	if row < 0 || row >= g.h || col < 0 || col >= g.w {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", row, col, g.w, g.h))
	}
	return row*g.w + col
}

// Get reports whether the cell at (row, col) is alive.
func (g *Grid) Get(row, col int) bool { return g.data[g.Index(row, col)] }

// Set stores the state of the cell at (row, col).
func (g *Grid) Set(row, col int, alive bool) { g.data[g.Index(row, col)] = alive }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.h + g.h) % g.h
	col = (col%g.w + g.w) % g.w
	return row, col
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{w: g.w, h: g.h, data: slices.Clone(g.data)}
}

// Clear kills every cell, keeping the dimensions.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

// Cells exposes the backing slice in row-major order.
func (g *Grid) Cells() []bool { return g.data }

// Alive counts the live cells.
func (g *Grid) Alive() int {
	n := 0
	for _, c := range g.data {
		if c {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil {
		return false
	}
	return g.w == o.w && g.h == o.h && slices.Equal(g.data, o.data)
}

// Key packs the cell states into a string usable as a map key.
func (g *Grid) Key() string {
	buf := make([]byte, (len(g.data)+7)/8)
	for i, c := range g.data {
		if c {
			buf[i/8] |= 1 << (i % 8)
		}
	}
	return string(buf)
}

// String renders the grid as rows of '#' (alive) and '.' (dead).
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.w + 1) * g.h)
	for row := 0; row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			if g.data[row*g.w+col] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
