package core

// Size describes the dimensions of a simulation grid in cells.
type Size struct {
	W int
	H int
}

// View is the read-only face of a Grid handed to renderers.
type View interface {
	Size() Size
	Get(row, col int) bool
}
