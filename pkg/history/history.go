// Package history tracks generations of a Life grid so that stepping forward
// can be undone exactly.
package history

import (
	"mad-life/pkg/core"
	"mad-life/pkg/sims/life"
)

// Controller owns the stack of pre-step snapshots and the generation counter.
// Outside of a call, Generation() == Len().
type Controller struct {
	stack      []*core.Grid
	generation int
}

// New returns an empty controller at generation 0.
func New() *Controller { return &Controller{} }

// Generation returns the current generation number.
func (c *Controller) Generation() int { return c.generation }

// Len returns the number of stored snapshots.
func (c *Controller) Len() int { return len(c.stack) }

// StepForward snapshots current and returns the next generation.
func (c *Controller) StepForward(current *core.Grid) *core.Grid {
	c.stack = append(c.stack, current.Clone())
	c.generation++
	return life.Step(current)
}

// StepBack restores the most recent snapshot. When there is nothing to undo
// it returns current unchanged and ok == false.
func (c *Controller) StepBack(current *core.Grid) (prev *core.Grid, ok bool) {
	if len(c.stack) == 0 {
		return current, false
	}
	last := len(c.stack) - 1
	prev = c.stack[last]
	c.stack[last] = nil
	c.stack = c.stack[:last]
	c.generation--
	return prev, true
}

// Reset drops every snapshot and returns an empty grid shaped like current.
func (c *Controller) Reset(current *core.Grid) *core.Grid {
	clear(c.stack)
	c.stack = c.stack[:0]
	c.generation = 0
	size := current.Size()
	return core.MustGrid(size.W, size.H)
}
