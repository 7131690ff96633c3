// Package runner advances a grid without a window, for batch runs and
// cycle searches.
package runner

import (
	"errors"

	"mad-life/pkg/core"
	"mad-life/pkg/history"
)

// Pacer throttles a loop between generations.
type Pacer interface {
	Wait()
}

// Options controls a headless run.
type Options struct {
	// Steps is the number of generations to advance when UntilRepeat is unset.
	Steps int
	// UntilRepeat stops at the first generation equal to an earlier one.
	UntilRepeat bool
	// Max caps the generations examined by UntilRepeat.
	Max int
	// Pacer, when set, is waited on before every generation.
	Pacer Pacer
}

// Result summarises a run.
type Result struct {
	Final      *core.Grid
	Generation int
	Repeated   bool
	// FirstSeen is the generation that Final first appeared at.
	FirstSeen int
	// Period is Generation - FirstSeen; 1 for still lifes.
	Period int
}

// Validate reports option combinations that cannot run.
func (o Options) Validate() error {
	if o.UntilRepeat {
		if o.Max <= 0 {
			return errors.New("max must be positive when searching for a repeat")
		}
		return nil
	}
	if o.Steps < 0 {
		return errors.New("steps must not be negative")
	}
	return nil
}

// Run advances start according to opts, calling tick after each generation.
// start is not modified.
func Run(start *core.Grid, opts Options, tick func(generation int)) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	if tick == nil {
		tick = func(int) {}
	}
	ctl := history.New()
	g := start.Clone()

	limit := opts.Steps
	if opts.UntilRepeat {
		limit = opts.Max
	}
	seen := map[string]int{}
	if opts.UntilRepeat {
		seen[g.Key()] = 0
	}

	for ctl.Generation() < limit {
		if opts.Pacer != nil {
			opts.Pacer.Wait()
		}
		g = ctl.StepForward(g)
		gen := ctl.Generation()
		tick(gen)
		if !opts.UntilRepeat {
			continue
		}
		key := g.Key()
		if first, ok := seen[key]; ok {
			return Result{Final: g, Generation: gen, Repeated: true, FirstSeen: first, Period: gen - first}, nil
		}
		seen[key] = gen
	}
	return Result{Final: g, Generation: ctl.Generation()}, nil
}
