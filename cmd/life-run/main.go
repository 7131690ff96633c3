package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"mad-life/internal/runner"
	"mad-life/pkg/core"
	"mad-life/pkg/sims/life"

	"github.com/cheggaaa/pb/v3"
	"github.com/gernest/wow"
	"github.com/gernest/wow/spin"
)

func main() {
	cols := flag.Int("cols", 60, "grid columns")
	rows := flag.Int("rows", 40, "grid rows")
	pattern := flag.String("pattern", "", "seed pattern placed at the centre ("+strings.Join(life.PatternNames(), ", ")+")")
	fill := flag.Float64("fill", 0, "probability that a cell starts alive")
	seed := flag.Int64("seed", 42, "seed for the random fill")
	steps := flag.Int("steps", 100, "generations to advance")
	untilRepeat := flag.Bool("until-repeat", false, "run until a generation repeats an earlier one")
	maxGen := flag.Int("max", 10000, "generation cap for -until-repeat")
	tps := flag.Int("tps", 0, "generations per second, 0 for unpaced")
	show := flag.Bool("print", false, "print the final grid")
	flag.Parse()

	g, err := core.NewGrid(*cols, *rows)
	if err != nil {
		log.Fatal(err)
	}
	if *fill > 0 {
		core.Fill(g, core.NewRNG(*seed), *fill)
	}
	if *pattern != "" {
		if err := life.PlaceNamed(g, *pattern); err != nil {
			log.Fatal(err)
		}
	}

	opts := runner.Options{Steps: *steps, UntilRepeat: *untilRepeat, Max: *maxGen}
	if *tps > 0 {
		opts.Pacer = core.NewFixedStep(*tps)
	}
	if err := opts.Validate(); err != nil {
		log.Fatal(err)
	}

	var res runner.Result
	if opts.UntilRepeat {
		w := wow.New(os.Stderr, spin.Get(spin.Dots), " searching for a repeated generation")
		w.Start()
		res, err = runner.Run(g, opts, func(gen int) {
			if gen%100 == 0 {
				w.Text(fmt.Sprintf(" searching for a repeated generation (%d)", gen))
			}
		})
		w.Stop()
	} else {
		bar := pb.New(opts.Steps).SetWriter(os.Stderr).Start()
		res, err = runner.Run(g, opts, func(int) { bar.Increment() })
		bar.Finish()
	}
	if err != nil {
		log.Fatal(err)
	}

	switch {
	case res.Repeated:
		fmt.Printf("generation %d repeats generation %d (period %d), %d alive\n", res.Generation, res.FirstSeen, res.Period, res.Final.Alive())
	case opts.UntilRepeat:
		fmt.Printf("no repeat within %d generations, %d alive\n", res.Generation, res.Final.Alive())
	default:
		fmt.Printf("generation %d, %d alive\n", res.Generation, res.Final.Alive())
	}
	if *show {
		fmt.Print(res.Final)
	}
}
