// Package workerpool implements a fixed-size pool of goroutines that maps a
// function over a slice of inputs, round-robin dispatched and collected back
// in input order — the concurrency primitive the Beam-pool search variant
// uses to parallelize Path expansion.
package workerpool

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Pool applies Fn to each input across NumWorkers goroutines and returns
// the results in input order. Unlike a plain errgroup.Group fan-out, Pool
// keeps a fixed worker count and round-robins work across it, mirroring a
// pool of long-lived OS threads rather than spawning one goroutine per
// input — this matters when Fn itself fans out further work (as the
// Beam-pool variant's per-path angle expansion does) and the caller wants
// to bound total concurrency.
type Pool[Arg, Res any] struct {
	numWorkers int
	fn         func(Arg) Res
}

// New builds a Pool with numWorkers workers, each running fn. A numWorkers
// below 1 is treated as 1.
func New[Arg, Res any](numWorkers int, fn func(Arg) Res) *Pool[Arg, Res] {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &Pool[Arg, Res]{numWorkers: numWorkers, fn: fn}
}

// indexedInput tags an input with its original position so Map can
// reassemble results in order regardless of which worker finishes when.
type indexedInput[Arg any] struct {
	index int
	value Arg
}

// Map applies Fn to every element of args, round-robin dispatched across
// the pool's workers via a shared errgroup, and returns results in the
// same order as args.
func (p *Pool[Arg, Res]) Map(args []Arg) []Res {
	results := make([]Res, len(args))
	if len(args) == 0 {
		return results
	}

	lanes := make([]chan indexedInput[Arg], p.numWorkers)
	for i := range lanes {
		lanes[i] = make(chan indexedInput[Arg])
	}

	g, _ := errgroup.WithContext(context.Background())
	for _, lane := range lanes {
		lane := lane
		g.Go(func() error {
			for in := range lane {
				results[in.index] = p.fn(in.value)
			}
			return nil
		})
	}

	go func() {
		worker := 0
		for i, arg := range args {
			lanes[worker] <- indexedInput[Arg]{index: i, value: arg}
			worker = (worker + 1) % p.numWorkers
		}
		for _, lane := range lanes {
			close(lane)
		}
	}()

	_ = g.Wait()
	return results
}
