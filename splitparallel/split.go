// Package splitparallel implements the divide-and-conquer coordinator the
// Beam-split and A*-split search variants share: a goroutine recursively
// halves its outstanding work onto a freshly spawned sibling whenever an
// idle thread slot is available, and the whole tree of goroutines reports
// back through a single free_threads counter and done gate.
package splitparallel

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Worker is anything a Coordinator can recursively split and run: a single
// search's local work unit (a Beam's path list, an AStar's frontier).
type Worker interface {
	// Size reports the amount of outstanding local work. Split is only
	// attempted while Size() > 1.
	Size() int

	// SplitOff removes roughly half of the receiver's local work and
	// returns a new Worker carrying it away, sharing whatever read-only
	// configuration and shared state (SharedBest, target limits) the
	// receiver has. The receiver keeps the other half.
	SplitOff() Worker

	// Step runs one cycle of the underlying search (expand/trim/update
	// for Beam, pop/extend/prune for A*), consuming some local work.
	Step()
}

// Coordinator tracks the free_threads counter and the done gate shared by
// every goroutine spawned while running a single search. A Coordinator is
// used for exactly one Run call.
type Coordinator struct {
	numThreads int

	mu          sync.RWMutex
	freeThreads int

	// sem bounds the number of runWorker goroutines alive at once to
	// numThreads. The free_threads counter already prevents trySplit from
	// handing out more splits than that, but sem is what actually makes
	// the ceiling hold even if that bookkeeping is ever wrong.
	sem *semaphore.Weighted

	doneMu   sync.Mutex
	doneCond *sync.Cond
	done     bool
}

// NewCoordinator builds a Coordinator for numThreads participating
// goroutines (the root worker counts as one), with free_threads
// initialized to numThreads-1 since the root starts out busy.
func NewCoordinator(numThreads int) *Coordinator {
	if numThreads < 1 {
		numThreads = 1
	}
	c := &Coordinator{
		numThreads:  numThreads,
		freeThreads: numThreads - 1,
		sem:         semaphore.NewWeighted(int64(numThreads)),
	}
	c.doneCond = sync.NewCond(&c.doneMu)
	return c
}

// trySplit attempts to claim one free thread slot and, if successful,
// splits w and returns the child to run on a new goroutine.
func (c *Coordinator) trySplit(w Worker) (Worker, bool) {
	if w.Size() <= 1 {
		return nil, false
	}

	c.mu.Lock()
	if c.freeThreads <= 0 {
		c.mu.Unlock()
		return nil, false
	}
	c.freeThreads--
	c.mu.Unlock()

	return w.SplitOff(), true
}

// merge reports that w's goroutine has exhausted its local work,
// releasing its thread slot back to the pool and signaling done once
// every goroutine has merged.
func (c *Coordinator) merge() {
	c.mu.Lock()
	c.freeThreads++
	allDone := c.freeThreads == c.numThreads
	c.mu.Unlock()

	if allDone {
		c.doneMu.Lock()
		c.done = true
		c.doneCond.Broadcast()
		c.doneMu.Unlock()
	}
}

// runWorker drives w's search loop to completion, opportunistically
// spawning a sibling goroutine for half its work after every cycle in
// which a free thread slot is available.
func (c *Coordinator) runWorker(w Worker) {
	if err := c.sem.Acquire(context.Background(), 1); err != nil {
		return
	}
	defer c.sem.Release(1)

	for w.Size() > 0 {
		w.Step()
		if w.Size() > 0 {
			if child, ok := c.trySplit(w); ok {
				go c.runWorker(child)
			}
		}
	}
	c.merge()
}

// Run drives root to completion, recursively splitting off sibling
// goroutines as thread slots free up, and blocks until every goroutine in
// the resulting tree has finished.
func (c *Coordinator) Run(root Worker) {
	go c.runWorker(root)
	c.WaitUntilDone()
}

// WaitUntilDone blocks until every goroutine spawned by Run has merged
// back. Only the caller of Run should call this.
func (c *Coordinator) WaitUntilDone() {
	c.doneMu.Lock()
	for !c.done {
		c.doneCond.Wait()
	}
	c.doneMu.Unlock()
}
