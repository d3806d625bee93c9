package search

import (
	"github.com/hexpattern/hexpattern/hexpath"
	"github.com/hexpattern/hexpattern/splitparallel"
)

// Size implements splitparallel.Worker.
func (a *AStar) Size() int { return a.Frontier.Len() }

// Step implements splitparallel.Worker: one update-frontier-and-maybe-adopt
// cycle, the body of DoSearch's loop.
func (a *AStar) Step() {
	matched := a.updateFrontier()
	if !matched {
		return
	}
	newBest := a.findBestInFrontier()
	if newBest == nil || !newBest.ShouldReplace(a.Best.Get()) {
		return
	}
	if a.Best.TryInstall(newBest) {
		a.pruneFrontier(newBest)
	}
}

// SplitOff implements splitparallel.Worker: the child drains half of the
// frontier's entries (order unspecified) into its own frontier, leaving
// the parent the rest.
func (a *AStar) SplitOff() splitparallel.Worker {
	entries := a.Frontier.Entries()
	half := len(entries) / 2

	child := &AStar{Frontier: NewFrontier(), Limits: a.Limits, Best: a.Best}
	child.Frontier.PushAll(entries[:half], a.Limits.Target)
	a.Frontier.PushAll(entries[half:], a.Limits.Target)

	return child
}

var _ splitparallel.Worker = (*AStar)(nil)

// RunSplit runs a across numThreads goroutines, recursively splitting off
// sibling goroutines as work permits, and returns the best path found.
func (a *AStar) RunSplit(numThreads int) *hexpath.Path {
	if a.Limits.Target.Sign() == 0 {
		p, _ := a.Frontier.Pop()
		return p
	}
	splitparallel.NewCoordinator(numThreads).Run(a)
	return a.Best.Get()
}
