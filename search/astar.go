package search

import (
	"github.com/hexpattern/hexpattern/hexpath"
	"github.com/hexpattern/hexpattern/internal/xlog"
)

// AStar holds the mutable state of an A* search run: the frontier of
// not-yet-expanded paths and the limits they are extended under. AStar and
// AStarSplit share this same frontier/heuristic/prune cycle; AStarSplit
// only changes how the frontier is divided between goroutines.
type AStar struct {
	Frontier *Frontier
	Limits   hexpath.Limits
	Best     *SharedBest
}

// NewAStar seeds an AStar with the zero Path for sign already on the frontier.
func NewAStar(sign hexpath.Sign, limits hexpath.Limits, best *SharedBest) *AStar {
	a := &AStar{Frontier: NewFrontier(), Limits: limits, Best: best}
	a.Frontier.Push(hexpath.Zero(sign), limits.Target)
	return a
}

// nextPaths returns every legal one-angle extension of p, each vetoed
// against the current best the same way the rest of this package does.
func (a *AStar) nextPaths(p *hexpath.Path) []*hexpath.Path {
	out := make([]*hexpath.Path, 0, len(angles))
	for _, ang := range angles {
		child, err := p.Extend(ang, a.Limits, veto(a.Best))
		if err != nil {
			continue
		}
		out = append(out, child)
	}
	return out
}

// updateFrontier pops the most promising path, pushes every legal
// extension back onto the frontier, and reports whether any of them
// reached the target.
func (a *AStar) updateFrontier() bool {
	p, ok := a.Frontier.Pop()
	if !ok {
		return false
	}

	matched := false
	for _, child := range a.nextPaths(p) {
		if child.Value().Cmp(a.Limits.Target) == 0 {
			matched = true
		}
		a.Frontier.Push(child, a.Limits.Target)
	}
	return matched
}

// findBestInFrontier scans the frontier for a target-matching path with
// minimum quasi-area, without disturbing the frontier's contents.
func (a *AStar) findBestInFrontier() *hexpath.Path {
	entries := a.Frontier.Entries()
	defer a.Frontier.PushAll(entries, a.Limits.Target)

	var best *hexpath.Path
	for _, p := range entries {
		if p.Value().Cmp(a.Limits.Target) != 0 {
			continue
		}
		if best == nil || p.Bounds().IsBetterThan(best.Bounds()) {
			best = p
		}
	}
	return best
}

// pruneFrontier drops every frontier entry that would no longer be an
// improvement over newBest.
func (a *AStar) pruneFrontier(newBest *hexpath.Path) {
	entries := a.Frontier.Entries()
	kept := entries[:0]
	for _, p := range entries {
		if p.ShouldReplace(newBest) {
			kept = append(kept, p)
		}
	}
	a.Frontier.PushAll(kept, a.Limits.Target)
}

// DoSearch runs the main A* loop until the frontier empties.
func (a *AStar) DoSearch() {
	for cycle := 0; a.Frontier.Len() > 0; cycle++ {
		xlog.Cycle("astar", cycle, a.Frontier.Len())
		matched := a.updateFrontier()
		if !matched {
			continue
		}
		newBest := a.findBestInFrontier()
		if newBest == nil || !newBest.ShouldReplace(a.Best.Get()) {
			continue
		}
		if a.Best.TryInstall(newBest) {
			a.pruneFrontier(newBest)
		}
	}
}

// Run executes the full A* search and returns the best path found, or nil.
func (a *AStar) Run() *hexpath.Path {
	if a.Limits.Target.Sign() == 0 {
		p, _ := a.Frontier.Pop()
		return p
	}
	a.DoSearch()
	return a.Best.Get()
}
