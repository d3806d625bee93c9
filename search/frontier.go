package search

import (
	"github.com/hexpattern/hexpattern/hexgeom"
	"github.com/hexpattern/hexpattern/hexpath"
	"github.com/oleiade/lane"
)

// QueuedPath pairs a Path with an integer priority, smaller first. Frontier
// does not store QueuedPath values: it hands each *hexpath.Path to lane's
// queue together with its heuristic priority, computed once at push time.
type QueuedPath struct {
	Path     *hexpath.Path
	Priority int
}

// Frontier is a min-priority queue of Paths keyed by heuristic, smaller
// priority first.
// It wraps lane's binary-heap priority queue rather than container/heap so
// that pushing and popping stay simple value operations instead of
// requiring a heap.Interface implementation per call site.
type Frontier struct {
	pq *lane.PQueue
}

// NewFrontier returns an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{pq: lane.NewPQueue(lane.MINPQ)}
}

// Push adds p to the frontier with priority computed by the heuristic
// against target.
func (f *Frontier) Push(p *hexpath.Path, target hexgeom.Rational) {
	f.pq.Push(p, heuristic(p, target))
}

// Pop removes and returns the lowest-priority (most promising) path. The
// second return value is false if the frontier was empty.
func (f *Frontier) Pop() (*hexpath.Path, bool) {
	v, _ := f.pq.Pop()
	if v == nil {
		return nil, false
	}
	return v.(*hexpath.Path), true
}

// Len returns the number of entries currently queued.
func (f *Frontier) Len() int {
	return f.pq.Size()
}

// Entries drains and returns every queued path without any particular
// order guarantee, used by both "scan the frontier for a matching path"
// and splitparallel's half-drain split.
func (f *Frontier) Entries() []*hexpath.Path {
	out := make([]*hexpath.Path, 0, f.pq.Size())
	for f.pq.Size() > 0 {
		v, _ := f.pq.Pop()
		out = append(out, v.(*hexpath.Path))
	}
	return out
}

// PushAll pushes every path in ps back onto the frontier against target.
func (f *Frontier) PushAll(ps []*hexpath.Path, target hexgeom.Rational) {
	for _, p := range ps {
		f.Push(p, target)
	}
}
