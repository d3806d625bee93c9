package search

import (
	"sync"

	"github.com/hexpattern/hexpattern/hexpath"
	"github.com/hexpattern/hexpattern/internal/xlog"
)

// SharedBest is a reader-writer slot holding the best Path found so far,
// shared across every goroutine in a parallel search. Reads (the common
// case — every extension's veto predicate consults it) take the read lock;
// only WriteIf ever takes the write lock, and only after re-checking its
// predicate, so a burst of losing writers degrades to read-lock contention
// rather than write-lock contention.
type SharedBest struct {
	mu   sync.RWMutex
	best *hexpath.Path
}

// Get returns the current best Path, or nil if none has been installed yet.
func (s *SharedBest) Get() *hexpath.Path {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.best
}

// WriteIf installs candidate as the new best if predicate(currentBest)
// holds, re-checking predicate once more under the write lock in case
// another goroutine updated best between the read and write acquisitions.
// It reports whether the install happened.
func (s *SharedBest) WriteIf(predicate func(current *hexpath.Path) bool, candidate *hexpath.Path) bool {
	s.mu.RLock()
	ok := predicate(s.best)
	s.mu.RUnlock()
	if !ok {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !predicate(s.best) {
		return false
	}
	s.best = candidate
	xlog.BestImproved("search", candidate.Bounds().QuasiArea())
	return true
}

// TryInstall installs candidate only if it should replace the current best
// (strictly smaller quasi-area, or no best yet); this is the one veto rule
// every search strategy in this package uses.
func (s *SharedBest) TryInstall(candidate *hexpath.Path) bool {
	return s.WriteIf(func(current *hexpath.Path) bool {
		return candidate.ShouldReplace(current)
	}, candidate)
}
