// Package xlog is a thin, zero-magic wrapper around log/slog used to trace
// search progress: cycle counts, beam/frontier sizes, and best-so-far
// transitions. No third-party structured-logging library appears anywhere
// in the retrieval pack this project was grounded on, so log/slog — the
// standard library's own structured logger — is the deliberate choice
// here rather than an invented dependency.
package xlog

import (
	"log/slog"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	logger  = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	enabled = false
)

// SetLogger replaces the package-wide logger, letting cmd/hexpattern wire
// in a --verbose flag without every search call site taking a logger
// parameter.
func SetLogger(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
	enabled = true
}

func current() (*slog.Logger, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return logger, enabled
}

// Cycle logs one search cycle's progress: the strategy name, the cycle
// index, and the current amount of outstanding work (beam size or
// frontier length).
func Cycle(strategy string, cycle, workSize int) {
	l, on := current()
	if !on {
		return
	}
	l.Debug("search cycle", "strategy", strategy, "cycle", cycle, "work_size", workSize)
}

// BestImproved logs a SharedBest transition.
func BestImproved(strategy string, quasiArea int) {
	l, on := current()
	if !on {
		return
	}
	l.Info("best improved", "strategy", strategy, "quasi_area", quasiArea)
}
