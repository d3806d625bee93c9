package xlog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/hexpattern/hexpattern/internal/xlog"
	"github.com/stretchr/testify/assert"
)

func TestCycle_NoopWhenDisabled(t *testing.T) {
	assert.NotPanics(t, func() {
		xlog.Cycle("beam", 0, 5)
	})
}

func TestCycle_WritesWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	xlog.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	xlog.Cycle("astar", 3, 12)

	out := buf.String()
	assert.Contains(t, out, "search cycle")
	assert.Contains(t, out, "astar")
	assert.Contains(t, out, "cycle=3")
	assert.Contains(t, out, "work_size=12")
}

func TestBestImproved_WritesWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	xlog.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	xlog.BestImproved("beam", 42)

	out := buf.String()
	assert.Contains(t, out, "best improved")
	assert.Contains(t, out, "quasi_area=42")
}
