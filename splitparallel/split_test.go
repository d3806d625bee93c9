package splitparallel_test

import (
	"sync"
	"testing"

	"github.com/hexpattern/hexpattern/splitparallel"
	"github.com/stretchr/testify/assert"
)

// countingWorker is a minimal splitparallel.Worker: it "processes" n units
// of work one per Step, and SplitOff hands half of the remainder to a
// sibling, recording every processed unit into a shared, mutex-guarded
// total so the test can assert no work was lost or double-counted.
type countingWorker struct {
	remaining int
	mu        *sync.Mutex
	processed *int
}

func (w *countingWorker) Size() int { return w.remaining }

func (w *countingWorker) Step() {
	if w.remaining == 0 {
		return
	}
	w.remaining--
	w.mu.Lock()
	*w.processed++
	w.mu.Unlock()
}

func (w *countingWorker) SplitOff() splitparallel.Worker {
	half := w.remaining / 2
	w.remaining -= half
	return &countingWorker{remaining: half, mu: w.mu, processed: w.processed}
}

func TestCoordinator_ProcessesAllWorkExactlyOnce(t *testing.T) {
	var mu sync.Mutex
	processed := 0
	root := &countingWorker{remaining: 200, mu: &mu, processed: &processed}

	splitparallel.NewCoordinator(8).Run(root)

	assert.Equal(t, 200, processed)
}

func TestCoordinator_SingleThreadNeverSplits(t *testing.T) {
	var mu sync.Mutex
	processed := 0
	root := &countingWorker{remaining: 50, mu: &mu, processed: &processed}

	splitparallel.NewCoordinator(1).Run(root)

	assert.Equal(t, 50, processed)
}
