package workerpool_test

import (
	"testing"

	"github.com/hexpattern/hexpattern/workerpool"
	"github.com/stretchr/testify/assert"
)

func TestPool_Map_PreservesOrder(t *testing.T) {
	pool := workerpool.New(4, func(n int) int { return n * n })

	inputs := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	got := pool.Map(inputs)

	want := []int{1, 4, 9, 16, 25, 36, 49, 64, 81}
	assert.Equal(t, want, got)
}

func TestPool_Map_Empty(t *testing.T) {
	pool := workerpool.New(3, func(n int) int { return n })
	assert.Empty(t, pool.Map(nil))
}

func TestPool_Map_SingleWorker(t *testing.T) {
	pool := workerpool.New(1, func(s string) string { return s + s })
	got := pool.Map([]string{"a", "b", "c"})
	assert.Equal(t, []string{"aa", "bb", "cc"}, got)
}
