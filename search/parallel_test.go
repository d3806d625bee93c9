package search_test

import (
	"testing"

	"github.com/hexpattern/hexpattern/hexgeom"
	"github.com/hexpattern/hexpattern/hexpath"
	"github.com/hexpattern/hexpattern/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeam_RunPool_MatchesSequential(t *testing.T) {
	target := hexgeom.FromInt(10)
	bounds := hexgeom.Bounds{Q: 8, R: 8, S: 8}

	seqLimits := hexpath.Bounded(target, true, true, bounds)
	seqBest := &search.SharedBest{}
	seq := search.NewBeam(hexpath.Positive, seqLimits, 25, seqBest).Run()

	poolLimits := hexpath.Bounded(target, true, true, bounds)
	poolBest := &search.SharedBest{}
	pool := search.NewBeam(hexpath.Positive, poolLimits, 25, poolBest).RunPool(4)

	require.NotNil(t, seq)
	require.NotNil(t, pool)
	assert.LessOrEqual(t, pool.Bounds().QuasiArea(), seq.Bounds().QuasiArea())
	assert.Equal(t, target.String(), pool.Value().String())
}

func TestBeam_RunSplit_MatchesSequential(t *testing.T) {
	target := hexgeom.FromInt(10)
	bounds := hexgeom.Bounds{Q: 8, R: 8, S: 8}

	seqLimits := hexpath.Bounded(target, true, true, bounds)
	seqBest := &search.SharedBest{}
	seq := search.NewBeam(hexpath.Positive, seqLimits, 25, seqBest).Run()

	splitLimits := hexpath.Bounded(target, true, true, bounds)
	splitBest := &search.SharedBest{}
	split := search.NewBeam(hexpath.Positive, splitLimits, 25, splitBest).RunSplit(4)

	require.NotNil(t, seq)
	require.NotNil(t, split)
	assert.LessOrEqual(t, split.Bounds().QuasiArea(), seq.Bounds().QuasiArea())
	assert.Equal(t, target.String(), split.Value().String())
}

func TestAStar_RunSplit_MatchesSequential(t *testing.T) {
	target := hexgeom.FromInt(5)

	seqLimits := hexpath.Unbounded(target, true, true)
	seqBest := &search.SharedBest{}
	seq := search.NewAStar(hexpath.Positive, seqLimits, seqBest).Run()

	splitLimits := hexpath.Unbounded(target, true, true)
	splitBest := &search.SharedBest{}
	split := search.NewAStar(hexpath.Positive, splitLimits, splitBest).RunSplit(4)

	require.NotNil(t, seq)
	require.NotNil(t, split)
	assert.Equal(t, target.String(), split.Value().String())
}
