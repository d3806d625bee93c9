package render_test

import (
	"strings"
	"testing"

	"github.com/hexpattern/hexpattern/hexgeom"
	"github.com/hexpattern/hexpattern/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestASCII_MarksOriginAndPoints(t *testing.T) {
	out, err := render.ASCII(hexgeom.SouthEast, "aqaa")
	require.NoError(t, err)
	assert.Contains(t, out, "o")
	assert.True(t, strings.Count(out, "\n") > 0)
}

func TestASCII_InvalidPattern(t *testing.T) {
	_, err := render.ASCII(hexgeom.SouthEast, "zz")
	assert.ErrorIs(t, err, hexgeom.ErrInvalidChar)
}
