package jsonenc_test

import (
	"encoding/json"
	"testing"

	"github.com/hexpattern/hexpattern"
	"github.com/hexpattern/hexpattern/hexgeom"
	"github.com/hexpattern/hexpattern/internal/jsonenc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal_RoundTripsFields(t *testing.T) {
	p := &hexpattern.GeneratedPattern{
		StartingDirection: hexgeom.SouthEast,
		Pattern:           "q",
		Bounds:            hexgeom.Bounds{Q: 3, R: 2, S: 4},
		NumPoints:         6,
		NumSegments:       6,
	}

	data, err := jsonenc.Marshal(p)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, "SOUTH_EAST", out["starting_direction"])
	assert.Equal(t, "q", out["pattern"])
	assert.Equal(t, float64(6), out["num_points"])
}
