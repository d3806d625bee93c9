// Command hexpattern searches for a hex-grid turning-angle pattern whose
// accumulator value equals a requested target, and prints the result as
// plain text, JSON, or an ASCII sketch of its shape.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/big"
	"os"

	hexpattern "github.com/hexpattern/hexpattern"
	"github.com/hexpattern/hexpattern/hexgeom"
	"github.com/hexpattern/hexpattern/hexpath"
	"github.com/hexpattern/hexpattern/internal/jsonenc"
	"github.com/hexpattern/hexpattern/internal/render"
	"github.com/hexpattern/hexpattern/internal/xlog"
)

func main() {
	var (
		target         = flag.String("target", "0", "accumulator value to search for, decimal or a/b fraction")
		strategy       = flag.String("strategy", "beam", "beam|beam-pool|beam-split|astar|astar-split")
		bounds         = flag.Int("bounds", hexpattern.DefaultBoundsAxis, "per-axis bound for beam variants")
		carryover      = flag.Int("carryover", hexpattern.DefaultCarryover, "beam width K")
		numThreads     = flag.Int("threads", 1, "goroutine count for pool/split variants")
		trimLarger     = flag.Bool("trim-larger", true, "reject extensions overshooting target")
		allowFractions = flag.Bool("allow-fractions", false, "permit non-integer intermediate values")
		asJSON         = flag.Bool("json", false, "print the result as JSON")
		asASCII        = flag.Bool("ascii", false, "print an ASCII sketch of the result")
		verbose        = flag.Bool("verbose", false, "log search cycle progress to stderr")
	)
	flag.Parse()

	targetRat, ok := new(big.Rat).SetString(*target)
	if !ok {
		fmt.Fprintf(os.Stderr, "hexpattern: invalid target %q\n", *target)
		os.Exit(2)
	}
	sign := hexpath.Positive
	if targetRat.Sign() < 0 {
		sign = hexpath.Negative
	}

	if *verbose {
		xlog.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	opts := []hexpattern.Option{
		hexpattern.WithBounds(hexgeom.Bounds{Q: *bounds, R: *bounds, S: *bounds}),
		hexpattern.WithCarryover(*carryover),
		hexpattern.WithNumThreads(*numThreads),
	}
	if *trimLarger {
		opts = append(opts, hexpattern.WithTrimLarger())
	}
	if *allowFractions {
		opts = append(opts, hexpattern.WithAllowFractions())
	}

	var options hexpattern.Options
	switch *strategy {
	case "beam":
		options = hexpattern.Beam(opts...)
	case "beam-pool":
		options = hexpattern.BeamPool(opts...)
	case "beam-split":
		options = hexpattern.BeamSplit(opts...)
	case "astar":
		options = hexpattern.AStar(opts...)
	case "astar-split":
		options = hexpattern.AStarSplit(opts...)
	default:
		fmt.Fprintf(os.Stderr, "hexpattern: unknown strategy %q\n", *strategy)
		os.Exit(2)
	}

	result, err := hexpattern.GenerateRat(hexgeom.FromRat(targetRat), sign, options)
	if err != nil {
		fmt.Fprintf(os.Stderr, "no pattern found for %s: %v\n", *target, err)
		os.Exit(1)
	}

	switch {
	case *asJSON:
		data, err := jsonenc.Marshal(result)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(string(data))

	case *asASCII:
		seed := "aqaa"
		if sign == hexpath.Negative {
			seed = "dedd"
		}
		picture, err := render.ASCII(result.StartingDirection, seed+result.Pattern)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Print(picture)

	default:
		fmt.Printf("%s %s (bounds=%v, points=%d, segments=%d)\n",
			result.StartingDirection, result.Pattern, result.Bounds, result.NumPoints, result.NumSegments)
	}
}
