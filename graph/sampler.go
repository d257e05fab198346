package graph

import (
	"math"

	"github.com/vsariola/kuvaaja"
	"github.com/vsariola/kuvaaja/expr"
)

const (
	// samplesPerPixel x-samples per pixel of canvas width, capped at
	// maxSamples for very wide canvases.
	samplesPerPixel = 2
	maxSamples      = 1600

	// slackFactor is how many canvas heights outside the view a mapped point
	// may be before the curve is cut into a new segment. Cutting suppresses
	// the visually useless near-vertical strokes around asymptotes.
	slackFactor = 2
)

// SampleCurve samples fn across the visible x-range and returns the curve as
// screen-space polyline segments. A new segment starts wherever a sample is
// undefined (non-finite) or leaves the slack margin around the viewport;
// such samples are dropped. Runs shorter than two points cannot be stroked
// and are dropped too.
func SampleCurve(fn *expr.Function, state kuvaaja.GraphState, width, height float64) [][]kuvaaja.Point {
	if fn == nil || width <= 0 || height <= 0 {
		return nil
	}
	vp := state.Viewport(width, height)
	n := samplesPerPixel * int(width)
	if n > maxSamples {
		n = maxSamples
	}
	if n < 2 {
		n = 2
	}
	xs := linspace(vp.XMin, vp.XMax, n)
	ys := fn.Eval(xs)
	slack := slackFactor * height

	var segments [][]kuvaaja.Point
	var current []kuvaaja.Point
	flush := func() {
		if len(current) >= 2 {
			segments = append(segments, current)
		}
		current = nil
	}
	for i, y := range ys {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			flush()
			continue
		}
		p := state.MathToScreen(kuvaaja.Point{X: xs[i], Y: y}, width, height)
		if p.Y < -slack || p.Y > height+slack {
			flush()
			continue
		}
		current = append(current, p)
	}
	flush()
	return segments
}

func linspace(a, b float64, n int) []float64 {
	xs := make([]float64, n)
	d := (b - a) / float64(n-1)
	for i := range xs {
		xs[i] = a + float64(i)*d
	}
	return xs
}
