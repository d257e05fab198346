package graph

import (
	"math"
	"strconv"

	"github.com/vsariola/kuvaaja"
)

type (
	// GridLayout is the tick layout for one viewport: ordered tick positions
	// and labels per axis, plus the chosen steps. It is a pure function of
	// the viewport and fully regenerated on every redraw.
	GridLayout struct {
		XTicks, YTicks []Tick
		XStep, YStep   float64
	}

	// Tick is a labeled gridline position along an axis, in math
	// coordinates.
	Tick struct {
		Pos   float64
		Label string
	}
)

// Tick counts per axis. The ladder steps are at most 2.5x apart, so any span
// admits a step landing in this window.
const (
	minTicks = 5
	maxTicks = 12
)

// MakeGridLayout computes the tick layout for the viewport. The tick at the
// origin is suppressed on both axes; the renderer draws a single "0" label
// at the origin instead.
func MakeGridLayout(vp kuvaaja.Viewport) GridLayout {
	var g GridLayout
	g.XStep, g.XTicks = axisTicks(vp.XMin, vp.XMax)
	g.YStep, g.YTicks = axisTicks(vp.YMin, vp.YMax)
	return g
}

// NiceStep returns the smallest step from {1, 2, 5}×10^k such that span is
// no wider than maxTicks-1 steps. The acceptance test compares spans rather
// than a computed tick count: 0.6/0.05 rounds to just under 12, and counting
// would let a 13-tick step through. Smallest first means ties break toward
// more ticks, and the predecessor ladder step always overshot, which bounds
// the resulting count below by minTicks.
func NiceStep(span float64) float64 {
	if span <= 0 || math.IsInf(span, 0) || math.IsNaN(span) {
		return 1
	}
	pow := math.Pow(10, math.Floor(math.Log10(span/maxTicks)))
	for {
		for _, mant := range [...]float64{1, 2, 5} {
			step := mant * pow
			if span <= step*(maxTicks-1) {
				return step
			}
		}
		pow *= 10
	}
}

func axisTicks(lo, hi float64) (step float64, ticks []Tick) {
	step = NiceStep(hi - lo)
	first := int(math.Ceil(lo / step))
	last := int(math.Floor(hi / step))
	decimals := 0
	if step < 1 {
		decimals = int(math.Ceil(-math.Log10(step) - 1e-9))
	}
	for i := first; i <= last; i++ {
		if i == 0 {
			continue
		}
		pos := float64(i) * step
		var label string
		if decimals == 0 {
			label = strconv.Itoa(int(math.Round(pos)))
		} else {
			label = strconv.FormatFloat(pos, 'f', decimals, 64)
		}
		ticks = append(ticks, Tick{Pos: pos, Label: label})
	}
	return step, ticks
}
