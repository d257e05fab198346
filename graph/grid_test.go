package graph_test

import (
	"math"
	"testing"

	"github.com/vsariola/kuvaaja"
	"github.com/vsariola/kuvaaja/graph"
)

func TestNiceStep(t *testing.T) {
	tests := []struct {
		span, want float64
	}{
		{16, 2},
		{12, 2},
		{10, 1},
		{7, 1},
		{100, 10},
		// exact step multiples: 12 steps must lose to the next ladder
		// entry, 11 steps must not
		{0.6, 0.1},
		{1.2, 0.2},
		{60, 10},
		{0.55, 0.05},
		{4.8, 0.5},
		{55, 5},
		{1200, 200},
		{0.011, 0.001},
	}
	for _, tt := range tests {
		if got := graph.NiceStep(tt.span); math.Abs(got-tt.want) > 1e-12*tt.want {
			t.Errorf("NiceStep(%v) = %v, want %v", tt.span, got, tt.want)
		}
	}
}

func TestNiceStepIsFromLadder(t *testing.T) {
	for span := 0.001; span < 1e6; span *= 1.37 {
		step := graph.NiceStep(span)
		mant := step / math.Pow(10, math.Floor(math.Log10(step)+1e-9))
		ok := false
		for _, m := range []float64{1, 2, 5} {
			if math.Abs(mant-m) < 1e-9 {
				ok = true
			}
		}
		if !ok {
			t.Errorf("NiceStep(%v) = %v, mantissa %v not in {1, 2, 5}", span, step, mant)
		}
	}
}

func TestNiceStepTickCountWindow(t *testing.T) {
	for span := 0.001; span < 1e6; span *= 1.37 {
		step := graph.NiceStep(span)
		count := int(span/step) + 1
		if count < 5 || count > 12 {
			t.Errorf("span %v step %v yields %d ticks, want 5..12", span, step, count)
		}
	}
}

func TestNiceStepDegenerateSpans(t *testing.T) {
	for _, span := range []float64{0, -3, math.Inf(1), math.NaN()} {
		if got := graph.NiceStep(span); got != 1 {
			t.Errorf("NiceStep(%v) = %v, want 1", span, got)
		}
	}
}

func TestMakeGridLayoutDefaultView(t *testing.T) {
	// the default state at 800x600: x in [-8, 8], y in [-6, 6]
	vp := kuvaaja.NewGraphState().Viewport(800, 600)
	g := graph.MakeGridLayout(vp)
	if g.XStep != 2 || g.YStep != 2 {
		t.Fatalf("steps (%v, %v), want (2, 2)", g.XStep, g.YStep)
	}
	wantX := []float64{-8, -6, -4, -2, 2, 4, 6, 8}
	wantY := []float64{-6, -4, -2, 2, 4, 6}
	checkTicks(t, "x", g.XTicks, wantX)
	checkTicks(t, "y", g.YTicks, wantY)
	for _, tick := range g.XTicks {
		if tick.Pos == 0 {
			t.Error("tick at origin not suppressed")
		}
	}
}

func checkTicks(t *testing.T, axis string, ticks []graph.Tick, want []float64) {
	t.Helper()
	if len(ticks) != len(want) {
		t.Fatalf("%s axis: got %d ticks, want %d", axis, len(ticks), len(want))
	}
	for i, tick := range ticks {
		if math.Abs(tick.Pos-want[i]) > 1e-9 {
			t.Errorf("%s tick %d at %v, want %v", axis, i, tick.Pos, want[i])
		}
	}
}

func TestTickLabels(t *testing.T) {
	tests := []struct {
		vp     kuvaaja.Viewport
		labels []string
	}{
		// integer steps print whole numbers
		{kuvaaja.Viewport{XMin: -8, XMax: 8, YMin: -1, YMax: 1}, []string{"-8", "-6", "-4", "-2", "2", "4", "6", "8"}},
		// fractional steps print exactly as many decimals as the step needs
		{kuvaaja.Viewport{XMin: -2.4, XMax: 2.4, YMin: -1, YMax: 1}, []string{"-2.0", "-1.5", "-1.0", "-0.5", "0.5", "1.0", "1.5", "2.0"}},
		{kuvaaja.Viewport{XMin: -0.35, XMax: 0.35, YMin: -1, YMax: 1}, []string{"-0.3", "-0.2", "-0.1", "0.1", "0.2", "0.3"}},
	}
	for _, tt := range tests {
		g := graph.MakeGridLayout(tt.vp)
		if len(g.XTicks) != len(tt.labels) {
			t.Errorf("viewport %+v: got %d ticks, want %d", tt.vp, len(g.XTicks), len(tt.labels))
			continue
		}
		for i, tick := range g.XTicks {
			if tick.Label != tt.labels[i] {
				t.Errorf("viewport %+v tick %d: label %q, want %q", tt.vp, i, tick.Label, tt.labels[i])
			}
		}
	}
}

func TestGridLayoutOffOriginView(t *testing.T) {
	// a view entirely in the positive quadrant has no origin tick to suppress
	g := graph.MakeGridLayout(kuvaaja.Viewport{XMin: 3, XMax: 19, YMin: 5, YMax: 17})
	checkTicks(t, "x", g.XTicks, []float64{4, 6, 8, 10, 12, 14, 16, 18})
	checkTicks(t, "y", g.YTicks, []float64{6, 8, 10, 12, 14, 16})
}
