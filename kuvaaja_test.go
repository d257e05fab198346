package kuvaaja_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/vsariola/kuvaaja"
)

func TestMathToScreenDefaults(t *testing.T) {
	s := kuvaaja.NewGraphState()
	tests := []struct {
		math   kuvaaja.Point
		screen kuvaaja.Point
	}{
		{kuvaaja.Point{X: 0, Y: 0}, kuvaaja.Point{X: 400, Y: 300}},
		{kuvaaja.Point{X: 1, Y: 1}, kuvaaja.Point{X: 450, Y: 250}},
		{kuvaaja.Point{X: -2, Y: 0}, kuvaaja.Point{X: 300, Y: 300}},
		{kuvaaja.Point{X: 0, Y: -3}, kuvaaja.Point{X: 400, Y: 450}},
	}
	for _, tt := range tests {
		got := s.MathToScreen(tt.math, 800, 600)
		if got != tt.screen {
			t.Errorf("MathToScreen(%v) = %v, want %v", tt.math, got, tt.screen)
		}
	}
}

func TestScreenToMathRoundTrip(t *testing.T) {
	states := []kuvaaja.GraphState{
		kuvaaja.NewGraphState(),
		{Scale: 0.125, OffsetX: -313.2, OffsetY: 1024.7},
		{Scale: 1e5, OffsetX: 17, OffsetY: -0.3},
		{Scale: 3.7, OffsetX: 0.001, OffsetY: 99999},
	}
	points := []kuvaaja.Point{
		{X: 0, Y: 0}, {X: 1, Y: 1}, {X: -123.456, Y: 789.01}, {X: 1e-6, Y: -1e6},
	}
	for i, s := range states {
		for _, p := range points {
			q := s.ScreenToMath(s.MathToScreen(p, 800, 600), 800, 600)
			if math.Abs(q.X-p.X) > 1e-9*math.Max(1, math.Abs(p.X)) ||
				math.Abs(q.Y-p.Y) > 1e-9*math.Max(1, math.Abs(p.Y)) {
				t.Errorf("state %d: round trip of %v gave %v", i, p, q)
			}
		}
	}
}

func TestViewport(t *testing.T) {
	s := kuvaaja.NewGraphState()
	vp := s.Viewport(800, 600)
	want := kuvaaja.Viewport{XMin: -8, XMax: 8, YMin: -6, YMax: 6}
	if vp != want {
		t.Errorf("Viewport = %v, want %v", vp, want)
	}
	// panning right by 100 px shows more of the negative x range
	s.OffsetX += 100
	vp = s.Viewport(800, 600)
	if want := (kuvaaja.Viewport{XMin: -10, XMax: 6, YMin: -6, YMax: 6}); vp != want {
		t.Errorf("Viewport after pan = %v, want %v", vp, want)
	}
}

func TestViewportCornersMapBack(t *testing.T) {
	s := kuvaaja.GraphState{Scale: 12.5, OffsetX: 40, OffsetY: -77}
	vp := s.Viewport(1024, 768)
	corners := []struct {
		math   kuvaaja.Point
		screen kuvaaja.Point
	}{
		{kuvaaja.Point{X: vp.XMin, Y: vp.YMax}, kuvaaja.Point{X: 0, Y: 0}},
		{kuvaaja.Point{X: vp.XMax, Y: vp.YMin}, kuvaaja.Point{X: 1024, Y: 768}},
	}
	for i, tt := range corners {
		got := s.MathToScreen(tt.math, 1024, 768)
		if math.Abs(got.X-tt.screen.X) > 1e-9 || math.Abs(got.Y-tt.screen.Y) > 1e-9 {
			t.Errorf("corner %d maps to %v, want %v", i, got, tt.screen)
		}
	}
}

func BenchmarkMathToScreen(b *testing.B) {
	s := kuvaaja.NewGraphState()
	for i := 0; i < b.N; i++ {
		_ = s.MathToScreen(kuvaaja.Point{X: float64(i), Y: float64(i)}, 800, 600)
	}
}

func ExampleGraphState_MathToScreen() {
	s := kuvaaja.NewGraphState()
	p := s.MathToScreen(kuvaaja.Point{X: 1, Y: 1}, 800, 600)
	fmt.Println(p.X, p.Y)
	// Output: 450 250
}
