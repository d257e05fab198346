package graph

import (
	"math"

	"github.com/vsariola/kuvaaja"
)

const (
	tickLen       = 5  // px, half-length of the tick marks on the axes
	tickLabelGap  = 8  // px, between axis line and tick label
	labelClampPad = 18 // px, keeps labels on canvas when an axis hugs an edge
)

// Render records the canvas size and regenerates the complete immutable draw
// list for the current state: gridlines, axes with arrowheads, tick marks
// and labels, one "0" label at the origin, and the curve segments. The view
// consumes the list and retains nothing across redraws.
func (m *Model) Render(width, height float64) kuvaaja.DrawList {
	m.SetSize(width, height)
	if width <= 0 || height <= 0 {
		return nil
	}
	vp := m.state.Viewport(width, height)
	grid := MakeGridLayout(vp)
	ops := make(kuvaaja.DrawList, 0, 4*(len(grid.XTicks)+len(grid.YTicks))+16)
	if m.showMinorGrid {
		ops = m.appendGridLines(ops, minorPositions(vp.XMin, vp.XMax, grid.XStep), minorPositions(vp.YMin, vp.YMax, grid.YStep), kuvaaja.MinorGridLine)
	}
	ops = m.appendGridLines(ops, tickPositions(grid.XTicks), tickPositions(grid.YTicks), kuvaaja.GridLine)
	ops = m.appendAxes(ops, grid, vp)
	for _, seg := range SampleCurve(m.fn, m.state, width, height) {
		ops = append(ops, kuvaaja.PolylineOp{Points: seg})
	}
	return ops
}

func tickPositions(ticks []Tick) []float64 {
	pos := make([]float64, len(ticks))
	for i, t := range ticks {
		pos[i] = t.Pos
	}
	return pos
}

// minorPositions returns the minor gridline positions at step/5
// subdivisions, excluding the major positions and the axis itself.
func minorPositions(lo, hi, step float64) []float64 {
	minor := step / 5
	first := int(math.Ceil(lo / minor))
	last := int(math.Floor(hi / minor))
	var pos []float64
	for i := first; i <= last; i++ {
		if i%5 == 0 {
			continue
		}
		pos = append(pos, float64(i)*minor)
	}
	return pos
}

func (m *Model) appendGridLines(ops kuvaaja.DrawList, xs, ys []float64, kind kuvaaja.LineKind) kuvaaja.DrawList {
	for _, x := range xs {
		sx := m.state.MathToScreen(kuvaaja.Point{X: x}, m.width, m.height).X
		ops = append(ops, kuvaaja.LineOp{
			From: kuvaaja.Point{X: sx, Y: 0},
			To:   kuvaaja.Point{X: sx, Y: m.height},
			Kind: kind,
		})
	}
	for _, y := range ys {
		sy := m.state.MathToScreen(kuvaaja.Point{Y: y}, m.width, m.height).Y
		ops = append(ops, kuvaaja.LineOp{
			From: kuvaaja.Point{X: 0, Y: sy},
			To:   kuvaaja.Point{X: m.width, Y: sy},
			Kind: kind,
		})
	}
	return ops
}

// appendAxes draws the axis lines, arrowheads, tick marks and labels. An
// axis whose zero line is outside the viewport hugs the nearest visible
// edge; the arrowheads sit at each axis's visible extremity.
func (m *Model) appendAxes(ops kuvaaja.DrawList, grid GridLayout, vp kuvaaja.Viewport) kuvaaja.DrawList {
	origin := m.state.MathToScreen(kuvaaja.Point{}, m.width, m.height)
	cx := clamp(origin.X, 0, m.width)
	cy := clamp(origin.Y, 0, m.height)

	ops = append(ops,
		kuvaaja.LineOp{From: kuvaaja.Point{X: 0, Y: cy}, To: kuvaaja.Point{X: m.width, Y: cy}, Kind: kuvaaja.AxisLine},
		kuvaaja.LineOp{From: kuvaaja.Point{X: cx, Y: 0}, To: kuvaaja.Point{X: cx, Y: m.height}, Kind: kuvaaja.AxisLine},
		kuvaaja.ArrowheadOp{Tip: kuvaaja.Point{X: m.width, Y: cy}, Dir: kuvaaja.East},
		kuvaaja.ArrowheadOp{Tip: kuvaaja.Point{X: cx, Y: 0}, Dir: kuvaaja.North},
		kuvaaja.TextOp{Pos: kuvaaja.Point{X: m.width - 30, Y: clamp(cy-22, 0, m.height-labelClampPad)}, Text: "x"},
		kuvaaja.TextOp{Pos: kuvaaja.Point{X: clamp(cx+6, 0, m.width-labelClampPad), Y: 4}, Text: "y"},
	)

	xLabelY := clamp(cy+tickLabelGap, 0, m.height-labelClampPad)
	for _, t := range grid.XTicks {
		sx := m.state.MathToScreen(kuvaaja.Point{X: t.Pos}, m.width, m.height).X
		ops = append(ops,
			kuvaaja.LineOp{From: kuvaaja.Point{X: sx, Y: cy - tickLen}, To: kuvaaja.Point{X: sx, Y: cy + tickLen}, Kind: kuvaaja.TickLine},
			kuvaaja.TextOp{Pos: kuvaaja.Point{X: sx - 5, Y: xLabelY}, Text: t.Label},
		)
	}
	for _, t := range grid.YTicks {
		sy := m.state.MathToScreen(kuvaaja.Point{Y: t.Pos}, m.width, m.height).Y
		labelX := cx - 4*float64(len(t.Label)) - tickLabelGap
		if labelX < 0 {
			labelX = cx + tickLabelGap
		}
		ops = append(ops,
			kuvaaja.LineOp{From: kuvaaja.Point{X: cx - tickLen, Y: sy}, To: kuvaaja.Point{X: cx + tickLen, Y: sy}, Kind: kuvaaja.TickLine},
			kuvaaja.TextOp{Pos: kuvaaja.Point{X: labelX, Y: sy - tickLabelGap}, Text: t.Label},
		)
	}
	if vp.XMin <= 0 && vp.XMax >= 0 && vp.YMin <= 0 && vp.YMax >= 0 {
		ops = append(ops, kuvaaja.TextOp{Pos: kuvaaja.Point{X: cx - 12, Y: cy + tickLabelGap}, Text: "0"})
	}
	return ops
}

func clamp(v, lo, hi float64) float64 {
	return max(min(v, hi), lo)
}
