package graph_test

import (
	"testing"

	"github.com/vsariola/kuvaaja"
	"github.com/vsariola/kuvaaja/graph"
)

func countOps(ops kuvaaja.DrawList) (lines map[kuvaaja.LineKind]int, texts, arrows, polys int) {
	lines = map[kuvaaja.LineKind]int{}
	for _, op := range ops {
		switch op := op.(type) {
		case kuvaaja.LineOp:
			lines[op.Kind]++
		case kuvaaja.TextOp:
			texts++
		case kuvaaja.ArrowheadOp:
			arrows++
		case kuvaaja.PolylineOp:
			polys++
		}
	}
	return lines, texts, arrows, polys
}

func TestRenderDefaultView(t *testing.T) {
	m := graph.NewModel(graph.Limits{})
	ops := m.Render(800, 600)
	lines, texts, arrows, polys := countOps(ops)
	// x in [-8, 8] and y in [-6, 6] at step 2: 8 + 6 major gridlines
	if got := lines[kuvaaja.GridLine]; got != 14 {
		t.Errorf("got %d major gridlines, want 14", got)
	}
	if got := lines[kuvaaja.AxisLine]; got != 2 {
		t.Errorf("got %d axis lines, want 2", got)
	}
	if got := lines[kuvaaja.TickLine]; got != 14 {
		t.Errorf("got %d tick marks, want 14", got)
	}
	if lines[kuvaaja.MinorGridLine] == 0 {
		t.Error("no minor gridlines with the minor grid on")
	}
	if arrows != 2 {
		t.Errorf("got %d arrowheads, want 2", arrows)
	}
	// 14 tick labels, "x", "y" and the origin "0"
	if texts != 17 {
		t.Errorf("got %d text ops, want 17", texts)
	}
	if polys == 0 {
		t.Error("no curve segments for the default expression")
	}
}

func TestRenderAxesVisible(t *testing.T) {
	m := graph.NewModel(graph.Limits{})
	var haveX, haveY bool
	for _, op := range m.Render(800, 600) {
		line, ok := op.(kuvaaja.LineOp)
		if !ok || line.Kind != kuvaaja.AxisLine {
			continue
		}
		if line.From.Y == 300 && line.To.Y == 300 && line.From.X == 0 && line.To.X == 800 {
			haveX = true
		}
		if line.From.X == 400 && line.To.X == 400 && line.From.Y == 0 && line.To.Y == 600 {
			haveY = true
		}
	}
	if !haveX || !haveY {
		t.Errorf("axes not through canvas center: x axis %v, y axis %v", haveX, haveY)
	}
}

func TestRenderMinorGridToggle(t *testing.T) {
	m := graph.NewModel(graph.Limits{})
	m.ShowMinorGrid().Bool().Set(false)
	lines, _, _, _ := countOps(m.Render(800, 600))
	if got := lines[kuvaaja.MinorGridLine]; got != 0 {
		t.Errorf("got %d minor gridlines with the minor grid off", got)
	}
	if lines[kuvaaja.GridLine] == 0 {
		t.Error("major gridlines disappeared with the minor grid")
	}
}

func TestRenderOriginOffscreen(t *testing.T) {
	m := graph.NewModel(graph.Limits{})
	m.SetSize(800, 600)
	m.DragStart()
	m.DragUpdate(-2000, 0) // push the origin far off the left edge
	m.DragEnd()
	for _, op := range m.Render(800, 600) {
		switch op := op.(type) {
		case kuvaaja.LineOp:
			if op.Kind != kuvaaja.AxisLine {
				continue
			}
			if op.From.X == op.To.X && op.From.X != 0 {
				t.Errorf("y axis at screen x %v, want hugging the left edge", op.From.X)
			}
		case kuvaaja.TextOp:
			if op.Text == "0" {
				t.Error("origin label drawn with the origin offscreen")
			}
		}
	}
}

func TestRenderZeroSize(t *testing.T) {
	m := graph.NewModel(graph.Limits{})
	if ops := m.Render(0, 0); ops != nil {
		t.Errorf("got %d ops for a zero-size canvas", len(ops))
	}
}
