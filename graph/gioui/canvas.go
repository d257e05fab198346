package gioui

import (
	"image"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/vsariola/kuvaaja"
	"github.com/vsariola/kuvaaja/graph"
)

// Canvas draws the graph and routes pointer gestures to the model: primary
// drag pans, the wheel zooms about the cursor, secondary click resets the
// view. It owns no graph state of its own beyond the gesture tracking.
type Canvas struct {
	dragging bool
	dragID   pointer.ID
	lastPos  f32.Point
}

func (c *Canvas) Layout(gtx C) D {
	g := GrapherFromContext(gtx)
	s := gtx.Constraints.Max
	if s.X <= 1 || s.Y <= 1 {
		return D{}
	}
	defer clip.Rect(image.Rectangle{Max: s}).Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, c)
	c.update(gtx, g.Model)

	pal := g.Theme.Palette(g.Model.DarkMode().Value())
	paint.FillShape(gtx.Ops, pal.Bg, clip.Rect{Max: s}.Op())
	for _, drawOp := range g.Model.Render(float64(s.X), float64(s.Y)) {
		switch drawOp := drawOp.(type) {
		case kuvaaja.LineOp:
			c.drawLine(gtx, pal, drawOp)
		case kuvaaja.PolylineOp:
			c.drawCurve(gtx, pal, g.Theme, drawOp)
		case kuvaaja.ArrowheadOp:
			c.drawArrowhead(gtx, pal, drawOp)
		case kuvaaja.TextOp:
			c.drawText(gtx, g.Theme, pal, drawOp)
		}
	}
	return D{Size: s}
}

func (c *Canvas) update(gtx C, m *graph.Model) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  c,
			Kinds:   pointer.Scroll | pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
			ScrollY: pointer.ScrollRange{Min: -1e6, Max: 1e6},
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Kind {
		case pointer.Scroll:
			m.Scroll(float64(e.Scroll.Y), kuvaaja.Point{X: float64(e.Position.X), Y: float64(e.Position.Y)})
		case pointer.Press:
			if e.Buttons&pointer.ButtonSecondary != 0 {
				m.ResetView().Do()
			}
			if e.Buttons&pointer.ButtonPrimary != 0 {
				c.dragging = true
				c.dragID = e.PointerID
				c.lastPos = e.Position
				m.DragStart()
			}
		case pointer.Drag:
			if e.Buttons&pointer.ButtonPrimary != 0 && c.dragging && e.PointerID == c.dragID {
				m.DragUpdate(float64(e.Position.X-c.lastPos.X), float64(e.Position.Y-c.lastPos.Y))
				c.lastPos = e.Position
			}
		case pointer.Release, pointer.Cancel:
			if c.dragging {
				c.dragging = false
				m.DragEnd()
			}
		}
	}
}

func (c *Canvas) drawLine(gtx C, pal *GraphPalette, l kuvaaja.LineOp) {
	color := pal.Grid
	switch l.Kind {
	case kuvaaja.MinorGridLine:
		color = pal.MinorGrid
	case kuvaaja.AxisLine, kuvaaja.TickLine:
		color = pal.Axis
	}
	// the layout only emits axis-aligned lines, so a 1px rect suffices
	x0, x1 := int(min(l.From.X, l.To.X)), int(max(l.From.X, l.To.X))
	y0, y1 := int(min(l.From.Y, l.To.Y)), int(max(l.From.Y, l.To.Y))
	paint.ColorOp{Color: color}.Add(gtx.Ops)
	fillRect(gtx, clip.Rect{Min: image.Pt(x0, y0), Max: image.Pt(x1+1, y1+1)})
}

func (c *Canvas) drawCurve(gtx C, pal *GraphPalette, th *Theme, p kuvaaja.PolylineOp) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(float32(p.Points[0].X), float32(p.Points[0].Y)))
	for _, pt := range p.Points[1:] {
		path.LineTo(f32.Pt(float32(pt.X), float32(pt.Y)))
	}
	paint.FillShape(gtx.Ops, pal.Curve, clip.Stroke{
		Path:  path.End(),
		Width: float32(gtx.Dp(th.Graph.CurveWidth)),
	}.Op())
}

func (c *Canvas) drawArrowhead(gtx C, pal *GraphPalette, a kuvaaja.ArrowheadOp) {
	tip := f32.Pt(float32(a.Tip.X), float32(a.Tip.Y))
	var back1, back2 f32.Point
	switch a.Dir {
	case kuvaaja.East:
		back1 = tip.Add(f32.Pt(-10, -5))
		back2 = tip.Add(f32.Pt(-10, 5))
	case kuvaaja.West:
		back1 = tip.Add(f32.Pt(10, -5))
		back2 = tip.Add(f32.Pt(10, 5))
	case kuvaaja.North:
		back1 = tip.Add(f32.Pt(-5, 10))
		back2 = tip.Add(f32.Pt(5, 10))
	case kuvaaja.South:
		back1 = tip.Add(f32.Pt(-5, -10))
		back2 = tip.Add(f32.Pt(5, -10))
	}
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(tip)
	path.LineTo(back1)
	path.LineTo(back2)
	path.Close()
	paint.FillShape(gtx.Ops, pal.Axis, clip.Outline{Path: path.End()}.Op())
}

func (c *Canvas) drawText(gtx C, th *Theme, pal *GraphPalette, t kuvaaja.TextOp) {
	style := th.TickLabel
	style.Color = pal.Text
	defer op.Offset(image.Pt(int(t.Pos.X), int(t.Pos.Y))).Push(gtx.Ops).Pop()
	Label(th, &style, t.Text).Layout(gtx)
}

func fillRect(gtx C, rect clip.Rect) {
	stack := rect.Push(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	stack.Pop()
}
