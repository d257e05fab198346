package graph

import (
	"github.com/vsariola/kuvaaja"
)

// The interaction controller is a two-state machine: Idle, and Dragging
// between DragStart and DragEnd. Zoom and the discrete pan buttons are
// instantaneous and work in either state. All mutations go through pan and
// zoom below; pan never touches the scale and zoom keeps its focal screen
// point fixed in math space.

type dragState int

const (
	dragIdle dragState = iota
	dragActive
)

// panStepFrac is the fraction of the canvas dimension one discrete pan
// button press moves the view.
const panStepFrac = 0.1

// SetSize records the canvas size in pixels. The view calls this whenever its
// constraints change, before routing events or rendering.
func (m *Model) SetSize(width, height float64) {
	m.width, m.height = width, height
}

// DragStart begins a pan gesture.
func (m *Model) DragStart() { m.drag = dragActive }

// DragUpdate pans the view by the given pixel delta. Ignored when no drag is
// in progress.
func (m *Model) DragUpdate(dx, dy float64) {
	if m.drag != dragActive {
		return
	}
	m.pan(dx, dy)
}

// DragEnd finishes a pan gesture.
func (m *Model) DragEnd() { m.drag = dragIdle }

// Dragging reports whether a drag gesture is in progress.
func (m *Model) Dragging() bool { return m.drag == dragActive }

// Scroll zooms by one discrete step about the given focal screen point;
// a negative delta zooms in, as mouse wheels conventionally do.
func (m *Model) Scroll(delta float64, focal kuvaaja.Point) {
	if delta < 0 {
		m.zoom(m.limits.ZoomStep, focal)
	} else if delta > 0 {
		m.zoom(1/m.limits.ZoomStep, focal)
	}
}

// PanStep pans by one discrete button step: 10% of the canvas dimension,
// through the same path as drag panning. The direction is the direction the
// view moves, so East reveals more of the positive x range.
func (m *Model) PanStep(dir kuvaaja.Direction) {
	switch dir {
	case kuvaaja.East:
		m.pan(-panStepFrac*m.width, 0)
	case kuvaaja.West:
		m.pan(panStepFrac*m.width, 0)
	case kuvaaja.North:
		m.pan(0, panStepFrac*m.height)
	case kuvaaja.South:
		m.pan(0, -panStepFrac*m.height)
	}
}

func (m *Model) pan(dx, dy float64) {
	m.state.OffsetX += dx
	m.state.OffsetY += dy
}

// zoom rescales by factor f about the focal screen point. The focal point is
// held fixed: the math coordinate under it before the zoom maps to exactly
// the same screen position after. When the scale is already clamped at a
// bound and f would push past it, the whole operation is a no-op.
func (m *Model) zoom(f float64, focal kuvaaja.Point) {
	scale := m.state.Scale * f
	if scale < m.limits.MinScale {
		scale = m.limits.MinScale
	}
	if scale > m.limits.MaxScale {
		scale = m.limits.MaxScale
	}
	if scale == m.state.Scale {
		return
	}
	before := m.state.ScreenToMath(focal, m.width, m.height)
	m.state.Scale = scale
	m.state.OffsetX = focal.X - m.width/2 - before.X*scale
	m.state.OffsetY = focal.Y - m.height/2 + before.Y*scale
}

// center returns the canvas center, the focal point for button and keyboard
// zooms.
func (m *Model) center() kuvaaja.Point {
	return kuvaaja.Point{X: m.width / 2, Y: m.height / 2}
}

func (m *Model) resetView() {
	expr := m.state.Expr
	m.state = kuvaaja.NewGraphState()
	m.state.Expr = expr
	m.drag = dragIdle
}
