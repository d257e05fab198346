// Package kuvaaja contains the core value types of the function grapher: the
// viewport state, the bidirectional transform between math and screen
// coordinates, and the draw instructions that view layers consume.
//
// The package is pure math; it knows nothing about windows, widgets or the
// drawing surface. The mutable model living in the graph package owns a
// GraphState and mutates it in response to user interaction; everything here
// is computed from that state and a canvas size.
package kuvaaja

type (
	// GraphState is the minimal viewport state of the graph: how many pixels
	// one math unit takes, how far the math origin has been panned from the
	// canvas center (in pixels), and the source text of the plotted function.
	// Screen y grows downward, math y upward. Scale is always > 0; the graph
	// model keeps it clamped to its configured bounds.
	GraphState struct {
		Scale   float64
		OffsetX float64
		OffsetY float64
		Expr    string
	}

	// Viewport is the visible rectangle in math coordinates. It is derived
	// from a GraphState and a canvas size on every redraw and never stored.
	Viewport struct {
		XMin, XMax float64
		YMin, YMax float64
	}

	// Point is a 2D point, either in math or in screen coordinates depending
	// on context.
	Point struct {
		X, Y float64
	}

	// Direction is one of the four compass directions on the canvas. It
	// orients axis arrowheads and discrete pan steps.
	Direction int
)

const (
	East Direction = iota
	North
	West
	South
)

const (
	DefaultScale = 50
	DefaultExpr  = "x**2"
)

// NewGraphState returns the state every fresh graph starts from: origin at
// the canvas center, 50 px per unit, plotting x**2.
func NewGraphState() GraphState {
	return GraphState{Scale: DefaultScale, Expr: DefaultExpr}
}

// MathToScreen maps a point in math coordinates to screen pixels on a canvas
// of the given size.
func (s GraphState) MathToScreen(p Point, width, height float64) Point {
	return Point{
		X: width/2 + s.OffsetX + p.X*s.Scale,
		Y: height/2 + s.OffsetY - p.Y*s.Scale,
	}
}

// ScreenToMath is the exact inverse of MathToScreen.
func (s GraphState) ScreenToMath(p Point, width, height float64) Point {
	return Point{
		X: (p.X - width/2 - s.OffsetX) / s.Scale,
		Y: (height/2 + s.OffsetY - p.Y) / s.Scale,
	}
}

// Viewport returns the visible math-coordinate rectangle for the given canvas
// size.
func (s GraphState) Viewport(width, height float64) Viewport {
	return Viewport{
		XMin: -(width/2 + s.OffsetX) / s.Scale,
		XMax: (width/2 - s.OffsetX) / s.Scale,
		YMin: (s.OffsetY - height/2) / s.Scale,
		YMax: (s.OffsetY + height/2) / s.Scale,
	}
}

func (v Viewport) Width() float64  { return v.XMax - v.XMin }
func (v Viewport) Height() float64 { return v.YMax - v.YMin }
