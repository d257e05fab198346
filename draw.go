package kuvaaja

type (
	// DrawList is an ordered list of draw instructions for one redraw. A new
	// list is regenerated from scratch on every redraw; the consumer may not
	// retain references to instructions across redraws, and the producer
	// never keeps handles to anything previously drawn.
	DrawList []DrawOp

	// DrawOp is one of LineOp, PolylineOp, TextOp or ArrowheadOp. These are
	// the only primitive capabilities a render host must support.
	DrawOp interface {
		drawOp()
	}

	// LineOp draws a single line segment in screen coordinates. Kind tells
	// the host which style to stroke it with.
	LineOp struct {
		From, To Point
		Kind     LineKind
	}

	// PolylineOp strokes an open polyline through the given screen points.
	// Curve segments are emitted as independent polylines, one per
	// contiguous run of defined samples.
	PolylineOp struct {
		Points []Point
	}

	// TextOp draws a small label with its top-left corner at Pos.
	TextOp struct {
		Pos  Point
		Text string
	}

	// ArrowheadOp draws a filled axis arrowhead with its tip at Tip,
	// pointing towards Dir.
	ArrowheadOp struct {
		Tip Point
		Dir Direction
	}

	LineKind int
)

const (
	GridLine LineKind = iota
	MinorGridLine
	AxisLine
	TickLine
)

func (LineOp) drawOp()      {}
func (PolylineOp) drawOp()  {}
func (TextOp) drawOp()      {}
func (ArrowheadOp) drawOp() {}
