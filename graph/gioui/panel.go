package gioui

import (
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

// GraphPanel is the control surface overlaid on the canvas corner: the
// expression editor and the pan, zoom, reset, grid and brightness buttons.
type GraphPanel struct {
	ExprEditor *Editor

	ApplyBtn    *widget.Clickable
	PanLeftBtn  *widget.Clickable
	PanRightBtn *widget.Clickable
	PanUpBtn    *widget.Clickable
	PanDownBtn  *widget.Clickable
	ZoomInBtn   *widget.Clickable
	ZoomOutBtn  *widget.Clickable
	ResetBtn    *widget.Clickable
	GridBtn     *widget.Clickable
	DarkBtn     *widget.Clickable
}

func NewGraphPanel() *GraphPanel {
	return &GraphPanel{
		ExprEditor:  NewEditor(),
		ApplyBtn:    new(widget.Clickable),
		PanLeftBtn:  new(widget.Clickable),
		PanRightBtn: new(widget.Clickable),
		PanUpBtn:    new(widget.Clickable),
		PanDownBtn:  new(widget.Clickable),
		ZoomInBtn:   new(widget.Clickable),
		ZoomOutBtn:  new(widget.Clickable),
		ResetBtn:    new(widget.Clickable),
		GridBtn:     new(widget.Clickable),
		DarkBtn:     new(widget.Clickable),
	}
}

func (p *GraphPanel) Layout(gtx C) D {
	g := GrapherFromContext(gtx)
	th := g.Theme
	for p.ApplyBtn.Clicked(gtx) {
		p.ExprEditor.Commit(g.Model.Expression())
	}
	return layout.NE.Layout(gtx, func(gtx C) D {
		return surface(gtx, th, func(gtx C) D {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx C) D {
					gtx.Constraints.Min.X = gtx.Dp(240)
					return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
						layout.Flexed(1, func(gtx C) D {
							return p.ExprEditor.Layout(gtx, g.Model.Expression(), th, "y = f(x)")
						}),
						layout.Rigid(IconBtn(th, p.ApplyBtn, icons.NavigationCheck, "Plot").Layout),
					)
				}),
				layout.Rigid(func(gtx C) D {
					return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
						layout.Rigid(ActionIconBtn(g.Model.PanLeft(), th, p.PanLeftBtn, icons.NavigationArrowBack, "Pan left").Layout),
						layout.Rigid(ActionIconBtn(g.Model.PanRight(), th, p.PanRightBtn, icons.NavigationArrowForward, "Pan right").Layout),
						layout.Rigid(ActionIconBtn(g.Model.PanUp(), th, p.PanUpBtn, icons.NavigationArrowUpward, "Pan up").Layout),
						layout.Rigid(ActionIconBtn(g.Model.PanDown(), th, p.PanDownBtn, icons.NavigationArrowDownward, "Pan down").Layout),
						layout.Rigid(ActionIconBtn(g.Model.ZoomIn(), th, p.ZoomInBtn, icons.ContentAdd, "Zoom in").Layout),
						layout.Rigid(ActionIconBtn(g.Model.ZoomOut(), th, p.ZoomOutBtn, icons.ContentRemove, "Zoom out").Layout),
						layout.Rigid(ActionIconBtn(g.Model.ResetView(), th, p.ResetBtn, icons.NavigationRefresh, "Reset view").Layout),
						layout.Rigid(ToggleIconBtn(g.Model.ShowMinorGrid().Bool(), th, p.GridBtn, icons.ImageGridOff, icons.ImageGridOn, "Show minor grid", "Hide minor grid").Layout),
						layout.Rigid(ToggleIconBtn(g.Model.DarkMode().Bool(), th, p.DarkBtn, icons.ImageBrightness5, icons.ImageBrightness2, "Dark mode", "Light mode").Layout),
					)
				}),
			)
		})
	})
}

// surface draws a fitted background behind the widget, in the manner of a
// raised card.
func surface(gtx C, th *Theme, widget layout.Widget) D {
	inset := layout.UniformInset(th.Panel.Inset)
	macro := op.Record(gtx.Ops)
	dims := inset.Layout(gtx, widget)
	call := macro.Stop()
	paint.FillShape(gtx.Ops, th.Panel.Bg, clip.Rect{Max: dims.Size}.Op())
	call.Add(gtx.Ops)
	return dims
}
