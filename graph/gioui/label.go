package gioui

import (
	"image"
	"image/color"

	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
)

var fontCollection []text.FontFace = gofont.Collection()
var labelDefaultFont font.Font = fontCollection[0].Font

type (
	LabelStyle struct {
		Color      color.NRGBA `yaml:",flow"`
		ShadeColor color.NRGBA `yaml:",flow"`
		FontSize   unit.Sp
	}

	LabelWidget struct {
		Text  string
		Style *LabelStyle
		Theme *Theme
	}
)

func Label(th *Theme, style *LabelStyle, txt string) LabelWidget {
	return LabelWidget{Text: txt, Style: style, Theme: th}
}

func (l LabelWidget) Layout(gtx C) D {
	gtx.Constraints.Min = image.Point{}
	w := widget.Label{Alignment: text.Start, MaxLines: 1}
	if l.Style.ShadeColor.A > 0 {
		paint.ColorOp{Color: l.Style.ShadeColor}.Add(gtx.Ops)
		offs := op.Offset(image.Pt(2, 2)).Push(gtx.Ops)
		w.Layout(gtx, l.Theme.Material.Shaper, labelDefaultFont, l.Style.FontSize, l.Text, op.CallOp{})
		offs.Pop()
	}
	paint.ColorOp{Color: l.Style.Color}.Add(gtx.Ops)
	dims := w.Layout(gtx, l.Theme.Material.Shaper, labelDefaultFont, l.Style.FontSize, l.Text, op.CallOp{})
	return D{Size: dims.Size, Baseline: dims.Baseline}
}
