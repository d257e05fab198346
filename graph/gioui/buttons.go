package gioui

import (
	"gioui.org/layout"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/vsariola/kuvaaja/graph"
)

type (
	// ActionIconBtnStyle is an icon button bound to a model action: clicks do
	// the action, and the button renders disabled while the action is not
	// enabled.
	ActionIconBtnStyle struct {
		action graph.Action
		theme  *Theme
		btn    *widget.Clickable
		icon   []byte
		tip    string
	}

	// ToggleIconBtnStyle is an icon button bound to a model bool, showing a
	// different icon per state.
	ToggleIconBtnStyle struct {
		b               graph.Bool
		theme           *Theme
		btn             *widget.Clickable
		offIcon, onIcon []byte
		offTip, onTip   string
	}
)

func ActionIconBtn(act graph.Action, th *Theme, btn *widget.Clickable, icon []byte, tip string) ActionIconBtnStyle {
	return ActionIconBtnStyle{action: act, theme: th, btn: btn, icon: icon, tip: tip}
}

func ToggleIconBtn(b graph.Bool, th *Theme, btn *widget.Clickable, offIcon, onIcon []byte, offTip, onTip string) ToggleIconBtnStyle {
	return ToggleIconBtnStyle{b: b, theme: th, btn: btn, offIcon: offIcon, onIcon: onIcon, offTip: offTip, onTip: onTip}
}

// IconBtn is a plain, always-enabled icon button; the caller handles clicks.
func IconBtn(th *Theme, btn *widget.Clickable, icon []byte, tip string) material.IconButtonStyle {
	ret := material.IconButton(&th.Material, btn, widgetForIcon(icon), tip)
	ret.Background = transparent
	ret.Inset = layout.UniformInset(th.Button.Inset)
	ret.Color = th.Button.Fg
	return ret
}

func (s ActionIconBtnStyle) Layout(gtx C) D {
	for s.btn.Clicked(gtx) {
		s.action.Do()
	}
	ib := material.IconButton(&s.theme.Material, s.btn, widgetForIcon(s.icon), s.tip)
	ib.Background = transparent
	ib.Inset = layout.UniformInset(s.theme.Button.Inset)
	if s.action.Enabled() {
		ib.Color = s.theme.Button.Fg
	} else {
		ib.Color = s.theme.Button.Disabled
	}
	return ib.Layout(gtx)
}

func (s ToggleIconBtnStyle) Layout(gtx C) D {
	for s.btn.Clicked(gtx) {
		s.b.Toggle()
	}
	icon, desc := s.offIcon, s.offTip
	if s.b.Value() {
		icon, desc = s.onIcon, s.onTip
	}
	ib := material.IconButton(&s.theme.Material, s.btn, widgetForIcon(icon), desc)
	ib.Background = transparent
	ib.Inset = layout.UniformInset(s.theme.Button.Inset)
	ib.Color = s.theme.Button.Fg
	return ib.Layout(gtx)
}
