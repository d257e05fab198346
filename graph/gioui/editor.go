package gioui

import (
	"image/color"

	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/vsariola/kuvaaja/graph"
)

type (
	// Editor wraps a widget.Editor committing its text to a model string only
	// on submit, so a half-typed expression is never compiled. Escape reverts
	// the text to the last committed value. The extra key filters keep
	// keystrokes from falling through to the global shortcut handler while
	// editing.
	Editor struct {
		widgetEditor widget.Editor
		committed    string
		filters      []event.Filter
		requestFocus bool
	}

	EditorStyle struct {
		Color     color.NRGBA `yaml:",flow"`
		HintColor color.NRGBA `yaml:",flow"`
		FontSize  unit.Sp
	}

	EditorEvent int
)

const (
	EditorEventNone EditorEvent = iota
	EditorEventSubmit
	EditorEventCancel
)

func NewEditor() *Editor {
	ret := &Editor{widgetEditor: widget.Editor{SingleLine: true, Submit: true}}
	for c := 'A'; c <= 'Z'; c++ {
		ret.filters = append(ret.filters, key.Filter{Name: key.Name(c), Focus: &ret.widgetEditor, Optional: key.ModAlt | key.ModShift | key.ModShortcut})
	}
	for c := '0'; c <= '9'; c++ {
		ret.filters = append(ret.filters, key.Filter{Name: key.Name(c), Focus: &ret.widgetEditor, Optional: key.ModAlt | key.ModShift | key.ModShortcut})
	}
	ret.filters = append(ret.filters, key.Filter{Name: key.NameSpace, Focus: &ret.widgetEditor, Optional: key.ModAlt | key.ModShift | key.ModShortcut})
	ret.filters = append(ret.filters, key.Filter{Name: key.NameEscape, Focus: &ret.widgetEditor, Optional: key.ModAlt | key.ModShift | key.ModShortcut})
	return ret
}

func (e *Editor) Layout(gtx C, str graph.String, th *Theme, hint string) D {
	// resync when the model changed underneath us (reset, startup), but not
	// while the user is typing an uncommitted value
	if v := str.Value(); v != e.committed {
		e.committed = v
		e.widgetEditor.SetText(v)
	}
	switch e.Update(gtx, str) {
	case EditorEventSubmit:
		e.Commit(str)
	case EditorEventCancel:
		e.widgetEditor.SetText(e.committed)
	}
	me := material.Editor(&th.Material, &e.widgetEditor, hint)
	me.Font = labelDefaultFont
	me.TextSize = th.Editor.FontSize
	me.Color = th.Editor.Color
	me.HintColor = th.Editor.HintColor
	return me.Layout(gtx)
}

// Commit tries to set str to the current text, as if enter was pressed. On
// rejection the text is left in place for the user to fix.
func (e *Editor) Commit(str graph.String) {
	if str.SetValue(e.widgetEditor.Text()) {
		e.committed = str.Value()
	}
}

func (e *Editor) Update(gtx C, str graph.String) EditorEvent {
	if e.requestFocus {
		e.requestFocus = false
		gtx.Execute(key.FocusCmd{Tag: &e.widgetEditor})
		l := len(e.widgetEditor.Text())
		e.widgetEditor.SetCaret(l, l)
	}
	for {
		ev, ok := e.widgetEditor.Update(gtx)
		if !ok {
			break
		}
		if _, ok := ev.(widget.SubmitEvent); ok {
			return EditorEventSubmit
		}
	}
	for {
		event, ok := gtx.Event(e.filters...)
		if !ok {
			break
		}
		if e, ok := event.(key.Event); ok && e.State == key.Press && e.Name == key.NameEscape {
			return EditorEventCancel
		}
	}
	return EditorEventNone
}

func (e *Editor) Focus() {
	e.requestFocus = true
}
