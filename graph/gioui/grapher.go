package gioui

import (
	"image"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/vsariola/kuvaaja/graph"
	"github.com/vsariola/kuvaaja/version"
)

type (
	// Grapher is the gio UI on top of a graph model. It owns the window
	// loop; everything runs on the window's event goroutine.
	Grapher struct {
		Theme      *Theme
		Canvas     *Canvas
		Panel      *GraphPanel
		PopupAlert *PopupAlert

		preferences Preferences
		quitted     bool

		*graph.Model
	}

	C = layout.Context
	D = layout.Dimensions
)

func NewGrapher(model *graph.Model, preferences Preferences) *Grapher {
	g := &Grapher{
		Canvas:      new(Canvas),
		Panel:       NewGraphPanel(),
		preferences: preferences,
		Model:       model,
	}
	var warn error
	if g.Theme, warn = NewTheme(); warn != nil {
		model.Alerts().Add(warn.Error(), graph.Warning)
	}
	if preferences.YmlError != nil {
		model.Alerts().Add("preferences.yml: "+preferences.YmlError.Error(), graph.Warning)
	}
	g.PopupAlert = NewPopupAlert(model.Alerts())
	return g
}

// Main runs the window event loop until the window is closed or a quit is
// requested. It returns the window's destroy error, if any.
func (g *Grapher) Main() error {
	w := new(app.Window)
	title := "Kuvaaja"
	if version.VersionOrHash != "" {
		title += " " + version.VersionOrHash
	}
	w.Option(app.Title(title), app.Size(g.preferences.WindowSize()))
	if g.preferences.Window.Maximized {
		w.Option(app.Maximized.Option())
	}
	var ops op.Ops
	globals := map[string]any{"Grapher": g}
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			gtx.Values = globals
			g.Layout(gtx)
			e.Frame(gtx.Ops)
			if g.quitted {
				w.Perform(system.ActionClose)
			}
		}
	}
}

func GrapherFromContext(gtx C) *Grapher {
	g, ok := gtx.Values["Grapher"]
	if !ok {
		panic("Grapher not found in context values")
	}
	return g.(*Grapher)
}

func (g *Grapher) Layout(gtx C) {
	defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, g.Theme.Palette(g.Model.DarkMode().Value()).Bg)
	event.Op(gtx.Ops, g)

	g.Canvas.Layout(gtx)
	g.Panel.Layout(gtx)
	g.PopupAlert.Layout(gtx, g.Theme)

	// global shortcut handling; editors filter their keys before these
	for {
		ev, ok := gtx.Event(
			key.Filter{Name: "", Optional: key.ModAlt | key.ModCommand | key.ModShift | key.ModShortcut | key.ModSuper},
		)
		if !ok {
			break
		}
		if e, ok := ev.(key.Event); ok {
			g.KeyEvent(e, gtx)
		}
	}
}
