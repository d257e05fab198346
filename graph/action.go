package graph

import "github.com/vsariola/kuvaaja"

type (
	// Action describes a user action that can be performed on the model,
	// initiated by calling the Do() method from a button press or a key
	// binding. Action advertises whether it is enabled, so the UI can gray
	// out buttons when the underlying action is not allowed. The underlying
	// Doer can optionally implement the Enabler interface to decide whether
	// the action is enabled; if it does not, the action is always allowed.
	Action struct {
		doer Doer
	}

	// Doer is an interface that defines a single Do() method, which is
	// called when an action is performed.
	Doer interface {
		Do()
	}

	// Enabler is an interface that defines a single Enabled() method, used
	// by the UI to check if an Action/Bool is enabled or not.
	Enabler interface {
		Enabled() bool
	}

	PanLeft   Model
	PanRight  Model
	PanUp     Model
	PanDown   Model
	ZoomIn    Model
	ZoomOut   Model
	ResetView Model
)

// Action methods

func MakeAction(doer Doer) Action {
	return Action{doer: doer}
}

func (a Action) Do() {
	e, ok := a.doer.(Enabler)
	if ok && !e.Enabled() {
		return
	}
	if a.doer != nil {
		a.doer.Do()
	}
}

func (a Action) Enabled() bool {
	if a.doer == nil {
		return false
	}
	e, ok := a.doer.(Enabler)
	if !ok {
		return true
	}
	return e.Enabled()
}

// Model methods

func (m *Model) PanLeft() Action   { return MakeAction((*PanLeft)(m)) }
func (m *Model) PanRight() Action  { return MakeAction((*PanRight)(m)) }
func (m *Model) PanUp() Action     { return MakeAction((*PanUp)(m)) }
func (m *Model) PanDown() Action   { return MakeAction((*PanDown)(m)) }
func (m *Model) ZoomIn() Action    { return MakeAction((*ZoomIn)(m)) }
func (m *Model) ZoomOut() Action   { return MakeAction((*ZoomOut)(m)) }
func (m *Model) ResetView() Action { return MakeAction((*ResetView)(m)) }

func (a *PanLeft) Do()  { (*Model)(a).PanStep(kuvaaja.West) }
func (a *PanRight) Do() { (*Model)(a).PanStep(kuvaaja.East) }
func (a *PanUp) Do()    { (*Model)(a).PanStep(kuvaaja.North) }
func (a *PanDown) Do()  { (*Model)(a).PanStep(kuvaaja.South) }

func (a *ZoomIn) Do() {
	m := (*Model)(a)
	m.zoom(m.limits.ZoomStep, m.center())
}
func (a *ZoomIn) Enabled() bool { return a.state.Scale < a.limits.MaxScale }

func (a *ZoomOut) Do() {
	m := (*Model)(a)
	m.zoom(1/m.limits.ZoomStep, m.center())
}
func (a *ZoomOut) Enabled() bool { return a.state.Scale > a.limits.MinScale }

func (a *ResetView) Do() { (*Model)(a).resetView() }
