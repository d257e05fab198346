// Package graph implements the mutable model of the grapher: the viewport
// state and the interaction logic mutating it, the grid and tick layout, the
// curve sampler, and the renderer producing immutable draw-instruction lists.
//
// The model is owned exclusively by the GUI goroutine and mutated only from
// inside discrete event handlers; a full recompute-and-redraw cycle completes
// before the next event is processed, so no locking is needed anywhere.
package graph

import (
	"github.com/vsariola/kuvaaja"
	"github.com/vsariola/kuvaaja/expr"
)

type (
	// Model is the mutable state of one grapher instance. The view layer
	// reads it through the typed accessors (Bool, String, Action) and mutates
	// it only through the interaction methods.
	Model struct {
		state kuvaaja.GraphState
		fn    *expr.Function

		showMinorGrid bool
		darkMode      bool

		drag          dragState
		width, height float64 // canvas size in px, updated by the view on every render

		limits Limits
		alerts Alerts
	}

	// Limits configures the clamp bounds of the viewport scale and the
	// magnitude of one discrete zoom step.
	Limits struct {
		MinScale float64 `yaml:"minscale"`
		MaxScale float64 `yaml:"maxscale"`
		ZoomStep float64 `yaml:"zoomstep"`
	}
)

// DefaultLimits are used for any Limits field left zero.
var DefaultLimits = Limits{
	MinScale: 0.01,
	MaxScale: 1e6,
	ZoomStep: 1.1,
}

// NewModel returns a model in the default view state, plotting the default
// expression.
func NewModel(limits Limits) *Model {
	if limits.MinScale <= 0 {
		limits.MinScale = DefaultLimits.MinScale
	}
	if limits.MaxScale <= 0 {
		limits.MaxScale = DefaultLimits.MaxScale
	}
	if limits.ZoomStep <= 1 {
		limits.ZoomStep = DefaultLimits.ZoomStep
	}
	m := &Model{
		state:         kuvaaja.NewGraphState(),
		showMinorGrid: true,
		limits:        limits,
	}
	// the default expression is a compile-time constant; it cannot fail
	m.fn, _ = expr.Compile(m.state.Expr)
	return m
}

// State returns a copy of the current viewport state.
func (m *Model) State() kuvaaja.GraphState { return m.state }

// Viewport returns the visible math rectangle for the last known canvas size.
func (m *Model) Viewport() kuvaaja.Viewport { return m.state.Viewport(m.width, m.height) }

func (m *Model) Alerts() *Alerts { return &m.alerts }

// SetExpression compiles src and, on success, makes it the plotted function.
// On a *expr.ParseError or *expr.DisallowedTokenError the model is left
// untouched, so the previously accepted expression stays displayed; the
// error is also pushed to the alerts for the view to show.
func (m *Model) SetExpression(src string) error {
	fn, err := expr.Compile(src)
	if err != nil {
		m.alerts.Add(err.Error(), Error)
		return err
	}
	m.fn = fn
	m.state.Expr = src
	return nil
}

// Function returns the currently plotted compiled expression.
func (m *Model) Function() *expr.Function { return m.fn }
