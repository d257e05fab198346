package gioui

import (
	_ "embed"
	"image/color"

	"gioui.org/font/gofont"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

type (
	Theme struct {
		Material material.Theme `yaml:"-"`
		Graph    struct {
			Light, Dark GraphPalette
			CurveWidth  unit.Dp
		}
		TickLabel LabelStyle
		Button    struct {
			Fg       color.NRGBA `yaml:",flow"`
			Disabled color.NRGBA `yaml:",flow"`
			Inset    unit.Dp
		}
		Editor EditorStyle
		Panel  struct {
			Bg    color.NRGBA `yaml:",flow"`
			Inset unit.Dp
		}
		Alert struct {
			Info, Warning, Error PopupAlertStyle
		}
	}

	// GraphPalette is the set of canvas colors for one brightness mode.
	GraphPalette struct {
		Bg        color.NRGBA `yaml:",flow"`
		Axis      color.NRGBA `yaml:",flow"`
		Grid      color.NRGBA `yaml:",flow"`
		MinorGrid color.NRGBA `yaml:",flow"`
		Curve     color.NRGBA `yaml:",flow"`
		Text      color.NRGBA `yaml:",flow"`
	}
)

//go:embed theme.yml
var defaultTheme []byte

var transparent = color.NRGBA{}

// NewTheme returns the default theme, overlaid with the user theme.yml if one
// exists in the config directory. A non-nil error means the user theme could
// not be read or parsed; the returned theme is still usable.
func NewTheme() (*Theme, error) {
	theme := new(Theme)
	warn := ReadConfig(defaultTheme, "theme.yml", theme)
	theme.Material = *material.NewTheme()
	theme.Material.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	return theme, warn
}

// Palette returns the graph palette for the given brightness mode.
func (th *Theme) Palette(dark bool) *GraphPalette {
	if dark {
		return &th.Graph.Dark
	}
	return &th.Graph.Light
}
