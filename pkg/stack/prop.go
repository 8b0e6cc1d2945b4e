package stack

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/hepviz/figstyle/pkg/render"
)

// Prop identifies a styleable attribute of a drawable. The set is closed:
// only these attributes can be driven through overrides.
type Prop int

const (
	LineColor Prop = iota
	LineStyle
	LineWidth
	FillColor
	FillStyle
	MarkerColor
	MarkerStyle
	MarkerSize
)

// NoDefault is the override key that suppresses the built-in stack defaults
// without installing anything else.
const NoDefault = "NoDefault"

var propNames = map[string]Prop{
	"linecolor":   LineColor,
	"linestyle":   LineStyle,
	"linewidth":   LineWidth,
	"fillcolor":   FillColor,
	"fillstyle":   FillStyle,
	"markercolor": MarkerColor,
	"markerstyle": MarkerStyle,
	"markersize":  MarkerSize,
}

// ParseProp resolves an override key to its property. A leading "Set" is
// accepted and dropped, matching the setter-method naming the keys mirror.
func ParseProp(key string) (Prop, bool) {
	k := strings.ToLower(strings.TrimPrefix(key, "Set"))
	p, ok := propNames[k]
	return p, ok
}

// IsColor reports whether the property carries a color value.
func (p Prop) IsColor() bool {
	return p == LineColor || p == FillColor || p == MarkerColor
}

// Overrides maps override keys to numeric values. Color properties ignore
// the value: they mark the attribute to receive the per-series color.
// Unknown keys are ignored, so callers can pass through user-supplied maps.
type Overrides map[string]float64

// applyProp sets one property on a drawable, if the drawable supports it.
// Discrete attributes round the value to the nearest integer.
func applyProp(obj render.Primitive, p Prop, v float64, c color.Color) {
	switch p {
	case LineColor:
		if ls, ok := obj.(render.LineStyler); ok {
			ls.SetLineColor(c)
		}
	case LineStyle:
		if ls, ok := obj.(render.LineStyler); ok {
			ls.SetLineStyle(round(v))
		}
	case LineWidth:
		if ls, ok := obj.(render.LineStyler); ok {
			ls.SetLineWidth(round(v))
		}
	case FillColor:
		if fs, ok := obj.(render.FillStyler); ok {
			fs.SetFillColor(c)
		}
	case FillStyle:
		if fs, ok := obj.(render.FillStyler); ok {
			fs.SetFillStyle(round(v))
		}
	case MarkerColor:
		if ms, ok := obj.(render.MarkerStyler); ok {
			ms.SetMarkerColor(c)
		}
	case MarkerStyle:
		if ms, ok := obj.(render.MarkerStyler); ok {
			ms.SetMarkerStyle(round(v))
		}
	case MarkerSize:
		if ms, ok := obj.(render.MarkerStyler); ok {
			ms.SetMarkerSize(v)
		}
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
