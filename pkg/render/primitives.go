package render

import "image/color"

// Primitive is any drawable element held in a pad's primitive list.
type Primitive interface {
	Name() string
}

// Text is a text block anchored at an NDC point.
type Text struct {
	Label   string // optional primitive name
	X, Y    float64
	Align   int     // 10*h+v alignment code
	Font    int     // font identifier (42 regular, 52 italic, 61 bold)
	Size    float64 // fraction of pad height
	Color   color.Color
	Content string
}

// Name returns the primitive name.
func (t *Text) Name() string { return t.Label }

// Image is a raster picture stretched over an NDC rectangle, used for
// graphical logos.
type Image struct {
	Label          string
	Path           string
	X1, Y1, X2, Y2 float64
}

// Name returns the primitive name.
func (i *Image) Name() string { return i.Label }

// Box is a floating overlay panel (statistics box, color-scale bar). Its
// edges are NDC coordinates; Lines is the text content already present in
// the box.
type Box struct {
	Label          string
	X1, Y1, X2, Y2 float64
	Lines          []string
	TextSize       float64
	Font           int
	Fill           color.Color
	BorderSize     int
}

// Name returns the primitive name.
func (b *Box) Name() string { return b.Label }

// Conventional primitive names used by the styling layer.
const (
	StatsBoxName = "stats"
	ScaleBarName = "palette"
	FrameName    = "hframe"
)

// LineStyler is implemented by drawables with configurable line attributes.
type LineStyler interface {
	SetLineColor(c color.Color)
	SetLineStyle(s int)
	SetLineWidth(w int)
}

// FillStyler is implemented by drawables with configurable fill attributes.
type FillStyler interface {
	SetFillColor(c color.Color)
	SetFillStyle(s int)
}

// MarkerStyler is implemented by drawables with configurable marker
// attributes.
type MarkerStyler interface {
	SetMarkerColor(c color.Color)
	SetMarkerStyle(s int)
	SetMarkerSize(sz float64)
}
