package palette

import (
	"image/color"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/hepviz/figstyle/pkg/errors"
)

// Stop is a gradient control point at a position in [0,1].
type Stop struct {
	Pos   float64
	Color color.Color
}

// Table is a materialized gradient color table.
type Table struct {
	Colors []color.Color
	Alpha  float64
}

// ContourTarget is any 2D display object whose contour count can be matched
// to a palette.
type ContourTarget interface {
	SetContours(n int)
}

// StyleTarget is any style object that can carry an active color table.
type StyleTarget interface {
	SetPalette(colors []color.Color)
}

// DefaultGradientStops returns the control points of the standard alternate
// 2D palette (deep blue through green to dark red).
func DefaultGradientStops() []Stop {
	return []Stop{
		{Pos: 0.00, Color: rgb(0.00, 0.30, 0.50)},
		{Pos: 0.15, Color: rgb(0.00, 0.50, 0.40)},
		{Pos: 0.70, Color: rgb(1.00, 0.70, 0.20)},
		{Pos: 1.00, Color: rgb(0.70, 0.00, 0.15)},
	}
}

// DefaultGradientSize is the number of entries materialized for the default
// alternate palette.
const DefaultGradientSize = 200

// The most recently generated table, shared process-wide. Replaced only by
// explicit regeneration through Gradient or Alternative.
var activeTable *Table

// Gradient materializes n discrete colors by piecewise-linear RGB
// interpolation across the control points. Interpolation endpoints are exact:
// the first entry equals the first stop color and the last entry the last
// stop color. The result becomes the active table.
func Gradient(stops []Stop, n int, alpha float64) (*Table, error) {
	if len(stops) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidPalette, "gradient needs at least 2 control points, got %d", len(stops))
	}
	if n < 2 {
		return nil, errors.New(errors.ErrCodeInvalidPalette, "gradient table needs at least 2 entries, got %d", n)
	}
	if alpha <= 0 || alpha > 1 {
		alpha = 1
	}

	pts := make([]Stop, len(stops))
	copy(pts, stops)
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].Pos < pts[j].Pos })

	t := &Table{Colors: make([]color.Color, n), Alpha: alpha}
	seg := 0
	for i := range n {
		pos := float64(i) / float64(n-1)
		for seg < len(pts)-2 && pos > pts[seg+1].Pos {
			seg++
		}
		lo, hi := pts[seg], pts[seg+1]

		frac := 0.0
		if hi.Pos > lo.Pos {
			frac = (pos - lo.Pos) / (hi.Pos - lo.Pos)
		}
		if frac < 0 {
			frac = 0
		} else if frac > 1 {
			frac = 1
		}

		c := toColorful(lo.Color).BlendRgb(toColorful(hi.Color), frac)
		t.Colors[i] = toNRGBA(c, alpha)
	}

	activeTable = t
	return t, nil
}

// Alternative builds (or rebuilds) the default alternate gradient table and
// installs it as the active table.
func Alternative(alpha float64) *Table {
	t, err := Gradient(DefaultGradientStops(), DefaultGradientSize, alpha)
	if err != nil {
		// The default stops are well-formed; this cannot fail.
		panic(err)
	}
	return t
}

// Active returns the active gradient table, or nil if none was generated yet.
func Active() *Table {
	return activeTable
}

// Apply installs the table on a style and matches a 2D object's contour count
// to the table size. Either target may be nil.
func (t *Table) Apply(st StyleTarget, hist ContourTarget) {
	if st != nil {
		st.SetPalette(t.Colors)
	}
	if hist != nil {
		hist.SetContours(len(t.Colors))
	}
}

func rgb(r, g, b float64) color.Color {
	return toNRGBA(colorful.Color{R: r, G: g, B: b}, 1)
}

func toColorful(c color.Color) colorful.Color {
	cc, _ := colorful.MakeColor(c)
	return cc
}
