package style

import (
	"image/color"

	"github.com/hepviz/figstyle/pkg/palette"
	"github.com/hepviz/figstyle/pkg/render"
)

// Font identifiers, following the usual plotting-engine numbering.
const (
	FontRegular = 42 // helvetica
	FontItalic  = 52 // helvetica italic
	FontBold    = 61 // helvetica bold
)

// Style is the process-wide presentation configuration.
type Style struct {
	// Caption text.
	Wordmark  string
	ExtraText string
	LumiText  string
	Energy    string
	InfoLines []string

	// Fonts and relative sizes per text role.
	WordmarkFont int
	WordmarkSize float64
	ExtraFont    int
	InfoFont     int

	// Extra-text size as a ratio of the wordmark size.
	ExtraOverWordmark float64

	// Luminosity caption sizing, relative to the top margin.
	LumiTextSize   float64
	LumiTextOffset float64

	// Graphical logo file; empty means the wordmark text is used.
	LogoPath string

	// Default pad margins as fractions of width/height.
	Margins render.Margins

	// Grid enablement for new plot areas.
	GridOn bool

	// Axis typography.
	TitleSize, LabelSize float64
	TickLength           float64
	NDivisions           int

	// Defaults for markers, legends and stats boxes.
	MarkerStyle    int
	MarkerSize     float64
	LegendFont     int
	LegendTextSize float64
	StatFont       int
	StatFontSize   float64

	paletteColors []color.Color
}

// New returns a style populated with the house defaults and default
// captions.
func New() *Style {
	s := &Style{
		WordmarkFont:      FontBold,
		WordmarkSize:      0.75,
		ExtraFont:         FontItalic,
		InfoFont:          FontRegular,
		ExtraOverWordmark: 0.76,
		LumiTextSize:      0.6,
		LumiTextOffset:    0.2,
		Margins: render.Margins{
			Top:    0.05,
			Bottom: 0.13,
			Left:   0.16,
			Right:  0.02,
		},
		TitleSize:      0.06,
		LabelSize:      0.05,
		TickLength:     0.03,
		NDivisions:     510,
		MarkerStyle:    20,
		MarkerSize:     1,
		LegendFont:     FontRegular,
		LegendTextSize: 0.04,
		StatFont:       FontRegular,
		StatFontSize:   0.025,
	}
	s.ResetCaptions()
	return s
}

// The single active style. Replaced wholesale by Apply.
var current *Style

// Apply installs s as the active style, replacing any previous one.
func Apply(s *Style) { current = s }

// Current returns the active style, or nil if none has been applied.
func Current() *Style { return current }

// Ensure returns the active style, applying a fresh default style first if
// none is active.
func Ensure() *Style {
	if current == nil {
		Apply(New())
	}
	return current
}

// ResetCaptions restores the default caption text and clears the info lines.
func (s *Style) ResetCaptions() {
	s.Wordmark = "CMS"
	s.ExtraText = "Preliminary"
	s.LumiText = "Run 2, 138 fb^{-1}"
	s.Energy = "13 TeV"
	s.InfoLines = nil
}

// SetGrid enables or disables grid lines for subsequently created plot
// areas.
func (s *Style) SetGrid(on bool) { s.GridOn = on }

// SetPalette installs a color table as the style's active palette.
func (s *Style) SetPalette(colors []color.Color) { s.paletteColors = colors }

// Palette returns the style's active color table, or nil.
func (s *Style) Palette() []color.Color { return s.paletteColors }

// UseAlternativePalette installs the alternate gradient table on the style
// and, if hist is non-nil, matches its contour count. The table is generated
// on first use and reused afterwards.
func (s *Style) UseAlternativePalette(hist palette.ContourTarget, alpha float64) {
	t := palette.Active()
	if t == nil {
		t = palette.Alternative(alpha)
	}
	t.Apply(s, hist)
}
