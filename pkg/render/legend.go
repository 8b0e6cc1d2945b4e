package render

import "image/color"

// LegendEntry associates a drawable with its label and the option describing
// how its swatch is rendered ("f" fill, "l" line, "p" marker, "h" header).
type LegendEntry struct {
	Obj   Primitive
	Text  string
	Opt   string
	Font  int
	Size  float64
	Align int
}

// Legend is a floating legend panel.
type Legend struct {
	Label          string
	X1, Y1, X2, Y2 float64
	TextSize       float64
	Font           int
	Color          color.Color
	Columns        int
	BorderSize     int
	FillStyle      int

	entries []LegendEntry
}

// LegendOption configures a legend at creation time.
type LegendOption func(*Legend)

// WithLegendTextSize overrides the default entry text size.
func WithLegendTextSize(s float64) LegendOption {
	return func(l *Legend) { l.TextSize = s }
}

// WithLegendFont overrides the default entry font.
func WithLegendFont(f int) LegendOption {
	return func(l *Legend) { l.Font = f }
}

// WithLegendColor overrides the default entry text color.
func WithLegendColor(c color.Color) LegendOption {
	return func(l *Legend) { l.Color = c }
}

// WithLegendColumns lays the entries out in n columns.
func WithLegendColumns(n int) LegendOption {
	return func(l *Legend) { l.Columns = n }
}

// NewLegend creates a legend spanning the given NDC rectangle with the house
// defaults: size 0.04, font 42, no border, transparent fill.
func NewLegend(x1, y1, x2, y2 float64, opts ...LegendOption) *Legend {
	l := &Legend{
		X1: x1, Y1: y1, X2: x2, Y2: y2,
		TextSize: 0.04,
		Font:     42,
		Color:    color.Black,
		Columns:  1,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Name returns the primitive name.
func (l *Legend) Name() string { return l.Label }

// AddEntry appends an entry to the legend.
func (l *Legend) AddEntry(obj Primitive, text, opt string) {
	l.entries = append(l.entries, LegendEntry{Obj: obj, Text: text, Opt: opt})
}

// Entries returns the legend entries in insertion order.
func (l *Legend) Entries() []LegendEntry { return l.entries }

// SetHeader installs a styled header entry. When replace is true an existing
// first header entry is removed first; otherwise the header is appended.
func (l *Legend) SetHeader(title string, replace bool, opts ...LegendOption) {
	cfg := Legend{TextSize: 0.04, Font: 42, Color: color.Black}
	for _, opt := range opts {
		opt(&cfg)
	}
	header := LegendEntry{
		Text:  title,
		Opt:   "h",
		Font:  cfg.Font,
		Size:  cfg.TextSize,
		Align: 12,
	}

	if replace && len(l.entries) > 0 && l.entries[0].Opt == "h" {
		l.entries[0] = header
		return
	}
	if replace {
		l.entries = append([]LegendEntry{header}, l.entries...)
		return
	}
	l.entries = append(l.entries, header)
}
