package render

import "image/color"

// Series is a binned one-dimensional data series (a histogram in the usual
// sense). It implements the three style capability sets.
type Series struct {
	SeriesName string
	Values     []float64
	Errors     []float64 // per-bin errors, optional
	Max        float64   // explicit maximum override, 0 if unset

	DrawOpt string

	lineColor   color.Color
	lineStyle   int
	lineWidth   int
	fillColor   color.Color
	fillStyle   int
	markerColor color.Color
	markerStyle int
	markerSize  float64
}

// NewSeries creates a series with the given per-bin values.
func NewSeries(name string, values []float64) *Series {
	return &Series{
		SeriesName: name,
		Values:     values,
		lineWidth:  1,
		fillStyle:  1001,
		markerSize: 1,
	}
}

// Name returns the primitive name.
func (s *Series) Name() string { return s.SeriesName }

func (s *Series) SetLineColor(c color.Color) { s.lineColor = c }
func (s *Series) SetLineStyle(st int)        { s.lineStyle = st }
func (s *Series) SetLineWidth(w int)         { s.lineWidth = w }

func (s *Series) SetFillColor(c color.Color) { s.fillColor = c }
func (s *Series) SetFillStyle(st int)        { s.fillStyle = st }

func (s *Series) SetMarkerColor(c color.Color) { s.markerColor = c }
func (s *Series) SetMarkerStyle(st int)        { s.markerStyle = st }
func (s *Series) SetMarkerSize(sz float64)     { s.markerSize = sz }

func (s *Series) LineColor() color.Color   { return s.lineColor }
func (s *Series) LineStyle() int           { return s.lineStyle }
func (s *Series) LineWidth() int           { return s.lineWidth }
func (s *Series) FillColor() color.Color   { return s.fillColor }
func (s *Series) FillStyle() int           { return s.fillStyle }
func (s *Series) MarkerColor() color.Color { return s.markerColor }
func (s *Series) MarkerStyle() int         { return s.markerStyle }
func (s *Series) MarkerSize() float64      { return s.markerSize }

// MaxBin returns the value of the highest bin plus that bin's error.
func (s *Series) MaxBin() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	idx := 0
	for i, v := range s.Values {
		if v > s.Values[idx] {
			idx = i
		}
	}
	maxv := s.Values[idx]
	if idx < len(s.Errors) {
		maxv += s.Errors[idx]
	}
	return maxv
}

// Graph is a point series with optional asymmetric errors, used where a
// binned series does not fit.
type Graph struct {
	GraphName string
	Y         []float64
	EYHigh    []float64

	lineColor   color.Color
	lineStyle   int
	lineWidth   int
	markerColor color.Color
	markerStyle int
	markerSize  float64
}

// Name returns the primitive name.
func (g *Graph) Name() string { return g.GraphName }

func (g *Graph) SetLineColor(c color.Color)   { g.lineColor = c }
func (g *Graph) SetLineStyle(st int)          { g.lineStyle = st }
func (g *Graph) SetLineWidth(w int)           { g.lineWidth = w }
func (g *Graph) SetMarkerColor(c color.Color) { g.markerColor = c }
func (g *Graph) SetMarkerStyle(st int)        { g.markerStyle = st }
func (g *Graph) SetMarkerSize(sz float64)     { g.markerSize = sz }

func (g *Graph) LineColor() color.Color   { return g.lineColor }
func (g *Graph) MarkerColor() color.Color { return g.markerColor }
func (g *Graph) MarkerSize() float64      { return g.markerSize }

// MaxPoint returns the largest y value plus its high error.
func (g *Graph) MaxPoint() float64 {
	maxv := 0.0
	for i, y := range g.Y {
		if i < len(g.EYHigh) {
			y += g.EYHigh[i]
		}
		if y > maxv {
			maxv = y
		}
	}
	return maxv
}

// Heatmap is a two-dimensional scalar display whose contour count can be
// matched to a gradient palette.
type Heatmap struct {
	HeatmapName string
	Values      [][]float64

	contours int
}

// Name returns the primitive name.
func (h *Heatmap) Name() string { return h.HeatmapName }

// SetContours sets the number of contour levels.
func (h *Heatmap) SetContours(n int) { h.contours = n }

// Contours returns the number of contour levels (0 if unset).
func (h *Heatmap) Contours() int { return h.contours }
