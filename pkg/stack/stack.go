package stack

import (
	"image/color"

	"github.com/hepviz/figstyle/pkg/palette"
	"github.com/hepviz/figstyle/pkg/render"
)

// Stack is an ordered pile of binned series, drawn bottom-to-top in input
// order.
type Stack struct {
	Label string
	Opt   string

	series []*render.Series
}

// Name returns the primitive name.
func (s *Stack) Name() string { return s.Label }

// Series returns the stacked series, bottom first.
func (s *Stack) Series() []*render.Series { return s.series }

// Sum returns the per-bin sum over all stacked series. The result spans the
// longest series; shorter ones contribute zero beyond their length.
func (s *Stack) Sum() []float64 {
	n := 0
	for _, sr := range s.series {
		if len(sr.Values) > n {
			n = len(sr.Values)
		}
	}
	sum := make([]float64, n)
	for _, sr := range s.series {
		for i, v := range sr.Values {
			sum[i] += v
		}
	}
	return sum
}

// Max returns the highest bin of the stacked sum.
func (s *Stack) Max() float64 {
	maxv := 0.0
	for _, v := range s.Sum() {
		if v > maxv {
			maxv = v
		}
	}
	return maxv
}

// Build assembles a stack from the series, assigning each one its color and
// applying the style overrides. An empty color list picks the curated
// qualitative set sized for the series count, in order. With no overrides a
// solid fill in the per-series color is installed; the NoDefault key
// suppresses that without adding anything.
func Build(series []*render.Series, colors []color.Color, opt string, overrides Overrides) *Stack {
	if opt == "" {
		opt = "stack"
	}

	if len(overrides) == 0 {
		overrides = Overrides{"FillColor": 0, "FillStyle": 1001}
	} else if _, ok := overrides[NoDefault]; ok {
		overrides = nil
	}

	if len(colors) == 0 && len(series) > 0 {
		colors = palette.Curated(len(series))
	}

	st := &Stack{Label: "hstack", Opt: opt}
	for i, sr := range series {
		var c color.Color
		if i < len(colors) {
			c = colors[i]
		}
		for key, v := range overrides {
			p, ok := ParseProp(key)
			if !ok {
				continue
			}
			if p.IsColor() {
				applyProp(sr, p, 0, c)
				continue
			}
			applyProp(sr, p, v, nil)
		}
		st.series = append(st.series, sr)
	}
	return st
}

// Item pairs a series with its legend label and swatch option.
type Item struct {
	Series *render.Series
	Label  string
	Opt    string
}

// BuildAndDraw builds a stack, fills the legend from the items (top entry
// first when reverse is set, matching the visual stacking order) and adds
// the stack to the pad.
func BuildAndDraw(pad *render.Pad, items []Item, legend *render.Legend, reverse bool,
	colors []color.Color, opt string, overrides Overrides) *Stack {

	series := make([]*render.Series, len(items))
	for i, it := range items {
		series[i] = it.Series
	}
	st := Build(series, colors, opt, overrides)

	if legend != nil {
		if reverse {
			for i := len(items) - 1; i >= 0; i-- {
				legend.AddEntry(items[i].Series, items[i].Label, items[i].Opt)
			}
		} else {
			for _, it := range items {
				legend.AddEntry(it.Series, it.Label, it.Opt)
			}
		}
	}

	pad.Add(st)
	pad.Refresh()
	return st
}

// Draw applies style overrides to a drawable and adds it to the pad, with
// colors resolved by name or hex through the palette.
func Draw(pad *render.Pad, obj render.Primitive, opt string, overrides map[string]string) {
	for key, val := range overrides {
		p, ok := ParseProp(key)
		if !ok {
			continue
		}
		if p.IsColor() {
			if c, ok := palette.ByName(val); ok {
				applyProp(obj, p, 0, c)
			}
			continue
		}
		applyProp(obj, p, parseFloat(val), nil)
	}

	if sr, ok := obj.(*render.Series); ok && opt != "" {
		sr.DrawOpt = opt
	}
	pad.Add(obj)
	pad.Refresh()
}

// MaxY returns the recommended y-axis maximum for plotting the given
// objects together: the stacked sum for a stack, the highest bin plus its
// error for a series, the highest point plus its high error for a graph.
// Other objects are ignored.
func MaxY(objs ...render.Primitive) float64 {
	maxv := 0.0
	for _, obj := range objs {
		v := 0.0
		switch o := obj.(type) {
		case *Stack:
			v = o.Max()
		case *render.Series:
			v = o.MaxBin()
			if o.Max > v {
				v = o.Max
			}
		case *render.Graph:
			v = o.MaxPoint()
		}
		if v > maxv {
			maxv = v
		}
	}
	return maxv
}
