package stack

import (
	"image/color"
	"testing"

	"github.com/hepviz/figstyle/pkg/palette"
	"github.com/hepviz/figstyle/pkg/render"
)

func TestBuild_AutoColorsFromCuratedSet(t *testing.T) {
	series := []*render.Series{
		render.NewSeries("a", []float64{1}),
		render.NewSeries("b", []float64{2}),
		render.NewSeries("c", []float64{3}),
		render.NewSeries("d", []float64{4}),
	}

	st := Build(series, nil, "", nil)

	want := palette.P6.Colors()
	for i, sr := range st.Series() {
		if sr.FillColor() != want[i] {
			t.Errorf("series %d fill color = %v, want %v", i, sr.FillColor(), want[i])
		}
	}

	seen := map[color.Color]bool{}
	for _, sr := range st.Series() {
		if seen[sr.FillColor()] {
			t.Errorf("fill color %v assigned twice", sr.FillColor())
		}
		seen[sr.FillColor()] = true
	}
}

func TestBuild_DefaultOverridesSolidFill(t *testing.T) {
	series := []*render.Series{render.NewSeries("a", []float64{1})}
	st := Build(series, nil, "", nil)

	if got := st.Series()[0].FillStyle(); got != 1001 {
		t.Errorf("fill style = %d, want 1001", got)
	}
}

func TestBuild_NoDefaultLeavesSeriesAlone(t *testing.T) {
	sr := render.NewSeries("a", []float64{1})
	sr.SetFillStyle(3005)
	Build([]*render.Series{sr}, nil, "", Overrides{NoDefault: 0})

	if sr.FillStyle() != 3005 {
		t.Errorf("fill style = %d, want untouched 3005", sr.FillStyle())
	}
	if sr.FillColor() != nil {
		t.Errorf("fill color = %v, want untouched nil", sr.FillColor())
	}
}

func TestBuild_ExplicitOverrides(t *testing.T) {
	sr := render.NewSeries("a", []float64{1})
	Build([]*render.Series{sr}, nil, "",
		Overrides{"LineColor": 0, "LineWidth": 2.4, "FillStyle": 3005})

	if sr.LineColor() != palette.P6.Colors()[0] {
		t.Errorf("line color = %v, want per-series %v", sr.LineColor(), palette.P6.Colors()[0])
	}
	if sr.LineWidth() != 2 {
		t.Errorf("line width = %d, want 2 (2.4 rounded)", sr.LineWidth())
	}
	if sr.FillStyle() != 3005 {
		t.Errorf("fill style = %d, want 3005", sr.FillStyle())
	}
}

func TestBuild_UnknownKeysIgnored(t *testing.T) {
	sr := render.NewSeries("a", []float64{1})
	Build([]*render.Series{sr}, nil, "",
		Overrides{"FillStyle": 3144, "Wobble": 7, "SetBogus": 1})

	if sr.FillStyle() != 3144 {
		t.Errorf("fill style = %d, want 3144", sr.FillStyle())
	}
}

func TestBuild_ExplicitColorList(t *testing.T) {
	red := color.NRGBA{255, 0, 0, 255}
	blue := color.NRGBA{0, 0, 255, 255}
	series := []*render.Series{
		render.NewSeries("a", []float64{1}),
		render.NewSeries("b", []float64{2}),
	}
	st := Build(series, []color.Color{red, blue}, "", nil)

	if st.Series()[0].FillColor() != red || st.Series()[1].FillColor() != blue {
		t.Errorf("fill colors = %v, %v, want red, blue",
			st.Series()[0].FillColor(), st.Series()[1].FillColor())
	}
}

func TestBuild_OrderPreserved(t *testing.T) {
	series := []*render.Series{
		render.NewSeries("bottom", []float64{1}),
		render.NewSeries("middle", []float64{1}),
		render.NewSeries("top", []float64{1}),
	}
	st := Build(series, nil, "", nil)

	for i, name := range []string{"bottom", "middle", "top"} {
		if st.Series()[i].Name() != name {
			t.Errorf("series %d = %q, want %q", i, st.Series()[i].Name(), name)
		}
	}
}

func TestParseProp(t *testing.T) {
	tests := []struct {
		key  string
		want Prop
		ok   bool
	}{
		{"FillColor", FillColor, true},
		{"SetFillColor", FillColor, true},
		{"markersize", MarkerSize, true},
		{"SetLineWidth", LineWidth, true},
		{"Bogus", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseProp(tt.key)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseProp(%q) = %v, %v, want %v, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestBuildAndDraw_LegendReversed(t *testing.T) {
	pad := render.NewPad("c", 600, 600)
	leg := render.NewLegend(0.6, 0.6, 0.9, 0.9)
	items := []Item{
		{render.NewSeries("a", []float64{1}), "Sample A", "f"},
		{render.NewSeries("b", []float64{2}), "Sample B", "f"},
	}

	st := BuildAndDraw(pad, items, leg, true, nil, "", nil)

	entries := leg.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Text != "Sample B" || entries[1].Text != "Sample A" {
		t.Errorf("legend order = %q, %q, want reversed", entries[0].Text, entries[1].Text)
	}
	if pad.Primitive("hstack") == nil {
		t.Error("stack not added to the pad")
	}
	if len(st.Series()) != 2 {
		t.Errorf("stack has %d series, want 2", len(st.Series()))
	}
}

func TestSumAndMax(t *testing.T) {
	st := Build([]*render.Series{
		render.NewSeries("a", []float64{1, 5, 2}),
		render.NewSeries("b", []float64{2, 1}),
	}, nil, "", nil)

	sum := st.Sum()
	want := []float64{3, 6, 2}
	for i, v := range want {
		if sum[i] != v {
			t.Errorf("Sum()[%d] = %g, want %g", i, sum[i], v)
		}
	}
	if st.Max() != 6 {
		t.Errorf("Max() = %g, want 6", st.Max())
	}
}

func TestMaxY(t *testing.T) {
	st := Build([]*render.Series{
		render.NewSeries("a", []float64{1, 4}),
		render.NewSeries("b", []float64{1, 3}),
	}, nil, "", nil)

	sr := render.NewSeries("h", []float64{2, 6, 1})
	sr.Errors = []float64{0.5, 1.5, 0.1}

	gr := &render.Graph{GraphName: "g", Y: []float64{3, 5}, EYHigh: []float64{1, 4}}

	if got := MaxY(st); got != 7 {
		t.Errorf("MaxY(stack) = %g, want 7", got)
	}
	if got := MaxY(sr); got != 7.5 {
		t.Errorf("MaxY(series) = %g, want 7.5", got)
	}
	if got := MaxY(gr); got != 9 {
		t.Errorf("MaxY(graph) = %g, want 9", got)
	}
	if got := MaxY(st, sr, gr); got != 9 {
		t.Errorf("MaxY(all) = %g, want 9", got)
	}
}

func TestDraw_Overrides(t *testing.T) {
	pad := render.NewPad("c", 600, 600)
	sr := render.NewSeries("h", []float64{1})

	Draw(pad, sr, "hist", map[string]string{
		"LineColor": "p6.Red",
		"LineWidth": "3",
		"Nonsense":  "9",
	})

	if want, _ := palette.ByName("p6.Red"); sr.LineColor() != want {
		t.Errorf("line color = %v, want %v", sr.LineColor(), want)
	}
	if sr.LineWidth() != 3 {
		t.Errorf("line width = %d, want 3", sr.LineWidth())
	}
	if sr.DrawOpt != "hist" {
		t.Errorf("draw opt = %q, want hist", sr.DrawOpt)
	}
	if pad.Primitive("h") == nil {
		t.Error("series not added to the pad")
	}
}
