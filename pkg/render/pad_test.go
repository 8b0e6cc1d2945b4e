package render

import "testing"

func TestPad_PrimitiveLookup(t *testing.T) {
	p := NewPad("c", 600, 600)
	p.Add(&Box{Label: StatsBoxName})
	p.Add(&Text{Content: "CMS"})

	if got := p.Primitive(StatsBoxName); got == nil {
		t.Fatal("Primitive(stats) = nil, want the stats box")
	}
	if got := p.Primitive("nope"); got != nil {
		t.Errorf("Primitive(nope) = %v, want nil", got)
	}
}

func TestPad_Remove(t *testing.T) {
	p := NewPad("c", 600, 600)
	p.Add(&Box{Label: StatsBoxName})

	if !p.Remove(StatsBoxName) {
		t.Fatal("Remove(stats) = false, want true")
	}
	if p.Remove(StatsBoxName) {
		t.Error("second Remove(stats) = true, want false")
	}
	if len(p.Primitives()) != 0 {
		t.Errorf("len(Primitives()) = %d, want 0", len(p.Primitives()))
	}
}

func TestPad_DrawFrameReplaces(t *testing.T) {
	p := NewPad("c", 600, 600)
	f1 := p.DrawFrame(0, 0, 1, 1)
	f2 := p.DrawFrame(0, 0, 2, 2)

	if p.Frame() != f2 || p.Frame() == f1 {
		t.Error("DrawFrame should replace the existing frame")
	}
	if f2.XMax != 2 {
		t.Errorf("frame XMax = %v, want 2", f2.XMax)
	}
}

func TestPad_SubpadBounds(t *testing.T) {
	c := NewCanvas("c", 700, 900)
	up := NewPad("up", 700, 600)
	c.AddPad(up, 0, 0.33, 1, 1)

	x1, y1, x2, y2 := up.Bounds()
	if x1 != 0 || y1 != 0.33 || x2 != 1 || y2 != 1 {
		t.Errorf("Bounds() = %v,%v,%v,%v", x1, y1, x2, y2)
	}
	if len(c.Pads()) != 1 {
		t.Errorf("len(Pads()) = %d, want 1", len(c.Pads()))
	}
}

func TestLegend_HeaderReplace(t *testing.T) {
	l := NewLegend(0.6, 0.6, 0.9, 0.9)
	l.AddEntry(&Series{SeriesName: "s1"}, "Sample 1", "f")
	l.SetHeader("Selection A", true)

	entries := l.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(Entries()) = %d, want 2", len(entries))
	}
	if entries[0].Opt != "h" || entries[0].Text != "Selection A" {
		t.Errorf("first entry = %+v, want header Selection A", entries[0])
	}

	// Replacing again swaps the header in place.
	l.SetHeader("Selection B", true)
	if got := l.Entries()[0].Text; got != "Selection B" {
		t.Errorf("header after replace = %q, want Selection B", got)
	}
	if len(l.Entries()) != 2 {
		t.Errorf("len(Entries()) = %d after replace, want 2", len(l.Entries()))
	}
}

func TestLegend_HeaderAppend(t *testing.T) {
	l := NewLegend(0, 0, 1, 1)
	l.AddEntry(&Series{SeriesName: "s1"}, "Sample 1", "f")
	l.SetHeader("Tail", false)

	entries := l.Entries()
	if entries[len(entries)-1].Text != "Tail" {
		t.Error("appended header should be the last entry")
	}
}
