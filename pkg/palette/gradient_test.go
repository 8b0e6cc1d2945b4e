package palette

import (
	"image/color"
	"testing"

	"github.com/hepviz/figstyle/pkg/errors"
)

func TestGradient_EndpointsExact(t *testing.T) {
	a := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	b := color.NRGBA{R: 200, G: 150, B: 100, A: 255}
	stops := []Stop{{Pos: 0, Color: a}, {Pos: 1, Color: b}}

	tab, err := Gradient(stops, 50, 1)
	if err != nil {
		t.Fatalf("Gradient() error: %v", err)
	}

	if len(tab.Colors) != 50 {
		t.Fatalf("len(Colors) = %d, want 50", len(tab.Colors))
	}
	if got := tab.Colors[0]; got != a {
		t.Errorf("first entry = %v, want %v", got, a)
	}
	if got := tab.Colors[49]; got != b {
		t.Errorf("last entry = %v, want %v", got, b)
	}
}

func TestGradient_MonotoneBetweenTwoStops(t *testing.T) {
	a := color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	b := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	tab, err := Gradient([]Stop{{0, a}, {1, b}}, 11, 1)
	if err != nil {
		t.Fatalf("Gradient() error: %v", err)
	}

	prev := -1
	for i, c := range tab.Colors {
		r := int(c.(color.NRGBA).R)
		if r < prev {
			t.Fatalf("entry %d red channel %d decreased below %d", i, r, prev)
		}
		prev = r
	}
}

func TestGradient_RejectsDegenerateInput(t *testing.T) {
	a := color.NRGBA{A: 255}

	if _, err := Gradient([]Stop{{0, a}}, 10, 1); !errors.Is(err, errors.ErrCodeInvalidPalette) {
		t.Errorf("single stop: err = %v, want INVALID_PALETTE", err)
	}
	if _, err := Gradient([]Stop{{0, a}, {1, a}}, 1, 1); !errors.Is(err, errors.ErrCodeInvalidPalette) {
		t.Errorf("n=1: err = %v, want INVALID_PALETTE", err)
	}
}

func TestAlternative_CachesActiveTable(t *testing.T) {
	tab := Alternative(1)

	if len(tab.Colors) != DefaultGradientSize {
		t.Errorf("len(Colors) = %d, want %d", len(tab.Colors), DefaultGradientSize)
	}
	if Active() != tab {
		t.Error("Active() should return the table just generated")
	}

	// Regeneration replaces the cache.
	tab2 := Alternative(0.5)
	if Active() != tab2 || tab2 == tab {
		t.Error("Alternative() should replace the active table")
	}
}

func TestGradient_AlphaApplied(t *testing.T) {
	a := color.NRGBA{R: 1, G: 2, B: 3, A: 255}
	b := color.NRGBA{R: 9, G: 8, B: 7, A: 255}

	tab, err := Gradient([]Stop{{0, a}, {1, b}}, 4, 0.5)
	if err != nil {
		t.Fatalf("Gradient() error: %v", err)
	}
	for i, c := range tab.Colors {
		if got := c.(color.NRGBA).A; got != 128 {
			t.Fatalf("entry %d alpha = %d, want 128", i, got)
		}
	}
}

type fakeStyle struct{ colors []color.Color }

func (f *fakeStyle) SetPalette(cs []color.Color) { f.colors = cs }

type fakeHist struct{ contours int }

func (f *fakeHist) SetContours(n int) { f.contours = n }

func TestTable_Apply(t *testing.T) {
	tab := Alternative(1)
	st := &fakeStyle{}
	h := &fakeHist{}

	tab.Apply(st, h)

	if len(st.colors) != DefaultGradientSize {
		t.Errorf("style received %d colors, want %d", len(st.colors), DefaultGradientSize)
	}
	if h.contours != DefaultGradientSize {
		t.Errorf("hist contours = %d, want %d", h.contours, DefaultGradientSize)
	}

	// Nil targets are allowed.
	tab.Apply(nil, nil)
}
