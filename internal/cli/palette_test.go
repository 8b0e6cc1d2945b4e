package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hepviz/figstyle/pkg/palette"
)

func TestPrintPalette_UnknownSet(t *testing.T) {
	if err := printPalette("p99"); err == nil {
		t.Error("printPalette(p99): error = nil, want error")
	}
}

func TestHexOf(t *testing.T) {
	c, ok := palette.ByName("p6.Blue")
	if !ok {
		t.Fatal("p6.Blue not resolved")
	}
	if got := hexOf(c); got != "#5790fc" {
		t.Errorf("hexOf(p6.Blue) = %q, want #5790fc", got)
	}
}

func TestPaletteListModel_Navigation(t *testing.T) {
	m := NewPaletteListModel(paletteSets())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(PaletteListModel)
	if m.Cursor != 1 {
		t.Errorf("cursor = %d after down, want 1", m.Cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(PaletteListModel)
	if m.Selected != "p8" {
		t.Errorf("selected = %q, want p8", m.Selected)
	}
}

func TestPaletteListModel_View(t *testing.T) {
	m := NewPaletteListModel(paletteSets())
	view := m.View()
	for _, want := range []string{"p6", "p8", "p10"} {
		if !contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
