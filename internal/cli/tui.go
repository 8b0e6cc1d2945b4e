package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hepviz/figstyle/pkg/palette"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// PaletteListModel is the bubbletea model for interactive palette browsing.
type PaletteListModel struct {
	Sets     []palette.Set
	Cursor   int
	Selected string
}

// NewPaletteListModel creates a new palette list model.
func NewPaletteListModel(sets []palette.Set) PaletteListModel {
	return PaletteListModel{Sets: sets}
}

func (m PaletteListModel) Init() tea.Cmd {
	return nil
}

func (m PaletteListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Sets)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = m.Sets[m.Cursor].Name
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m PaletteListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Curated Color Sets"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, set := range m.Sets {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		swatches := make([]string, len(set.Named))
		for j, nc := range set.Named {
			swatches[j] = lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexOf(nc.Color))).
				Render("██")
		}

		line := fmt.Sprintf("%s%-4s %s  %s", cursor, set.Name,
			strings.Join(swatches, ""),
			listDimStyle.Render(fmt.Sprintf("%d colors", len(set.Named))))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
