package cli

import (
	"fmt"
	"image/color"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hepviz/figstyle/pkg/palette"
)

// newPaletteCmd creates the palette command for inspecting the curated
// color sets. Without arguments it opens the interactive browser; with a
// set name it prints that set's colors.
func newPaletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette [set]",
		Short: "List or browse the curated color sets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return printPalette(args[0])
			}
			return browsePalettes()
		},
	}
}

// paletteSets returns the browsable sets in display order.
func paletteSets() []palette.Set {
	return []palette.Set{palette.P6, palette.P8, palette.P10}
}

// printPalette prints one set's colors as name/hex pairs.
func printPalette(name string) error {
	for _, set := range paletteSets() {
		if !strings.EqualFold(set.Name, name) {
			continue
		}
		fmt.Println(StyleTitle.Render(strings.ToUpper(set.Name)))
		for _, nc := range set.Named {
			printKeyValue(nc.Name, hexOf(nc.Color))
		}
		return nil
	}
	return fmt.Errorf("unknown palette: %s (must be 'p6', 'p8', or 'p10')", name)
}

// browsePalettes runs the interactive palette browser.
func browsePalettes() error {
	m := NewPaletteListModel(paletteSets())
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return err
	}
	if pm, ok := final.(PaletteListModel); ok && pm.Selected != "" {
		return printPalette(pm.Selected)
	}
	return nil
}

// hexOf formats a color as the #rrggbb form the config file accepts.
func hexOf(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
