package style

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/hepviz/figstyle/pkg/errors"
)

// EnvStyleDir names the environment variable giving the root directory for
// relative logo paths.
const EnvStyleDir = "FIGSTYLE_DIR"

// energyTolerance is the numeric window for recognizing a supported
// center-of-mass energy.
const energyTolerance = 0.001

// SetEnergy sets the centre-of-mass energy caption. Only 13 and 13.6 are
// recognized values; anything else nonzero is reported and rendered with a
// placeholder marker rather than guessed. A zero energy sets the caption to
// the bare unit.
func (s *Style) SetEnergy(energy float64, unit string) error {
	if unit == "" {
		unit = "TeV"
	}
	if energy == 0 || math.IsNaN(energy) {
		s.Energy = unit
		return nil
	}

	switch {
	case math.Abs(energy-13) < energyTolerance:
		s.Energy = "13 " + unit
	case math.Abs(energy-13.6) < energyTolerance:
		s.Energy = "13.6 " + unit
	default:
		s.Energy = "??? " + unit
		log.Error("provided energy is not recognized", "energy", energy)
		return errors.New(errors.ErrCodeInvalidEnergy, "energy %g not recognized", energy)
	}
	return nil
}

// SetLumi composes the luminosity caption from an optional run label and a
// value formatted at the requested number of decimal digits. Digits outside
// 0-2 use the default full formatting. A negative or NaN value omits the
// number entirely.
func (s *Style) SetLumi(lumi float64, unit, run string, digits int) {
	if unit == "" {
		unit = "fb"
	}

	caption := ""
	if run != "" {
		caption = run
	}

	if lumi >= 0 && !math.IsNaN(lumi) {
		if caption != "" {
			caption += ", "
		}
		switch digits {
		case 0:
			caption += fmt.Sprintf("%.0f", lumi)
		case 1:
			caption += fmt.Sprintf("%.1f", lumi)
		case 2:
			caption += fmt.Sprintf("%.2f", lumi)
		default:
			caption += fmt.Sprintf("%g", lumi)
		}
		caption += fmt.Sprintf(" %s^{-1}", unit)
	}

	s.LumiText = caption
}

// extraShorthands are the recognized extra-status-text nicknames.
var extraShorthands = map[string]string{
	"p":   "Preliminary",
	"s":   "Simulation",
	"su":  "Supplementary",
	"wip": "Work in progress",
	"pw":  "Private work (CMS data)",
}

// SetExtraText sets the status text drawn next to the wordmark, expanding
// the recognized shorthands. If the resolved text contains "Private" the
// wordmark and logo are suppressed for the rest of the session; private work
// must not carry the collaboration label. A zero font leaves the font
// unchanged.
func (s *Style) SetExtraText(text string, font int) {
	if expanded, ok := extraShorthands[text]; ok {
		text = expanded
	}
	s.ExtraText = text

	if strings.Contains(text, "Private") {
		s.Wordmark = ""
		s.LogoPath = ""
	}

	if font != 0 {
		s.ExtraFont = font
	}
}

// SetWordmark sets the wordmark text. Zero font or size leave the current
// values unchanged.
func (s *Style) SetWordmark(text string, font int, size float64) {
	s.Wordmark = text
	if font != 0 {
		s.WordmarkFont = font
	}
	if size != 0 {
		s.WordmarkSize = size
	}
}

// SetLogoFile resolves the logo image path, either directly or relative to
// $FIGSTYLE_DIR. On failure the logo is cleared and an error returned; the
// wordmark text remains the fallback.
func (s *Style) SetLogoFile(path string) error {
	if path == "" {
		s.LogoPath = ""
		return nil
	}

	if fileExists(path) {
		s.LogoPath = path
		return nil
	}

	s.LogoPath = ""
	if dir := os.Getenv(EnvStyleDir); dir != "" {
		full := filepath.Join(dir, path)
		if fileExists(full) {
			s.LogoPath = full
			return nil
		}
	}

	log.Error("logo file could not be found", "path", path)
	return errors.New(errors.ErrCodeLogoNotFound, "logo file %q could not be found", path)
}

// AppendInfo appends a free-form info line (a region label, selection cuts).
func (s *Style) AppendInfo(text string) {
	s.InfoLines = append(s.InfoLines, text)
}

// ResetInfo clears the info lines.
func (s *Style) ResetInfo() { s.InfoLines = nil }

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}
