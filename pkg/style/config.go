package style

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/hepviz/figstyle/pkg/errors"
)

// Config carries style defaults loaded from a TOML file. Zero values mean
// "leave the built-in default".
//
// Example:
//
//	wordmark = "CMS"
//	extra_text = "wip"
//	energy = 13.6
//	lumi = 62.4
//	lumi_unit = "fb"
//	run = "Run 3"
//	round_lumi = 1
//	logo = "logos/wordmark.png"
//	grid = true
type Config struct {
	Wordmark   string  `toml:"wordmark"`
	ExtraText  string  `toml:"extra_text"`
	Energy     float64 `toml:"energy"`
	EnergyUnit string  `toml:"energy_unit"`
	Lumi       float64 `toml:"lumi"`
	LumiUnit   string  `toml:"lumi_unit"`
	Run        string  `toml:"run"`
	RoundLumi  int     `toml:"round_lumi"`
	Logo       string  `toml:"logo"`
	Grid       bool    `toml:"grid"`

	hasLumi bool
}

// LoadConfig reads a TOML style-defaults file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "reading style config %s", path)
	}

	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parsing style config %s", path)
	}
	cfg.hasLumi = md.IsDefined("lumi")
	if cfg.RoundLumi == 0 && !md.IsDefined("round_lumi") {
		cfg.RoundLumi = -1
	}
	return &cfg, nil
}

// ApplyConfig overlays the config onto the style. Setter side effects (the
// "Private" suppression, logo resolution) run exactly as if the setters had
// been called directly.
func (s *Style) ApplyConfig(cfg *Config) error {
	if cfg.Wordmark != "" {
		s.SetWordmark(cfg.Wordmark, 0, 0)
	}
	if cfg.ExtraText != "" {
		s.SetExtraText(cfg.ExtraText, 0)
	}

	var firstErr error
	if cfg.Energy != 0 {
		if err := s.SetEnergy(cfg.Energy, cfg.EnergyUnit); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if cfg.hasLumi {
		s.SetLumi(cfg.Lumi, cfg.LumiUnit, cfg.Run, cfg.RoundLumi)
	}
	if cfg.Logo != "" {
		if err := s.SetLogoFile(cfg.Logo); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.SetGrid(cfg.Grid)
	return firstErr
}
