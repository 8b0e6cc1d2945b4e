package style

import (
	"testing"

	"github.com/hepviz/figstyle/pkg/errors"
)

func TestApply_ReplacesWholesale(t *testing.T) {
	s1 := New()
	Apply(s1)
	if Current() != s1 {
		t.Fatal("Current() != applied style")
	}

	s2 := New()
	Apply(s2)
	if Current() != s2 {
		t.Error("Apply should replace the active style wholesale")
	}
}

func TestEnsure_CreatesDefault(t *testing.T) {
	Apply(nil)
	s := Ensure()
	if s == nil {
		t.Fatal("Ensure() = nil")
	}
	if Current() != s {
		t.Error("Ensure should install the style it creates")
	}
}

func TestSetEnergy_RecognizedValues(t *testing.T) {
	tests := []struct {
		energy float64
		want   string
	}{
		{13, "13 TeV"},
		{13.0005, "13 TeV"},
		{13.6, "13.6 TeV"},
		{13.5995, "13.6 TeV"},
		{0, "TeV"},
	}
	for _, tt := range tests {
		s := New()
		if err := s.SetEnergy(tt.energy, "TeV"); err != nil {
			t.Errorf("SetEnergy(%v) error: %v", tt.energy, err)
		}
		if s.Energy != tt.want {
			t.Errorf("SetEnergy(%v): Energy = %q, want %q", tt.energy, s.Energy, tt.want)
		}
	}
}

func TestSetEnergy_RejectsUnknownValue(t *testing.T) {
	s := New()
	err := s.SetEnergy(14, "TeV")

	if !errors.Is(err, errors.ErrCodeInvalidEnergy) {
		t.Errorf("err = %v, want INVALID_ENERGY", err)
	}
	if s.Energy != "??? TeV" {
		t.Errorf("Energy = %q, want placeholder", s.Energy)
	}
}

func TestSetLumi_RunAndPrecision(t *testing.T) {
	s := New()
	s.SetLumi(45.0, "fb", "Run 3", 1)

	want := "Run 3, 45.0 fb^{-1}"
	if s.LumiText != want {
		t.Errorf("LumiText = %q, want %q", s.LumiText, want)
	}
}

func TestSetLumi_Formats(t *testing.T) {
	tests := []struct {
		lumi   float64
		digits int
		run    string
		want   string
	}{
		{138, 0, "Run 2", "Run 2, 138 fb^{-1}"},
		{59.74, 2, "", "59.74 fb^{-1}"},
		{59.74, -1, "", "59.74 fb^{-1}"},
		{59.74, 7, "", "59.74 fb^{-1}"},
		{-1, -1, "Run 2", "Run 2"},
	}
	for _, tt := range tests {
		s := New()
		s.SetLumi(tt.lumi, "fb", tt.run, tt.digits)
		if s.LumiText != tt.want {
			t.Errorf("SetLumi(%v, fb, %q, %d): LumiText = %q, want %q",
				tt.lumi, tt.run, tt.digits, s.LumiText, tt.want)
		}
	}
}

func TestSetExtraText_Shorthands(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"p", "Preliminary"},
		{"s", "Simulation"},
		{"su", "Supplementary"},
		{"wip", "Work in progress"},
		{"free text", "free text"},
	}
	for _, tt := range tests {
		s := New()
		s.SetExtraText(tt.in, 0)
		if s.ExtraText != tt.want {
			t.Errorf("SetExtraText(%q): ExtraText = %q, want %q", tt.in, s.ExtraText, tt.want)
		}
	}
}

func TestSetExtraText_PrivateSuppressesWordmarkAndLogo(t *testing.T) {
	s := New()
	s.LogoPath = "/tmp/logo.png"

	s.SetExtraText("pw", 0)

	if s.ExtraText != "Private work (CMS data)" {
		t.Errorf("ExtraText = %q", s.ExtraText)
	}
	if s.Wordmark != "" {
		t.Errorf("Wordmark = %q, want cleared", s.Wordmark)
	}
	if s.LogoPath != "" {
		t.Errorf("LogoPath = %q, want cleared", s.LogoPath)
	}
}

func TestSetExtraText_FontOptional(t *testing.T) {
	s := New()
	s.SetExtraText("p", 0)
	if s.ExtraFont != FontItalic {
		t.Errorf("ExtraFont = %d, want unchanged %d", s.ExtraFont, FontItalic)
	}
	s.SetExtraText("p", 42)
	if s.ExtraFont != 42 {
		t.Errorf("ExtraFont = %d, want 42", s.ExtraFont)
	}
}

func TestResetCaptions(t *testing.T) {
	s := New()
	s.SetExtraText("pw", 0)
	s.AppendInfo("region A")

	s.ResetCaptions()

	if s.Wordmark != "CMS" || s.ExtraText != "Preliminary" {
		t.Errorf("captions = %q/%q, want defaults", s.Wordmark, s.ExtraText)
	}
	if len(s.InfoLines) != 0 {
		t.Errorf("InfoLines = %v, want empty", s.InfoLines)
	}
}
