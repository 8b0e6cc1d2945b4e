package sink

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hepviz/figstyle/pkg/errors"
	"github.com/hepviz/figstyle/pkg/figure"
	"github.com/hepviz/figstyle/pkg/palette"
	"github.com/hepviz/figstyle/pkg/render"
	"github.com/hepviz/figstyle/pkg/style"
)

func demoCanvas(t *testing.T) *render.Canvas {
	t.Helper()
	style.Apply(style.New())
	c, err := figure.New("demo", figure.Range{Min: 0, Max: 10}, figure.Range{Min: 0, Max: 100},
		"x", "Events")
	if err != nil {
		t.Fatalf("figure.New() error: %v", err)
	}
	return c
}

func TestRenderSVG_Document(t *testing.T) {
	svg := string(RenderSVG(demoCanvas(t)))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Errorf("output does not start with an svg element:\n%.80s", svg)
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("output not closed")
	}
	if !strings.Contains(svg, `viewBox="0 0 600.0 600.0"`) {
		t.Error("missing square viewBox")
	}
}

func TestRenderSVG_CaptionsPresent(t *testing.T) {
	svg := string(RenderSVG(demoCanvas(t)))

	for _, want := range []string{"CMS", "Preliminary", "13 TeV"} {
		if !strings.Contains(svg, want) {
			t.Errorf("output missing caption %q", want)
		}
	}
	// The inverse-femtobarn exponent becomes a superscript tspan.
	if !strings.Contains(svg, `baseline-shift="super"`) {
		t.Error("luminosity exponent not rendered as superscript")
	}
}

func TestRenderSVG_WordmarkBold(t *testing.T) {
	svg := string(RenderSVG(demoCanvas(t)))
	if !strings.Contains(svg, `font-weight="bold">CMS<`) {
		t.Error("wordmark not rendered bold")
	}
}

func TestRenderSVG_Scale(t *testing.T) {
	svg := string(RenderSVG(demoCanvas(t), WithSVGScale(2)))
	if !strings.Contains(svg, `width="1200" height="1200"`) {
		t.Error("scale 2 not applied to pixel dimensions")
	}
	if !strings.Contains(svg, `viewBox="0 0 600.0 600.0"`) {
		t.Error("viewBox must stay in canvas units")
	}
}

func TestRenderSVG_SeriesBars(t *testing.T) {
	c := demoCanvas(t)
	sr := render.NewSeries("h", []float64{10, 40, 25})
	red, ok := palette.ByName("#e42536")
	if !ok {
		t.Fatal("hex color not resolved")
	}
	sr.SetFillColor(red)
	c.Add(sr)

	svg := string(RenderSVG(c))
	if strings.Count(svg, `fill="#e42536"`) != 3 {
		t.Errorf("want 3 bars filled with the series color, got:\n%s", svg)
	}
}

func TestRenderSVG_Subpads(t *testing.T) {
	style.Apply(style.New())
	c, err := figure.NewRatio("ratio", figure.Range{Min: 0, Max: 10}, figure.Range{Min: 0, Max: 100},
		figure.Range{Min: 0, Max: 2}, "x", "y", "ratio")
	if err != nil {
		t.Fatalf("figure.NewRatio() error: %v", err)
	}

	svg := string(RenderSVG(c))
	// Two frames: one per pad.
	if got := strings.Count(svg, `fill="none" stroke="black"/>`); got < 2 {
		t.Errorf("want at least 2 frame rects, got %d", got)
	}
}

func TestSaveCanvas_SVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	if err := SaveCanvas(demoCanvas(t), path); err != nil {
		t.Fatalf("SaveCanvas() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("saved file is not SVG")
	}
}

func TestSaveCanvas_UnknownExtension(t *testing.T) {
	err := SaveCanvas(demoCanvas(t), filepath.Join(t.TempDir(), "out.gif"))
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("err = %v, want INVALID_INPUT", err)
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"138 fb^{-1}", "138 fb-1"},
		{"p_{T} > 30", "pT > 30"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := plainText(tt.in); got != tt.want {
			t.Errorf("plainText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

