package sink

import (
	"bytes"
	"image/color"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/fogleman/gg"

	"github.com/hepviz/figstyle/pkg/render"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
}

// WithScale sets the PNG scale factor (default 2 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// candidate font files probed on the host, in preference order.
var fontCandidates = []string{"Helvetica.ttf", "Arial.ttf", "DejaVuSans.ttf", "LiberationSans-Regular.ttf"}

// RenderPNG rasterizes the canvas. Text uses the first resolvable sans-serif
// face on the host; when none is found the shapes still render and text is
// skipped.
func RenderPNG(c *render.Canvas, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2}
	for _, opt := range opts {
		opt(&r)
	}

	w := int(c.WidthPx() * r.scale)
	h := int(c.HeightPx() * r.scale)
	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.Clear()

	p := pngPainter{dc: dc, scale: r.scale, fontPath: resolveFont()}
	p.pad(&c.Pad, rect{0, 0, float64(w), float64(h)})

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func resolveFont() string {
	for _, name := range fontCandidates {
		if path, err := findfont.Find(name); err == nil {
			return path
		}
	}
	return ""
}

type pngPainter struct {
	dc       *gg.Context
	scale    float64
	fontPath string
}

func (p *pngPainter) pad(pad *render.Pad, area rect) {
	m := pad.Margins()
	plot := plotArea(area, m)

	if pad.Frame() != nil {
		p.frame(pad, plot)
	}

	for _, prim := range pad.Primitives() {
		switch pr := prim.(type) {
		case *render.Text:
			p.text(pr, area)
		case *render.Box:
			p.box(pr, area)
		case *render.Series:
			p.series([]*render.Series{pr}, pad, plot)
		case *render.Graph:
			p.graph(pr, pad, plot)
		case seriesStack:
			p.series(pr.Series(), pad, plot)
		case *render.Image:
			// Raster logo embedding needs decode support per format; the
			// SVG sink references the file instead.
		}
	}

	for _, sub := range pad.Pads() {
		x1, y1, x2, y2 := sub.Bounds()
		p.pad(sub, rect{
			x: area.ndcX(x1),
			y: area.ndcY(y2),
			w: (x2 - x1) * area.w,
			h: (y2 - y1) * area.h,
		})
	}
}

func (p *pngPainter) frame(pad *render.Pad, plot rect) {
	if pad.Grid() {
		p.dc.SetRGB(0.78, 0.78, 0.78)
		p.dc.SetLineWidth(0.5 * p.scale)
		for i := 1; i < 10; i++ {
			gx := plot.x + plot.w*float64(i)/10
			gy := plot.y + plot.h*float64(i)/10
			p.dc.DrawLine(gx, plot.y, gx, plot.y+plot.h)
			p.dc.DrawLine(plot.x, gy, plot.x+plot.w, gy)
		}
		p.dc.Stroke()
	}

	p.dc.SetColor(color.Black)
	p.dc.SetLineWidth(p.scale)
	p.dc.DrawRectangle(plot.x, plot.y, plot.w, plot.h)
	p.dc.Stroke()
}

func (p *pngPainter) text(t *render.Text, area rect) {
	size := t.Size * area.h
	if p.fontPath == "" || size <= 0 {
		return
	}
	if err := p.dc.LoadFontFace(p.fontPath, size); err != nil {
		return
	}
	ax := 0.0
	switch t.Align / 10 {
	case 2:
		ax = 0.5
	case 3:
		ax = 1
	}
	ay := 0.0
	switch t.Align % 10 {
	case 2:
		ay = 0.5
	case 3:
		ay = 1
	}
	p.dc.SetColor(colorOr(t.Color, color.Black))
	p.dc.DrawStringAnchored(plainText(t.Content), area.ndcX(t.X), area.ndcY(t.Y), ax, ay)
}

func (p *pngPainter) box(b *render.Box, area rect) {
	x := area.ndcX(b.X1)
	y := area.ndcY(b.Y2)
	w := (b.X2 - b.X1) * area.w
	h := (b.Y2 - b.Y1) * area.h

	p.dc.SetColor(colorOr(b.Fill, color.White))
	p.dc.DrawRectangle(x, y, w, h)
	p.dc.Fill()
	p.dc.SetColor(color.Black)
	p.dc.DrawRectangle(x, y, w, h)
	p.dc.Stroke()
}

func (p *pngPainter) series(series []*render.Series, pad *render.Pad, plot rect) {
	f := pad.Frame()
	if f == nil || f.YMax == f.YMin {
		return
	}

	var base []float64
	for _, sr := range series {
		n := len(sr.Values)
		if n == 0 {
			continue
		}
		if len(base) < n {
			base = append(base, make([]float64, n-len(base))...)
		}
		binW := plot.w / float64(n)
		for i, v := range sr.Values {
			y0 := base[i]
			y1 := y0 + v
			base[i] = y1
			px := plot.x + float64(i)*binW
			py := plot.y + plot.h*(1-(y1-f.YMin)/(f.YMax-f.YMin))
			ph := plot.h * v / (f.YMax - f.YMin)

			if fc := sr.FillColor(); fc != nil {
				p.dc.SetColor(fc)
				p.dc.DrawRectangle(px, py, binW, ph)
				p.dc.Fill()
			}
			p.dc.SetColor(colorOr(sr.LineColor(), color.Black))
			p.dc.DrawRectangle(px, py, binW, ph)
			p.dc.Stroke()
		}
	}
}

func (p *pngPainter) graph(g *render.Graph, pad *render.Pad, plot rect) {
	f := pad.Frame()
	if f == nil || f.YMax == f.YMin || len(g.Y) == 0 {
		return
	}

	p.dc.SetColor(colorOr(g.LineColor(), color.Black))
	step := plot.w / float64(len(g.Y))
	for i, y := range g.Y {
		px := plot.x + (float64(i)+0.5)*step
		py := plot.y + plot.h*(1-(y-f.YMin)/(f.YMax-f.YMin))
		if i == 0 {
			p.dc.MoveTo(px, py)
		} else {
			p.dc.LineTo(px, py)
		}
	}
	p.dc.Stroke()
}

func colorOr(c, fallback color.Color) color.Color {
	if c == nil {
		return fallback
	}
	return c
}

// plainText strips the ^{...} and _{...} markup for sinks without rich text.
func plainText(s string) string {
	out := s
	for _, tok := range []string{"^{", "_{"} {
		for {
			i := strings.Index(out, tok)
			if i < 0 {
				break
			}
			j := strings.Index(out[i:], "}")
			if j < 0 {
				break
			}
			j += i
			out = out[:i] + out[i+2:j] + out[j+1:]
		}
	}
	return out
}
