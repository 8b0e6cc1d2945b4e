package sink

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/hepviz/figstyle/pkg/render"
)

const fontFamily = `Helvetica, Arial, sans-serif`

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	scale float64
}

// WithSVGScale multiplies the output pixel dimensions (default 1).
func WithSVGScale(s float64) SVGOption {
	return func(r *svgRenderer) { r.scale = s }
}

// RenderSVG serializes the canvas, its frame and all primitives to SVG.
func RenderSVG(c *render.Canvas, opts ...SVGOption) []byte {
	r := svgRenderer{scale: 1}
	for _, opt := range opts {
		opt(&r)
	}

	w := c.WidthPx() * r.scale
	h := c.HeightPx() * r.scale

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		c.WidthPx(), c.HeightPx(), w, h)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="white"/>`+"\n",
		c.WidthPx(), c.HeightPx())

	renderPadSVG(&buf, &c.Pad, rect{0, 0, c.WidthPx(), c.HeightPx()})

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// rect is an absolute pixel rectangle, y growing downward.
type rect struct {
	x, y, w, h float64
}

// x converts a pad NDC x to an absolute pixel coordinate.
func (r rect) ndcX(x float64) float64 { return r.x + x*r.w }

// y converts a pad NDC y (growing upward) to a pixel y (growing downward).
func (r rect) ndcY(y float64) float64 { return r.y + (1-y)*r.h }

// plotArea returns the frame interior for the given margins.
func plotArea(r rect, m render.Margins) rect {
	return rect{
		x: r.ndcX(m.Left),
		y: r.ndcY(1 - m.Top),
		w: (1 - m.Left - m.Right) * r.w,
		h: (1 - m.Top - m.Bottom) * r.h,
	}
}

func renderPadSVG(buf *bytes.Buffer, pad *render.Pad, area rect) {
	m := pad.Margins()
	plot := plotArea(area, m)

	if pad.Frame() != nil {
		renderFrameSVG(buf, pad, plot, area)
	}

	for _, prim := range pad.Primitives() {
		switch p := prim.(type) {
		case *render.Text:
			renderTextSVG(buf, p, area)
		case *render.Image:
			fmt.Fprintf(buf, `  <image href="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>`+"\n",
				escape(p.Path), area.ndcX(p.X1), area.ndcY(p.Y2),
				(p.X2-p.X1)*area.w, (p.Y2-p.Y1)*area.h)
		case *render.Box:
			renderBoxSVG(buf, p, area)
		case *render.Series:
			renderSeriesSVG(buf, []*render.Series{p}, pad, plot)
		case *render.Graph:
			renderGraphSVG(buf, p, pad, plot)
		case *render.Legend:
			renderLegendSVG(buf, p, area)
		case seriesStack:
			renderSeriesSVG(buf, p.Series(), pad, plot)
		}
	}

	for _, sub := range pad.Pads() {
		x1, y1, x2, y2 := sub.Bounds()
		renderPadSVG(buf, sub, rect{
			x: area.ndcX(x1),
			y: area.ndcY(y2),
			w: (x2 - x1) * area.w,
			h: (y2 - y1) * area.h,
		})
	}
}

// seriesStack lets the sink draw any stacked container without depending on
// the assembling package.
type seriesStack interface {
	render.Primitive
	Series() []*render.Series
}

func renderFrameSVG(buf *bytes.Buffer, pad *render.Pad, plot, area rect) {
	f := pad.Frame()

	if pad.Grid() {
		for i := 1; i < 10; i++ {
			gx := plot.x + plot.w*float64(i)/10
			gy := plot.y + plot.h*float64(i)/10
			fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#c8c8c8" stroke-width="0.5" stroke-dasharray="3,3"/>`+"\n",
				gx, plot.y, gx, plot.y+plot.h)
			fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#c8c8c8" stroke-width="0.5" stroke-dasharray="3,3"/>`+"\n",
				plot.x, gy, plot.x+plot.w, gy)
		}
	}

	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="black"/>`+"\n",
		plot.x, plot.y, plot.w, plot.h)

	titleSize := f.TitleSize * area.h
	if !f.HideXLabels && f.XTitle != "" {
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="%s" font-size="%.1f" text-anchor="end">%s</text>`+"\n",
			plot.x+plot.w, plot.y+plot.h+f.XTitleOffset*titleSize+titleSize,
			fontFamily, titleSize, formatMarkup(f.XTitle))
	}
	if f.YTitle != "" {
		x := plot.x - f.YTitleOffset*titleSize
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="%s" font-size="%.1f" text-anchor="end" transform="rotate(-90 %.1f %.1f)">%s</text>`+"\n",
			x, plot.y, fontFamily, titleSize, x, plot.y, formatMarkup(f.YTitle))
	}
}

func renderTextSVG(buf *bytes.Buffer, t *render.Text, area rect) {
	style := ""
	switch t.Font {
	case 52:
		style = ` font-style="italic"`
	case 61:
		style = ` font-weight="bold"`
	}
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="%s" font-size="%.1f" text-anchor="%s" dominant-baseline="%s" fill="%s"%s>%s</text>`+"\n",
		area.ndcX(t.X), area.ndcY(t.Y), fontFamily, t.Size*area.h,
		anchorFor(t.Align), baselineFor(t.Align), cssColor(t.Color, "black"),
		style, formatMarkup(t.Content))
}

func renderBoxSVG(buf *bytes.Buffer, b *render.Box, area rect) {
	x := area.ndcX(b.X1)
	y := area.ndcY(b.Y2)
	w := (b.X2 - b.X1) * area.w
	h := (b.Y2 - b.Y1) * area.h
	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="black"/>`+"\n",
		x, y, w, h, cssColor(b.Fill, "white"))

	size := b.TextSize * area.h
	if size == 0 {
		size = 0.025 * area.h
	}
	for i, line := range b.Lines {
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="%s" font-size="%.1f">%s</text>`+"\n",
			x+0.2*size, y+float64(i+1)*1.2*size, fontFamily, size, formatMarkup(line))
	}
}

func renderSeriesSVG(buf *bytes.Buffer, series []*render.Series, pad *render.Pad, plot rect) {
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
			fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s"/>`+"\n",
				px, py, binW, ph, cssColor(sr.FillColor(), "none"), cssColor(sr.LineColor(), "black"))
		}
	}
}

func renderGraphSVG(buf *bytes.Buffer, g *render.Graph, pad *render.Pad, plot rect) {
	f := pad.Frame()
	if f == nil || f.YMax == f.YMin || len(g.Y) == 0 {
		return
	}

	var pts []string
	step := plot.w / float64(len(g.Y))
	for i, y := range g.Y {
		px := plot.x + (float64(i)+0.5)*step
		py := plot.y + plot.h*(1-(y-f.YMin)/(f.YMax-f.YMin))
		pts = append(pts, fmt.Sprintf("%.1f,%.1f", px, py))
	}
	fmt.Fprintf(buf, `  <polyline points="%s" fill="none" stroke="%s"/>`+"\n",
		strings.Join(pts, " "), cssColor(g.LineColor(), "black"))
}

func renderLegendSVG(buf *bytes.Buffer, l *render.Legend, area rect) {
	x := area.ndcX(l.X1)
	y := area.ndcY(l.Y2)
	size := l.TextSize * area.h
	lineH := 1.4 * size

	for i, e := range l.Entries() {
		ey := y + float64(i)*lineH + size
		ex := x
		if e.Opt != "h" {
			swatch := 1.2 * size
			fill := "none"
			if fs, ok := e.Obj.(interface{ FillColor() color.Color }); ok {
				fill = cssColor(fs.FillColor(), "none")
			}
			fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="black"/>`+"\n",
				ex, ey-size, swatch, size, fill)
			ex += swatch + 0.4*size
		}
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="%s" font-size="%.1f">%s</text>`+"\n",
			ex, ey, fontFamily, size, formatMarkup(e.Text))
	}
}

func anchorFor(align int) string {
	switch align / 10 {
	case 2:
		return "middle"
	case 3:
		return "end"
	}
	return "start"
}

func baselineFor(align int) string {
	switch align % 10 {
	case 2:
		return "middle"
	case 3:
		return "hanging"
	}
	return "auto"
}

// cssColor formats a color as a CSS hex string, with a fallback for nil.
func cssColor(c color.Color, fallback string) string {
	if c == nil {
		return fallback
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return "none"
	}
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escape(s string) string { return escaper.Replace(s) }

// formatMarkup converts the ^{...} and _{...} exponent notation used in
// captions into SVG tspans.
func formatMarkup(s string) string {
	s = escape(s)
	s = replaceBraced(s, "^{", `<tspan baseline-shift="super" font-size="70%">`, "</tspan>")
	s = replaceBraced(s, "_{", `<tspan baseline-shift="sub" font-size="70%">`, "</tspan>")
	return s
}

func replaceBraced(s, open, pre, post string) string {
	for {
		i := strings.Index(s, open)
		if i < 0 {
			return s
		}
		j := strings.Index(s[i:], "}")
		if j < 0 {
			return s
		}
		j += i
		s = s[:i] + pre + s[i+len(open):j] + post + s[j+1:]
	}
}
