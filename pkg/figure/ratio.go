package figure

import (
	"math"

	"github.com/google/uuid"

	"github.com/hepviz/figstyle/pkg/annotate"
	"github.com/hepviz/figstyle/pkg/errors"
	"github.com/hepviz/figstyle/pkg/render"
	"github.com/hepviz/figstyle/pkg/style"
)

// Ratio pad names within a ratio canvas.
const (
	UpperPadName = "upper"
	LowerPadName = "ratio"
)

// NewRatio builds a two-pad ratio figure: a main frame on top with its
// x-axis labels hidden, and a shorter ratio frame below sharing the x range.
// Text sizes on each pad are scaled so they match the single-pad figure when
// printed. Annotations go on the upper pad.
//
// The pads are reachable as canvas.Pads() in upper, lower order, or by name.
func NewRatio(name string, xr, yr, rr Range, xTitle, yTitle, rTitle string, opts ...Option) (*render.Canvas, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	st := style.Ensure()

	if name == "" {
		name = "fig-" + uuid.NewString()
	}

	// Reference geometry. The lower pad takes a third of the drawable
	// height plus a small separation gap.
	wRef, hRef := 700.0, 600.0
	left := 0.15
	if cfg.wide {
		wRef, hRef = 800, 500
		left = 0.12
	}
	const (
		lowerFrac = 1.0 / 3.0
		gapFrac   = 0.03
		topRef    = 0.07
		bottomRef = 0.13
		right     = 0.05
	)

	height := math.Floor(hRef * (1 + (1-topRef-bottomRef)*lowerFrac + gapFrac))
	upperH := hRef * (1 - bottomRef)
	lowerH := height - upperH

	canvas := render.NewCanvas(name, wRef, height)

	upper := render.NewPad(UpperPadName, wRef, upperH)
	upper.SetMargins(render.Margins{
		Left:   left + cfg.extraSpace,
		Right:  right,
		Top:    topRef * hRef / upperH,
		Bottom: 0.022,
	})
	upper.SetGrid(st.GridOn)
	canvas.AddPad(upper, 0, lowerH/height, 1, 1)

	upFrame := upper.DrawFrame(xr.Min, yr.Min, xr.Max, yr.Max)
	upFrame.YTitle = yTitle
	upFrame.HideXLabels = true
	upYOffset := 1.1
	if cfg.wide {
		upYOffset = 0.9
	}
	upFrame.YTitleOffset = cfg.extraSpace + upYOffset*upperH/hRef
	upFrame.TitleSize = st.TitleSize * hRef / upperH
	upFrame.LabelSize = st.LabelSize * hRef / upperH
	upFrame.TickLength = st.TickLength
	upFrame.YDivisions = st.NDivisions

	lower := render.NewPad(LowerPadName, wRef, lowerH)
	lower.SetMargins(render.Margins{
		Left:   left + cfg.extraSpace,
		Right:  right,
		Top:    gapFrac * hRef / lowerH,
		Bottom: bottomRef * hRef / lowerH,
	})
	lower.SetGrid(st.GridOn)
	canvas.AddPad(lower, 0, 0, 1, lowerH/height)

	lowFrame := lower.DrawFrame(xr.Min, rr.Min, xr.Max, rr.Max)
	lowFrame.XTitle = xTitle
	lowFrame.YTitle = rTitle
	lowFrame.XTitleOffset = 0.9
	lowYOffset := 1.0
	if cfg.wide {
		lowYOffset = 0.8
	}
	lowFrame.YTitleOffset = cfg.extraSpace + lowYOffset*lowerH/hRef
	lowFrame.TitleSize = st.TitleSize * hRef / lowerH
	lowFrame.LabelSize = st.LabelSize * hRef / lowerH
	lowFrame.TickLength = st.TickLength * hRef / lowerH
	lowFrame.YDivisions = 505

	if err := annotate.Place(st, upper, cfg.position, cfg.lumiScale); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "placing annotations on %q", name)
	}
	canvas.Refresh()
	return canvas, nil
}
