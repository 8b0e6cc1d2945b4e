package figure

import (
	"github.com/google/uuid"

	"github.com/hepviz/figstyle/pkg/annotate"
	"github.com/hepviz/figstyle/pkg/errors"
	"github.com/hepviz/figstyle/pkg/render"
	"github.com/hepviz/figstyle/pkg/style"
)

// Range is an axis range.
type Range struct {
	Min, Max float64
}

// config collects the figure knobs; the zero value is a square figure with
// the wordmark block top-left inside the frame.
type config struct {
	wide         bool
	position     int
	extraSpace   float64
	colorScale   bool
	lumiScale    float64
	yTitleOffset float64
}

func defaultConfig() config {
	return config{
		position:  11,
		lumiScale: 1,
	}
}

// Option configures a figure at creation time.
type Option func(*config)

// Wide selects the 800x600 wide reference geometry instead of the square
// 600x600 one.
func Wide() Option {
	return func(c *config) { c.wide = true }
}

// WithPosition places the annotation block at the given position code
// (10*zone+anchor; zone 0 is above the frame).
func WithPosition(code int) Option {
	return func(c *config) { c.position = code }
}

// WithExtraSpace widens the left margin by the given fraction of the canvas
// width, for y-axis labels that need the room.
func WithExtraSpace(f float64) Option {
	return func(c *config) { c.extraSpace = f }
}

// WithColorScale reserves right-margin room for a color-scale bar, as a 2D
// heatmap needs.
func WithColorScale() Option {
	return func(c *config) { c.colorScale = true }
}

// WithLumiScale scales the luminosity caption text size.
func WithLumiScale(f float64) Option {
	return func(c *config) { c.lumiScale = f }
}

// WithYTitleOffset overrides the default y-axis title offset. Large offsets
// widen the left margin so the title stays inside the canvas.
func WithYTitleOffset(off float64) Option {
	return func(c *config) { c.yTitleOffset = off }
}

// New builds a styled single-pad canvas: frame drawn over the given ranges,
// axis titles set, margins per the reference geometry and all annotation
// blocks placed. An empty name gets a generated unique one.
func New(name string, xr, yr Range, xTitle, yTitle string, opts ...Option) (*render.Canvas, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	st := style.Ensure()

	if name == "" {
		name = "fig-" + uuid.NewString()
	}

	// Reference geometry in pixels; margins are carried as fractions.
	wRef, hRef := 600.0, 600.0
	if cfg.wide {
		wRef = 800
	}
	top := 0.07 * hRef
	bottom := 0.125 * hRef
	left := 0.14 * hRef
	right := 0.04 * hRef

	m := render.Margins{
		Left:   left/wRef + cfg.extraSpace,
		Right:  right / wRef,
		Top:    top / hRef,
		Bottom: bottom/hRef + 0.02,
	}
	if cfg.colorScale {
		m.Right = bottom/wRef + 0.03
	}

	yOffset := cfg.yTitleOffset
	if yOffset == 0 {
		yOffset = 1.15
		if cfg.wide {
			yOffset = 0.78
		}
	}
	if yOffset > 1.4 {
		m.Left += 0.08 * (yOffset - 1.4)
	}

	canvas := render.NewCanvas(name, wRef, hRef)
	canvas.SetMargins(m)
	canvas.SetGrid(st.GridOn)

	frame := canvas.DrawFrame(xr.Min, yr.Min, xr.Max, yr.Max)
	frame.XTitle = xTitle
	frame.YTitle = yTitle
	frame.XTitleOffset = 1.05
	frame.YTitleOffset = yOffset
	frame.TitleSize = st.TitleSize
	frame.LabelSize = st.LabelSize
	frame.TickLength = st.TickLength
	frame.YDivisions = st.NDivisions

	if err := annotate.Place(st, &canvas.Pad, cfg.position, cfg.lumiScale); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "placing annotations on %q", name)
	}
	canvas.Refresh()
	return canvas, nil
}

// ResetAxes rebinds the frame of a figure pad to new axis ranges.
func ResetAxes(pad *render.Pad, xr, yr Range) error {
	frame := pad.Frame()
	if frame == nil {
		return errors.New(errors.ErrCodeFrameNotFound, "pad %q has no frame", pad.Name())
	}
	frame.SetRange(xr.Min, yr.Min, xr.Max, yr.Max)
	pad.Refresh()
	return nil
}
