package overlay

import (
	"strings"

	"github.com/hepviz/figstyle/pkg/errors"
	"github.com/hepviz/figstyle/pkg/render"
)

// Unset marks an edge coordinate to leave untouched in MoveStatsNDC and
// MoveScale.
const Unset = -999.0

// MoveStats places the pad's statistics box in one of the four frame
// corners: "tr", "tl", "bl" or "br" (case-insensitive). xScale and yScale
// stretch the box horizontally and vertically; pass 0 for no scaling. The
// box grows with its line count, and a nonzero text size pads the edges so
// larger text stays inside.
//
// An unknown corner token or a pad without a stats box is an error; the box
// is left untouched.
func MoveStats(pad *render.Pad, corner string, xScale, yScale float64) (*render.Box, error) {
	box, err := statsBox(pad)
	if err != nil {
		return nil, err
	}
	if xScale == 0 {
		xScale = 1
	}
	if yScale == 0 {
		yScale = 1
	}

	m := pad.Margins()
	l, t, r, b := m.Left, m.Top, m.Right, m.Bottom

	textPad := 0.0
	if box.TextSize != 0 {
		textPad = 6 * (box.TextSize - 0.025)
	}
	xsize := (1 - r - l) * xScale
	ysize := (1 - t - b) * yScale
	yfactor := 0.05 + 0.05*float64(len(box.Lines))

	switch strings.ToLower(corner) {
	case "tr":
		box.X1 = 1 - r - xsize*0.33 - textPad
		box.Y1 = 1 - t - ysize*yfactor - textPad
		box.X2 = 1 - r - xsize*0.03
		box.Y2 = 1 - t - ysize*0.03
	case "tl":
		box.X1 = l + xsize*0.03
		box.Y1 = 1 - t - ysize*yfactor - textPad
		box.X2 = l + xsize*0.33 + textPad
		box.Y2 = 1 - t - ysize*0.03
	case "bl":
		box.X1 = l + xsize*0.03
		box.Y1 = b + ysize*0.03
		box.X2 = l + xsize*0.33 + textPad
		box.Y2 = b + ysize*yfactor + textPad
	case "br":
		box.X1 = 1 - r - xsize*0.33 - textPad
		box.Y1 = b + ysize*0.03
		box.X2 = 1 - r - xsize*0.03
		box.Y2 = b + ysize*yfactor + textPad
	default:
		return nil, errors.New(errors.ErrCodeInvalidCorner,
			"unknown corner token %q (want tr, tl, bl or br)", corner)
	}

	pad.Refresh()
	return box, nil
}

// MoveStatsNDC places the statistics box at explicit NDC edges. Edges passed
// as Unset keep their current value.
func MoveStatsNDC(pad *render.Pad, x1, y1, x2, y2 float64) (*render.Box, error) {
	box, err := statsBox(pad)
	if err != nil {
		return nil, err
	}
	if x1 != Unset {
		box.X1 = x1
	}
	if y1 != Unset {
		box.Y1 = y1
	}
	if x2 != Unset {
		box.X2 = x2
	}
	if y2 != Unset {
		box.Y2 = y2
	}
	pad.Refresh()
	return box, nil
}

// MoveScale positions the color-scale bar of a 2D plot against the frame's
// right edge. Edges passed as Unset take the default: a thin vertical bar
// inside the right margin spanning the frame height.
func MoveScale(pad *render.Pad, x1, y1, x2, y2 float64) (*render.Box, error) {
	prim := pad.Primitive(render.ScaleBarName)
	if prim == nil {
		return nil, errors.New(errors.ErrCodeOverlayNotFound,
			"pad %q has no color-scale bar", pad.Name())
	}
	bar, ok := prim.(*render.Box)
	if !ok {
		return nil, errors.New(errors.ErrCodeOverlayNotFound,
			"primitive %q is not a box", render.ScaleBarName)
	}

	m := pad.Margins()
	if x1 == Unset {
		x1 = 1 - m.Right*0.95
	}
	if x2 == Unset {
		x2 = 1 - m.Right*0.70
	}
	if y1 == Unset {
		y1 = m.Bottom
	}
	if y2 == Unset {
		y2 = 1 - m.Top
	}
	bar.X1, bar.Y1, bar.X2, bar.Y2 = x1, y1, x2, y2

	pad.Refresh()
	return bar, nil
}

func statsBox(pad *render.Pad) (*render.Box, error) {
	prim := pad.Primitive(render.StatsBoxName)
	if prim == nil {
		return nil, errors.New(errors.ErrCodeOverlayNotFound,
			"pad %q has no statistics box", pad.Name())
	}
	box, ok := prim.(*render.Box)
	if !ok {
		return nil, errors.New(errors.ErrCodeOverlayNotFound,
			"primitive %q is not a box", render.StatsBoxName)
	}
	return box, nil
}
