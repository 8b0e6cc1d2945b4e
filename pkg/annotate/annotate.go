package annotate

import (
	"image/color"

	"github.com/charmbracelet/log"

	"github.com/hepviz/figstyle/pkg/errors"
	"github.com/hepviz/figstyle/pkg/render"
	"github.com/hepviz/figstyle/pkg/style"
)

// Relative placement constants, as fractions of the drawable area.
const (
	relPosX    = 0.035 // horizontal inset of the wordmark anchor
	relPosY    = 0.035 // vertical inset of the wordmark anchor
	relExtraDY = 1.2   // line step between stacked caption lines
)

// Place draws the annotation blocks on the pad for the given position code.
// The luminosity caption always goes top-right above the frame regardless of
// the code. lumiScale scales only the luminosity text size; pass 1 for no
// scaling.
//
// Unsupported combinations (graphical logo or info lines out of frame)
// degrade with a warning: the remaining blocks are still drawn. The only
// returned error is a failed logo placement, after which the pad is left
// with whatever was drawn before it.
func Place(st *style.Style, pad *render.Pad, code int, lumiScale float64) error {
	if lumiScale == 0 {
		lumiScale = 1
	}
	pos := Decode(code)

	m := pad.Margins()
	l, t, r, b := m.Left, m.Top, m.Right, m.Bottom
	W, H := pad.WidthPx(), pad.HeightPx()
	outOfFramePosY := 1 - t + st.LumiTextOffset*t

	lumiText := st.LumiText
	if st.Energy != "" {
		lumiText += " (" + st.Energy + ")"
	}
	drawText(pad, lumiText, 1-r, outOfFramePosY, style.FontRegular, 31, st.LumiTextSize*t*lumiScale)

	var posX float64
	switch pos.Anchor {
	case ZoneCenter:
		posX = l + 0.5*(1-l-r)
	case ZoneRight:
		posX = 1 - r - relPosX*(1-l-r)
	default:
		posX = l + relPosX*(1-l-r)
	}
	posY := 1 - t - relPosY*(1-t-b)

	var err error
	if pos.OutOfFrame {
		err = placeOutside(st, pad, pos, outOfFramePosY, W, H)
	} else {
		err = placeInside(st, pad, pos, posX, posY, W, H)
	}

	pad.Refresh()
	return err
}

// placeOutside draws the wordmark and extra text on a single line above the
// frame. The graphical logo and info lines have no out-of-frame slot.
func placeOutside(st *style.Style, pad *render.Pad, pos Position, posY, W, H float64) error {
	m := pad.Margins()
	l, t := m.Left, m.Top

	if st.LogoPath != "" {
		log.Warn("graphical logo outside the frame is not supported; nothing drawn in its slot")
	}

	if st.Wordmark != "" {
		drawText(pad, st.Wordmark, l, posY, st.WordmarkFont, 11, st.WordmarkSize*t)

		// Advance past the wordmark; on wide pads the step shrinks with the
		// aspect ratio.
		scale := 1.0
		if W > H {
			scale = H / W
		}
		l += 0.043 * float64(st.ExtraFont) * t * st.WordmarkSize * scale
	}

	if st.ExtraText != "" {
		drawText(pad, st.ExtraText, l, posY, st.ExtraFont, pos.Align,
			st.ExtraOverWordmark*st.WordmarkSize*t)
	}

	if len(st.InfoLines) > 0 {
		log.Warn("info lines outside the frame are not supported; skipped",
			"lines", len(st.InfoLines))
	}
	return nil
}

// placeInside draws the stacked wordmark/extra/info block, or the graphical
// logo when one is configured (logo mode replaces the whole text block).
func placeInside(st *style.Style, pad *render.Pad, pos Position, posX, posY, W, H float64) error {
	m := pad.Margins()
	l, t, r, b := m.Left, m.Top, m.Right, m.Bottom

	if st.LogoPath != "" {
		x := l + 0.045*(1-l-r)*W/H
		y := 1 - t - 0.045*(1-t-b)
		return AddLogo(st, pad, x, y-0.15, x+0.15*H/W, y)
	}

	if st.Wordmark != "" {
		drawText(pad, st.Wordmark, posX, posY, st.WordmarkFont, pos.Align, st.WordmarkSize*t)
		posY -= relExtraDY * st.WordmarkSize * t
	}

	if st.ExtraText != "" {
		drawText(pad, st.ExtraText, posX, posY, st.ExtraFont, pos.Align,
			st.ExtraOverWordmark*st.WordmarkSize*t)
	} else {
		posY += relExtraDY * st.WordmarkSize * t // reclaim the slot for info lines
	}

	infoSize := st.ExtraOverWordmark * st.WordmarkSize * t
	for i, line := range st.InfoLines {
		y := posY - 0.004 - (relExtraDY*infoSize/2+0.02)*float64(i+1)
		drawText(pad, line, posX, y, st.InfoFont, pos.Align, infoSize)
	}
	return nil
}

// AddLogo places the configured logo image over the NDC rectangle
// (x1,y1)-(x2,y2). It fails when no logo file is configured or resolvable;
// the pad is left unmodified in that case.
func AddLogo(st *style.Style, pad *render.Pad, x1, y1, x2, y2 float64) error {
	if st.LogoPath == "" {
		log.Error("cannot place logo: no logo file configured or file not found")
		return errors.New(errors.ErrCodeLogoNotFound, "no logo file configured")
	}

	pad.Add(&render.Image{
		Label: "logo",
		Path:  st.LogoPath,
		X1:    x1, Y1: y1, X2: x2, Y2: y2,
	})
	pad.Refresh()
	return nil
}

func drawText(pad *render.Pad, text string, x, y float64, font, align int, size float64) {
	pad.Add(&render.Text{
		X: x, Y: y,
		Align:   align,
		Font:    font,
		Size:    size,
		Color:   color.Black,
		Content: text,
	})
}
