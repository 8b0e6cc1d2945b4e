package annotate

// Zone identifies where an annotation block is anchored relative to the
// plot frame.
type Zone int

const (
	// ZoneOutside places the block above the frame, outside it.
	ZoneOutside Zone = iota
	// ZoneLeft, ZoneCenter and ZoneRight place the block inside the frame.
	ZoneLeft
	ZoneCenter
	ZoneRight
)

// String returns the zone name.
func (z Zone) String() string {
	switch z {
	case ZoneOutside:
		return "outside"
	case ZoneLeft:
		return "left"
	case ZoneCenter:
		return "center"
	case ZoneRight:
		return "right"
	}
	return "unknown"
}

// Position is the decoded form of a position code. The code itself is
// purely declarative: it carries alignment intent, never coordinates.
type Position struct {
	Code       int
	Zone       Zone // from the tens digit: outside or left/center/right
	Anchor     Zone // horizontal anchor slot, from the ones digit
	OutOfFrame bool
	Align      int // 10*h+v text alignment code
}

// Decode splits a position code 10*alignmentZone+verticalZone into its
// tagged form. A tens digit of zero means out-of-frame placement, which is
// always left-aligned against the top edge; in-frame text is anchored at its
// top (it grows downward from the anchor).
func Decode(code int) Position {
	outOfFrame := code/10 == 0

	alignX := code / 10
	if alignX < 1 {
		alignX = 1
	}
	alignY := 3
	if code == 0 {
		alignY = 1
	}

	zone := ZoneOutside
	if !outOfFrame {
		zone = Zone(alignX)
	}

	anchor := ZoneLeft
	switch code % 10 {
	case 2:
		anchor = ZoneCenter
	case 3:
		anchor = ZoneRight
	}

	return Position{
		Code:       code,
		Zone:       zone,
		Anchor:     anchor,
		OutOfFrame: outOfFrame,
		Align:      10*alignX + alignY,
	}
}
