package render

// Margins are the four pad margins as fractions of pad width (left, right)
// and pad height (top, bottom).
type Margins struct {
	Left, Right, Top, Bottom float64
}

// Pad is a rectangular drawing region. A canvas is a pad with pixel
// dimensions; subpads occupy an NDC rectangle of their parent.
type Pad struct {
	name             string
	widthPx          float64
	heightPx         float64
	margins          Margins
	gridX, gridY     bool
	frame            *Frame
	prims            []Primitive
	pads             []*Pad
	x1, y1, x2, y2   float64 // NDC bounds within the parent
	refreshes        int
}

// NewPad creates a standalone pad with the given pixel dimensions.
func NewPad(name string, widthPx, heightPx float64) *Pad {
	return &Pad{
		name:     name,
		widthPx:  widthPx,
		heightPx: heightPx,
		x2:       1,
		y2:       1,
	}
}

// Name returns the pad name.
func (p *Pad) Name() string { return p.name }

// WidthPx returns the pad width in pixels.
func (p *Pad) WidthPx() float64 { return p.widthPx }

// HeightPx returns the pad height in pixels.
func (p *Pad) HeightPx() float64 { return p.heightPx }

// Margins returns the current pad margins.
func (p *Pad) Margins() Margins { return p.margins }

// SetMargins replaces the pad margins.
func (p *Pad) SetMargins(m Margins) { p.margins = m }

// SetGrid enables or disables the grid lines in both directions.
func (p *Pad) SetGrid(on bool) {
	p.gridX = on
	p.gridY = on
}

// Grid reports whether grid lines are enabled.
func (p *Pad) Grid() bool { return p.gridX && p.gridY }

// Add appends a primitive to the pad's primitive list.
func (p *Pad) Add(prim Primitive) {
	p.prims = append(p.prims, prim)
}

// Primitives returns the pad's primitive list in draw order.
func (p *Pad) Primitives() []Primitive { return p.prims }

// Primitive returns the first primitive with the given name, or nil.
func (p *Pad) Primitive(name string) Primitive {
	for _, pr := range p.prims {
		if pr.Name() == name {
			return pr
		}
	}
	return nil
}

// Remove deletes the first primitive with the given name. It reports whether
// a primitive was removed.
func (p *Pad) Remove(name string) bool {
	for i, pr := range p.prims {
		if pr.Name() == name {
			p.prims = append(p.prims[:i], p.prims[i+1:]...)
			return true
		}
	}
	return false
}

// DrawFrame installs the axis frame with the given ranges, replacing any
// existing frame, and returns it.
func (p *Pad) DrawFrame(xmin, ymin, xmax, ymax float64) *Frame {
	p.frame = NewFrame(xmin, ymin, xmax, ymax)
	return p.frame
}

// Frame returns the pad's axis frame, or nil if none was drawn.
func (p *Pad) Frame() *Frame { return p.frame }

// AddPad attaches a subpad occupying the given NDC rectangle of p.
func (p *Pad) AddPad(sub *Pad, x1, y1, x2, y2 float64) {
	sub.x1, sub.y1, sub.x2, sub.y2 = x1, y1, x2, y2
	p.pads = append(p.pads, sub)
}

// Pads returns the attached subpads in attach order.
func (p *Pad) Pads() []*Pad { return p.pads }

// Bounds returns the pad's NDC rectangle within its parent.
func (p *Pad) Bounds() (x1, y1, x2, y2 float64) {
	return p.x1, p.y1, p.x2, p.y2
}

// Refresh marks the pad as redrawn. Placement routines call it after
// touching the primitive list so sinks and callers observe a settled pad.
func (p *Pad) Refresh() { p.refreshes++ }

// Refreshes returns how many times the pad has been refreshed.
func (p *Pad) Refreshes() int { return p.refreshes }

// Canvas is a top-level pad with a window size.
type Canvas struct {
	Pad
}

// NewCanvas creates a canvas with the given pixel dimensions.
func NewCanvas(name string, widthPx, heightPx float64) *Canvas {
	c := &Canvas{}
	c.Pad = *NewPad(name, widthPx, heightPx)
	return c
}
