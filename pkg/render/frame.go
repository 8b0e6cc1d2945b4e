package render

// Frame is the axis frame of a pad: ranges, titles and the typography knobs
// the styling layer adjusts.
type Frame struct {
	XMin, XMax float64
	YMin, YMax float64

	XTitle, YTitle string

	XTitleOffset, YTitleOffset float64
	TitleSize, LabelSize       float64
	TickLength                 float64
	YDivisions                 int

	// HideXLabels suppresses x-axis labels and title, used for the upper
	// pad of a ratio figure.
	HideXLabels bool
}

// NewFrame creates a frame with the given axis ranges and default
// typography.
func NewFrame(xmin, ymin, xmax, ymax float64) *Frame {
	return &Frame{
		XMin: xmin, XMax: xmax,
		YMin: ymin, YMax: ymax,
		XTitleOffset: 1.05,
		YTitleOffset: 1.35,
		TitleSize:    0.06,
		LabelSize:    0.05,
		TickLength:   0.03,
		YDivisions:   510,
	}
}

// Name returns the conventional frame primitive name.
func (f *Frame) Name() string { return FrameName }

// SetRange replaces both axis ranges.
func (f *Frame) SetRange(xmin, ymin, xmax, ymax float64) {
	f.XMin, f.XMax = xmin, xmax
	f.YMin, f.YMax = ymin, ymax
}
