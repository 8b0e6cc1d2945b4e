package palette

import (
	"image/color"
	"regexp"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// NamedColor is a single color of a qualitative set, addressable by name.
type NamedColor struct {
	Name  string
	Color color.Color
}

// Set is an ordered qualitative color family.
type Set struct {
	Name  string
	Named []NamedColor
}

// Petroff qualitative sets. The order matters: series colors are assigned
// in this order.
var (
	P6 = Set{Name: "p6", Named: []NamedColor{
		{"Blue", mustHex("#5790fc")},
		{"Yellow", mustHex("#f89c20")},
		{"Red", mustHex("#e42536")},
		{"Grape", mustHex("#964a8b")},
		{"Gray", mustHex("#9c9ca1")},
		{"Violet", mustHex("#7a21dd")},
	}}

	P8 = Set{Name: "p8", Named: []NamedColor{
		{"Blue", mustHex("#1845fb")},
		{"Orange", mustHex("#ff5e02")},
		{"Red", mustHex("#c91f16")},
		{"Pink", mustHex("#c849a9")},
		{"Green", mustHex("#adad7d")},
		{"Cyan", mustHex("#86c8dd")},
		{"Azure", mustHex("#578dff")},
		{"Gray", mustHex("#656364")},
	}}

	P10 = Set{Name: "p10", Named: []NamedColor{
		{"Blue", mustHex("#3f90da")},
		{"Yellow", mustHex("#ffa90e")},
		{"Red", mustHex("#bd1f01")},
		{"Gray", mustHex("#94a4a2")},
		{"Violet", mustHex("#832db6")},
		{"Brown", mustHex("#a96b59")},
		{"Orange", mustHex("#e76300")},
		{"Green", mustHex("#b9ac70")},
		{"Ash", mustHex("#717581")},
		{"Cyan", mustHex("#92dadd")},
	}}
)

// Limit band colors for statistical displays.
var (
	Limit68 = mustHex("#607641") // internal band, default set
	Limit95 = mustHex("#F5BB54") // external band, default set

	Limit68Logo = mustHex("#85D1FB") // internal band, logo set
	Limit95Logo = mustHex("#FFDF7F") // external band, logo set
)

// basicColors maps plain color names accepted by ByName in addition to the
// set-qualified names.
var basicColors = map[string]color.Color{
	"white":   color.NRGBA{255, 255, 255, 255},
	"black":   color.NRGBA{0, 0, 0, 255},
	"gray":    color.NRGBA{128, 128, 128, 255},
	"red":     color.NRGBA{255, 0, 0, 255},
	"green":   color.NRGBA{0, 255, 0, 255},
	"blue":    color.NRGBA{0, 0, 255, 255},
	"yellow":  color.NRGBA{255, 255, 0, 255},
	"magenta": color.NRGBA{255, 0, 255, 255},
	"cyan":    color.NRGBA{0, 255, 255, 255},
	"orange":  color.NRGBA{255, 165, 0, 255},
	"violet":  color.NRGBA{238, 130, 238, 255},
	"pink":    color.NRGBA{255, 192, 203, 255},
}

// Colors returns the plain ordered colors of the set.
func (s Set) Colors() []color.Color {
	out := make([]color.Color, len(s.Named))
	for i, nc := range s.Named {
		out[i] = nc.Color
	}
	return out
}

// ByName returns the named color from the set.
func (s Set) ByName(name string) (color.Color, bool) {
	for _, nc := range s.Named {
		if strings.EqualFold(nc.Name, name) {
			return nc.Color, true
		}
	}
	return nil, false
}

// Curated returns the smallest qualitative family whose size covers n series.
// For n above ten the ten-color family is repeated cyclically, so callers
// asking for more than ten distinct colors get repeats rather than an error.
func Curated(n int) []color.Color {
	switch {
	case n < 7:
		return P6.Colors()
	case n < 9:
		return P8.Colors()
	}

	out := P10.Colors()
	for i := 10; i < n; i++ {
		out = append(out, out[i%10])
	}
	return out
}

// ByName resolves a color reference. Qualified names address a set color
// ("p8.Blue"), hex strings are parsed directly ("#e42536"), and a small
// collection of plain names is recognized ("black", "orange", ...).
func ByName(name string) (color.Color, bool) {
	if strings.Contains(name, ".") {
		parts := strings.SplitN(name, ".", 2)
		switch strings.ToLower(parts[0]) {
		case "p6":
			return P6.ByName(parts[1])
		case "p8":
			return P8.ByName(parts[1])
		case "p10":
			return P10.ByName(parts[1])
		}
		return nil, false
	}

	if IsValidHex(name) {
		c, err := colorful.Hex(name)
		if err != nil {
			return nil, false
		}
		return toNRGBA(c, 1), true
	}

	c, ok := basicColors[strings.ToLower(name)]
	return c, ok
}

var hexPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}){1,2}$`)

// IsValidHex reports whether s is a #rgb or #rrggbb color code.
func IsValidHex(s string) bool {
	return hexPattern.MatchString(s)
}

func mustHex(s string) color.Color {
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		panic("palette: bad hex literal " + s)
	}
	return toNRGBA(c, 1)
}

func toNRGBA(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.RGB255()
	a := uint8(alpha*255 + 0.5)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
