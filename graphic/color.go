package graphic

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a non-premultiplied RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
	Transparent = Color{}
)

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// FromStd converts a standard library color.
func FromStd(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// Std converts to a standard library color.
func (c Color) Std() color.Color {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// ParseColor accepts CSS color names ("black", "steelblue"), "transparent",
// and hex notation ("#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA").
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "transparent" {
		return Transparent, nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	if c, ok := colornames.Map[s]; ok {
		return FromStd(c), nil
	}
	return Color{}, fmt.Errorf("graphic: unknown color %q", s)
}

// MustColor is like ParseColor but panics on error.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(hex string) (Color, error) {
	var digits [4]uint64
	digits[3] = 255
	switch len(hex) {
	case 3, 4:
		for i := range len(hex) {
			v, err := strconv.ParseUint(hex[i:i+1], 16, 8)
			if err != nil {
				return Color{}, fmt.Errorf("graphic: bad hex color %q: %w", hex, err)
			}
			digits[i] = v * 17
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			v, err := strconv.ParseUint(hex[i:i+2], 16, 8)
			if err != nil {
				return Color{}, fmt.Errorf("graphic: bad hex color %q: %w", hex, err)
			}
			digits[i/2] = v
		}
	default:
		return Color{}, fmt.Errorf("graphic: bad hex color %q", hex)
	}
	return Color{
		R: float64(digits[0]) / 255,
		G: float64(digits[1]) / 255,
		B: float64(digits[2]) / 255,
		A: float64(digits[3]) / 255,
	}, nil
}

// CSS returns the color as a CSS rgba() expression.
func (c Color) CSS() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", to8(c.R), to8(c.G), to8(c.B),
		strconv.FormatFloat(math.Round(c.A*1000)/1000, 'f', -1, 64))
}

// Hex returns the color as #rrggbb, dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

// Opacity returns the alpha component.
func (c Color) Opacity() float64 {
	return c.A
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
