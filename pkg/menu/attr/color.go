package attr

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a menu item text color. Light is used in the light system
// theme. Dark, when set, overrides it in the dark theme; only SwiftBar
// honors it, other hosts read the light value.
type Color struct {
	Light colorful.Color
	Dark  *colorful.Color
}

// ParseColor parses a hex color string such as "#ff8000" or "#f80".
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{Light: c}, nil
}

// RGB returns a Color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{Light: colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}}
}

func (c Color) String() string {
	s := c.Light.Hex()
	if c.Dark != nil {
		s += "," + c.Dark.Hex()
	}
	return s
}
