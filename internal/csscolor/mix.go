package csscolor

import (
	"fmt"
	"math"
	"strconv"
)

// Mix endpoints. Components match what Parse produces for #fff / #000.
var (
	white = &Color{Type: "rgb", Components: [3]string{"255", "255", "255"}}
	black = &Color{Type: "rgb", Components: [3]string{"0", "0", "0"}}
)

// MixComponent returns the CSS expression interpolating from v2 toward v1 by
// weight percent: weight 0 keeps v2, weight 100 reaches v1. The expression is
// emitted as text and left for the style consumer to evaluate, since both the
// components and the weight may themselves be run-time expressions.
func MixComponent(v1, v2, weight string) string {
	return fmt.Sprintf("calc(%s + (%s - %s) * %s / 100)", v2, v1, v2, weight)
}

// Mix interpolates two colors component-wise at the given weight. Both inputs
// must be RGB-family colors; otherwise the result is nil. Alpha defaults to 1
// on either side when absent, and the result always carries an explicit alpha
// expression under the plain rgb tag.
func Mix(c1, c2 *Color, weight string) *Color {
	if c1 == nil || c2 == nil || !rgbFamily(c1.Type) || !rgbFamily(c2.Type) {
		return nil
	}

	var components [3]string
	for i := range components {
		components[i] = MixComponent(c1.Components[i], c2.Components[i], weight)
	}

	a1, a2 := c1.Alpha, c2.Alpha
	if a1 == "" {
		a1 = "1"
	}
	if a2 == "" {
		a2 = "1"
	}

	return &Color{
		Type:       "rgb",
		Components: components,
		Alpha:      MixComponent(a1, a2, weight),
	}
}

// MixText parses both color texts and mixes them. Nil when either text does
// not resolve to an RGB-family color.
func MixText(color1, color2, weight string) *Color {
	return Mix(Parse(color1), Parse(color2), weight)
}

// Tint mixes the color with white: weight 0 is the color itself, weight 100
// is pure white.
func Tint(c *Color, weight string) *Color {
	return Mix(white, c, weight)
}

// Shade mixes the color with black: weight 0 is the color itself, weight 100
// is pure black.
func Shade(c *Color, weight string) *Color {
	return Mix(black, c, weight)
}

// Shift shades for positive weights and tints for negative ones, flipping the
// sign so the magnitude stays positive. Weight 0 takes the tint branch, which
// at magnitude 0 is an identity mix. A weight that does not parse as a number
// yields nil.
func Shift(c *Color, weight string) *Color {
	n, err := strconv.ParseFloat(weight, 64)
	if err != nil {
		return nil
	}
	if n > 0 {
		return Shade(c, weight)
	}
	// math.Abs keeps weight 0 formatting as "0" rather than "-0"
	return Tint(c, strconv.FormatFloat(math.Abs(n), 'f', -1, 64))
}

func rgbFamily(typ string) bool {
	return typ == "rgb" || typ == "rgba"
}
