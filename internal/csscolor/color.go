// Package csscolor normalizes CSS color text into an RGB-family component
// form and serializes it back. Components stay textual so that run-time
// expressions (var(), calc()) survive a parse/mix/serialize round trip.
package csscolor

import (
	"math"
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// Color is a normalized RGB-family color value. Components hold numeric
// literals or opaque CSS expressions. Alpha is empty when the color carries
// no explicit alpha channel. Operations never mutate a Color in place.
type Color struct {
	Type       string // "rgb" or "rgba"
	Components [3]string
	Alpha      string
}

// Parse converts CSS color text into a Color, or returns nil when the text
// is not a color this rule supports.
//
// rgb()/rgba() function syntax is parsed symbolically, keeping each component
// as written, so expression components survive. Everything else goes through
// csscolorparser, which normalizes the formats it understands (hex, named
// colors, hsl, hwb, ...) into sRGB; text it rejects is not a color here.
func Parse(text string) *Color {
	text = strings.TrimSpace(text)

	if c := parseFunction(text); c != nil {
		return c
	}

	parsed, err := csscolorparser.Parse(text)
	if err != nil {
		return nil
	}

	c := &Color{
		Type: "rgb",
		Components: [3]string{
			channelTo255(parsed.R),
			channelTo255(parsed.G),
			channelTo255(parsed.B),
		},
	}
	// Alpha is carried only when meaningful; >= 0.999 counts as opaque
	if parsed.A < 0.999 {
		c.Type = "rgba"
		c.Alpha = strconv.FormatFloat(math.Round(parsed.A*100)/100, 'f', -1, 64)
	}
	return c
}

// String serializes the color back to CSS text. The rgba tag uses the legacy
// comma syntax, the rgb tag the modern space syntax with a slash-separated
// alpha. Expression components are emitted verbatim.
func (c *Color) String() string {
	if c.Type == "rgba" {
		s := c.Type + "(" + strings.Join(c.Components[:], ", ")
		if c.Alpha != "" {
			s += ", " + c.Alpha
		}
		return s + ")"
	}
	s := c.Type + "(" + strings.Join(c.Components[:], " ")
	if c.Alpha != "" {
		s += " / " + c.Alpha
	}
	return s + ")"
}

// parseFunction handles rgb()/rgba() function syntax without evaluating the
// components. Returns nil when text is not a well-formed rgb-family function.
func parseFunction(text string) *Color {
	lower := strings.ToLower(text)

	var typ string
	switch {
	case strings.HasPrefix(lower, "rgba("):
		typ = "rgba"
	case strings.HasPrefix(lower, "rgb("):
		typ = "rgb"
	default:
		return nil
	}

	if !strings.HasSuffix(text, ")") {
		return nil
	}
	body := text[len(typ)+1 : len(text)-1]

	components, alpha, ok := splitComponents(body)
	if !ok {
		return nil
	}
	return &Color{Type: typ, Components: components, Alpha: alpha}
}

// splitComponents splits a color function body into exactly 3 components and
// an optional alpha, honoring both the comma and the space/slash syntax.
// Splitting is parenthesis-aware so nested calc()/var() bodies stay intact.
func splitComponents(body string) (components [3]string, alpha string, ok bool) {
	var parts []string
	if containsTopLevel(body, ',') {
		parts = splitTopLevel(body, ',')
	} else {
		if containsTopLevel(body, '/') {
			split := splitTopLevel(body, '/')
			if len(split) != 2 {
				return components, "", false
			}
			body = split[0]
			alpha = strings.TrimSpace(split[1])
			if alpha == "" {
				return components, "", false
			}
		}
		parts = splitTopLevel(body, ' ')
	}

	var fields []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			fields = append(fields, p)
		}
	}

	switch len(fields) {
	case 3:
	case 4:
		if alpha != "" {
			return components, "", false
		}
		alpha = fields[3]
	default:
		return components, "", false
	}
	copy(components[:], fields[:3])
	return components, alpha, true
}

// containsTopLevel reports whether sep occurs in s outside of parentheses.
func containsTopLevel(s string, sep byte) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case sep:
			if depth == 0 {
				return true
			}
		}
	}
	return false
}

// splitTopLevel splits s on sep, ignoring separators nested in parentheses.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// channelTo255 converts a 0-1 channel to its 0-255 textual form.
func channelTo255(v float64) string {
	v = math.Max(0, math.Min(1, v))
	return strconv.Itoa(int(math.Round(v * 255)))
}
