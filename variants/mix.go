package variants

import (
	"regexp"
	"strings"
	"sync"

	"github.com/Aaron-zon/unocss/internal/config"
	"github.com/Aaron-zon/unocss/internal/csscolor"
)

// MixOperation is a resolved mixing policy. Weight is kept textual through
// to the mixing engine, which accepts weights as text.
type MixOperation struct {
	Mode   string // "tint", "shade" or "shift"
	Weight string // integer text in [-999, 999]
}

// ColorMix recognizes `mix-<tint|shade|shift>-<weight>` token prefixes and
// rewrites color-valued declarations by mixing them with white or black at
// the given weight percentage. Weights are 1-3 digit integers with an
// optional leading minus and must be followed by a configured separator.
//
// Separators come from the generator configuration, so the compiled pattern
// belongs to one ColorMix instance and is never shared across configurations.
type ColorMix struct {
	separators []string

	once    sync.Once
	pattern *regexp.Regexp
}

// NewColorMix builds the mix variant for one generator configuration. An
// empty separator list falls back to the configuration defaults.
func NewColorMix(separators []string) *ColorMix {
	if len(separators) == 0 {
		separators = config.DefaultSeparators()
	}
	return &ColorMix{separators: separators}
}

// Name implements Rule.
func (v *ColorMix) Name() string { return "mix" }

// Match implements Rule. On success the result carries the consumed prefix
// length, the remaining token suffix, and a rewrite bound to the matched mode
// and weight.
func (v *ColorMix) Match(token string) (*MatchResult, bool) {
	m := v.compiled().FindStringSubmatch(token)
	if m == nil {
		return nil, false
	}

	mode, weight := m[1], m[2]
	consumed := len(m[0])

	return &MatchResult{
		Matcher:   token[consumed:],
		Consumed:  consumed,
		Operation: &MixOperation{Mode: mode, Weight: weight},
		Rewrite: func(entries []PropertyEntry) []PropertyEntry {
			return rewriteColors(entries, mode, weight)
		},
	}, true
}

// compiled builds the token pattern on first use. Separators are escaped
// before being unioned so metacharacters in a separator cannot widen the
// match.
func (v *ColorMix) compiled() *regexp.Regexp {
	v.once.Do(func() {
		escaped := make([]string, len(v.separators))
		for i, sep := range v.separators {
			escaped[i] = regexp.QuoteMeta(sep)
		}
		v.pattern = regexp.MustCompile(
			`^mix-(tint|shade|shift)-(-?\d{1,3})(?:` + strings.Join(escaped, "|") + `)`,
		)
	})
	return v.pattern
}

// rewriteColors replaces every color-valued entry with its mixed form.
// Entries whose value is absent, not an RGB-family color, or fails to mix are
// passed through untouched; the list is never shortened or reordered.
func rewriteColors(entries []PropertyEntry, mode, weight string) []PropertyEntry {
	for i := range entries {
		entry := &entries[i]
		if entry.Value == nil {
			continue
		}

		color := csscolor.Parse(*entry.Value)
		if color == nil {
			continue
		}

		var mixed *csscolor.Color
		switch mode {
		case "tint":
			mixed = csscolor.Tint(color, weight)
		case "shade":
			mixed = csscolor.Shade(color, weight)
		default:
			mixed = csscolor.Shift(color, weight)
		}
		if mixed == nil {
			continue
		}

		value := mixed.String()
		entry.Value = &value
	}
	return entries
}
