package variants_test

import (
	"strings"
	"testing"

	"github.com/Aaron-zon/unocss/internal/csscolor"
	"github.com/Aaron-zon/unocss/variants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestColorMixMatch(t *testing.T) {
	rule := variants.NewColorMix([]string{":", "-"})

	t.Run("identity", func(t *testing.T) {
		assert.Equal(t, "mix", rule.Name())
	})

	t.Run("matches mode, weight and separator", func(t *testing.T) {
		result, ok := rule.Match("mix-shade-30-text-red")
		require.True(t, ok)
		assert.Equal(t, "shade", result.Operation.Mode)
		assert.Equal(t, "30", result.Operation.Weight)
		assert.Equal(t, len("mix-shade-30-"), result.Consumed)
		assert.Equal(t, "text-red", result.Matcher)
	})

	t.Run("consumes the separator even with nothing after it", func(t *testing.T) {
		result, ok := rule.Match("mix-shade-30-")
		require.True(t, ok)
		assert.Equal(t, len("mix-shade-30-"), result.Consumed)
		assert.Empty(t, result.Matcher)
	})

	t.Run("negative weight", func(t *testing.T) {
		result, ok := rule.Match("mix-shift--45:hover")
		require.True(t, ok)
		assert.Equal(t, "shift", result.Operation.Mode)
		assert.Equal(t, "-45", result.Operation.Weight)
		assert.Equal(t, "hover", result.Matcher)
	})

	t.Run("unknown mode does not match", func(t *testing.T) {
		_, ok := rule.Match("mix-teal-30-")
		assert.False(t, ok)
	})

	t.Run("weight over three digits does not match", func(t *testing.T) {
		_, ok := rule.Match("mix-shade-3000-")
		assert.False(t, ok)
	})

	t.Run("missing separator does not match", func(t *testing.T) {
		_, ok := rule.Match("mix-shade-30")
		assert.False(t, ok)
	})

	t.Run("empty separator list falls back to defaults", func(t *testing.T) {
		result, ok := variants.NewColorMix(nil).Match("mix-tint-10-bg-blue")
		require.True(t, ok)
		assert.Equal(t, "bg-blue", result.Matcher)
	})

	t.Run("separators are escaped, not treated as pattern syntax", func(t *testing.T) {
		dotted := variants.NewColorMix([]string{"."})
		_, ok := dotted.Match("mix-shade-30x")
		assert.False(t, ok)
		result, ok := dotted.Match("mix-shade-30.foo")
		require.True(t, ok)
		assert.Equal(t, "foo", result.Matcher)
	})
}

func TestColorMixRewrite(t *testing.T) {
	rule := variants.NewColorMix([]string{"-"})

	match := func(t *testing.T, token string) *variants.MatchResult {
		t.Helper()
		result, ok := rule.Match(token)
		require.True(t, ok)
		return result
	}

	t.Run("rewrites color values and passes the rest through", func(t *testing.T) {
		result := match(t, "mix-shade-20-")
		entries := result.Rewrite([]variants.PropertyEntry{
			{Name: "color", Value: strptr("#336699")},
			{Name: "background", Value: strptr("red-500")},
		})
		require.Len(t, entries, 2)

		assert.Equal(t, "color", entries[0].Name)
		require.NotNil(t, entries[0].Value)
		assert.Contains(t, *entries[0].Value, "calc(")
		reparsed := csscolor.Parse(*entries[0].Value)
		require.NotNil(t, reparsed, "rewritten value must still be a color")

		assert.Equal(t, "background", entries[1].Name)
		require.NotNil(t, entries[1].Value)
		assert.Equal(t, "red-500", *entries[1].Value)
	})

	t.Run("entries without a value are untouched", func(t *testing.T) {
		result := match(t, "mix-tint-50-")
		entries := result.Rewrite([]variants.PropertyEntry{
			{Name: "font-weight"},
			{Name: "color", Value: strptr("rgb(10, 20, 30)")},
		})
		require.Len(t, entries, 2)
		assert.Nil(t, entries[0].Value)
		assert.Contains(t, *entries[1].Value, "calc(")
	})

	t.Run("tint rewrites mix toward white", func(t *testing.T) {
		result := match(t, "mix-tint-100-")
		entries := result.Rewrite([]variants.PropertyEntry{
			{Name: "color", Value: strptr("#000000")},
		})
		require.NotNil(t, entries[0].Value)
		assert.True(t, strings.HasPrefix(*entries[0].Value, "rgb(calc(0 + (255 - 0)"))
	})

	t.Run("shift routes by weight sign", func(t *testing.T) {
		base := csscolor.Parse("#336699")
		require.NotNil(t, base)

		shifted := match(t, "mix-shift-30-").Rewrite([]variants.PropertyEntry{
			{Name: "color", Value: strptr("#336699")},
		})
		assert.Equal(t, csscolor.Shade(base, "30").String(), *shifted[0].Value)

		shifted = match(t, "mix-shift--30-").Rewrite([]variants.PropertyEntry{
			{Name: "color", Value: strptr("#336699")},
		})
		assert.Equal(t, csscolor.Tint(base, "30").String(), *shifted[0].Value)
	})

	t.Run("order and length are preserved", func(t *testing.T) {
		result := match(t, "mix-shade-10-")
		entries := result.Rewrite([]variants.PropertyEntry{
			{Name: "a", Value: strptr("not-a-color")},
			{Name: "b", Value: strptr("#fff")},
			{Name: "c"},
		})
		require.Len(t, entries, 3)
		assert.Equal(t, "a", entries[0].Name)
		assert.Equal(t, "b", entries[1].Name)
		assert.Equal(t, "c", entries[2].Name)
	})
}
