package emoji

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeRegistry resolves shortcodes from a plain map
type fakeRegistry map[string]string

func (f fakeRegistry) Lookup(code string) (string, bool) {
	g, ok := f[code]
	return g, ok
}

func TestResolveTypeTable(t *testing.T) {
	// Every built-in token resolves to exactly its own glyph and
	// nothing else.
	r := NewResolver(fakeRegistry{}, nil)

	for token, glyph := range typeEmoji {
		t.Run(token, func(t *testing.T) {
			assert.Equal(t, glyph, r.Resolve(token, "", false, ""))
		})
	}
}

func TestResolveUnknownType(t *testing.T) {
	r := NewResolver(fakeRegistry{}, nil)
	assert.Empty(t, r.Resolve("zzz", "", false, "plain description"))
}

func TestResolveBreaking(t *testing.T) {
	r := NewResolver(fakeRegistry{}, nil)

	tests := []struct {
		name  string
		typ   string
		scope string
	}{
		{"unknown type and scope", "zzz", "yyy"},
		{"known type", "feat", ""},
		{"known type and scope", "fix", "docker"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := r.Resolve(tc.typ, tc.scope, true, "")
			assert.Contains(t, got, Breaking)
		})
	}
}

func TestResolveCombinedScopeWins(t *testing.T) {
	// "ui" alone is a known table token (💄), but the combined
	// "feat-ui" shortcode must shadow it entirely.
	r := NewResolver(fakeRegistry{"feat-ui": "🦄"}, nil)

	got := r.Resolve("feat", "ui", false, "")
	assert.Contains(t, got, "🦄")
	assert.Contains(t, got, "✨")
	assert.NotContains(t, got, "💄")
}

func TestResolveScopeFallback(t *testing.T) {
	// No combined entry: the scope falls back to the static table.
	r := NewResolver(fakeRegistry{}, nil)

	got := r.Resolve("feat", "docker", false, "")
	assert.Contains(t, got, "✨")
	assert.Contains(t, got, "🐳")
}

func TestResolveDescriptionShortcodes(t *testing.T) {
	r := NewResolver(fakeRegistry{"bug": "🐛", "rocket": "🚀"}, nil)

	tests := []struct {
		name        string
		description string
		want        string
	}{
		{"embedded code", "foo:bug:bar", "🐛 🔧"},
		{"multiple codes", ":bug: and :rocket:", "🐛 🔧 🚀"},
		{"no colon means no extraction", "no colon here bug rocket", "🔧"},
		{"unknown codes dropped", "see :nonexistent: code", "🔧"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Resolve("chore", "", false, tc.description))
		})
	}
}

func TestResolveDeduplicates(t *testing.T) {
	// "fix" and the "bug" shortcode map to the same glyph; the set
	// collapses them.
	r := NewResolver(fakeRegistry{"bug": "🐛"}, nil)
	assert.Equal(t, "🐛", r.Resolve("fix", "", false, "see :bug:"))
}

func TestResolveDeterministicOrder(t *testing.T) {
	r := NewResolver(fakeRegistry{"bug": "🐛"}, nil)

	first := r.Resolve("feat", "docker", true, "see :bug:")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, r.Resolve("feat", "docker", true, "see :bug:"))
	}
}

func TestResolverExtraEntries(t *testing.T) {
	extra := map[string]string{
		"deploy": "🚢",
		"feat":   "🌟", // overrides the built-in sparkles
	}
	r := NewResolver(fakeRegistry{}, extra)

	assert.Equal(t, "🚢", r.Resolve("deploy", "", false, ""))
	assert.Equal(t, "🌟", r.Resolve("feat", "", false, ""))

	// The resolver copied the map; caller mutation has no effect.
	extra["deploy"] = "💣"
	assert.Equal(t, "🚢", r.Resolve("deploy", "", false, ""))
}

func TestShortcodes(t *testing.T) {
	var reg Shortcodes

	for _, code := range []string{"boom", "bug", "sparkles", "rocket"} {
		g, ok := reg.Lookup(code)
		assert.True(t, ok, "shortcode %q should resolve", code)
		assert.NotEmpty(t, g)
	}

	_, ok := reg.Lookup("definitely-not-a-shortcode")
	assert.False(t, ok)
}
