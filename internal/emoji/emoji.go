package emoji

import (
	"sort"
	"strings"

	gomoji "github.com/kyokomi/emoji/v2"
)

// Breaking is the glyph added for breaking changes (shortcode "boom").
const Breaking = "💥"

// typeEmoji maps conventional-commit types (and common scope tokens) to
// their glyph. Several keys alias the same glyph. The map is built once
// and never mutated.
var typeEmoji = map[string]string{
	"add":           "➕",  // heavy_plus_sign
	"android":       "🤖",  // robot
	"breaking":      "💥",  // boom
	"build":         "📦",  // package
	"deps":          "📦",
	"dep":           "📦",
	"dependencies":  "📦",
	"chore":         "🔧",  // wrench
	"maintenance":   "🔧",
	"ci":            "👷",  // construction_worker
	"cd":            "👷",
	"config":        "⚙️", // gear
	"doc":           "📚",  // books
	"docs":          "📚",
	"documentation": "📚",
	"docker":        "🐳",  // whale
	"feat":          "✨",  // sparkles
	"feature":       "✨",
	"fix":           "🐛",  // bug
	"i18n":          "🌐",  // globe_with_meridians
	"l10n":          "🌐",
	"kubernetes":    "☸️", // wheel_of_dharma
	"k8s":           "☸️",
	"lint":          "🚨",  // rotating_light
	"linter":        "🚨",
	"linux":         "🐧",  // penguin
	"macos":         "🍎",  // apple
	"ios":           "🍎",
	"merge":         "🔀",  // twisted_rightwards_arrows
	"perf":          "⚡️", // zap
	"performance":   "⚡️",
	"ref":           "♻️", // recycle
	"refactor":      "♻️",
	"release":       "🚀",  // rocket
	"remove":        "➖",  // heavy_minus_sign
	"revert":        "⏪",  // rewind
	"security":      "🔒",  // lock
	"style":         "🎨",  // art
	"test":          "✅",  // white_check_mark
	"tests":         "✅",
	"typo":          "✏️", // pencil2
	"typos":         "✏️",
	"ui":            "💄",  // lipstick
	"ux":            "💄",
	"windows":       "🏁",  // checkered_flag
	"wip":           "🚧",  // construction
}

// Registry resolves an emoji shortcode (e.g. "bug") to its glyph.
type Registry interface {
	Lookup(code string) (string, bool)
}

// Shortcodes is the production Registry, backed by the generated
// shortcode table of kyokomi/emoji.
type Shortcodes struct{}

// Lookup implements Registry
func (Shortcodes) Lookup(code string) (string, bool) {
	glyph, ok := gomoji.CodeMap()[":"+code+":"]
	return strings.TrimSpace(glyph), ok
}

// Resolver computes the emoji annotation for a commit header.
type Resolver struct {
	registry Registry
	extra    map[string]string
}

// NewResolver creates a Resolver. extra holds user-defined type→glyph
// entries that take precedence over the built-in table; it is copied so
// later mutation by the caller has no effect.
func NewResolver(registry Registry, extra map[string]string) *Resolver {
	r := &Resolver{registry: registry}
	if len(extra) > 0 {
		r.extra = make(map[string]string, len(extra))
		for k, v := range extra {
			r.extra[k] = v
		}
	}
	return r
}

// typeGlyph looks up a type or scope token, user entries first
func (r *Resolver) typeGlyph(key string) (string, bool) {
	if g, ok := r.extra[key]; ok {
		return g, true
	}
	g, ok := typeEmoji[key]
	return g, ok
}

// Resolve returns the space-joined, deduplicated glyphs for the given
// header fields, sorted so identical inputs always render identically.
// Unknown tokens and codes contribute nothing; the empty string means
// "no annotation" and is not an error.
func (r *Resolver) Resolve(typ, scope string, breaking bool, description string) string {
	set := make(map[string]bool)

	if breaking {
		set[Breaking] = true
	}

	if g, ok := r.typeGlyph(typ); ok {
		set[g] = true
	}

	if scope != "" {
		// A combined type-scope shortcode wins over the generic
		// scope lookup; fall back only when it misses.
		if g, ok := r.registry.Lookup(typ + "-" + scope); ok {
			set[g] = true
		} else if g, ok := r.typeGlyph(scope); ok {
			set[g] = true
		}
	}

	// A ":" in the description marks hand-written shortcodes
	if strings.Contains(description, ":") {
		for _, code := range strings.Split(description, ":") {
			if code == "" {
				continue
			}
			if g, ok := r.registry.Lookup(code); ok {
				set[g] = true
			}
		}
	}

	if len(set) == 0 {
		return ""
	}

	glyphs := make([]string, 0, len(set))
	for g := range set {
		glyphs = append(glyphs, g)
	}
	sort.Strings(glyphs)

	return strings.Join(glyphs, " ")
}
