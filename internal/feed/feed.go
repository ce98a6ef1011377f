package feed

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gitfeed/gitfeed/internal/conventional"
	"github.com/gitfeed/gitfeed/internal/emoji"
	"github.com/gitfeed/gitfeed/internal/models"
	"github.com/gitfeed/gitfeed/internal/timespan"
	"github.com/gitfeed/gitfeed/internal/ui"
)

// LinkFunc renders a clickable terminal link for url with the given
// display text.
type LinkFunc func(url, text string) string

// Formatter turns commits into display lines.
type Formatter struct {
	emoji  *emoji.Resolver
	styles ui.Styles
	link   LinkFunc
}

// NewFormatter creates a Formatter
func NewFormatter(resolver *emoji.Resolver, styles ui.Styles, link LinkFunc) *Formatter {
	return &Formatter{
		emoji:  resolver,
		styles: styles,
		link:   link,
	}
}

// Format renders one commit as a single display line. Conventional
// commits that yield at least one glyph get a styled header; everything
// else falls back to the raw message. A relative "time ago" suffix is
// appended either way.
func (f *Formatter) Format(c models.Commit, now time.Time) (string, error) {
	text := c.Message

	if sub, ok := conventional.Parse(c.Message); ok {
		glyphs := f.emoji.Resolve(sub.Type, sub.Scope, sub.Breaking, sub.Description)

		// Only synthesize a header when there is a visual payload;
		// a bare "type:" prefix adds nothing over the raw message.
		if glyphs != "" {
			header := sub.Type
			if sub.Scope != "" {
				header += "(" + f.styles.Scope.Render(sub.Scope) + ")"
			}
			if sub.Breaking {
				header += "!"
			}
			text = fmt.Sprintf("%s %s %s", f.styles.Header.Render(header+":"), glyphs, sub.Description)
		}
	}

	span, err := timespan.Between(c.When, now)
	if err != nil {
		return "", err
	}
	text += fmt.Sprintf(" (%s ago)", span)

	// Trim first, then cut to the first line. The suffix was appended
	// to the full text, so a multi-line raw message keeps its first
	// line and loses the suffix. That ordering is deliberate.
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	return line, nil
}

// Render writes the whole activity feed. Zero commits produce no output
// at all, heading included.
func (f *Formatter) Render(w io.Writer, commits []models.Commit, now time.Time) error {
	if len(commits) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "  "+f.styles.Heading.Render("## Recent Activity"))
	fmt.Fprintln(w)

	for _, c := range commits {
		line, err := f.Format(c, now)
		if err != nil {
			return fmt.Errorf("format commit %s: %w", c.Hash, err)
		}
		fmt.Fprintf(w, "  * %s %s\n", f.link(c.CommitURL(), c.Hash), line)
	}

	fmt.Fprintln(w)
	return nil
}
