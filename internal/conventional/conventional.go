package conventional

import (
	"regexp"
	"strings"
)

// headerRe matches a conventional-commit header line:
//
//	type(scope)!: description
//
// Group 1: type (lowercase), Group 2: scope (optional),
// Group 3: "!" breaking marker (optional), Group 4: description.
var headerRe = regexp.MustCompile(`^([a-z][a-z0-9]*)(?:\(([^()\s]+)\))?(!)?: (.+)$`)

// Subject holds the parsed parts of a conventional-commit header.
type Subject struct {
	Type        string // e.g., "feat", "fix", "refactor"
	Scope       string // e.g., "auth", "api" (empty if no scope)
	Breaking    bool   // true if "!" marker present
	Description string // the description after ": "
}

// Parse extracts the conventional-commit header from a raw commit message.
// Only the first line is considered; body and footer are irrelevant for
// display. Returns ok=false when the message does not follow the
// convention — the normal case for merge commits and free-text messages,
// not an error.
func Parse(message string) (Subject, bool) {
	line, _, _ := strings.Cut(message, "\n")
	m := headerRe.FindStringSubmatch(strings.TrimRight(line, "\r"))
	if m == nil {
		return Subject{}, false
	}
	return Subject{
		Type:        m[1],
		Scope:       m[2],
		Breaking:    m[3] == "!",
		Description: m[4],
	}, true
}
