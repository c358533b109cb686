package validation

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict strips every HTML element and escapes what remains, so stored
// usernames and link names are inert in any later rendering context.
var strict = bluemonday.StrictPolicy()

// SanitizeText trims surrounding whitespace and removes/escapes HTML from
// user-supplied text before it is validated and persisted.
func SanitizeText(s string) string {
	return strings.TrimSpace(strict.Sanitize(strings.TrimSpace(s)))
}
