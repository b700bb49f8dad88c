// Package sanitize strips untrusted markup from user-supplied text before it
// is stored. Event and profile fields are rendered verbatim by the public
// portal, so stored values must be HTML-free (or limited to safe formatting).
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy = bluemonday.StrictPolicy()
	ugcPolicy    = bluemonday.UGCPolicy()
)

// Text strips all HTML tags. Use for titles, locations, names, statuses.
func Text(input string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(input))
}

// HTML allows basic formatting tags but removes scripts, event handlers and
// style attributes. Use for event descriptions.
func HTML(input string) string {
	return strings.TrimSpace(ugcPolicy.Sanitize(input))
}
