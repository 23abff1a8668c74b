// Package bluemonday provides the HTML sanitizer used on extracted
// article bodies. The policy is an allowlist: semantic article markup
// survives, everything executable or interactive is stripped.
package bluemonday

import (
	"github.com/microcosm-cc/bluemonday"

	unlocked "github.com/Skasundra/medium-unlocked"
)

// Ensure Sanitizer implements unlocked.Sanitizer at compile time.
var _ unlocked.Sanitizer = (*Sanitizer)(nil)

// Sanitizer applies an article-safe bluemonday policy. Event-handler
// attributes and javascript: URLs never pass the allowlist.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a Sanitizer with the article policy.
func NewSanitizer() *Sanitizer {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"h1", "h2", "h3", "h4", "h5", "h6",
		"p", "br", "hr",
		"ul", "ol", "li",
		"blockquote", "pre", "code",
		"em", "strong", "b", "i", "mark",
		"figure", "figcaption",
	)

	// Standard URL policy: http/https/mailto and relative URLs only,
	// so javascript: links are dropped along with their href.
	p.AllowStandardURLs()
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("src", "alt").OnElements("img")

	return &Sanitizer{policy: p}
}

// Sanitize returns the fragment with disallowed markup removed.
func (s *Sanitizer) Sanitize(fragment string) string {
	return s.policy.Sanitize(fragment)
}
