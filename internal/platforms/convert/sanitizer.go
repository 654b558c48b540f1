package convert

import (
	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips dangerous HTML from platform-supplied comment bodies
// before they enter the normalized tree. Platforms like Reddit and YouTube
// return user content as HTML fragments; scripts, event handlers and
// javascript: URLs must never survive normalization.
//
// Thread-safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a sanitizer with a UGC policy: common formatting
// (paragraphs, emphasis, links, lists, code blocks) survives, attack
// vectors are removed.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.UGCPolicy()}
}

// NewStrictSanitizer creates a sanitizer that strips all HTML, leaving only
// text. Used for platforms whose content should be plain text after
// normalization (e.g. YouTube textDisplay fields).
func NewStrictSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Sanitize removes dangerous HTML while preserving whatever the policy
// allows.
func (s *Sanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}
