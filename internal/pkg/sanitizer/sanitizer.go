// Package sanitizer strips unsafe markup from admin-authored rich text.
package sanitizer

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugc   = bluemonday.UGCPolicy()
	plain = bluemonday.StrictPolicy()
)

// HTML keeps formatting markup and removes scripts, event handlers and unsafe URLs
func HTML(s string) string {
	return strings.TrimSpace(ugc.Sanitize(s))
}

// Text removes every tag
func Text(s string) string {
	return strings.TrimSpace(plain.Sanitize(s))
}

// HTMLPtr sanitises an optional field in place
func HTMLPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := HTML(*s)
	return &v
}
