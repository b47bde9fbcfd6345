package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// TextSanitizer strips markup from free-text input before it is stored.
// A bluemonday policy is safe for concurrent use once built.
type TextSanitizer struct {
	policy *bluemonday.Policy
}

// NewTextSanitizer returns a sanitizer that removes every tag, and the contents of script and style elements.
func NewTextSanitizer() *TextSanitizer {
	return &TextSanitizer{policy: bluemonday.StrictPolicy()}
}

// Sanitize returns s as plain text without markup or surrounding whitespace.
func (t *TextSanitizer) Sanitize(s string) string {
	return strings.TrimSpace(html.UnescapeString(t.policy.Sanitize(s)))
}

// SanitizeAll sanitizes every entry of ss, returning a new slice.
func (t *TextSanitizer) SanitizeAll(ss []string) []string {
	if ss == nil {
		return nil
	}
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = t.Sanitize(s)
	}
	return out
}
