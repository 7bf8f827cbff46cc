// Package sanitize cleans user supplied text before it is stored.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Policies are safe for concurrent use once built.
var (
	strict = bluemonday.StrictPolicy()
	ugc    = bluemonday.UGCPolicy()
)

// Plain strips every tag and returns plain text. The strict policy escapes
// what it keeps, so the result is unescaped again: "Devil's Trumpet & Co"
// is stored as typed. Plain output is text, not HTML, and must be escaped
// by whatever renders it.
func Plain(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// PlainPtr is Plain for optional fields.
func PlainPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := Plain(*p)
	return &v
}

// Rich keeps safe formatting markup. The result is HTML.
func Rich(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(ugc.Sanitize(*p))
	return &v
}
