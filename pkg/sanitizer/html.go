// Package sanitizer filters untrusted HTML with bluemonday policies.
package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	emailPolicy *bluemonday.Policy
	initOnce    sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// Enough for rendered markdown in an email client.
		emailPolicy = bluemonday.NewPolicy()
		emailPolicy.AllowStandardURLs()
		emailPolicy.AllowURLSchemes("mailto", "http", "https")
		emailPolicy.AllowElements(
			"p", "br", "hr",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"h1", "h2", "h3",
			"code", "pre", "blockquote",
		)
		emailPolicy.AllowAttrs("href").OnElements("a")
		emailPolicy.RequireNoFollowOnLinks(true)
	})
}

// SanitizeHTML keeps basic formatting and links and strips everything else,
// including scripts, event handlers and javascript: URLs.
func SanitizeHTML(s string) string {
	initPolicies()
	return emailPolicy.Sanitize(s)
}
