package render

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy strips all markup, safe for concurrent use
var strictPolicy = bluemonday.StrictPolicy()

// CleanText strips markup, decodes entities and collapses whitespace into single spaces
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	stripped := html.UnescapeString(strictPolicy.Sanitize(text))
	return strings.Join(strings.Fields(stripped), " ")
}

// EnsureTrailingSlash appends "/" unless url already ends with it
func EnsureTrailingSlash(url string) string {
	if strings.HasSuffix(url, "/") {
		return url
	}
	return url + "/"
}

// normalizeURL applies trailing slash policy
func normalizeURL(url string, addTrailingSlash bool) string {
	if !addTrailingSlash {
		return url
	}
	return EnsureTrailingSlash(url)
}
