package util

import (
	"github.com/microcosm-cc/bluemonday"
	"html"
)

var XSSPolicy = bluemonday.UGCPolicy()

// XSSSanitize strips unsafe HTML from user-supplied text (post headers,
// descriptions, comments) and returns the unescaped result.
func XSSSanitize(val string) string {
	return html.UnescapeString(XSSPolicy.Sanitize(val))
}
