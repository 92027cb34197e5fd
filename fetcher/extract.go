package fetcher

import (
	"regexp"
	"strings"
)

// Pattern replacement, not an HTML parser: malformed markup, nested comments
// and entities pass through untouched, and existing clients depend on that
// exact output.
var (
	scriptRe = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleRe  = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	tagRe    = regexp.MustCompile(`<[^>]+>`)
)

// Extract reduces raw HTML to plain text: script and style blocks go first,
// then every remaining <...> span, then surrounding whitespace.
func Extract(html string) string {
	text := scriptRe.ReplaceAllString(html, "")
	text = styleRe.ReplaceAllString(text, "")
	text = tagRe.ReplaceAllString(text, "")

	return strings.TrimSpace(text)
}
