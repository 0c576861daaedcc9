package questiontag

import (
	"regexp"
	"strings"
)

// tagPattern builds the matcher for <tag>{{ ... }}. Whitespace inside the
// tag name matches any whitespace run.
func tagPattern(tag string) *regexp.Regexp {
	words := strings.Fields(tag)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?is)<\s*` + strings.Join(words, `\s+`) + `\s*>\s*\{\{(.*?)\}\}`)
}

// Extract returns the trimmed payload between the first "{{" following
// the opening tag and the next "}}". Nested braces are not supported.
func Extract(text, tag string) (string, bool) {
	if strings.TrimSpace(tag) == "" {
		return "", false
	}
	m := tagPattern(tag).FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}
