package questiontag

import (
	"regexp"
	"strings"
)

var (
	labelMarker     = regexp.MustCompile(`[A-Z][).:-]`)
	leadingLabel    = regexp.MustCompile(`^([A-Z])[).:-]\s*(.*)$`)
	leadingBullets  = regexp.MustCompile(`^[-?*]+\s*`)
	optionDelimiter = regexp.MustCompile(`[;|]`)
	placeholder     = regexp.MustCompile(`(?i)<option text>|<value>`)
)

func isNone(s string) bool {
	return strings.EqualFold(s, "(none)") || strings.EqualFold(s, "none")
}

// ParseOptions turns the raw lines of an options section into cleaned
// answer choices. The result is never nil.
func ParseOptions(lines []string) []string {
	out := []string{}
	if strings.EqualFold(strings.TrimSpace(strings.Join(lines, "\n")), "(none)") {
		return out
	}
	for _, line := range lines {
		out = appendOptionLine(out, line)
	}
	return out
}

func appendOptionLine(out []string, line string) []string {
	line = strings.TrimSpace(line)
	if line == "" || isNone(line) {
		return out
	}

	if parts := splitAtLabels(line); len(parts) > 1 {
		for _, p := range parts {
			if opt, ok := cleanOption(p); ok {
				out = append(out, opt)
			}
		}
		return out
	}

	for _, p := range optionDelimiter.Split(line, -1) {
		if opt, ok := cleanOption(p); ok {
			out = append(out, opt)
		}
	}
	return out
}

// splitAtLabels cuts line in front of every label marker such as "A)"
// or "C:", keeping the marker at the start of its fragment. Empty
// fragments are dropped.
func splitAtLabels(line string) []string {
	var parts []string
	start := 0
	for _, loc := range labelMarker.FindAllStringIndex(line, -1) {
		if loc[0] > start {
			parts = append(parts, line[start:loc[0]])
		}
		start = loc[0]
	}
	parts = append(parts, line[start:])

	nonEmpty := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return nonEmpty
}

// cleanOption strips bullets and a leading letter label from a single
// fragment. It reports false for fragments that carry no option.
func cleanOption(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}
	s = leadingBullets.ReplaceAllString(s, "")
	if s == "" || isNone(s) || placeholder.MatchString(s) {
		return "", false
	}
	if m := leadingLabel.FindStringSubmatch(s); m != nil {
		if body := strings.TrimSpace(m[2]); body != "" {
			return body, true
		}
		return m[1], true
	}
	return strings.TrimSpace(s), true
}
