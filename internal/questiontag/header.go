package questiontag

import (
	"regexp"
	"strings"
)

var (
	statusLinePattern = regexp.MustCompile(`(?i)^HTTP(?:/\d+(?:\.\d+)?)?\s+\d{3}\b`)
	headerPattern     = regexp.MustCompile(`^([\w-]+):(.*)$`)
)

// splitLines normalizes line endings and splits the payload into lines.
func splitLines(payload string) []string {
	lines := strings.Split(strings.ReplaceAll(payload, "\r\n", "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// parseHeaders consumes the leading header region. It returns the index
// of the first line the body parser should see. When a reserved section
// label shows up in header position, that line opens the first section
// and header parsing ends; any later header-shaped lines belong to the
// body.
func parseHeaders(lines []string, doc *Document, body *sectionParser) int {
	i := 0
	if len(lines) > 0 && statusLinePattern.MatchString(strings.TrimSpace(lines[0])) {
		i++
	}

	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			break
		}
		m := headerPattern.FindStringSubmatch(line)
		if m == nil {
			break
		}
		if reservedKeys[NormalizeKey(m[1])] {
			body.feed(lines[i])
			return i + 1
		}
		doc.Headers[strings.ToLower(m[1])] = strings.TrimSpace(m[2])
	}

	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	return i
}
