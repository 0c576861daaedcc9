package questiontag

import (
	"regexp"
	"strings"
)

var (
	nonAlnumRun    = regexp.MustCompile(`[^a-z0-9]+`)
	sectionPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9 _-]*):(.*)$`)
)

// NormalizeKey folds a section label to snake case:
// "Question Type", "question-type" and "QUESTION_TYPE" all become
// "question_type".
func NormalizeKey(label string) string {
	key := nonAlnumRun.ReplaceAllString(strings.ToLower(label), "_")
	return strings.Trim(key, "_")
}

// reservedKeys are the section keys that end the header region.
var reservedKeys = map[string]bool{
	"question":       true,
	"question_type":  true,
	"questiontype":   true,
	"type":           true,
	"options":        true,
	"answer":         true,
	"subfield":       true,
	"subfields":      true,
	"academic":       true,
	"academic_level": true,
	"academiclevel":  true,
	"difficulty":     true,
}

// sectionHeader reports whether line opens a section and returns the
// normalized key and the trimmed text after the colon.
func sectionHeader(line string) (key, rest string, ok bool) {
	m := sectionPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", "", false
	}
	key = NormalizeKey(m[1])
	if key == "" {
		return "", "", false
	}
	return key, strings.TrimSpace(m[2]), true
}

// sectionParser accumulates body lines under the most recent section.
type sectionParser struct {
	doc    *Document
	active string
}

func (p *sectionParser) open(key, rest string) {
	if _, ok := p.doc.Sections[key]; !ok {
		p.doc.Sections[key] = []string{}
		p.doc.Order = append(p.doc.Order, key)
	}
	p.active = key
	if rest != "" {
		p.doc.Sections[key] = append(p.doc.Sections[key], rest)
	}
}

func (p *sectionParser) feed(line string) {
	if key, rest, ok := sectionHeader(line); ok {
		p.open(key, rest)
		return
	}
	if p.active == "" {
		return
	}
	p.doc.Sections[p.active] = append(p.doc.Sections[p.active], line)
}

// SectionText joins the lines of a section with newlines and trims the
// result. Missing sections yield "".
func (d *Document) SectionText(key string) string {
	lines, ok := d.Sections[key]
	if !ok {
		return ""
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
