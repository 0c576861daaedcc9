package questiontag

import "strings"

// ParseDocument classifies payload lines into headers and sections.
func ParseDocument(payload string) *Document {
	doc := newDocument()
	if strings.TrimSpace(payload) == "" {
		return doc
	}

	lines := splitLines(payload)
	body := &sectionParser{doc: doc}
	for _, line := range lines[parseHeaders(lines, doc, body):] {
		body.feed(line)
	}
	return doc
}

// Parse builds the Question record from an extracted payload. Body
// sections take precedence over headers; an empty payload yields Empty().
func Parse(payload string) Question {
	if strings.TrimSpace(payload) == "" {
		return Empty()
	}
	return ParseDocument(payload).Question()
}

// ParseTagged extracts the tag payload from text and parses it. The
// boolean reports whether the tag was found.
func ParseTagged(text, tag string) (Question, bool) {
	payload, ok := Extract(text, tag)
	if !ok {
		return Empty(), false
	}
	return Parse(payload), true
}

// Question resolves the seven record fields from the document.
func (d *Document) Question() Question {
	q := Empty()
	q.Text = d.SectionText("question")
	q.Type = firstNonEmpty(
		d.header("x-question-type"),
		d.header("x-questiontype"),
		d.header("question-type"),
		d.SectionText("question_type"),
		d.SectionText("questiontype"),
		d.SectionText("type"),
	)
	if lines, ok := d.Sections["options"]; ok {
		q.Options = ParseOptions(lines)
	}
	q.Answer = firstNonEmpty(
		d.SectionText("answer"),
		d.header("x-answer"),
		d.header("answer"),
	)
	q.Subfield = firstNonEmpty(
		d.SectionText("subfield"),
		d.SectionText("subfields"),
		d.header("x-subfield"),
		d.header("subfield"),
	)
	q.AcademicLevel = firstNonEmpty(
		d.SectionText("academic_level"),
		d.SectionText("academic"),
		d.SectionText("academiclevel"),
		d.header("x-academic-level"),
		d.header("x-academic"),
		d.header("academic-level"),
	)
	q.Difficulty = firstNonEmpty(
		d.SectionText("difficulty"),
		d.header("x-difficulty"),
		d.header("difficulty"),
	)
	return q
}

func (d *Document) header(name string) string {
	return strings.TrimSpace(d.Headers[name])
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
