package questiontag

// DefaultTag is the tag name the generator wraps its output in.
const DefaultTag = "Generated Question"

// Question is the structured record extracted from a tagged block.
// Every field is always present; unresolved fields keep their zero value
// and Options is never nil.
type Question struct {
	// Text is the question prompt, possibly spanning several lines.
	Text string `json:"question"`

	// Type is the free-form question type, e.g. "multiple choice".
	Type string `json:"questionType"`

	// Options holds the cleaned answer choices in source order.
	Options []string `json:"options"`

	Answer        string `json:"answer"`
	Subfield      string `json:"subfield"`
	AcademicLevel string `json:"academicLevel"`
	Difficulty    string `json:"difficulty"`
}

// Empty returns the all-defaults record.
func Empty() Question {
	return Question{Options: []string{}}
}

// Document is the intermediate classification of a payload: the leading
// header block and the labeled body sections.
type Document struct {
	// Headers maps lower-cased header names to trimmed values.
	Headers map[string]string

	// Sections maps normalized section keys to their raw lines.
	Sections map[string][]string

	// Order lists section keys in the order they were first seen.
	Order []string
}

func newDocument() *Document {
	return &Document{
		Headers:  make(map[string]string),
		Sections: make(map[string][]string),
	}
}
