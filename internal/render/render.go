// Package render writes parsed question records for humans and tools.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/questiontag/internal/questiontag"
	"github.com/abhisek/questiontag/internal/ui/theme"
)

// Write renders q to w in the given format ("json" or "text").
func Write(w io.Writer, q questiontag.Question, format string) error {
	switch format {
	case questiontag.FormatJSON, "":
		return JSON(w, q)
	case questiontag.FormatText:
		return Text(w, q)
	default:
		return fmt.Errorf("unknown output format: %q", format)
	}
}

// JSON writes q as indented JSON followed by a newline.
func JSON(w io.Writer, q questiontag.Question) error {
	if q.Options == nil {
		q.Options = []string{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(q); err != nil {
		return fmt.Errorf("encode question: %w", err)
	}
	return nil
}

// Text writes a styled, human readable view of q.
func Text(w io.Writer, q questiontag.Question) error {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Generated Question"))
	b.WriteString("\n\n")
	b.WriteString(valueOrDim(q.Text))
	b.WriteString("\n")

	if len(q.Options) > 0 {
		b.WriteString("\n")
		for i, opt := range q.Options {
			fmt.Fprintf(&b, "  %s %s\n", theme.Marker.Render(choiceLabel(i)), theme.Body.Render(opt))
		}
	}

	b.WriteString("\n")
	fields := []struct{ label, value string }{
		{"Type", q.Type},
		{"Answer", q.Answer},
		{"Subfield", q.Subfield},
		{"Academic level", q.AcademicLevel},
		{"Difficulty", q.Difficulty},
	}
	for _, f := range fields {
		fmt.Fprintf(&b, "%s %s\n", theme.Label.Render(f.label+":"), valueOrDim(f.value))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// choiceLabel returns "A)", "B)", ... and falls back to numbers past Z.
func choiceLabel(i int) string {
	if i < 26 {
		return string(rune('A'+i)) + ")"
	}
	return fmt.Sprintf("%d)", i+1)
}

func valueOrDim(s string) string {
	if s == "" {
		return theme.Dim.Render("(none)")
	}
	return theme.Body.Render(s)
}
