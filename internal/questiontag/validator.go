package questiontag

import (
	"fmt"
	"strings"
)

// Validator checks a parsed record. Implementations are stateless.
type Validator interface {
	// Name returns a short identifier used in error messages.
	Name() string

	// Validate returns nil if the record passes.
	Validate(q *Question) *ValidationError
}

// ValidationError describes why a record failed a check.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// DefaultValidators is the chain run in strict mode.
func DefaultValidators() []Validator {
	return []Validator{
		&RequiredValidator{},
		&ChoiceValidator{},
	}
}

// Check runs validators in order and returns the first failure.
func Check(q *Question, validators []Validator) error {
	for _, v := range validators {
		if err := v.Validate(q); err != nil {
			return err
		}
	}
	return nil
}

// RequiredValidator checks that the question and answer were resolved.
type RequiredValidator struct{}

func (v *RequiredValidator) Name() string { return "required" }

func (v *RequiredValidator) Validate(q *Question) *ValidationError {
	if q.Text == "" {
		return &ValidationError{Validator: v.Name(), Message: "question is empty"}
	}
	if q.Answer == "" {
		return &ValidationError{Validator: v.Name(), Message: "answer is empty"}
	}
	return nil
}

// ChoiceValidator checks option lists: no duplicates, and a
// multiple-choice question must carry at least two options.
type ChoiceValidator struct{}

func (v *ChoiceValidator) Name() string { return "choices" }

func (v *ChoiceValidator) Validate(q *Question) *ValidationError {
	seen := make(map[string]bool, len(q.Options))
	for _, o := range q.Options {
		key := strings.ToLower(o)
		if seen[key] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("duplicate option %q", o),
			}
		}
		seen[key] = true
	}

	if isMultipleChoice(q.Type) && len(q.Options) < 2 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("multiple choice question has %d options", len(q.Options)),
		}
	}
	return nil
}

func isMultipleChoice(questionType string) bool {
	key := NormalizeKey(questionType)
	return key == "mcq" || strings.Contains(key, "multiple_choice") || key == "multiplechoice"
}
