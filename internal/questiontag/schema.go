package questiontag

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://generated-question.json"

// SchemaDefinition is the JSON schema of a serialized Question.
var SchemaDefinition = map[string]any{
	"$schema":     "https://json-schema.org/draft/2020-12/schema",
	"title":       "generated-question",
	"description": "A question record extracted from a tagged generator block",
	"type":        "object",
	"properties": map[string]any{
		"question":     map[string]any{"type": "string"},
		"questionType": map[string]any{"type": "string"},
		"options": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string", "minLength": 1},
		},
		"answer":        map[string]any{"type": "string"},
		"subfield":      map[string]any{"type": "string"},
		"academicLevel": map[string]any{"type": "string"},
		"difficulty":    map[string]any{"type": "string"},
	},
	"required":             []any{"question", "questionType", "options", "answer", "subfield", "academicLevel", "difficulty"},
	"additionalProperties": false,
}

// SchemaError indicates a serialized record does not conform to
// SchemaDefinition.
type SchemaError struct {
	Content json.RawMessage
	Err     error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid question record: %v", e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a decoded JSON value, not Go maps with typed slices.
		defBytes, err := json.Marshal(SchemaDefinition)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// ValidateJSON checks raw JSON against SchemaDefinition.
// Returns *SchemaError on failure.
func ValidateJSON(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &SchemaError{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	s, err := compiledSchema()
	if err != nil {
		return &SchemaError{Content: raw, Err: fmt.Errorf("compile schema: %w", err)}
	}

	if err := s.Validate(parsed); err != nil {
		return &SchemaError{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

// Validate serializes q and checks it against SchemaDefinition.
func (q Question) Validate() error {
	raw, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("marshal question: %w", err)
	}
	return ValidateJSON(raw)
}
