package questiontag

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJSON_ParsedRecords(t *testing.T) {
	inputs := []string{
		fullBlock,
		"no tag at all",
		"<Generated Question>{{Options:\n(none)}}",
	}
	for _, in := range inputs {
		q, _ := ParseTagged(in, DefaultTag)
		assert.NoError(t, q.Validate(), "input %q", in)
	}
}

func TestValidateJSON_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"malformed", `{not json}`},
		{"missing key", `{"question":"","questionType":"","options":[],"answer":"","subfield":"","academicLevel":""}`},
		{"null options", `{"question":"","questionType":"","options":null,"answer":"","subfield":"","academicLevel":"","difficulty":""}`},
		{"empty option", `{"question":"","questionType":"","options":[""],"answer":"","subfield":"","academicLevel":"","difficulty":""}`},
		{"extra key", `{"question":"","questionType":"","options":[],"answer":"","subfield":"","academicLevel":"","difficulty":"","hint":""}`},
		{"wrong type", `{"question":1,"questionType":"","options":[],"answer":"","subfield":"","academicLevel":"","difficulty":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSON(json.RawMessage(tt.raw))
			require.Error(t, err)
			var sErr *SchemaError
			assert.True(t, errors.As(err, &sErr), "expected *SchemaError, got %T", err)
		})
	}
}

func TestQuestion_JSONKeys(t *testing.T) {
	raw, err := json.Marshal(Empty())
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"question":"","questionType":"","options":[],"answer":"","subfield":"","academicLevel":"","difficulty":""}`,
		string(raw))
}
