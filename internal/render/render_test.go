package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/abhisek/questiontag/internal/questiontag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestion() questiontag.Question {
	return questiontag.Question{
		Text:       "Which city is the capital of France?",
		Type:       "multiple choice",
		Options:    []string{"Paris", "Lyon"},
		Answer:     "Paris",
		Difficulty: "easy",
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, sampleQuestion()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Len(t, got, 7)
	assert.Equal(t, "Paris", got["answer"])
	assert.Equal(t, []any{"Paris", "Lyon"}, got["options"])
	assert.NoError(t, questiontag.ValidateJSON(buf.Bytes()))
}

func TestJSON_NilOptionsWrittenAsEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, questiontag.Question{}))
	assert.Contains(t, buf.String(), `"options": []`)
}

func TestJSON_NoHTMLEscaping(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, questiontag.Question{Text: "Is 1 < 2 && 3 > 2?"}))
	assert.Contains(t, buf.String(), "Is 1 < 2 && 3 > 2?")
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, sampleQuestion()))

	out := buf.String()
	for _, want := range []string{"Which city is the capital of France?", "A)", "Paris", "B)", "Lyon", "Difficulty:", "easy"} {
		assert.Contains(t, out, want)
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, sampleQuestion(), "yaml"))
	assert.Zero(t, buf.Len())
}

func TestChoiceLabel(t *testing.T) {
	assert.Equal(t, "A)", choiceLabel(0))
	assert.Equal(t, "Z)", choiceLabel(25))
	assert.Equal(t, "27)", choiceLabel(26))
}
