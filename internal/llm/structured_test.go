package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pillarDoc struct {
	Version string   `json:"version"`
	Names   []string `json:"names"`
}

func TestExtractJSON_PlainObject(t *testing.T) {
	doc, err := ExtractJSON[pillarDoc](`{"version":"v1","names":["a","b"]}`, nil)
	require.NoError(t, err)
	assert.Equal(t, "v1", doc.Version)
	assert.Equal(t, []string{"a", "b"}, doc.Names)
}

func TestExtractJSON_StripsCodeFences(t *testing.T) {
	raw := "Here you go:\n```json\n{\"version\":\"v1\",\"names\":[]}\n```\nHope that helps!"
	doc, err := ExtractJSON[pillarDoc](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "v1", doc.Version)
}

func TestExtractJSON_IgnoresSurroundingProse(t *testing.T) {
	raw := `Sure. The result is {"version":"v2","names":["x"]} as requested.`
	doc, err := ExtractJSON[pillarDoc](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "v2", doc.Version)
}

func TestExtractJSON_BracesInsideStringsDoNotConfuseExtraction(t *testing.T) {
	raw := `{"version":"v1","names":["curly } brace", "escaped \" quote"]}`
	doc, err := ExtractJSON[pillarDoc](raw, nil)
	require.NoError(t, err)
	require.Len(t, doc.Names, 2)
	assert.Equal(t, "curly } brace", doc.Names[0])
}

func TestExtractJSON_StripsComments(t *testing.T) {
	raw := `{
		"version": "v1", // schema tag
		/* the pillar names */
		"names": ["a"]
	}`
	doc, err := ExtractJSON[pillarDoc](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, doc.Names)
}

func TestExtractJSON_NoObjectIsInvalidOutput(t *testing.T) {
	_, err := ExtractJSON[pillarDoc]("I could not produce JSON, sorry.", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_MalformedIsInvalidOutput(t *testing.T) {
	_, err := ExtractJSON[pillarDoc](`{"version": "v1",`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorRejection(t *testing.T) {
	validator := func(d pillarDoc) error {
		if len(d.Names) == 0 {
			return errors.New("names must not be empty")
		}
		return nil
	}

	_, err := ExtractJSON[pillarDoc](`{"version":"v1","names":[]}`, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)

	doc, err := ExtractJSON[pillarDoc](`{"version":"v1","names":["a"]}`, validator)
	require.NoError(t, err)
	assert.Equal(t, "v1", doc.Version)
}
