package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const teammateJSON = `{
  "title": "Missed deadline",
  "description": "A teammate slipped",
  "startingStepId": "s1",
  "steps": [
    {"id": "s1", "situation": "Your teammate missed a deadline", "choices": [
      {"text": "Confront them publicly", "feedback": "This embarrassed them.", "nextStepId": "s2"},
      {"text": "Talk privately", "feedback": "They appreciated the discretion.", "nextStepId": "END"}
    ]},
    {"id": "s2", "situation": "They are now defensive", "choices": [
      {"text": "Apologize", "feedback": "Relationship repaired somewhat.", "nextStepId": "END"}
    ]}
  ]
}`

func TestParseJSON(t *testing.T) {
	s, err := ParseJSON([]byte(teammateJSON))
	require.NoError(t, err)
	require.NoError(t, s.Validate())

	assert.Equal(t, "s1", s.StartingStepID)
	assert.Equal(t, []string{"s1", "s2"}, s.StepIDs())
	assert.Len(t, s.Steps["s1"].Choices, 2)
}

func TestParseJSONShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{"title":`},
		{"missing title", `{"description":"d","startingStepId":"a","steps":[{"id":"a","situation":"s","choices":[{"text":"t","feedback":"f","nextStepId":"END"}]}]}`},
		{"no steps", `{"title":"t","description":"d","startingStepId":"a","steps":[]}`},
		{"step without choices", `{"title":"t","description":"d","startingStepId":"a","steps":[{"id":"a","situation":"s","choices":[]}]}`},
		{"choice without target", `{"title":"t","description":"d","startingStepId":"a","steps":[{"id":"a","situation":"s","choices":[{"text":"t","feedback":"f"}]}]}`},
		{"step named END", `{"title":"t","description":"d","startingStepId":"END","steps":[{"id":"END","situation":"s","choices":[{"text":"t","feedback":"f","nextStepId":"END"}]}]}`},
		{"duplicate ids", `{"title":"t","description":"d","startingStepId":"a","steps":[
			{"id":"a","situation":"s","choices":[{"text":"t","feedback":"f","nextStepId":"END"}]},
			{"id":"a","situation":"s2","choices":[{"text":"t","feedback":"f","nextStepId":"END"}]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tt.body))
			assert.ErrorIs(t, err, ErrInvalidScenario)
		})
	}
}

func TestValidateReferences(t *testing.T) {
	s, err := ParseJSON([]byte(`{"title":"t","description":"d","startingStepId":"a","steps":[
		{"id":"a","situation":"s","choices":[{"text":"t","feedback":"f","nextStepId":"b"}]}]}`))
	require.NoError(t, err)

	err = s.Validate()
	require.ErrorIs(t, err, ErrCorruptedScenario)
	assert.Contains(t, err.Error(), `"b"`)
}

func TestMarshalRoundTripKeepsOrder(t *testing.T) {
	s, err := ParseJSON([]byte(teammateJSON))
	require.NoError(t, err)

	data, err := s.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, teammateJSON, string(data))
}
