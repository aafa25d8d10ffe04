package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func teammateScenario(t *testing.T) *Scenario {
	t.Helper()
	s, err := New("Missed deadline", "A teammate slipped", "s1", []Step{
		{
			ID:        "s1",
			Situation: "Your teammate missed a deadline",
			Choices: []Choice{
				{Text: "Confront them publicly", Feedback: "This embarrassed them.", NextStepID: "s2"},
				{Text: "Talk privately", Feedback: "They appreciated the discretion.", NextStepID: End},
			},
		},
		{
			ID:        "s2",
			Situation: "They are now defensive",
			Choices: []Choice{
				{Text: "Apologize", Feedback: "Relationship repaired somewhat.", NextStepID: End},
			},
		},
	})
	require.NoError(t, err)
	require.NoError(t, s.Validate())
	return s
}

func TestPlayerTalkPrivatelyFinishes(t *testing.T) {
	p := NewPlayer(teammateScenario(t))
	require.Equal(t, StatusRunning, p.Status())

	status, err := p.Select(1)
	require.NoError(t, err)
	assert.Equal(t, StatusFinished, status)

	path := p.Path()
	require.Len(t, path, 1)
	assert.Equal(t, "s1", path[0].Step.ID)
	assert.Equal(t, "Talk privately", path[0].Choice.Text)

	fb, ok := p.LastFeedback()
	assert.True(t, ok)
	assert.Equal(t, "They appreciated the discretion.", fb)
}

func TestPlayerConfrontThenApologize(t *testing.T) {
	p := NewPlayer(teammateScenario(t))

	status, err := p.Select(0)
	require.NoError(t, err)
	assert.Equal(t, StatusRunning, status)
	assert.Equal(t, "s2", p.CurrentStepID())

	status, err = p.Select(0)
	require.NoError(t, err)
	assert.Equal(t, StatusFinished, status)

	path := p.Path()
	require.Len(t, path, 2)
	assert.Equal(t, "s2", path[0].Choice.NextStepID)
	assert.Equal(t, "s2", path[1].Step.ID)

	v := p.View()
	assert.Equal(t, StatusFinished, v.Status)
	require.Len(t, v.Path, 2)
	assert.Equal(t, "Confront them publicly", v.Path[0].Choice)
	assert.Equal(t, "Apologize", v.Path[1].Choice)
	assert.Empty(t, v.Choices)
}

func TestPlayerRejectsChoicesOutsideRunning(t *testing.T) {
	p := NewPlayer(teammateScenario(t))
	_, err := p.Select(1)
	require.NoError(t, err)

	status, err := p.Select(0)
	assert.ErrorIs(t, err, ErrNotRunning)
	assert.Equal(t, StatusFinished, status)
	assert.Len(t, p.Path(), 1)
}

func TestPlayerUnknownChoiceChangesNothing(t *testing.T) {
	p := NewPlayer(teammateScenario(t))

	_, err := p.Select(5)
	assert.ErrorIs(t, err, ErrUnknownChoice)
	_, err = p.Select(-1)
	assert.ErrorIs(t, err, ErrUnknownChoice)

	assert.Equal(t, StatusRunning, p.Status())
	assert.Empty(t, p.Path())
	_, ok := p.LastFeedback()
	assert.False(t, ok)
}

func TestPlayerToleratesCycles(t *testing.T) {
	s, err := New("Loop", "Round and round", "a", []Step{
		{ID: "a", Situation: "Again?", Choices: []Choice{
			{Text: "Stay", Feedback: "Same place.", NextStepID: "a"},
			{Text: "Leave", Feedback: "Done.", NextStepID: End},
		}},
	})
	require.NoError(t, err)
	require.NoError(t, s.Validate())

	p := NewPlayer(s)
	for i := 1; i <= 10; i++ {
		status, err := p.Select(0)
		require.NoError(t, err)
		assert.Equal(t, StatusRunning, status)
		assert.Equal(t, "a", p.CurrentStepID())
		assert.Len(t, p.Path(), i)
	}

	status, err := p.Select(1)
	require.NoError(t, err)
	assert.Equal(t, StatusFinished, status)
	assert.Len(t, p.Path(), 11)
}

func TestPlayerPathMatchesTransitions(t *testing.T) {
	s, err := New("Chain", "Three rooms", "one", []Step{
		{ID: "one", Situation: "1", Choices: []Choice{{Text: "on", Feedback: "f1", NextStepID: "two"}}},
		{ID: "two", Situation: "2", Choices: []Choice{
			{Text: "back", Feedback: "f2", NextStepID: "one"},
			{Text: "on", Feedback: "f3", NextStepID: "three"},
		}},
		{ID: "three", Situation: "3", Choices: []Choice{{Text: "stop", Feedback: "f4", NextStepID: End}}},
	})
	require.NoError(t, err)

	p := NewPlayer(s)
	choices := []int{0, 0, 0, 1, 0}
	var visited []string
	for n, c := range choices {
		_, err := p.Select(c)
		require.NoError(t, err)
		require.Len(t, p.Path(), n+1)
		if p.Status() == StatusRunning {
			visited = append(visited, p.CurrentStepID())
		}
	}

	path := p.Path()
	for i := 0; i < len(visited); i++ {
		assert.Equal(t, visited[i], path[i].Choice.NextStepID)
		assert.Equal(t, visited[i], path[i+1].Step.ID)
	}
	assert.Equal(t, End, path[len(path)-1].Choice.NextStepID)
	assert.Equal(t, StatusFinished, p.Status())
}

func TestPlayerCorruptedStartIsImmediate(t *testing.T) {
	s, err := New("Broken", "Start is missing", "nowhere", []Step{
		{ID: "s1", Situation: "x", Choices: []Choice{{Text: "a", Feedback: "b", NextStepID: End}}},
	})
	require.NoError(t, err)

	p := NewPlayer(s)
	assert.Equal(t, StatusCorrupted, p.Status())
	assert.Equal(t, "nowhere", p.MissingStepID())

	_, ok := p.CurrentStep()
	assert.False(t, ok)

	v := p.View()
	assert.Equal(t, StatusCorrupted, v.Status)
	assert.NotEmpty(t, v.Error)

	_, err = p.Select(0)
	assert.ErrorIs(t, err, ErrNotRunning)
}

func TestPlayerDanglingReferenceCorrupts(t *testing.T) {
	s, err := New("Dangling", "Second step is missing", "s1", []Step{
		{ID: "s1", Situation: "x", Choices: []Choice{{Text: "go", Feedback: "went", NextStepID: "ghost"}}},
	})
	require.NoError(t, err)
	require.ErrorIs(t, s.Validate(), ErrCorruptedScenario)

	p := NewPlayer(s)
	status, err := p.Select(0)
	require.NoError(t, err)
	assert.Equal(t, StatusCorrupted, status)
	assert.Equal(t, "ghost", p.MissingStepID())
	assert.Len(t, p.Path(), 1)

	v := p.View()
	assert.Equal(t, "ghost", v.StepID)
	require.NotNil(t, v.LastFeedback)
	assert.Equal(t, "went", *v.LastFeedback)
}

func TestPlayerDoesNotMutateScenario(t *testing.T) {
	s := teammateScenario(t)
	before, err := s.MarshalJSON()
	require.NoError(t, err)

	p := NewPlayer(s)
	_, _ = p.Select(0)
	_, _ = p.Select(0)

	after, err := s.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}
