package interview

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/muhammadolammi/aithera/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	questionCalls  atomic.Int32
	challengeCalls atomic.Int32
	failType       models.InterviewType
	empty          bool
}

func (g *stubGenerator) GenerateInterviewQuestions(ctx context.Context, role string, t models.InterviewType, company string) ([]models.InterviewQuestion, error) {
	g.questionCalls.Add(1)
	if t == g.failType {
		return nil, errors.New("boom")
	}
	if g.empty {
		return nil, nil
	}
	qs := make([]models.InterviewQuestion, 5)
	for i := range qs {
		qs[i] = models.InterviewQuestion{Question: fmt.Sprintf("%s %d", t, i+1), Category: string(t)}
	}
	return qs, nil
}

func (g *stubGenerator) GenerateCodingChallenge(ctx context.Context, role, difficulty string) (*models.CodingChallenge, error) {
	g.challengeCalls.Add(1)
	return &models.CodingChallenge{Title: "Two Sum (" + difficulty + ")"}, nil
}

var t0 = time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)

func TestFullSimulationStages(t *testing.T) {
	gen := &stubGenerator{}
	s, err := Prepare(context.Background(), gen, "Backend Developer", models.InterviewFullSimulation, "", t0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, gen.questionCalls.Load())
	assert.EqualValues(t, 1, gen.challengeCalls.Load())

	snap := s.Snapshot(t0)
	assert.Equal(t, 3, snap.StageCount)
	require.NotNil(t, snap.RemainingSeconds)
	assert.Equal(t, 3600, *snap.RemainingSeconds)
	assert.Equal(t, "Behavioral Round", snap.Stage.Title)
	assert.Len(t, snap.Stage.Questions, 3)

	var titles []string
	for i := 0; i < 7; i++ {
		st, _, err := s.Current(t0)
		require.NoError(t, err)
		titles = append(titles, st.Title)
		require.NoError(t, s.Advance(t0))
	}
	assert.Equal(t, []string{
		"Behavioral Round", "Behavioral Round", "Behavioral Round",
		"Live Coding Challenge",
		"Technical Q&A", "Technical Q&A", "Technical Q&A",
	}, titles)

	assert.True(t, s.Snapshot(t0).Finished)
	assert.ErrorIs(t, s.Advance(t0), ErrFinished)
}

func TestFullSimulationFailsWhenAnyStageFails(t *testing.T) {
	gen := &stubGenerator{failType: models.InterviewTechnical}
	_, err := Prepare(context.Background(), gen, "SRE", models.InterviewFullSimulation, "", t0)
	assert.Error(t, err)
}

func TestSimulationExpires(t *testing.T) {
	s, err := Prepare(context.Background(), &stubGenerator{}, "SRE", models.InterviewFullSimulation, "", t0)
	require.NoError(t, err)

	left, timed := s.Remaining(t0.Add(45 * time.Minute))
	assert.True(t, timed)
	assert.Equal(t, 15*time.Minute, left)

	late := t0.Add(61 * time.Minute)
	snap := s.Snapshot(late)
	assert.True(t, snap.Expired)
	assert.Equal(t, 0, *snap.RemainingSeconds)
	assert.ErrorIs(t, s.Advance(late), ErrExpired)
	assert.ErrorIs(t, s.Advance(t0), ErrFinished)
}

func TestLiveCodingAssessment(t *testing.T) {
	s, err := Prepare(context.Background(), &stubGenerator{}, "SRE", models.InterviewLiveCoding, "", t0)
	require.NoError(t, err)

	st, q, err := s.Current(t0)
	require.NoError(t, err)
	assert.Equal(t, StageCoding, st.Kind)
	assert.Nil(t, q)
	assert.Equal(t, "Two Sum (Intermediate)", st.Challenge.Title)

	left, _ := s.Remaining(t0)
	assert.Equal(t, AssessmentDuration, left)
}

func TestPlainInterviewIsUntimed(t *testing.T) {
	s, err := Prepare(context.Background(), &stubGenerator{}, "SRE", models.InterviewGeneral, "", t0)
	require.NoError(t, err)

	_, timed := s.Remaining(t0.Add(10 * time.Hour))
	assert.False(t, timed)
	snap := s.Snapshot(t0)
	assert.Nil(t, snap.RemainingSeconds)
	assert.Len(t, snap.Stage.Questions, 5)
}

func TestPrepareValidation(t *testing.T) {
	gen := &stubGenerator{}
	_, err := Prepare(context.Background(), gen, "SRE", models.InterviewCompanySpecific, " ", t0)
	assert.ErrorIs(t, err, ErrCompanyRequired)

	_, err = Prepare(context.Background(), gen, "SRE", "Coffee Chat", "", t0)
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = Prepare(context.Background(), &stubGenerator{empty: true}, "SRE", models.InterviewBehavioral, "", t0)
	assert.ErrorIs(t, err, ErrNoQuestions)
}

func TestBook(t *testing.T) {
	msg, err := Book("mentor_3", "03:00 PM")
	require.NoError(t, err)
	assert.Contains(t, msg, "Maria Garcia at 03:00 PM")

	_, err = Book("mentor_3", "09:00 AM")
	assert.ErrorIs(t, err, ErrMentorUnavailable)
	_, err = Book("mentor_9", "09:00 AM")
	assert.ErrorIs(t, err, ErrMentorUnavailable)
}

func TestStore(t *testing.T) {
	st := NewStore()
	s := &Session{}
	st.Put("student_1", s)

	got, ok := st.Get("student_1")
	require.True(t, ok)
	assert.Same(t, s, got)

	st.Delete("student_1")
	_, ok = st.Get("student_1")
	assert.False(t, ok)
}
