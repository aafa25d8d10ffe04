// Package interview sequences mock interview sessions, including the timed
// three stage Full Simulation.
package interview

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/muhammadolammi/aithera/internal/models"
	"golang.org/x/sync/errgroup"
)

const (
	SimulationDuration = 60 * time.Minute
	AssessmentDuration = 30 * time.Minute

	// ChallengeDifficulty is the level of every interview coding challenge.
	ChallengeDifficulty = "Intermediate"

	questionsPerStage = 3
)

var (
	ErrInvalidType     = errors.New("unknown interview type")
	ErrCompanyRequired = errors.New("please enter a company name for this interview type")
	ErrNoQuestions     = errors.New("could not fetch any questions, please try again")
	ErrExpired         = errors.New("interview time is up")
	ErrFinished        = errors.New("interview is finished")
)

// Generator is the part of the oracle an interview needs.
type Generator interface {
	GenerateInterviewQuestions(ctx context.Context, role string, interviewType models.InterviewType, company string) ([]models.InterviewQuestion, error)
	GenerateCodingChallenge(ctx context.Context, role, difficulty string) (*models.CodingChallenge, error)
}

type StageKind string

const (
	StageQA     StageKind = "qa"
	StageCoding StageKind = "coding"
)

type Stage struct {
	Kind      StageKind                  `json:"type"`
	Title     string                     `json:"title"`
	Questions []models.InterviewQuestion `json:"questions,omitempty"`
	Challenge *models.CodingChallenge    `json:"challenge,omitempty"`
}

// Session is one interview run. It is safe for concurrent use.
type Session struct {
	Type    models.InterviewType
	Role    string
	Company string

	mu        sync.Mutex
	stages    []Stage
	stage     int
	question  int
	startedAt time.Time
	limit     time.Duration
	finished  bool
}

// Prepare fetches everything the session needs before it starts. The Full
// Simulation fetches its three stages concurrently and fails if any fetch fails.
func Prepare(ctx context.Context, gen Generator, role string, t models.InterviewType, company string, now time.Time) (*Session, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, t)
	}
	company = strings.TrimSpace(company)
	if t == models.InterviewCompanySpecific && company == "" {
		return nil, ErrCompanyRequired
	}

	s := &Session{Type: t, Role: role, Company: company, startedAt: now}
	switch t {
	case models.InterviewFullSimulation:
		stages, err := prepareSimulation(ctx, gen, role)
		if err != nil {
			return nil, err
		}
		s.stages = stages
		s.limit = SimulationDuration
	case models.InterviewLiveCoding:
		c, err := gen.GenerateCodingChallenge(ctx, role, ChallengeDifficulty)
		if err != nil {
			return nil, err
		}
		s.stages = []Stage{{Kind: StageCoding, Title: "Live Coding Assessment", Challenge: c}}
		s.limit = AssessmentDuration
	default:
		qs, err := gen.GenerateInterviewQuestions(ctx, role, t, company)
		if err != nil {
			return nil, err
		}
		if len(qs) == 0 {
			return nil, ErrNoQuestions
		}
		s.stages = []Stage{{Kind: StageQA, Title: string(t), Questions: qs}}
	}
	return s, nil
}

func prepareSimulation(ctx context.Context, gen Generator, role string) ([]Stage, error) {
	var (
		behavioral []models.InterviewQuestion
		technical  []models.InterviewQuestion
		challenge  *models.CodingChallenge
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		qs, err := gen.GenerateInterviewQuestions(ctx, role, models.InterviewBehavioral, "")
		behavioral = qs
		return err
	})
	g.Go(func() error {
		c, err := gen.GenerateCodingChallenge(ctx, role, ChallengeDifficulty)
		challenge = c
		return err
	})
	g.Go(func() error {
		qs, err := gen.GenerateInterviewQuestions(ctx, role, models.InterviewTechnical, "")
		technical = qs
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if len(behavioral) == 0 || len(technical) == 0 {
		return nil, ErrNoQuestions
	}
	return []Stage{
		{Kind: StageQA, Title: "Behavioral Round", Questions: firstN(behavioral, questionsPerStage)},
		{Kind: StageCoding, Title: "Live Coding Challenge", Challenge: challenge},
		{Kind: StageQA, Title: "Technical Q&A", Questions: firstN(technical, questionsPerStage)},
	}, nil
}

func firstN(qs []models.InterviewQuestion, n int) []models.InterviewQuestion {
	if len(qs) > n {
		qs = qs[:n]
	}
	return append([]models.InterviewQuestion(nil), qs...)
}

// Remaining is the time left on a timed session; untimed sessions report ok=false.
func (s *Session) Remaining(now time.Time) (left time.Duration, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remainingLocked(now)
}

func (s *Session) remainingLocked(now time.Time) (time.Duration, bool) {
	if s.limit == 0 {
		return 0, false
	}
	left := s.limit - now.Sub(s.startedAt)
	if left < 0 {
		left = 0
	}
	return left, true
}

func (s *Session) expiredLocked(now time.Time) bool {
	left, timed := s.remainingLocked(now)
	return timed && left == 0
}

// Current returns the open stage and, on a Q&A stage, the open question.
func (s *Session) Current(now time.Time) (Stage, *models.InterviewQuestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkLocked(now); err != nil {
		return Stage{}, nil, err
	}
	st := s.stages[s.stage]
	if st.Kind == StageQA {
		q := st.Questions[s.question]
		return st, &q, nil
	}
	return st, nil, nil
}

// Advance moves to the next question, then to the next stage, and finishes
// the session after the last one.
func (s *Session) Advance(now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkLocked(now); err != nil {
		return err
	}
	st := s.stages[s.stage]
	if st.Kind == StageQA && s.question < len(st.Questions)-1 {
		s.question++
		return nil
	}
	if s.stage < len(s.stages)-1 {
		s.stage++
		s.question = 0
		return nil
	}
	s.finished = true
	return nil
}

func (s *Session) checkLocked(now time.Time) error {
	if s.finished {
		return ErrFinished
	}
	if s.expiredLocked(now) {
		s.finished = true
		return ErrExpired
	}
	return nil
}

// Snapshot is what a client renders for the session.
type Snapshot struct {
	Type             models.InterviewType      `json:"type"`
	Role             string                    `json:"role"`
	Stage            *Stage                    `json:"stage,omitempty"`
	StageIndex       int                       `json:"stageIndex"`
	StageCount       int                       `json:"stageCount"`
	Question         *models.InterviewQuestion `json:"question,omitempty"`
	QuestionIndex    int                       `json:"questionIndex"`
	LastInStage      bool                      `json:"lastInStage"`
	RemainingSeconds *int                      `json:"remainingSeconds,omitempty"`
	Finished         bool                      `json:"finished"`
	Expired          bool                      `json:"expired"`
}

func (s *Session) Snapshot(now time.Time) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Type:          s.Type,
		Role:          s.Role,
		StageIndex:    s.stage,
		StageCount:    len(s.stages),
		QuestionIndex: s.question,
	}
	if left, ok := s.remainingLocked(now); ok {
		secs := int(left / time.Second)
		snap.RemainingSeconds = &secs
		snap.Expired = left == 0
	}
	snap.Finished = s.finished || snap.Expired
	if snap.Finished {
		return snap
	}
	st := s.stages[s.stage]
	snap.Stage = &st
	if st.Kind == StageQA {
		q := st.Questions[s.question]
		snap.Question = &q
		snap.LastInStage = s.question == len(st.Questions)-1
	} else {
		snap.LastInStage = true
	}
	return snap
}
