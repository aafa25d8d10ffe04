package scenario

import (
	"errors"
	"fmt"
)

var (
	ErrNotRunning    = errors.New("player is not running")
	ErrUnknownChoice = errors.New("unknown choice")
)

// Status is the state of a Player.
type Status string

const (
	StatusRunning   Status = "running"
	StatusFinished  Status = "finished"
	StatusCorrupted Status = "corrupted"
)

// PathEntry records one decision: the step it was made on and the choice taken.
type PathEntry struct {
	Step   Step
	Choice Choice
}

// Player walks a Scenario one choice at a time. It is not safe for concurrent
// use; callers that share a Player must serialize access.
type Player struct {
	scenario *Scenario

	currentStepID string
	path          []PathEntry
	status        Status
	lastFeedback  *string

	// missingStepID is the unresolvable reference that put the player in StatusCorrupted.
	missingStepID string
}

// NewPlayer starts a playthrough at the scenario's starting step. A starting
// step that does not exist leaves the player corrupted before any choice.
func NewPlayer(s *Scenario) *Player {
	p := &Player{
		scenario:      s,
		currentStepID: s.StartingStepID,
		status:        StatusRunning,
	}
	if _, ok := s.Step(s.StartingStepID); !ok {
		p.corrupt(s.StartingStepID)
	}
	return p
}

func (p *Player) corrupt(missing string) {
	p.status = StatusCorrupted
	p.missingStepID = missing
}

func (p *Player) Scenario() *Scenario { return p.scenario }

func (p *Player) Status() Status { return p.status }

// CurrentStepID is the id of the step awaiting a choice. After a corrupting
// transition it names the missing step.
func (p *Player) CurrentStepID() string { return p.currentStepID }

// CurrentStep resolves the current step. It reports false unless the player is running.
func (p *Player) CurrentStep() (Step, bool) {
	if p.status != StatusRunning {
		return Step{}, false
	}
	return p.scenario.Step(p.currentStepID)
}

// LastFeedback is the feedback of the most recent choice, if any.
func (p *Player) LastFeedback() (string, bool) {
	if p.lastFeedback == nil {
		return "", false
	}
	return *p.lastFeedback, true
}

// Path returns a copy of the decisions made so far, in traversal order.
func (p *Player) Path() []PathEntry {
	return append([]PathEntry(nil), p.path...)
}

// MissingStepID names the reference that could not be resolved.
func (p *Player) MissingStepID() string { return p.missingStepID }

// Select takes the choice at index on the current step.
func (p *Player) Select(index int) (Status, error) {
	if p.status != StatusRunning {
		return p.status, ErrNotRunning
	}
	step, ok := p.scenario.Step(p.currentStepID)
	if !ok {
		p.corrupt(p.currentStepID)
		return p.status, ErrNotRunning
	}
	if index < 0 || index >= len(step.Choices) {
		return p.status, fmt.Errorf("%w: %d (step %q has %d choices)", ErrUnknownChoice, index, step.ID, len(step.Choices))
	}

	choice := step.Choices[index]
	p.path = append(p.path, PathEntry{Step: step, Choice: choice})
	feedback := choice.Feedback
	p.lastFeedback = &feedback

	if choice.NextStepID == End {
		p.status = StatusFinished
		return p.status, nil
	}

	p.currentStepID = choice.NextStepID
	if _, ok := p.scenario.Step(p.currentStepID); !ok {
		p.corrupt(p.currentStepID)
	}
	return p.status, nil
}
