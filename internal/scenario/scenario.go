// Package scenario holds the soft-skill branching scenarios: the graph model,
// its validation rules, the player that walks it and the static library.
package scenario

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// End is the nextStepId value that concludes a path.
const End = "END"

var (
	ErrInvalidScenario   = errors.New("invalid scenario")
	ErrCorruptedScenario = errors.New("scenario corrupted")
	ErrScenarioNotFound  = errors.New("scenario not found")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Choice is an edge of the graph.
type Choice struct {
	Text       string `json:"text" yaml:"text" validate:"required"`
	Feedback   string `json:"feedback" yaml:"feedback" validate:"required"`
	NextStepID string `json:"nextStepId" yaml:"nextStepId" validate:"required"`
}

// Step is a node of the graph. Choice order is display order only.
type Step struct {
	ID        string   `json:"id" yaml:"id" validate:"required,ne=END"`
	Situation string   `json:"situation" yaml:"situation" validate:"required"`
	Choices   []Choice `json:"choices" yaml:"choices" validate:"required,min=1,dive"`
}

// Scenario is a directed graph of steps. Cycles are allowed.
// A Scenario is not modified after it has been built.
type Scenario struct {
	Title          string
	Description    string
	StartingStepID string
	Steps          map[string]Step

	order []string
}

// document is the wire shape shared by the oracle response and scenario files:
// steps travel as an ordered list and are keyed by id once decoded.
type document struct {
	Title          string `json:"title" yaml:"title" validate:"required"`
	Description    string `json:"description" yaml:"description" validate:"required"`
	StartingStepID string `json:"startingStepId" yaml:"startingStepId" validate:"required"`
	Steps          []Step `json:"steps" yaml:"steps" validate:"required,min=1,dive"`
}

// New builds a scenario from an ordered list of steps. It checks the shape of
// the graph (required fields, unique step ids) but not its references; see Validate.
func New(title, description, startingStepID string, steps []Step) (*Scenario, error) {
	doc := document{
		Title:          title,
		Description:    description,
		StartingStepID: startingStepID,
		Steps:          steps,
	}
	return fromDocument(doc)
}

func fromDocument(doc document) (*Scenario, error) {
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}

	s := &Scenario{
		Title:          doc.Title,
		Description:    doc.Description,
		StartingStepID: doc.StartingStepID,
		Steps:          make(map[string]Step, len(doc.Steps)),
		order:          make([]string, 0, len(doc.Steps)),
	}
	for _, step := range doc.Steps {
		if _, dup := s.Steps[step.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate step id %q", ErrInvalidScenario, step.ID)
		}
		step.Choices = append([]Choice(nil), step.Choices...)
		s.Steps[step.ID] = step
		s.order = append(s.order, step.ID)
	}
	return s, nil
}

// ParseJSON decodes a scenario in the oracle's JSON shape.
func ParseJSON(data []byte) (*Scenario, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	return fromDocument(doc)
}

// ParseYAML decodes a scenario file written in YAML.
func ParseYAML(data []byte) (*Scenario, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	return fromDocument(doc)
}

// Validate checks that the starting step and every non-END nextStepId resolve
// to a step of this scenario.
func (s *Scenario) Validate() error {
	if _, ok := s.Steps[s.StartingStepID]; !ok {
		return fmt.Errorf("%w: starting step %q does not exist", ErrCorruptedScenario, s.StartingStepID)
	}
	for _, id := range s.StepIDs() {
		for i, c := range s.Steps[id].Choices {
			if c.NextStepID == End {
				continue
			}
			if _, ok := s.Steps[c.NextStepID]; !ok {
				return fmt.Errorf("%w: step %q choice %d points to unknown step %q",
					ErrCorruptedScenario, id, i, c.NextStepID)
			}
		}
	}
	return nil
}

// Step returns the step with the given id.
func (s *Scenario) Step(id string) (Step, bool) {
	step, ok := s.Steps[id]
	return step, ok
}

// StepIDs returns step ids in their original order.
func (s *Scenario) StepIDs() []string {
	if len(s.order) == len(s.Steps) {
		return append([]string(nil), s.order...)
	}
	ids := make([]string, 0, len(s.Steps))
	for id := range s.Steps {
		ids = append(ids, id)
	}
	return ids
}

func (s *Scenario) document() document {
	doc := document{
		Title:          s.Title,
		Description:    s.Description,
		StartingStepID: s.StartingStepID,
	}
	for _, id := range s.StepIDs() {
		doc.Steps = append(doc.Steps, s.Steps[id])
	}
	return doc
}

// MarshalJSON encodes the scenario in the same shape ParseJSON accepts.
func (s *Scenario) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.document())
}

// MarshalYAML encodes the scenario in the same shape ParseYAML accepts.
func (s *Scenario) MarshalYAML() (any, error) {
	return s.document(), nil
}
