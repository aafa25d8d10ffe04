package scenario

// ChoiceView is a selectable option on the current step.
type ChoiceView struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// PathEntryView is one line of the end-of-run summary.
type PathEntryView struct {
	StepID     string `json:"stepId"`
	Situation  string `json:"situation"`
	Choice     string `json:"choice"`
	Feedback   string `json:"feedback"`
	NextStepID string `json:"nextStepId"`
}

// View is what a client needs to render the player in its current state.
type View struct {
	Status       Status          `json:"status"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	StepID       string          `json:"stepId,omitempty"`
	Situation    string          `json:"situation,omitempty"`
	Choices      []ChoiceView    `json:"choices,omitempty"`
	LastFeedback *string         `json:"lastFeedback,omitempty"`
	Path         []PathEntryView `json:"path,omitempty"`
	Steps        int             `json:"steps"`

	// Error is set only when the scenario turned out to be corrupted.
	Error string `json:"error,omitempty"`
}

const corruptedMessage = "Simulation step not found. The scenario might be corrupted."

// View renders the player's state. Running views carry the situation and
// choices of the current step, finished views carry the whole path.
func (p *Player) View() View {
	v := View{
		Status:       p.status,
		Title:        p.scenario.Title,
		Description:  p.scenario.Description,
		LastFeedback: p.lastFeedback,
		Steps:        len(p.path),
	}

	switch p.status {
	case StatusRunning:
		step, _ := p.scenario.Step(p.currentStepID)
		v.StepID = step.ID
		v.Situation = step.Situation
		v.Choices = make([]ChoiceView, len(step.Choices))
		for i, c := range step.Choices {
			v.Choices[i] = ChoiceView{Index: i, Text: c.Text}
		}
	case StatusFinished:
		v.Path = make([]PathEntryView, len(p.path))
		for i, e := range p.path {
			v.Path[i] = PathEntryView{
				StepID:     e.Step.ID,
				Situation:  e.Step.Situation,
				Choice:     e.Choice.Text,
				Feedback:   e.Choice.Feedback,
				NextStepID: e.Choice.NextStepID,
			}
		}
	case StatusCorrupted:
		v.StepID = p.missingStepID
		v.Error = corruptedMessage
	}
	return v
}
