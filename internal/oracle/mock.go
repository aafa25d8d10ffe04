package oracle

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadolammi/aithera/internal/models"
	"github.com/muhammadolammi/aithera/internal/scenario"
)

// Mock returns canned content without calling any model. It is used for
// local development (USE_MOCK_LLM) and in tests.
type Mock struct {
	// Now stamps generated dates; defaults to time.Now.
	Now func() time.Time
}

func NewMock() *Mock {
	return &Mock{Now: time.Now}
}

var _ Oracle = (*Mock)(nil)

func (m *Mock) GenerateScenario(ctx context.Context, description string) (*scenario.Scenario, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOracleUnavailable, err)
	}
	return scenario.New(description, "Practice how you would respond: "+description, "s1", []scenario.Step{
		{
			ID:        "s1",
			Situation: "Your teammate missed a deadline",
			Choices: []scenario.Choice{
				{Text: "Confront them publicly", Feedback: "This embarrassed them.", NextStepID: "s2"},
				{Text: "Talk privately", Feedback: "They appreciated the discretion.", NextStepID: "s3"},
			},
		},
		{
			ID:        "s2",
			Situation: "They are now defensive",
			Choices: []scenario.Choice{
				{Text: "Apologize", Feedback: "Relationship repaired somewhat.", NextStepID: scenario.End},
				{Text: "Double down", Feedback: "The team atmosphere sours.", NextStepID: "s4"},
			},
		},
		{
			ID:        "s3",
			Situation: "They explain they were overloaded with another project",
			Choices: []scenario.Choice{
				{Text: "Offer to help re-plan the work", Feedback: "You built trust and a realistic plan.", NextStepID: scenario.End},
				{Text: "Tell them it is not your problem", Feedback: "They feel unsupported.", NextStepID: "s2"},
			},
		},
		{
			ID:        "s4",
			Situation: "Your manager asks what happened",
			Choices: []scenario.Choice{
				{Text: "Own your part and propose a fix", Feedback: "Accountability goes a long way.", NextStepID: scenario.End},
			},
		},
	})
}

func (m *Mock) GenerateRoadmap(ctx context.Context, role string, year int, skillLevel string) (*models.Roadmap, error) {
	r := &models.Roadmap{}
	for y := 1; y <= 4; y++ {
		r.Years = append(r.Years, models.Year{
			Year: y,
			Semesters: []models.Semester{
				{Name: "Fall Semester", Milestones: []models.Milestone{{
					Title:        fmt.Sprintf("%s foundations %d", role, y),
					Description:  "Build the core skills for this stage (" + skillLevel + ").",
					Technologies: []string{"Git", "Go"},
				}}},
				{Name: "Spring Semester", Milestones: []models.Milestone{{
					Title:        fmt.Sprintf("Portfolio project %d", y),
					Description:  "Ship something you can show a recruiter.",
					Technologies: []string{"Docker"},
				}}},
			},
		})
	}
	return r, nil
}

func (m *Mock) GenerateInterviewQuestions(ctx context.Context, role string, interviewType models.InterviewType, company string) ([]models.InterviewQuestion, error) {
	category := "Technical"
	if interviewType == models.InterviewBehavioral {
		category = "Behavioral"
	}
	out := make([]models.InterviewQuestion, 5)
	for i := range out {
		out[i] = models.InterviewQuestion{
			Question: fmt.Sprintf("%s question %d for a %s", interviewType, i+1, role),
			Category: category,
		}
	}
	return out, nil
}

func (m *Mock) EvaluateAnswer(ctx context.Context, role, question, answer string) (*models.AnswerFeedback, error) {
	score := 4
	if len(answer) > 80 {
		score = 7
	}
	return &models.AnswerFeedback{
		OverallScore:        score,
		Strengths:           "Clear and direct.",
		AreasForImprovement: "Use the STAR method and quantify the result.",
		SuggestedAnswer:     "Describe the situation, the task, what you did and the measurable outcome.",
	}, nil
}

func (m *Mock) GenerateCodingChallenge(ctx context.Context, role, difficulty string) (*models.CodingChallenge, error) {
	return &models.CodingChallenge{
		Title:       "Two Sum",
		Description: "Given an array of integers and a target, return the indices of the two numbers that add up to the target.",
		Examples:    []models.ChallengeExample{{Input: "[2,7,11,15], 9", Output: "[0,1]"}},
		Constraints: []string{"Exactly one solution exists."},
		Hint:        "A map from value to index gives a single pass.",
	}, nil
}

func (m *Mock) EvaluateCodeSolution(ctx context.Context, challenge models.CodingChallenge, solution, language string) (*models.ChallengeFeedback, error) {
	return &models.ChallengeFeedback{
		Correctness:       "Looks correct for the given examples.",
		Efficiency:        "O(n) time, O(n) space.",
		CodeQuality:       "Readable " + language + ".",
		SuggestedSolution: "Use a hash map keyed by value.",
	}, nil
}

func (m *Mock) AnalyzeResume(ctx context.Context, resume models.ResumeData, jobDescription, role string) (*models.ResumeAnalysis, error) {
	return &models.ResumeAnalysis{
		ATS: models.ATSFeedback{Score: 78, Suggestions: []string{
			"Include more quantifiable results in your experience bullet points.",
			"Ensure skills listed in the job description are present in your skills section.",
		}},
		Keywords: models.KeywordFeedback{
			SuggestedKeywords: []string{"CI/CD", "Docker", "Kubernetes"},
			KeywordAnalysis:   "The job description emphasizes DevOps practices.",
		},
		GeneratedSummary: fmt.Sprintf("Results-oriented %s candidate with %d listed skills.", role, len(resume.Skills)),
		Improvements: models.ResumeImprovementFeedback{
			OverallFeedback: "Strong base; show impact with metrics.",
			SectionFeedback: []models.SectionFeedback{{Section: "Experience", Feedback: "Use the STAR method."}},
		},
	}, nil
}

func (m *Mock) GenerateJobListings(ctx context.Context, role string) ([]models.JobListing, error) {
	now := m.now()
	companies := []string{"Innovate Inc.", "TechCorp", "DataWorks"}
	out := make([]models.JobListing, len(companies))
	for i, c := range companies {
		jobType := "Full-Time"
		if i%2 == 0 {
			jobType = "Internship"
		}
		out[i] = models.JobListing{
			ID:           fmt.Sprintf("job_%d", i+1),
			Title:        role,
			Company:      c,
			Location:     "Remote",
			Type:         jobType,
			Description:  "Join the team as a " + role + ".",
			Requirements: []string{"Git", "Problem solving"},
			ApplyLink:    "https://example.com/apply",
			PostedDate:   now.Format(time.DateOnly),
			Deadline:     now.AddDate(0, 0, 14+i).Format(time.DateOnly),
		}
	}
	return out, nil
}

func (m *Mock) SuggestProjects(ctx context.Context, role, skills string) ([]models.ProjectSuggestion, error) {
	return []models.ProjectSuggestion{{
		Title:             "Study group scheduler",
		Description:       "Match classmates into study groups by availability.",
		Difficulty:        "Intermediate",
		Technologies:      []string{"Go", "PostgreSQL"},
		CollaborationIdea: "Pair with a designer for the UI.",
		GithubPrompt:      "Build a study group scheduler using " + skills,
	}}, nil
}

func (m *Mock) CareerRoleDetails(ctx context.Context, role string) (*models.CareerRoleDetails, error) {
	return &models.CareerRoleDetails{
		RoleName:         role,
		Description:      "Builds and maintains software.",
		Responsibilities: []string{"Write code", "Review code"},
		RequiredSkills:   models.RequiredSkills{Technical: []string{"Go"}, Soft: []string{"Communication"}},
		CareerProgression: []models.CareerPathStep{
			{Level: "Junior " + role, Description: "Learn the codebase."},
			{Level: "Senior " + role, Description: "Own systems end to end."},
		},
		AlternativePaths: []models.AlternativeRole{{Name: "Product Manager", Reason: "Uses the same domain knowledge."}},
	}, nil
}

func (m *Mock) IndustryInsights(ctx context.Context, topic string) (*models.IndustryInsights, error) {
	return &models.IndustryInsights{
		Trends:     []models.IndustryTrend{{Title: topic + " adoption", Explanation: "More teams are investing in it."}},
		Companies:  []models.CompanyProfile{{Name: "Innovate Inc.", Description: "A startup.", Relevance: "Hiring juniors."}},
		Networking: []models.NetworkingResource{{Type: "Online Community", Name: "r/cscareerquestions", Description: "Career forum.", Link: "https://reddit.com/r/cscareerquestions"}},
	}, nil
}

func (m *Mock) DashboardSuggestions(ctx context.Context, summary string) ([]models.DashboardSuggestion, error) {
	return []models.DashboardSuggestion{
		{Title: "Practice interviews", Reasoning: "Few interviews on record.", ActionableStep: "Do one mock interview this week."},
	}, nil
}

func (m *Mock) ProgressReport(ctx context.Context, summary string) (*models.ProgressReport, error) {
	return &models.ProgressReport{
		OverallSummary:        "Steady progress.",
		KeyAchievements:       []string{"Completed milestones"},
		StrengthsDemonstrated: "Consistency.",
		AreasForFocus:         []string{"Interview practice"},
		SuggestedNextSteps:    "Schedule a mock interview.",
	}, nil
}

func (m *Mock) AnalyzeFeedback(ctx context.Context, feedback []models.PlatformFeedback) (*models.FeedbackAnalysis, error) {
	return &models.FeedbackAnalysis{
		PositiveThemes:      []string{fmt.Sprintf("%d responses reviewed", len(feedback))},
		AreasForImprovement: []string{"Loading times"},
		ActionableSuggestions: []models.ActionableSuggestion{
			{Suggestion: "Cache generated roadmaps", Reasoning: "Students regenerate often."},
		},
	}, nil
}

func (m *Mock) CareerGuide(ctx context.Context, topic string) (*models.CareerGuide, error) {
	return &models.CareerGuide{Title: topic, Content: "## " + topic + "\n\n- Start early\n- Practice often"}, nil
}

func (m *Mock) now() time.Time {
	if m.Now == nil {
		return time.Now()
	}
	return m.Now()
}
