// Package oracle talks to the generative model that produces every piece of
// AI content in the application. Calls are one-shot: no retry, no backoff.
package oracle

import (
	"context"
	"errors"

	"github.com/muhammadolammi/aithera/internal/models"
	"github.com/muhammadolammi/aithera/internal/scenario"
)

var (
	// ErrOracleUnavailable wraps transport and service failures.
	ErrOracleUnavailable = errors.New("oracle unavailable")
	// ErrOracleResponse wraps responses that do not match the requested schema.
	ErrOracleResponse = errors.New("oracle returned an invalid response")
)

// UserMessage is what the UI shows for any oracle failure.
const UserMessage = "The AI failed to generate a valid response. Please try again."

// ScenarioGenerator produces soft skill scenarios from a free-text description.
type ScenarioGenerator interface {
	GenerateScenario(ctx context.Context, description string) (*scenario.Scenario, error)
}

// Oracle is the full content surface used by the API.
type Oracle interface {
	ScenarioGenerator

	GenerateRoadmap(ctx context.Context, role string, year int, skillLevel string) (*models.Roadmap, error)
	GenerateInterviewQuestions(ctx context.Context, role string, interviewType models.InterviewType, company string) ([]models.InterviewQuestion, error)
	EvaluateAnswer(ctx context.Context, role, question, answer string) (*models.AnswerFeedback, error)
	GenerateCodingChallenge(ctx context.Context, role, difficulty string) (*models.CodingChallenge, error)
	EvaluateCodeSolution(ctx context.Context, challenge models.CodingChallenge, solution, language string) (*models.ChallengeFeedback, error)
	AnalyzeResume(ctx context.Context, resume models.ResumeData, jobDescription, role string) (*models.ResumeAnalysis, error)
	GenerateJobListings(ctx context.Context, role string) ([]models.JobListing, error)
	SuggestProjects(ctx context.Context, role, skills string) ([]models.ProjectSuggestion, error)
	CareerRoleDetails(ctx context.Context, role string) (*models.CareerRoleDetails, error)
	IndustryInsights(ctx context.Context, topic string) (*models.IndustryInsights, error)
	DashboardSuggestions(ctx context.Context, summary string) ([]models.DashboardSuggestion, error)
	ProgressReport(ctx context.Context, summary string) (*models.ProgressReport, error)
	AnalyzeFeedback(ctx context.Context, feedback []models.PlatformFeedback) (*models.FeedbackAnalysis, error)
	CareerGuide(ctx context.Context, topic string) (*models.CareerGuide, error)
}
