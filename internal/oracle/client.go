package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/muhammadolammi/aithera/internal/metrics"
	"github.com/muhammadolammi/aithera/internal/models"
	"github.com/muhammadolammi/aithera/internal/scenario"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// ContentGenerator is the part of *genai.Models the client uses.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client implements Oracle on top of the Gemini API in JSON mode.
type Client struct {
	models ContentGenerator
	model  string
	log    *zap.Logger
}

// NewClient connects to the Gemini API with an API key.
func NewClient(ctx context.Context, apiKey, model string, log *zap.Logger) (*Client, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return NewClientWithGenerator(c.Models, model, log), nil
}

func NewClientWithGenerator(gen ContentGenerator, model string, log *zap.Logger) *Client {
	return &Client{models: gen, model: model, log: log.Named("oracle")}
}

// call sends one prompt constrained by schema and decodes the JSON answer into out.
func (c *Client) call(ctx context.Context, feature, prompt string, schema *genai.Schema, out any) error {
	start := time.Now()
	defer func() { metrics.OracleLatency.WithLabelValues(feature).Observe(time.Since(start).Seconds()) }()

	res, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		metrics.OracleRequests.WithLabelValues(feature, "unavailable").Inc()
		c.log.Error("Error calling Gemini API", zap.String("feature", feature), zap.Error(err))
		return fmt.Errorf("%w: %s: %v", ErrOracleUnavailable, feature, err)
	}

	text := CleanJSON(res.Text())
	if text == "" {
		metrics.OracleRequests.WithLabelValues(feature, "invalid").Inc()
		return fmt.Errorf("%w: %s: empty response", ErrOracleResponse, feature)
	}
	dec := json.NewDecoder(strings.NewReader(text))
	if err := dec.Decode(out); err != nil {
		metrics.OracleRequests.WithLabelValues(feature, "invalid").Inc()
		c.log.Warn("Gemini response did not decode", zap.String("feature", feature), zap.Error(err))
		return fmt.Errorf("%w: %s: %v", ErrOracleResponse, feature, err)
	}
	if dec.More() {
		metrics.OracleRequests.WithLabelValues(feature, "invalid").Inc()
		c.log.Warn("Gemini response has trailing data", zap.String("feature", feature))
		return fmt.Errorf("%w: %s: trailing data after JSON value", ErrOracleResponse, feature)
	}

	metrics.OracleRequests.WithLabelValues(feature, "ok").Inc()
	return nil
}

func (c *Client) GenerateScenario(ctx context.Context, description string) (*scenario.Scenario, error) {
	var raw json.RawMessage
	if err := c.call(ctx, "scenario", scenarioPrompt(description), scenarioSchema, &raw); err != nil {
		return nil, err
	}
	s, err := scenario.ParseJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: scenario: %v", ErrOracleResponse, err)
	}
	return s, nil
}

func (c *Client) GenerateRoadmap(ctx context.Context, role string, year int, skillLevel string) (*models.Roadmap, error) {
	var out models.Roadmap
	if err := c.call(ctx, "roadmap", roadmapPrompt(role, year, skillLevel), roadmapSchema, &out); err != nil {
		return nil, err
	}
	if len(out.Years) == 0 {
		return nil, fmt.Errorf("%w: roadmap: no years", ErrOracleResponse)
	}
	return &out, nil
}

func (c *Client) GenerateInterviewQuestions(ctx context.Context, role string, interviewType models.InterviewType, company string) ([]models.InterviewQuestion, error) {
	var out struct {
		Questions []models.InterviewQuestion `json:"questions"`
	}
	if err := c.call(ctx, "interview_questions", questionsPrompt(role, interviewType, company), questionsSchema, &out); err != nil {
		return nil, err
	}
	return out.Questions, nil
}

func (c *Client) EvaluateAnswer(ctx context.Context, role, question, answer string) (*models.AnswerFeedback, error) {
	var out models.AnswerFeedback
	if err := c.call(ctx, "evaluate_answer", evaluateAnswerPrompt(role, question, answer), answerFeedbackSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GenerateCodingChallenge(ctx context.Context, role, difficulty string) (*models.CodingChallenge, error) {
	var out models.CodingChallenge
	if err := c.call(ctx, "coding_challenge", codingChallengePrompt(role, difficulty), codingChallengeSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) EvaluateCodeSolution(ctx context.Context, challenge models.CodingChallenge, solution, language string) (*models.ChallengeFeedback, error) {
	prompt, err := evaluateCodePrompt(challenge, solution, language)
	if err != nil {
		return nil, err
	}
	var out models.ChallengeFeedback
	if err := c.call(ctx, "evaluate_code", prompt, challengeFeedbackSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AnalyzeResume(ctx context.Context, resume models.ResumeData, jobDescription, role string) (*models.ResumeAnalysis, error) {
	prompt, err := resumeAnalysisPrompt(resume, jobDescription, role)
	if err != nil {
		return nil, err
	}
	var out models.ResumeAnalysis
	if err := c.call(ctx, "resume_analysis", prompt, resumeAnalysisSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GenerateJobListings(ctx context.Context, role string) ([]models.JobListing, error) {
	var out struct {
		Jobs []models.JobListing `json:"jobs"`
	}
	if err := c.call(ctx, "job_listings", jobListingsPrompt(role), jobListingsSchema, &out); err != nil {
		return nil, err
	}
	return out.Jobs, nil
}

func (c *Client) SuggestProjects(ctx context.Context, role, skills string) ([]models.ProjectSuggestion, error) {
	var out struct {
		Projects []models.ProjectSuggestion `json:"projects"`
	}
	if err := c.call(ctx, "project_suggestions", projectsPrompt(role, skills), projectSuggestionsSchema, &out); err != nil {
		return nil, err
	}
	return out.Projects, nil
}

func (c *Client) CareerRoleDetails(ctx context.Context, role string) (*models.CareerRoleDetails, error) {
	var out models.CareerRoleDetails
	if err := c.call(ctx, "career_role", careerRolePrompt(role), careerRoleDetailsSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) IndustryInsights(ctx context.Context, topic string) (*models.IndustryInsights, error) {
	var out models.IndustryInsights
	if err := c.call(ctx, "industry_insights", industryPrompt(topic), industryInsightsSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DashboardSuggestions(ctx context.Context, summary string) ([]models.DashboardSuggestion, error) {
	var out struct {
		Suggestions []models.DashboardSuggestion `json:"suggestions"`
	}
	if err := c.call(ctx, "dashboard_suggestions", dashboardPrompt(summary), dashboardSuggestionsSchema, &out); err != nil {
		return nil, err
	}
	return out.Suggestions, nil
}

func (c *Client) ProgressReport(ctx context.Context, summary string) (*models.ProgressReport, error) {
	var out models.ProgressReport
	if err := c.call(ctx, "progress_report", progressReportPrompt(summary), progressReportSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AnalyzeFeedback(ctx context.Context, feedback []models.PlatformFeedback) (*models.FeedbackAnalysis, error) {
	prompt, err := feedbackAnalysisPrompt(feedback)
	if err != nil {
		return nil, err
	}
	var out models.FeedbackAnalysis
	if err := c.call(ctx, "feedback_analysis", prompt, feedbackAnalysisSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CareerGuide(ctx context.Context, topic string) (*models.CareerGuide, error) {
	var out models.CareerGuide
	if err := c.call(ctx, "career_guide", careerGuidePrompt(topic), careerGuideSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
