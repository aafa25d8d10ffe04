// Package models holds the content types produced by the oracle and the
// records kept for each student.
package models

import "strconv"

type Milestone struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

type Semester struct {
	Name       string      `json:"name"`
	Milestones []Milestone `json:"milestones"`
}

type Year struct {
	Year      int        `json:"year"`
	Semesters []Semester `json:"semesters"`
}

type Roadmap struct {
	Years []Year `json:"years"`
}

// MilestoneIDs lists the ids used to mark roadmap milestones complete,
// formatted as "<year>-<semester>-<title>".
func (r Roadmap) MilestoneIDs() []string {
	var ids []string
	for _, y := range r.Years {
		for _, s := range y.Semesters {
			for _, m := range s.Milestones {
				ids = append(ids, MilestoneID(y.Year, s.Name, m.Title))
			}
		}
	}
	return ids
}

func MilestoneID(year int, semester, title string) string {
	return strconv.Itoa(year) + "-" + semester + "-" + title
}

type InterviewType string

const (
	InterviewGeneral         InterviewType = "General"
	InterviewBehavioral      InterviewType = "Behavioral Focus"
	InterviewTechnical       InterviewType = "Technical Deep Dive"
	InterviewCompanySpecific InterviewType = "Company-Specific"
	InterviewLiveCoding      InterviewType = "Live Coding Assessment"
	InterviewFullSimulation  InterviewType = "Full Simulation"
)

func (t InterviewType) Valid() bool {
	switch t {
	case InterviewGeneral, InterviewBehavioral, InterviewTechnical,
		InterviewCompanySpecific, InterviewLiveCoding, InterviewFullSimulation:
		return true
	}
	return false
}

type InterviewQuestion struct {
	Question string `json:"question"`
	Category string `json:"category"`
}

type AnswerFeedback struct {
	OverallScore        int    `json:"overallScore"`
	Strengths           string `json:"strengths"`
	AreasForImprovement string `json:"areasForImprovement"`
	SuggestedAnswer     string `json:"suggestedAnswer"`
}

type ChallengeExample struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

type CodingChallenge struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Examples    []ChallengeExample `json:"examples"`
	Constraints []string           `json:"constraints"`
	Hint        string             `json:"hint"`
}

type ChallengeFeedback struct {
	Correctness       string `json:"correctness"`
	Efficiency        string `json:"efficiency"`
	CodeQuality       string `json:"codeQuality"`
	SuggestedSolution string `json:"suggestedSolution"`
}

type ATSFeedback struct {
	Score       int      `json:"score"`
	Suggestions []string `json:"suggestions"`
}

type KeywordFeedback struct {
	SuggestedKeywords []string `json:"suggestedKeywords"`
	KeywordAnalysis   string   `json:"keywordAnalysis"`
}

type SectionFeedback struct {
	Section  string `json:"section"`
	Feedback string `json:"feedback"`
}

type ResumeImprovementFeedback struct {
	OverallFeedback string            `json:"overallFeedback"`
	SectionFeedback []SectionFeedback `json:"sectionFeedback"`
}

type ResumeAnalysis struct {
	ATS              ATSFeedback               `json:"ats"`
	Keywords         KeywordFeedback           `json:"keywords"`
	GeneratedSummary string                    `json:"generatedSummary"`
	Improvements     ResumeImprovementFeedback `json:"improvements"`
}

type ProjectSuggestion struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Difficulty        string   `json:"difficulty"`
	Technologies      []string `json:"technologies"`
	CollaborationIdea string   `json:"collaborationIdea"`
	GithubPrompt      string   `json:"githubPrompt"`
}

type IndustryTrend struct {
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
}

type CompanyProfile struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Relevance   string `json:"relevance"`
}

type NetworkingResource struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type IndustryInsights struct {
	Trends     []IndustryTrend      `json:"trends"`
	Companies  []CompanyProfile     `json:"companies"`
	Networking []NetworkingResource `json:"networking"`
}

type CareerPathStep struct {
	Level       string `json:"level"`
	Description string `json:"description"`
}

type AlternativeRole struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

type RequiredSkills struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

type CareerRoleDetails struct {
	RoleName          string            `json:"roleName"`
	Description       string            `json:"description"`
	Responsibilities  []string          `json:"responsibilities"`
	RequiredSkills    RequiredSkills    `json:"requiredSkills"`
	CareerProgression []CareerPathStep  `json:"careerProgression"`
	AlternativePaths  []AlternativeRole `json:"alternativePaths"`
}

type JobListing struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Type         string   `json:"type"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	ApplyLink    string   `json:"applyLink"`
	PostedDate   string   `json:"postedDate"`
	Deadline     string   `json:"deadline"`
}

type DashboardSuggestion struct {
	Title          string `json:"title"`
	Reasoning      string `json:"reasoning"`
	ActionableStep string `json:"actionableStep"`
}

type ProgressReport struct {
	OverallSummary        string   `json:"overallSummary"`
	KeyAchievements       []string `json:"keyAchievements"`
	StrengthsDemonstrated string   `json:"strengthsDemonstrated"`
	AreasForFocus         []string `json:"areasForFocus"`
	SuggestedNextSteps    string   `json:"suggestedNextSteps"`
}

type ActionableSuggestion struct {
	Suggestion string `json:"suggestion"`
	Reasoning  string `json:"reasoning"`
}

type FeedbackAnalysis struct {
	PositiveThemes        []string               `json:"positiveThemes"`
	AreasForImprovement   []string               `json:"areasForImprovement"`
	ActionableSuggestions []ActionableSuggestion `json:"actionableSuggestions"`
}

type CareerGuide struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
