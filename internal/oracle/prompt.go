package oracle

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/muhammadolammi/aithera/internal/models"
)

func scenarioPrompt(description string) string {
	return fmt.Sprintf(`Create a branching, text-based soft skill simulation for the following scenario: %q. The simulation should have a title, description, a starting step ID, and a series of steps. Each step must have a situation and 2-3 choices. Each choice needs text, immediate feedback, and a nextStepId. One path should lead to a positive outcome, others less so. Use "END" as the nextStepId to conclude a path. Every nextStepId that is not "END" must be the id of one of the steps. Create at least 4-5 steps in total to form a meaningful scenario.`, description)
}

func roadmapPrompt(role string, year int, skillLevel string) string {
	return fmt.Sprintf(`Generate a 4-year learning roadmap for a student aiming for a %q role, who is currently in year %d and has a %q skill level. Focus on practical skills and portfolio-worthy milestones for each semester. Provide 2-3 milestones per semester.`, role, year, skillLevel)
}

func questionsPrompt(role string, interviewType models.InterviewType, company string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `Generate 5 interview questions for a student interviewing for a %q position. The interview type is %q.`, role, interviewType)
	if company != "" {
		fmt.Fprintf(&b, ` The interview is specifically for the company: %q. Tailor questions accordingly.`, company)
	}
	return b.String()
}

func evaluateAnswerPrompt(role, question, answer string) string {
	return fmt.Sprintf("Evaluate the following answer to an interview question for a %q role.\n\nQuestion: %q\n\nAnswer: %q\n\nProvide a score from 1-10, strengths, areas for improvement, and a suggested better answer.", role, question, answer)
}

func codingChallengePrompt(role, difficulty string) string {
	return fmt.Sprintf(`Generate a coding challenge suitable for a student preparing for a %q role. The difficulty should be %q. Provide a title, detailed description, examples, constraints, and a hint.`, role, difficulty)
}

func evaluateCodePrompt(challenge models.CodingChallenge, solution, language string) (string, error) {
	data, err := json.Marshal(challenge)
	if err != nil {
		return "", fmt.Errorf("marshal challenge: %w", err)
	}
	return fmt.Sprintf("Evaluate the following code solution in %s for the given challenge.\n\nChallenge: %s\n\nSolution:\n```%s\n%s\n```\n\nProvide feedback on correctness, efficiency (Big O), code quality, and a suggested optimal solution.",
		language, data, strings.ToLower(language), solution), nil
}

func resumeAnalysisPrompt(resume models.ResumeData, jobDescription, role string) (string, error) {
	data, err := json.Marshal(resume)
	if err != nil {
		return "", fmt.Errorf("marshal resume: %w", err)
	}
	return fmt.Sprintf("Analyze the following resume for a %q position against the provided job description. Provide an ATS score, keyword suggestions, a generated summary, and section-by-section improvement feedback.\n\nJob Description:\n%s\n\nResume Data:\n%s",
		role, jobDescription, data), nil
}

func jobListingsPrompt(role string) string {
	return fmt.Sprintf(`Generate a list of 8 fictional but realistic job/internship listings for a student looking for a %q position. Provide diverse companies, locations, and types (Full-Time, Internship). Ensure each has a unique ID, a posted date, and a deadline within the next month.`, role)
}

func projectsPrompt(role, skills string) string {
	return fmt.Sprintf(`Suggest 3 unique portfolio projects for a student targeting a %q role with the following skills: %s. For each project, provide a title, description, difficulty, technologies, a collaboration idea, and a GitHub prompt.`, role, skills)
}

func careerRolePrompt(role string) string {
	return fmt.Sprintf(`Provide a detailed breakdown for the career role of a %q. Include a role description, key responsibilities, required technical and soft skills, a typical career progression path, and alternative career paths.`, role)
}

func industryPrompt(topic string) string {
	return fmt.Sprintf(`Provide industry insights for the topic: %q. Include 3 emerging trends, 3 interesting companies to watch with their relevance, and 3 networking resources (e.g., communities, events).`, topic)
}

func dashboardPrompt(summary string) string {
	return "Based on this student's progress summary, generate 3 personalized and actionable suggestions to help them improve.\n\nSummary:\n" + summary
}

func progressReportPrompt(summary string) string {
	return "Based on the following activity data, generate a comprehensive progress report. Provide an overall summary, key achievements, strengths demonstrated, areas for focus, and suggested next steps.\n\nData:\n" + summary
}

func feedbackAnalysisPrompt(feedback []models.PlatformFeedback) (string, error) {
	data, err := json.Marshal(feedback)
	if err != nil {
		return "", fmt.Errorf("marshal feedback: %w", err)
	}
	return "Analyze the following user feedback for a student career platform. Identify the main positive themes, areas for improvement, and generate 3 concrete, actionable suggestions for the development team with reasoning.\n\nFeedback Data:\n" + string(data), nil
}

func careerGuidePrompt(topic string) string {
	return fmt.Sprintf(`Write a concise and helpful career guide for a student on the topic: %q. Use markdown for formatting, including headings, bullet points, and bold text to make it easy to read and actionable.`, topic)
}
