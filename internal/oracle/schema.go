package oracle

import "google.golang.org/genai"

func object(props map[string]*genai.Schema, required ...string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeObject, Properties: props, Required: required}
}

func array(desc string, items *genai.Schema) *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Description: desc, Items: items}
}

func str(desc string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: desc}
}

func integer(desc string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeInteger, Description: desc}
}

func enum(desc string, values ...string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: desc, Enum: values}
}

func stringList(desc string) *genai.Schema { return array(desc, str("")) }

var scenarioSchema = object(map[string]*genai.Schema{
	"title":          str(""),
	"description":    str(""),
	"startingStepId": str(""),
	"steps": array("", object(map[string]*genai.Schema{
		"id":        str(""),
		"situation": str(""),
		"choices": array("", object(map[string]*genai.Schema{
			"text":       str(""),
			"feedback":   str(""),
			"nextStepId": str(""),
		}, "text", "feedback", "nextStepId")),
	}, "id", "situation", "choices")),
}, "title", "description", "startingStepId", "steps")

var roadmapSchema = object(map[string]*genai.Schema{
	"years": array("An array of 4 academic years.", object(map[string]*genai.Schema{
		"year": integer("The academic year number (e.g., 1, 2, 3, 4)."),
		"semesters": array("The semesters within the academic year, typically 'Fall' and 'Spring'.", object(map[string]*genai.Schema{
			"name": str("The name of the semester (e.g., 'Fall Semester')."),
			"milestones": array("2-3 key learning milestones for the semester.", object(map[string]*genai.Schema{
				"title":        str("The title of the milestone."),
				"description":  str("A brief description of the milestone, explaining its importance."),
				"technologies": stringList("A list of relevant technologies, frameworks, or concepts to learn."),
			}, "title", "description", "technologies")),
		}, "name", "milestones")),
	}, "year", "semesters")),
}, "years")

var questionsSchema = object(map[string]*genai.Schema{
	"questions": array("An array of exactly 5 interview questions.", object(map[string]*genai.Schema{
		"question": str("The interview question text."),
		"category": enum("The category of the question.", "Technical", "Behavioral", "System Design", "Algorithm"),
	}, "question", "category")),
}, "questions")

var answerFeedbackSchema = object(map[string]*genai.Schema{
	"overallScore":        integer("A score from 1 to 10 evaluating the answer."),
	"strengths":           str("A paragraph highlighting the strengths of the answer."),
	"areasForImprovement": str("A paragraph suggesting areas for improvement."),
	"suggestedAnswer":     str("An example of a better or more complete answer."),
}, "overallScore", "strengths", "areasForImprovement", "suggestedAnswer")

var codingChallengeSchema = object(map[string]*genai.Schema{
	"title":       str(""),
	"description": str("Detailed problem statement."),
	"examples": array("", object(map[string]*genai.Schema{
		"input":  str(""),
		"output": str(""),
	}, "input", "output")),
	"constraints": stringList(""),
	"hint":        str(""),
}, "title", "description", "examples", "constraints", "hint")

var challengeFeedbackSchema = object(map[string]*genai.Schema{
	"correctness":       str("Assessment of logical correctness."),
	"efficiency":        str("Big O time and space complexity analysis."),
	"codeQuality":       str("Review of readability, style, and best practices."),
	"suggestedSolution": str("An optimal or alternative solution."),
}, "correctness", "efficiency", "codeQuality", "suggestedSolution")

var resumeAnalysisSchema = object(map[string]*genai.Schema{
	"ats": object(map[string]*genai.Schema{
		"score":       integer("ATS compatibility score from 0 to 100."),
		"suggestions": stringList("3-4 specific suggestions to improve the ATS score."),
	}, "score", "suggestions"),
	"keywords": object(map[string]*genai.Schema{
		"suggestedKeywords": stringList("5-10 important keywords missing from the resume but present in the job description."),
		"keywordAnalysis":   str("A brief analysis of keyword usage and why the suggestions are important."),
	}, "suggestedKeywords", "keywordAnalysis"),
	"generatedSummary": str("A professionally written 2-4 sentence executive summary based on the resume content."),
	"improvements": object(map[string]*genai.Schema{
		"overallFeedback": str("A general summary of feedback for the resume."),
		"sectionFeedback": array("Specific feedback points for different resume sections.", object(map[string]*genai.Schema{
			"section":  enum("", "Summary", "Experience", "Projects", "Skills", "Education", "Formatting"),
			"feedback": str(""),
		}, "section", "feedback")),
	}, "overallFeedback", "sectionFeedback"),
}, "ats", "keywords", "generatedSummary", "improvements")

var jobListingsSchema = object(map[string]*genai.Schema{
	"jobs": array("", object(map[string]*genai.Schema{
		"id":           str(""),
		"title":        str(""),
		"company":      str(""),
		"location":     str(""),
		"type":         enum("", "Internship", "Full-Time", "Part-Time"),
		"description":  str(""),
		"requirements": stringList(""),
		"applyLink":    str("A fictional apply link."),
		"postedDate":   str("ISO 8601 date."),
		"deadline":     str("ISO 8601 date."),
	}, "id", "title", "company", "location", "type", "description", "requirements", "applyLink", "postedDate", "deadline")),
}, "jobs")

var projectSuggestionsSchema = object(map[string]*genai.Schema{
	"projects": array("", object(map[string]*genai.Schema{
		"title":             str(""),
		"description":       str(""),
		"difficulty":        enum("", "Beginner", "Intermediate", "Advanced"),
		"technologies":      stringList(""),
		"collaborationIdea": str(""),
		"githubPrompt":      str(""),
	}, "title", "description", "difficulty", "technologies", "collaborationIdea", "githubPrompt")),
}, "projects")

var careerRoleDetailsSchema = object(map[string]*genai.Schema{
	"roleName":         str(""),
	"description":      str(""),
	"responsibilities": stringList(""),
	"requiredSkills": object(map[string]*genai.Schema{
		"technical": stringList(""),
		"soft":      stringList(""),
	}, "technical", "soft"),
	"careerProgression": array("", object(map[string]*genai.Schema{
		"level":       str("e.g., 'Senior Developer', 'Tech Lead'"),
		"description": str(""),
	}, "level", "description")),
	"alternativePaths": array("", object(map[string]*genai.Schema{
		"name":   str(""),
		"reason": str(""),
	}, "name", "reason")),
}, "roleName", "description", "responsibilities", "requiredSkills", "careerProgression", "alternativePaths")

var industryInsightsSchema = object(map[string]*genai.Schema{
	"trends": array("", object(map[string]*genai.Schema{
		"title":       str(""),
		"explanation": str(""),
	}, "title", "explanation")),
	"companies": array("", object(map[string]*genai.Schema{
		"name":        str(""),
		"description": str(""),
		"relevance":   str("Why they are a company to watch."),
	}, "name", "description", "relevance")),
	"networking": array("", object(map[string]*genai.Schema{
		"type":        enum("", "Online Community", "Event / Webinar", "Professional"),
		"name":        str(""),
		"description": str(""),
		"link":        str(""),
	}, "type", "name", "description", "link")),
}, "trends", "companies", "networking")

var dashboardSuggestionsSchema = object(map[string]*genai.Schema{
	"suggestions": array("", object(map[string]*genai.Schema{
		"title":          str(""),
		"reasoning":      str(""),
		"actionableStep": str(""),
	}, "title", "reasoning", "actionableStep")),
}, "suggestions")

var progressReportSchema = object(map[string]*genai.Schema{
	"overallSummary":        str(""),
	"keyAchievements":       stringList(""),
	"strengthsDemonstrated": str(""),
	"areasForFocus":         stringList(""),
	"suggestedNextSteps":    str(""),
}, "overallSummary", "keyAchievements", "strengthsDemonstrated", "areasForFocus", "suggestedNextSteps")

var feedbackAnalysisSchema = object(map[string]*genai.Schema{
	"positiveThemes":      stringList(""),
	"areasForImprovement": stringList(""),
	"actionableSuggestions": array("", object(map[string]*genai.Schema{
		"suggestion": str(""),
		"reasoning":  str(""),
	}, "suggestion", "reasoning")),
}, "positiveThemes", "areasForImprovement", "actionableSuggestions")

var careerGuideSchema = object(map[string]*genai.Schema{
	"title":   str(""),
	"content": str("Markdown body of the guide."),
}, "title", "content")
