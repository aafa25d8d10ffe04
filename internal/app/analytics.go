package app

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/muhammadolammi/aithera/internal/models"
)

// InstitutionStats is the principal's overview across all students.
type InstitutionStats struct {
	TotalStudents        int                              `json:"totalStudents"`
	TotalTeachers        int                              `json:"totalTeachers"`
	AvgInterviewScore    float64                          `json:"avgInterviewScore"`
	TotalApplications    int                              `json:"totalApplications"`
	ApplicationsByStatus map[models.ApplicationStatus]int `json:"applicationStatusCounts"`
	TotalChallenges      int                              `json:"totalChallenges"`
}

func (d *Directory) Stats() InstitutionStats {
	d.mu.RLock()
	defer d.mu.RUnlock()

	st := InstitutionStats{
		TotalStudents:        len(d.students),
		TotalTeachers:        len(d.teachers),
		ApplicationsByStatus: make(map[models.ApplicationStatus]int),
	}
	var scoreSum, interviews int
	for _, s := range d.students {
		for _, i := range s.InterviewHistory {
			scoreSum += i.Feedback.OverallScore
			interviews++
		}
		for _, a := range s.Applications {
			st.ApplicationsByStatus[a.Status]++
			st.TotalApplications++
		}
		st.TotalChallenges += len(s.ChallengeHistory)
	}
	if interviews > 0 {
		st.AvgInterviewScore = float64(scoreSum) / float64(interviews)
	}
	return st
}

// StudentAnalytics is the progress overview shown on a student dashboard.
type StudentAnalytics struct {
	TotalMilestones     int            `json:"totalMilestones"`
	CompletedMilestones int            `json:"completedMilestones"`
	RoadmapProgress     float64        `json:"roadmapProgress"`
	ChallengesCompleted int            `json:"challengesCompleted"`
	ChallengesByLevel   map[string]int `json:"challengeDifficultyCounts"`
	InterviewsCompleted int            `json:"interviewsCompleted"`
	AvgInterviewScore   float64        `json:"avgInterviewScore"`
}

func Analyze(s models.Student) StudentAnalytics {
	a := StudentAnalytics{
		CompletedMilestones: len(s.CompletedMilestones),
		ChallengesCompleted: len(s.ChallengeHistory),
		ChallengesByLevel:   make(map[string]int),
		InterviewsCompleted: len(s.InterviewHistory),
	}
	if s.Roadmap != nil {
		a.TotalMilestones = len(s.Roadmap.MilestoneIDs())
	}
	if a.TotalMilestones > 0 {
		a.RoadmapProgress = float64(a.CompletedMilestones) / float64(a.TotalMilestones) * 100
	}
	for _, c := range s.ChallengeHistory {
		a.ChallengesByLevel[c.Difficulty]++
	}
	if a.InterviewsCompleted > 0 {
		var sum int
		for _, i := range s.InterviewHistory {
			sum += i.Feedback.OverallScore
		}
		a.AvgInterviewScore = float64(sum) / float64(a.InterviewsCompleted)
	}
	return a
}

// DashboardSummary renders the activity summary the oracle turns into
// suggestions. ok is false when the student has no practice history yet.
func DashboardSummary(s models.Student) (summary string, ok bool) {
	a := Analyze(s)
	if a.ChallengesCompleted == 0 && a.InterviewsCompleted == 0 {
		return "", false
	}
	levels, _ := json.Marshal(a.ChallengesByLevel)

	var themes []string
	seen := make(map[string]bool)
	for _, i := range s.InterviewHistory {
		t := i.Feedback.AreasForImprovement
		if t != "" && !seen[t] {
			seen[t] = true
			themes = append(themes, t)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "- Roadmap: %d of %d milestones completed.\n", a.CompletedMilestones, a.TotalMilestones)
	fmt.Fprintf(&b, "- Coding Challenges: %d completed. Breakdown: %s.\n", a.ChallengesCompleted, levels)
	fmt.Fprintf(&b, "- Mock Interviews: %d completed with an average score of %.1f/10.\n", a.InterviewsCompleted, a.AvgInterviewScore)
	fmt.Fprintf(&b, "- Common interview feedback themes (areas for improvement): %s\n", strings.Join(themes, "; "))
	return b.String(), true
}

// ProgressSummary renders the activity between from and to (inclusive) for a progress report.
func ProgressSummary(s models.Student, from, to time.Time) string {
	in := func(t time.Time) bool { return !t.Before(from) && !t.After(to) }

	var milestones int
	for _, m := range s.CompletedMilestones {
		if in(m.CompletedAt) {
			milestones++
		}
	}
	type challengeDetail struct {
		Title      string `json:"title"`
		Difficulty string `json:"difficulty"`
	}
	challenges := []challengeDetail{}
	for _, c := range s.ChallengeHistory {
		if in(c.CompletedAt) {
			challenges = append(challenges, challengeDetail{Title: c.Challenge.Title, Difficulty: c.Difficulty})
		}
	}
	type interviewDetail struct {
		Score           int    `json:"score"`
		ImprovementArea string `json:"improvement_areas"`
	}
	interviews := []interviewDetail{}
	for _, i := range s.InterviewHistory {
		if in(i.CompletedAt) {
			interviews = append(interviews, interviewDetail{Score: i.Feedback.OverallScore, ImprovementArea: i.Feedback.AreasForImprovement})
		}
	}
	var applications int
	for _, a := range s.Applications {
		if t, err := time.Parse(time.DateOnly, a.AppliedDate); err == nil && in(t) {
			applications++
		}
	}
	cj, _ := json.Marshal(challenges)
	ij, _ := json.Marshal(interviews)

	var b strings.Builder
	fmt.Fprintf(&b, "- Reporting Period: From %s to %s.\n", from.Format(time.DateOnly), to.Format(time.DateOnly))
	fmt.Fprintf(&b, "- Roadmap Milestones Completed: %d.\n", milestones)
	fmt.Fprintf(&b, "- Coding Challenges Completed: %d.\n", len(challenges))
	fmt.Fprintf(&b, "- Mock Interviews Completed: %d.\n", len(interviews))
	fmt.Fprintf(&b, "- Job Applications Sent: %d.\n", applications)
	fmt.Fprintf(&b, "- Details of challenges: %s.\n", cj)
	fmt.Fprintf(&b, "- Details of interviews: %s.\n", ij)
	return b.String()
}
