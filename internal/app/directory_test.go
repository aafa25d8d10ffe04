package app

import (
	"testing"
	"time"

	"github.com/muhammadolammi/aithera/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedDirectory(t *testing.T) *Directory {
	t.Helper()
	d := NewDirectory()
	d.now = func() time.Time { return time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC) }
	return d
}

func TestSeededUsers(t *testing.T) {
	d := NewDirectory()

	users := d.Users()
	require.Len(t, users, 6)
	assert.Equal(t, "student_1", users[0].ID)
	assert.Equal(t, "Alice Johnson", users[0].Name)
	assert.Equal(t, models.RoleAdmin, users[5].Role)

	roster, err := d.Roster("teacher_1")
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, "Bob Williams", roster[1].Name)

	alice, err := d.Student("student_1")
	require.NoError(t, err)
	assert.True(t, alice.Profile.IsVerified)
	assert.Equal(t, "1-Fall Semester-Foundations of Programming", alice.CompletedMilestones[0].ID)

	_, err = d.Student("student_9")
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestStudentIsACopy(t *testing.T) {
	d := NewDirectory()

	s, err := d.Student("student_1")
	require.NoError(t, err)
	s.CompletedMilestones[0].ID = "changed"
	s.ResumeData.Skills[0] = "COBOL"

	again, err := d.Student("student_1")
	require.NoError(t, err)
	assert.NotEqual(t, "changed", again.CompletedMilestones[0].ID)
	assert.Equal(t, "JavaScript", again.ResumeData.Skills[0])
}

func TestToggleMilestone(t *testing.T) {
	d := fixedDirectory(t)
	id := models.MilestoneID(2, "Spring Semester", "APIs")

	s, err := d.ToggleMilestone("student_2", id)
	require.NoError(t, err)
	require.Len(t, s.CompletedMilestones, 1)
	assert.Equal(t, id, s.CompletedMilestones[0].ID)
	assert.Equal(t, 2024, s.CompletedMilestones[0].CompletedAt.Year())

	s, err = d.ToggleMilestone("student_2", id)
	require.NoError(t, err)
	assert.Empty(t, s.CompletedMilestones)
}

func TestHistoriesAreNewestFirst(t *testing.T) {
	d := fixedDirectory(t)
	fb := models.AnswerFeedback{OverallScore: 6}

	_, err := d.AddInterview("student_3", models.InterviewQuestion{Question: "first"}, "a", fb)
	require.NoError(t, err)
	s, err := d.AddInterview("student_3", models.InterviewQuestion{Question: "second"}, "b", fb)
	require.NoError(t, err)
	require.Len(t, s.InterviewHistory, 2)
	assert.Equal(t, "second", s.InterviewHistory[0].Question.Question)
	assert.NotEmpty(t, s.InterviewHistory[0].ID)

	s, err = d.AddChallenge("student_3", models.CodingChallenge{Title: "Two Sum"}, "Beginner", "code", models.ChallengeFeedback{})
	require.NoError(t, err)
	assert.Equal(t, "Two Sum", s.ChallengeHistory[0].Challenge.Title)
}

func TestSubmitFeedback(t *testing.T) {
	d := fixedDirectory(t)

	_, err := d.SubmitFeedback("student_1", "roadmap", 0, "")
	assert.ErrorIs(t, err, ErrInvalidRating)
	_, err = d.SubmitFeedback("student_1", "roadmap", 6, "")
	assert.ErrorIs(t, err, ErrInvalidRating)

	fb, err := d.SubmitFeedback("student_1", "roadmap", 5, "great")
	require.NoError(t, err)
	assert.Contains(t, fb.ID, "fb_")
	_, err = d.SubmitFeedback("student_2", "jobs", 2, "slow")
	require.NoError(t, err)

	all := d.AllFeedback()
	require.Len(t, all, 2)
	assert.Equal(t, "roadmap", all[0].Feature)
}

func TestTeacherManagement(t *testing.T) {
	d := NewDirectory()

	_, err := d.AddTeacher("  ")
	assert.ErrorIs(t, err, ErrInvalidName)

	tc, err := d.AddTeacher("Ms. Ada Park")
	require.NoError(t, err)
	assert.Empty(t, tc.StudentIDs)

	tc, err = d.AssignStudent(tc.ID, "student_3")
	require.NoError(t, err)
	tc, err = d.AssignStudent(tc.ID, "student_3")
	require.NoError(t, err)
	assert.Equal(t, []string{"student_3"}, tc.StudentIDs)
	assert.True(t, d.Mentors(tc.ID, "student_3"))

	_, err = d.AssignStudent(tc.ID, "student_42")
	assert.ErrorIs(t, err, ErrStudentNotFound)
	assert.Len(t, d.Teachers(), 3)
}

func TestStats(t *testing.T) {
	d := fixedDirectory(t)
	_, err := d.AddInterview("student_1", models.InterviewQuestion{}, "", models.AnswerFeedback{OverallScore: 8})
	require.NoError(t, err)
	_, err = d.AddInterview("student_2", models.InterviewQuestion{}, "", models.AnswerFeedback{OverallScore: 6})
	require.NoError(t, err)
	_, err = d.SetApplications("student_1", []models.Application{
		{Job: models.JobListing{ID: "job_1"}, Status: models.ApplicationApplied},
		{Job: models.JobListing{ID: "job_2"}, Status: models.ApplicationOffer},
	})
	require.NoError(t, err)

	st := d.Stats()
	assert.Equal(t, 3, st.TotalStudents)
	assert.Equal(t, 2, st.TotalTeachers)
	assert.InDelta(t, 7.0, st.AvgInterviewScore, 0.001)
	assert.Equal(t, 2, st.TotalApplications)
	assert.Equal(t, 1, st.ApplicationsByStatus[models.ApplicationOffer])
}

func TestDashboardSummary(t *testing.T) {
	d := fixedDirectory(t)
	s, err := d.Student("student_2")
	require.NoError(t, err)
	_, ok := DashboardSummary(s)
	assert.False(t, ok)

	s, err = d.AddChallenge("student_2", models.CodingChallenge{Title: "Two Sum"}, "Beginner", "", models.ChallengeFeedback{})
	require.NoError(t, err)
	summary, ok := DashboardSummary(s)
	require.True(t, ok)
	assert.Contains(t, summary, "Coding Challenges: 1 completed")
	assert.Contains(t, summary, `{"Beginner":1}`)
}

func TestProgressSummaryFiltersByPeriod(t *testing.T) {
	d := fixedDirectory(t)
	s, err := d.AddChallenge("student_1", models.CodingChallenge{Title: "Two Sum"}, "Beginner", "", models.ChallengeFeedback{})
	require.NoError(t, err)

	from := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	summary := ProgressSummary(s, from, to)
	assert.Contains(t, summary, "From 2024-03-01 to 2024-03-31")
	assert.Contains(t, summary, "Roadmap Milestones Completed: 0.")
	assert.Contains(t, summary, "Coding Challenges Completed: 1.")
	assert.Contains(t, summary, `"title":"Two Sum"`)
}

func TestAnalyzeRoadmapProgress(t *testing.T) {
	s := models.Student{
		Roadmap: &models.Roadmap{Years: []models.Year{{Year: 1, Semesters: []models.Semester{
			{Name: "Fall Semester", Milestones: []models.Milestone{{Title: "A"}, {Title: "B"}}},
		}}}},
		CompletedMilestones: []models.CompletedMilestone{{ID: "1-Fall Semester-A"}},
	}
	a := Analyze(s)
	assert.Equal(t, 2, a.TotalMilestones)
	assert.InDelta(t, 50.0, a.RoadmapProgress, 0.001)
}
