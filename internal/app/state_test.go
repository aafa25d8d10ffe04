package app

import (
	"testing"

	"github.com/muhammadolammi/aithera/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginLandsOnRoleDefault(t *testing.T) {
	s := NewSessions(NewDirectory())

	st, err := s.Login("admin_1")
	require.NoError(t, err)
	assert.Equal(t, ViewAdminDashboard, st.View)
	assert.Equal(t, "Login successful. Welcome, Principal Thompson (admin).", st.Greeting())

	st, err = s.Login("student_1")
	require.NoError(t, err)
	assert.Equal(t, ViewDashboard, st.View)
	assert.NotEmpty(t, st.Token)

	_, err = s.Login("nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestNavigateFallsBackForDisallowedViews(t *testing.T) {
	s := NewSessions(NewDirectory())
	st, err := s.Login("teacher_1")
	require.NoError(t, err)

	st, err = s.Navigate(st.Token, ViewReports)
	require.NoError(t, err)
	assert.Equal(t, ViewReports, st.View)

	st, err = s.Navigate(st.Token, ViewSoftSkills)
	require.NoError(t, err)
	assert.Equal(t, ViewDashboard, st.View)

	_, err = s.Navigate("missing", ViewDashboard)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionsAreIndependent(t *testing.T) {
	s := NewSessions(NewDirectory())
	a, err := s.Login("student_1")
	require.NoError(t, err)
	b, err := s.Login("student_2")
	require.NoError(t, err)

	_, err = s.Navigate(a.Token, ViewJobs)
	require.NoError(t, err)
	got, err := s.Get(b.Token)
	require.NoError(t, err)
	assert.Equal(t, ViewDashboard, got.View)
}

func TestTeacherSelectsOnlyMentees(t *testing.T) {
	s := NewSessions(NewDirectory())
	st, err := s.Login("teacher_1")
	require.NoError(t, err)

	_, err = st.TargetStudent()
	assert.ErrorIs(t, err, ErrNoStudentSelected)

	st, err = s.SelectStudent(st.Token, "student_2")
	require.NoError(t, err)
	assert.Equal(t, ViewStudentDashboard, st.View)
	id, err := st.TargetStudent()
	require.NoError(t, err)
	assert.Equal(t, "student_2", id)

	_, err = s.SelectStudent(st.Token, "student_3")
	assert.ErrorIs(t, err, ErrForbidden)

	st, err = s.ClearStudent(st.Token)
	require.NoError(t, err)
	assert.Empty(t, st.ViewingStudentID)
	assert.Equal(t, ViewDashboard, st.View)
}

func TestAuthorize(t *testing.T) {
	s := NewSessions(NewDirectory())
	student := State{User: models.User{ID: "student_1", Role: models.RoleStudent}}
	teacher := State{User: models.User{ID: "teacher_2", Role: models.RoleTeacher}}
	admin := State{User: models.User{ID: "admin_1", Role: models.RoleAdmin}}

	assert.NoError(t, s.Authorize(student, "student_1"))
	assert.ErrorIs(t, s.Authorize(student, "student_2"), ErrForbidden)
	assert.NoError(t, s.Authorize(teacher, "student_3"))
	assert.ErrorIs(t, s.Authorize(teacher, "student_1"), ErrForbidden)
	assert.NoError(t, s.Authorize(admin, "student_2"))
	assert.ErrorIs(t, s.Authorize(admin, "student_8"), ErrStudentNotFound)

	_, err := s.SelectStudent("nope", "student_1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestLogout(t *testing.T) {
	s := NewSessions(NewDirectory())
	st, err := s.Login("student_3")
	require.NoError(t, err)

	out, err := s.Logout(st.Token)
	require.NoError(t, err)
	assert.Equal(t, "student_3", out.User.ID)
	_, err = s.Get(st.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestActiveCountsSessionsPerUser(t *testing.T) {
	s := NewSessions(NewDirectory())
	a, err := s.Login("student_1")
	require.NoError(t, err)
	_, err = s.Login("student_1")
	require.NoError(t, err)
	_, err = s.Login("student_2")
	require.NoError(t, err)

	assert.Equal(t, 2, s.Active("student_1"))
	_, err = s.Logout(a.Token)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Active("student_1"))
	assert.Equal(t, 0, s.Active("teacher_1"))
}
