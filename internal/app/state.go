package app

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadolammi/aithera/internal/models"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrForbidden         = errors.New("not allowed for this user")
	ErrNoStudentSelected = errors.New("select a student first")
)

type View string

const (
	ViewDashboard         View = "dashboard"
	ViewRoadmap           View = "roadmap"
	ViewCareer            View = "career"
	ViewJobs              View = "jobs"
	ViewChallenges        View = "challenges"
	ViewInterview         View = "interview"
	ViewSoftSkills        View = "soft-skills"
	ViewProjects          View = "projects"
	ViewResume            View = "resume"
	ViewIndustry          View = "industry"
	ViewReports           View = "reports"
	ViewIntegrations      View = "integrations"
	ViewFeedback          View = "feedback"
	ViewAdminDashboard    View = "adminDashboard"
	ViewTeacherManagement View = "teacherManagement"
	ViewStudentData       View = "studentData"
	ViewStudentDashboard  View = "studentDashboard"
)

var roleViews = map[models.Role][]View{
	models.RoleStudent: {
		ViewDashboard, ViewRoadmap, ViewCareer, ViewJobs, ViewChallenges, ViewInterview, ViewSoftSkills,
		ViewProjects, ViewResume, ViewIndustry, ViewReports, ViewIntegrations, ViewFeedback,
	},
	models.RoleTeacher: {ViewDashboard, ViewStudentDashboard, ViewResume, ViewReports},
	models.RoleAdmin:   {ViewAdminDashboard, ViewTeacherManagement, ViewStudentData, ViewFeedback},
}

// Views lists the views a role may open.
func Views(r models.Role) []View {
	return append([]View(nil), roleViews[r]...)
}

// DefaultView is where a role lands after login or an unknown navigation.
func DefaultView(r models.Role) View {
	if r == models.RoleAdmin {
		return ViewAdminDashboard
	}
	return ViewDashboard
}

func allowed(r models.Role, v View) bool {
	for _, rv := range roleViews[r] {
		if rv == v {
			return true
		}
	}
	return false
}

// State is everything one login session knows: who is logged in, which view
// is open, and which student a teacher or admin is looking at.
type State struct {
	Token            string      `json:"token"`
	User             models.User `json:"user"`
	View             View        `json:"view"`
	ViewingStudentID string      `json:"viewingStudentId,omitempty"`
	LoggedInAt       time.Time   `json:"loggedInAt"`
}

// Greeting is the notification shown right after login.
func (s State) Greeting() string {
	return fmt.Sprintf("Login successful. Welcome, %s (%s).", s.User.Name, s.User.Role)
}

// TargetStudent is the student whose records the session is working on.
func (s State) TargetStudent() (string, error) {
	if s.ViewingStudentID != "" {
		return s.ViewingStudentID, nil
	}
	if s.User.Role == models.RoleStudent {
		return s.User.ID, nil
	}
	return "", ErrNoStudentSelected
}

// Sessions maps session tokens to their state.
type Sessions struct {
	dir *Directory
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]*State
}

func NewSessions(dir *Directory) *Sessions {
	return &Sessions{dir: dir, now: time.Now, sessions: make(map[string]*State)}
}

func (s *Sessions) Login(userID string) (State, error) {
	u, err := s.dir.User(userID)
	if err != nil {
		return State{}, err
	}
	st := &State{
		Token:      uuid.NewString(),
		User:       u,
		View:       DefaultView(u.Role),
		LoggedInAt: s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[st.Token] = st
	return *st, nil
}

// Logout forgets the session and returns its last state.
func (s *Sessions) Logout(token string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.sessions[token]
	if !ok {
		return State{}, ErrSessionNotFound
	}
	delete(s.sessions, token)
	return *st, nil
}

// Active counts the user's open login sessions.
func (s *Sessions) Active(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, st := range s.sessions {
		if st.User.ID == userID {
			n++
		}
	}
	return n
}

func (s *Sessions) Get(token string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.sessions[token]
	if !ok {
		return State{}, ErrSessionNotFound
	}
	return *st, nil
}

// Navigate opens a view. A view the role cannot open falls back to the role default.
func (s *Sessions) Navigate(token string, v View) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.sessions[token]
	if !ok {
		return State{}, ErrSessionNotFound
	}
	if !allowed(st.User.Role, v) {
		v = DefaultView(st.User.Role)
	}
	st.View = v
	return *st, nil
}

// SelectStudent points a teacher or admin session at one student. Teachers
// may only select students they mentor.
func (s *Sessions) SelectStudent(token, studentID string) (State, error) {
	st, err := s.Get(token)
	if err != nil {
		return State{}, err
	}
	if st.User.Role == models.RoleStudent {
		return State{}, ErrForbidden
	}
	if err := s.Authorize(st, studentID); err != nil {
		return State{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	live, ok := s.sessions[token]
	if !ok {
		return State{}, ErrSessionNotFound
	}
	live.ViewingStudentID = studentID
	if live.User.Role == models.RoleTeacher {
		live.View = ViewStudentDashboard
	} else {
		live.View = ViewStudentData
	}
	return *live, nil
}

// ClearStudent returns the session to its own dashboard.
func (s *Sessions) ClearStudent(token string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.sessions[token]
	if !ok {
		return State{}, ErrSessionNotFound
	}
	st.ViewingStudentID = ""
	st.View = DefaultView(st.User.Role)
	return *st, nil
}

// Authorize checks that the session may read and change the student's records:
// students only their own, teachers their mentees, admins anyone.
func (s *Sessions) Authorize(st State, studentID string) error {
	if _, err := s.dir.Student(studentID); err != nil {
		return err
	}
	switch st.User.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleTeacher:
		if s.dir.Mentors(st.User.ID, studentID) {
			return nil
		}
	case models.RoleStudent:
		if st.User.ID == studentID {
			return nil
		}
	}
	return fmt.Errorf("%w: %s cannot access %s", ErrForbidden, st.User.ID, studentID)
}
