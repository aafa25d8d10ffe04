// Package app holds the application state: the in-memory user directory and
// the per-login session state that replaces the old global current user and view.
package app

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadolammi/aithera/internal/models"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrStudentNotFound = errors.New("student not found")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrInvalidName     = errors.New("name is required")
)

// Directory is the in-memory database of users and student records.
// Nothing survives a restart.
type Directory struct {
	mu       sync.RWMutex
	students map[string]*models.Student
	teachers map[string]*models.Teacher
	admin    models.User
	now      func() time.Time
}

// NewDirectory returns a directory seeded with the demo users.
func NewDirectory() *Directory {
	students, teachers, admin := seed()
	d := &Directory{
		students: make(map[string]*models.Student, len(students)),
		teachers: make(map[string]*models.Teacher, len(teachers)),
		admin:    admin,
		now:      time.Now,
	}
	for _, s := range students {
		d.students[s.ID] = s
	}
	for _, t := range teachers {
		d.teachers[t.ID] = t
	}
	return d
}

// Users lists everyone who can log in, students first.
func (d *Directory) Users() []models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()

	users := make([]models.User, 0, len(d.students)+len(d.teachers)+1)
	for _, s := range d.sortedStudentsLocked() {
		users = append(users, s.User)
	}
	for _, t := range d.sortedTeachersLocked() {
		users = append(users, t.User)
	}
	return append(users, d.admin)
}

func (d *Directory) User(id string) (models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if s, ok := d.students[id]; ok {
		return s.User, nil
	}
	if t, ok := d.teachers[id]; ok {
		return t.User, nil
	}
	if d.admin.ID == id {
		return d.admin, nil
	}
	return models.User{}, fmt.Errorf("%w: %s", ErrUserNotFound, id)
}

// Student returns a copy of the student's record.
func (d *Directory) Student(id string) (models.Student, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	s, ok := d.students[id]
	if !ok {
		return models.Student{}, fmt.Errorf("%w: %s", ErrStudentNotFound, id)
	}
	return cloneStudent(s), nil
}

func (d *Directory) Students() []models.Student {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]models.Student, 0, len(d.students))
	for _, s := range d.sortedStudentsLocked() {
		out = append(out, cloneStudent(s))
	}
	return out
}

func (d *Directory) Teacher(id string) (models.Teacher, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	t, ok := d.teachers[id]
	if !ok {
		return models.Teacher{}, fmt.Errorf("%w: %s", ErrUserNotFound, id)
	}
	return cloneTeacher(t), nil
}

func (d *Directory) Teachers() []models.Teacher {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]models.Teacher, 0, len(d.teachers))
	for _, t := range d.sortedTeachersLocked() {
		out = append(out, cloneTeacher(t))
	}
	return out
}

// Roster returns the teacher's assigned students.
func (d *Directory) Roster(teacherID string) ([]models.Student, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	t, ok := d.teachers[teacherID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, teacherID)
	}
	out := make([]models.Student, 0, len(t.StudentIDs))
	for _, id := range t.StudentIDs {
		if s, ok := d.students[id]; ok {
			out = append(out, cloneStudent(s))
		}
	}
	return out, nil
}

// Mentors reports whether the teacher is assigned the student.
func (d *Directory) Mentors(teacherID, studentID string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	t, ok := d.teachers[teacherID]
	return ok && slices.Contains(t.StudentIDs, studentID)
}

func (d *Directory) AddTeacher(name string) (models.Teacher, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Teacher{}, ErrInvalidName
	}
	t := &models.Teacher{
		User:       models.User{ID: "teacher_" + uuid.NewString(), Name: name, Role: models.RoleTeacher},
		StudentIDs: []string{},
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.teachers[t.ID] = t
	return cloneTeacher(t), nil
}

// AssignStudent adds a student to a teacher's roster. Assigning twice is a no-op.
func (d *Directory) AssignStudent(teacherID, studentID string) (models.Teacher, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	t, ok := d.teachers[teacherID]
	if !ok {
		return models.Teacher{}, fmt.Errorf("%w: %s", ErrUserNotFound, teacherID)
	}
	if _, ok := d.students[studentID]; !ok {
		return models.Teacher{}, fmt.Errorf("%w: %s", ErrStudentNotFound, studentID)
	}
	if !slices.Contains(t.StudentIDs, studentID) {
		t.StudentIDs = append(t.StudentIDs, studentID)
	}
	return cloneTeacher(t), nil
}

// update applies fn to the live record under the write lock and returns a copy.
func (d *Directory) update(studentID string, fn func(s *models.Student) error) (models.Student, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	s, ok := d.students[studentID]
	if !ok {
		return models.Student{}, fmt.Errorf("%w: %s", ErrStudentNotFound, studentID)
	}
	if err := fn(s); err != nil {
		return models.Student{}, err
	}
	return cloneStudent(s), nil
}

// SetRoadmap replaces the roadmap. Completed milestones are kept.
func (d *Directory) SetRoadmap(studentID string, r *models.Roadmap) (models.Student, error) {
	return d.update(studentID, func(s *models.Student) error {
		s.Roadmap = r
		return nil
	})
}

// ToggleMilestone marks the milestone complete, or clears it when already complete.
func (d *Directory) ToggleMilestone(studentID, milestoneID string) (models.Student, error) {
	return d.update(studentID, func(s *models.Student) error {
		i := slices.IndexFunc(s.CompletedMilestones, func(m models.CompletedMilestone) bool { return m.ID == milestoneID })
		if i >= 0 {
			s.CompletedMilestones = slices.Delete(s.CompletedMilestones, i, i+1)
			return nil
		}
		s.CompletedMilestones = append(s.CompletedMilestones, models.CompletedMilestone{ID: milestoneID, CompletedAt: d.now()})
		return nil
	})
}

// AddInterview records a completed question, newest first.
func (d *Directory) AddInterview(studentID string, q models.InterviewQuestion, answer string, fb models.AnswerFeedback) (models.Student, error) {
	return d.update(studentID, func(s *models.Student) error {
		ci := models.CompletedInterview{
			ID:          uuid.NewString(),
			Question:    q,
			Answer:      answer,
			Feedback:    fb,
			CompletedAt: d.now(),
		}
		s.InterviewHistory = append([]models.CompletedInterview{ci}, s.InterviewHistory...)
		return nil
	})
}

// AddChallenge records a solved coding challenge, newest first.
func (d *Directory) AddChallenge(studentID string, c models.CodingChallenge, difficulty, solution string, fb models.ChallengeFeedback) (models.Student, error) {
	return d.update(studentID, func(s *models.Student) error {
		cc := models.CompletedChallenge{
			ID:           uuid.NewString(),
			Challenge:    c,
			UserSolution: solution,
			Feedback:     fb,
			CompletedAt:  d.now(),
			Difficulty:   difficulty,
		}
		s.ChallengeHistory = append([]models.CompletedChallenge{cc}, s.ChallengeHistory...)
		return nil
	})
}

func (d *Directory) SetApplications(studentID string, apps []models.Application) (models.Student, error) {
	return d.update(studentID, func(s *models.Student) error {
		s.Applications = slices.Clone(apps)
		return nil
	})
}

func (d *Directory) SetIntegrations(studentID string, in models.Integrations) (models.Student, error) {
	return d.update(studentID, func(s *models.Student) error {
		s.Integrations = in
		return nil
	})
}

func (d *Directory) SetResume(studentID string, r models.ResumeData) (models.Student, error) {
	return d.update(studentID, func(s *models.Student) error {
		s.ResumeData = r
		return nil
	})
}

func (d *Directory) SetProfile(studentID string, p models.StudentProfile) (models.Student, error) {
	return d.update(studentID, func(s *models.Student) error {
		s.Profile = p
		return nil
	})
}

// SubmitFeedback stores a rating for one feature view, newest first.
func (d *Directory) SubmitFeedback(studentID, feature string, rating int, comment string) (models.PlatformFeedback, error) {
	if rating < 1 || rating > 5 {
		return models.PlatformFeedback{}, ErrInvalidRating
	}
	fb := models.PlatformFeedback{
		ID:          "fb_" + uuid.NewString(),
		Feature:     feature,
		Rating:      rating,
		Comment:     comment,
		SubmittedAt: d.now(),
	}
	_, err := d.update(studentID, func(s *models.Student) error {
		s.PlatformFeedback = append([]models.PlatformFeedback{fb}, s.PlatformFeedback...)
		return nil
	})
	if err != nil {
		return models.PlatformFeedback{}, err
	}
	return fb, nil
}

// AllFeedback collects platform feedback from every student.
func (d *Directory) AllFeedback() []models.PlatformFeedback {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []models.PlatformFeedback
	for _, s := range d.sortedStudentsLocked() {
		out = append(out, s.PlatformFeedback...)
	}
	return out
}

func (d *Directory) sortedStudentsLocked() []*models.Student {
	out := make([]*models.Student, 0, len(d.students))
	for _, s := range d.students {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (d *Directory) sortedTeachersLocked() []*models.Teacher {
	out := make([]*models.Teacher, 0, len(d.teachers))
	for _, t := range d.teachers {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func cloneStudent(s *models.Student) models.Student {
	c := *s
	c.CompletedMilestones = slices.Clone(s.CompletedMilestones)
	c.InterviewHistory = slices.Clone(s.InterviewHistory)
	c.ChallengeHistory = slices.Clone(s.ChallengeHistory)
	c.Applications = slices.Clone(s.Applications)
	c.PlatformFeedback = slices.Clone(s.PlatformFeedback)
	c.ResumeData.Skills = slices.Clone(s.ResumeData.Skills)
	c.ResumeData.Experience = slices.Clone(s.ResumeData.Experience)
	c.ResumeData.Education = slices.Clone(s.ResumeData.Education)
	c.ResumeData.Projects = slices.Clone(s.ResumeData.Projects)
	return c
}

func cloneTeacher(t *models.Teacher) models.Teacher {
	c := *t
	c.StudentIDs = slices.Clone(t.StudentIDs)
	return c
}
