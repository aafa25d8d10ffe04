package interview

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

var ErrMentorUnavailable = errors.New("please select a mentor and a time slot to schedule")

type Mentor struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Title     string   `json:"title"`
	TimeSlots []string `json:"timeSlots"`
}

var Mentors = []Mentor{
	{ID: "mentor_1", Name: "Dr. Evelyn Reed", Title: "Career Coach & CS Faculty", TimeSlots: []string{"09:00 AM", "10:00 AM", "02:00 PM"}},
	{ID: "mentor_2", Name: "Johnathan Chen", Title: "Senior Software Engineer @ TechCorp", TimeSlots: []string{"11:00 AM", "01:00 PM", "04:00 PM"}},
	{ID: "mentor_3", Name: "Maria Garcia", Title: "Hiring Manager @ Innovate Inc.", TimeSlots: []string{"10:00 AM", "11:00 AM", "03:00 PM"}},
}

// Book confirms a mentor slot and returns the confirmation shown to the student.
func Book(mentorID, slot string) (string, error) {
	i := slices.IndexFunc(Mentors, func(m Mentor) bool { return m.ID == mentorID })
	if i < 0 || !slices.Contains(Mentors[i].TimeSlots, slot) {
		return "", ErrMentorUnavailable
	}
	return fmt.Sprintf("Your session with %s at %s is confirmed. You can start this self-practice session now.", Mentors[i].Name, slot), nil
}

// Store keeps the open interview of each user.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Put replaces the user's interview.
func (s *Store) Put(userID string, sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = sess
}

func (s *Store) Get(userID string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	return sess, ok
}

func (s *Store) Delete(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
