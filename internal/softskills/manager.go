package softskills

import (
	"sync"

	"github.com/muhammadolammi/aithera/internal/oracle"
	"go.uber.org/zap"
)

// Manager keeps one Host per user.
type Manager struct {
	gen  oracle.ScenarioGenerator
	log  *zap.Logger
	opts []Option

	mu    sync.Mutex
	hosts map[string]*Host
}

func NewManager(gen oracle.ScenarioGenerator, log *zap.Logger, opts ...Option) *Manager {
	return &Manager{
		gen:   gen,
		log:   log.Named("softskills"),
		opts:  opts,
		hosts: make(map[string]*Host),
	}
}

// Host returns the user's host, creating it on first use.
func (m *Manager) Host(userID string) *Host {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, ok := m.hosts[userID]
	if !ok {
		opts := append([]Option{WithOnExit(m.logExit(userID))}, m.opts...)
		h = NewHost(m.gen, m.log.With(zap.String("user_id", userID)), opts...)
		m.hosts[userID] = h
	}
	return h
}

// Drop ends and forgets the user's host, e.g. on logout.
func (m *Manager) Drop(userID string) {
	m.mu.Lock()
	h, ok := m.hosts[userID]
	delete(m.hosts, userID)
	m.mu.Unlock()

	if ok {
		h.End()
	}
}

// Close ends every simulation and waits for outstanding oracle calls.
func (m *Manager) Close() {
	m.mu.Lock()
	hosts := make([]*Host, 0, len(m.hosts))
	for _, h := range m.hosts {
		hosts = append(hosts, h)
	}
	m.hosts = make(map[string]*Host)
	m.mu.Unlock()

	for _, h := range hosts {
		h.End()
		h.Wait()
	}
}

func (m *Manager) logExit(userID string) func(Exit) {
	return func(e Exit) {
		m.log.Info("Simulation ended",
			zap.String("user_id", userID),
			zap.String("title", e.Title),
			zap.String("status", string(e.Status)),
			zap.Int("choices", len(e.Path)),
		)
	}
}
