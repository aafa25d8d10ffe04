// Package softskills hosts soft skill simulations: it fetches a scenario,
// runs a player over it and tears it down when the student leaves.
package softskills

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/muhammadolammi/aithera/internal/metrics"
	"github.com/muhammadolammi/aithera/internal/oracle"
	"github.com/muhammadolammi/aithera/internal/scenario"
	"go.uber.org/zap"
)

var (
	ErrNoSimulation     = errors.New("no simulation is running")
	ErrEmptyDescription = errors.New("scenario description is required")
)

type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StatePlaying State = "playing"
	StateError   State = "error"
)

// Exit is handed to the exit callback when a simulation is torn down.
type Exit struct {
	Title  string
	Status scenario.Status
	Path   []scenario.PathEntry
}

// View is what a client renders for the lab.
type View struct {
	State      State          `json:"state"`
	Topic      string         `json:"topic,omitempty"`
	Error      string         `json:"error,omitempty"`
	Simulation *scenario.View `json:"simulation,omitempty"`
}

type Option func(*Host)

// WithTimeout bounds each oracle call. Zero means no bound.
func WithTimeout(d time.Duration) Option {
	return func(h *Host) { h.timeout = d }
}

// WithOnExit registers a callback invoked by End while a player exists.
func WithOnExit(fn func(Exit)) Option {
	return func(h *Host) { h.onExit = fn }
}

// Host owns at most one player at a time. It is safe for concurrent use.
type Host struct {
	gen     oracle.ScenarioGenerator
	log     *zap.Logger
	timeout time.Duration
	onExit  func(Exit)

	mu         sync.Mutex
	state      State
	topic      string
	err        error
	player     *scenario.Player
	generation uint64
	cancel     context.CancelFunc
	pending    sync.WaitGroup
}

func NewHost(gen oracle.ScenarioGenerator, log *zap.Logger, opts ...Option) *Host {
	h := &Host{gen: gen, log: log, state: StateIdle}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Start asks the oracle for a scenario in the background and returns at once
// with the host in the loading state. Any running simulation is discarded.
func (h *Host) Start(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return ErrEmptyDescription
	}

	h.mu.Lock()
	h.resetLocked()
	h.generation++
	gen := h.generation
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if h.timeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), h.timeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}
	h.cancel = cancel
	h.state = StateLoading
	h.topic = description
	h.pending.Add(1)
	h.mu.Unlock()

	go func() {
		defer h.pending.Done()
		defer cancel()
		s, err := h.gen.GenerateScenario(ctx, description)
		h.finishLoad(gen, s, err)
	}()
	return nil
}

func (h *Host) finishLoad(gen uint64, s *scenario.Scenario, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if gen != h.generation {
		metrics.StaleOracleResponses.Inc()
		h.log.Debug("Dropping stale scenario response", zap.Uint64("generation", gen))
		return
	}
	h.cancel = nil
	if err == nil && s == nil {
		err = oracle.ErrOracleResponse
	}
	if err == nil {
		err = s.Validate()
	}
	if err != nil {
		h.log.Warn("Scenario generation failed", zap.String("topic", h.topic), zap.Error(err))
		h.state = StateError
		h.err = err
		return
	}
	metrics.SimulationsStarted.WithLabelValues("oracle").Inc()
	h.player = scenario.NewPlayer(s)
	h.state = StatePlaying
}

// StartWith plays an already resolved scenario, such as one from the library.
func (h *Host) StartWith(s *scenario.Scenario) error {
	if err := s.Validate(); err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	h.resetLocked()
	h.generation++
	metrics.SimulationsStarted.WithLabelValues("library").Inc()
	h.topic = s.Title
	h.player = scenario.NewPlayer(s)
	h.state = StatePlaying
	return nil
}

// Select forwards a choice to the running player.
func (h *Host) Select(index int) (View, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.player == nil {
		return h.viewLocked(), ErrNoSimulation
	}
	if _, err := h.player.Select(index); err != nil {
		return h.viewLocked(), err
	}
	return h.viewLocked(), nil
}

func (h *Host) View() View {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.viewLocked()
}

// Err returns the failure behind the error state, if any.
func (h *Host) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

// End tears down the current simulation, or dismisses an error, and returns
// the host to idle. A pending oracle response is discarded when it arrives.
func (h *Host) End() {
	h.mu.Lock()
	var exit *Exit
	if h.player != nil {
		exit = &Exit{
			Title:  h.player.Scenario().Title,
			Status: h.player.Status(),
			Path:   h.player.Path(),
		}
		metrics.SimulationsEnded.WithLabelValues(string(exit.Status)).Inc()
	}
	h.resetLocked()
	h.generation++
	onExit := h.onExit
	h.mu.Unlock()

	if exit != nil && onExit != nil {
		onExit(*exit)
	}
}

// Wait blocks until every outstanding oracle call has returned.
func (h *Host) Wait() {
	h.pending.Wait()
}

func (h *Host) resetLocked() {
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
	h.state = StateIdle
	h.topic = ""
	h.err = nil
	h.player = nil
}

func (h *Host) viewLocked() View {
	v := View{State: h.state, Topic: h.topic}
	switch h.state {
	case StateError:
		v.Error = errorMessage(h.err)
	case StatePlaying:
		sv := h.player.View()
		v.Simulation = &sv
	}
	return v
}

func errorMessage(err error) string {
	if errors.Is(err, scenario.ErrCorruptedScenario) {
		return "The generated scenario is corrupted. Please try again."
	}
	return oracle.UserMessage
}
