package scenario

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Summary describes a library scenario without its graph.
type Summary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Steps       int    `json:"steps"`
}

// Library is a read-only store of authored scenarios kept as YAML or JSON
// files in one directory. The file name without extension is the scenario id.
type Library struct {
	fs  afero.Fs
	dir string
	log *zap.Logger

	mu        sync.RWMutex
	scenarios map[string]*Scenario
}

func NewLibrary(fs afero.Fs, dir string, log *zap.Logger) *Library {
	return &Library{
		fs:        fs,
		dir:       dir,
		log:       log.Named("scenario_library"),
		scenarios: map[string]*Scenario{},
	}
}

// Load (re)reads the directory. Files that fail to parse or validate are
// skipped. A missing directory yields an empty library.
func (l *Library) Load() error {
	loaded := map[string]*Scenario{}

	exists, err := afero.DirExists(l.fs, l.dir)
	if err != nil {
		return fmt.Errorf("stat scenario dir %s: %w", l.dir, err)
	}
	if exists {
		entries, err := afero.ReadDir(l.fs, l.dir)
		if err != nil {
			return fmt.Errorf("read scenario dir %s: %w", l.dir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !isScenarioFile(entry.Name()) {
				continue
			}
			path := filepath.Join(l.dir, entry.Name())
			s, err := LoadFile(l.fs, path)
			if err != nil {
				l.log.Warn("Skipping scenario file", zap.String("path", path), zap.Error(err))
				continue
			}
			loaded[strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))] = s
		}
	}

	l.mu.Lock()
	l.scenarios = loaded
	l.mu.Unlock()
	l.log.Info("Scenario library loaded", zap.String("dir", l.dir), zap.Int("count", len(loaded)))
	return nil
}

func (l *Library) List() []Summary {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Summary, 0, len(l.scenarios))
	for id, s := range l.scenarios {
		out = append(out, Summary{ID: id, Title: s.Title, Description: s.Description, Steps: len(s.Steps)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (l *Library) Get(id string) (*Scenario, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s, ok := l.scenarios[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrScenarioNotFound, id)
	}
	return s, nil
}

func isScenarioFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// LoadFile reads, parses and fully validates a single scenario file.
func LoadFile(fs afero.Fs, path string) (*Scenario, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var s *Scenario
	if strings.EqualFold(filepath.Ext(path), ".json") {
		s, err = ParseJSON(data)
	} else {
		s, err = ParseYAML(data)
	}
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
