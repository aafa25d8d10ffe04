package resume

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadolammi/aithera/internal/database"
	"github.com/muhammadolammi/aithera/internal/messaging"
)

type memStore struct {
	mu      sync.Mutex
	jobs    map[uuid.UUID]database.AnalysisJob
	resumes map[uuid.UUID][]database.Resume
	results map[uuid.UUID]database.AnalysisResult
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{
		jobs:    make(map[uuid.UUID]database.AnalysisJob),
		resumes: make(map[uuid.UUID][]database.Resume),
		results: make(map[uuid.UUID]database.AnalysisResult),
	}
}

func (m *memStore) CreateAnalysisJob(ctx context.Context, arg database.CreateAnalysisJobParams) (database.AnalysisJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j := database.AnalysisJob{
		ID:             uuid.New(),
		CreatedAt:      time.Now(),
		StudentID:      arg.StudentID,
		Status:         messaging.StatusPending,
		TargetRole:     arg.TargetRole,
		JobDescription: arg.JobDescription,
	}
	m.jobs[j.ID] = j
	return j, nil
}

func (m *memStore) GetAnalysisJob(ctx context.Context, id uuid.UUID) (database.AnalysisJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok {
		return database.AnalysisJob{}, sql.ErrNoRows
	}
	return j, nil
}

func (m *memStore) ListAnalysisJobsByStudent(ctx context.Context, studentID string) ([]database.AnalysisJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []database.AnalysisJob
	for _, j := range m.jobs {
		if j.StudentID == studentID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *memStore) UpdateAnalysisJobStatus(ctx context.Context, arg database.UpdateAnalysisJobStatusParams) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[arg.ID]
	if !ok {
		return sql.ErrNoRows
	}
	j.Status = arg.Status
	m.jobs[arg.ID] = j
	return nil
}

func (m *memStore) CreateResume(ctx context.Context, arg database.CreateResumeParams) (database.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := database.Resume{
		ID:               uuid.New(),
		OriginalFilename: arg.OriginalFilename,
		Mime:             arg.Mime,
		SizeBytes:        arg.SizeBytes,
		StorageProvider:  arg.StorageProvider,
		ObjectKey:        arg.ObjectKey,
		StorageUrl:       arg.StorageUrl,
		UploadStatus:     arg.UploadStatus,
		CreatedAt:        time.Now(),
		JobID:            arg.JobID,
	}
	m.resumes[arg.JobID] = append(m.resumes[arg.JobID], r)
	return r, nil
}

func (m *memStore) GetResumesByJob(ctx context.Context, jobID uuid.UUID) ([]database.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]database.Resume(nil), m.resumes[jobID]...), nil
}

func (m *memStore) CreateOrUpdateAnalysisResult(ctx context.Context, arg database.CreateOrUpdateAnalysisResultParams) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.results[arg.JobID] = database.AnalysisResult{ID: uuid.New(), Results: arg.Results, JobID: arg.JobID}
	return nil
}

func (m *memStore) GetAnalysisResultByJob(ctx context.Context, jobID uuid.UUID) (database.AnalysisResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.results[jobID]
	if !ok {
		return database.AnalysisResult{}, sql.ErrNoRows
	}
	return r, nil
}

type memObjects struct {
	mu        sync.Mutex
	files     map[string][]byte
	failFirst map[string]int
	downloads map[string]int
}

func newMemObjects() *memObjects {
	return &memObjects{files: make(map[string][]byte), failFirst: make(map[string]int), downloads: make(map[string]int)}
}

func (m *memObjects) Upload(ctx context.Context, key, mime string, data []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[key] = data
	return "mem://" + key, nil
}

func (m *memObjects) Download(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.downloads[key]++
	if m.failFirst[key] >= m.downloads[key] {
		return nil, errors.New("connection reset")
	}
	data, ok := m.files[key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return data, nil
}

type scriptedAnalyzer struct {
	mu     sync.Mutex
	output string
	err    error
	calls  int
	texts  []string
}

func (a *scriptedAnalyzer) Analyze(ctx context.Context, job messaging.Job, text string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	a.texts = append(a.texts, text)
	return a.output, a.err
}

type recordingPublisher struct {
	mu      sync.Mutex
	jobs    []messaging.Job
	updates []messaging.Update
	jobErr  error
}

func (p *recordingPublisher) PublishJob(job messaging.Job) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.jobErr != nil {
		return p.jobErr
	}
	p.jobs = append(p.jobs, job)
	return nil
}

func (p *recordingPublisher) PublishUpdate(u messaging.Update) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.updates = append(p.updates, u)
	return nil
}
