package main

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/muhammadolammi/aithera/internal/database"
	"github.com/muhammadolammi/aithera/internal/messaging"
	"github.com/muhammadolammi/aithera/internal/resume"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recorder struct {
	mu       sync.Mutex
	statuses []string
	updates  []messaging.Update
}

func (r *recorder) UpdateAnalysisJobStatus(ctx context.Context, arg database.UpdateAnalysisJobStatusParams) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, arg.Status)
	return nil
}

func (r *recorder) PublishUpdate(u messaging.Update) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, u)
	return nil
}

type stubProcessor struct {
	err  error
	jobs []messaging.Job
}

func (p *stubProcessor) Process(ctx context.Context, job messaging.Job) ([]resume.Result, error) {
	p.jobs = append(p.jobs, job)
	if p.err != nil {
		return nil, p.err
	}
	return []resume.Result{{FileName: "cv.pdf", MatchScore: 80}}, nil
}

func newTestConsumer(proc *stubProcessor) (*consumer, *recorder) {
	rec := &recorder{}
	return &consumer{store: rec, updates: rec, processor: proc, log: zap.NewNop()}, rec
}

func jobBody(t *testing.T, job messaging.Job) []byte {
	t.Helper()
	b, err := json.Marshal(job)
	require.NoError(t, err)
	return b
}

func TestConsumerCompletesJob(t *testing.T) {
	proc := &stubProcessor{}
	c, rec := newTestConsumer(proc)
	job := messaging.Job{ID: uuid.New(), StudentID: "student_1", TargetRole: "SRE"}

	c.handle(context.Background(), jobBody(t, job))

	require.Len(t, proc.jobs, 1)
	assert.Equal(t, job.ID, proc.jobs[0].ID)
	assert.Equal(t, []string{messaging.StatusProcessing, messaging.StatusCompleted}, rec.statuses)
	require.Len(t, rec.updates, 2)
	assert.Equal(t, job.ID, rec.updates[1].JobID)
	assert.Equal(t, "analysis completed", rec.updates[1].Message)
}

func TestConsumerMarksFailedJob(t *testing.T) {
	c, rec := newTestConsumer(&stubProcessor{err: errors.New("db down")})

	c.handle(context.Background(), jobBody(t, messaging.Job{ID: uuid.New()}))

	assert.Equal(t, []string{messaging.StatusProcessing, messaging.StatusFailed}, rec.statuses)
	require.Len(t, rec.updates, 2)
	assert.Equal(t, messaging.StatusFailed, rec.updates[1].Status)
}

func TestConsumerDropsMalformedMessage(t *testing.T) {
	proc := &stubProcessor{}
	c, rec := newTestConsumer(proc)

	c.handle(context.Background(), []byte("{not json"))

	assert.Empty(t, proc.jobs)
	assert.Empty(t, rec.statuses)
	assert.Empty(t, rec.updates)
}
