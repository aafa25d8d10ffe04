package resume

import (
	"context"
	"errors"
	"testing"

	"github.com/muhammadolammi/aithera/internal/database"
	"github.com/muhammadolammi/aithera/internal/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const agentOutput = "```json\n" + `{"match_score": 72, "relevant_skills": ["Go"], "missing_skills": ["Kubernetes"], "summary": "Solid", "recommendation": "Add infra projects"}` + "\n```"

func TestMIMEFromFilename(t *testing.T) {
	m, err := MIMEFromFilename("CV.PDF")
	require.NoError(t, err)
	assert.Equal(t, MIMEPDF, m)

	m, err = MIMEFromFilename("cv.docx")
	require.NoError(t, err)
	assert.Equal(t, MIMEDocx, m)

	_, err = MIMEFromFilename("cv.odt")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestExtractText(t *testing.T) {
	text, err := ExtractText(MIMEText, []byte("Jane Doe\nGo developer"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nGo developer", text)

	_, err = ExtractText("image/png", nil)
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = ExtractText(MIMEPDF, []byte("not a pdf"))
	assert.Error(t, err)
}

func TestParseResult(t *testing.T) {
	r := parseResult("cv.txt", agentOutput)
	assert.False(t, r.IsErrorResult)
	assert.Equal(t, 72, r.MatchScore)
	assert.Equal(t, "cv.txt", r.FileName)

	r = parseResult("cv.txt", "  ")
	assert.True(t, r.IsErrorResult)
	assert.Equal(t, "empty response from agent", r.Error)

	r = parseResult("cv.txt", "I think this is a fine resume")
	assert.True(t, r.IsErrorResult)
	assert.Contains(t, r.Error, "json unmarshal error")
}

func submit(t *testing.T, store *memStore, objects *memObjects, pub *recordingPublisher, files ...File) database.AnalysisJob {
	t.Helper()
	u := NewUploader(store, objects, pub, zap.NewNop())
	job, err := u.Submit(context.Background(), Submission{
		StudentID:      "student_1",
		TargetRole:     "Backend Developer",
		JobDescription: "Go, PostgreSQL, Kubernetes",
		Files:          files,
	})
	require.NoError(t, err)
	return job
}

func TestSubmitStoresAndQueues(t *testing.T) {
	store, objects, pub := newMemStore(), newMemObjects(), &recordingPublisher{}
	job := submit(t, store, objects, pub, File{Name: "cv.txt", Data: []byte("Go developer")})

	resumes, err := store.GetResumesByJob(context.Background(), job.ID)
	require.NoError(t, err)
	require.Len(t, resumes, 1)
	assert.Equal(t, MIMEText, resumes[0].Mime)
	assert.Equal(t, "r2", resumes[0].StorageProvider)
	assert.Contains(t, resumes[0].ObjectKey, job.ID.String())
	assert.Contains(t, objects.files, resumes[0].ObjectKey)

	require.Len(t, pub.jobs, 1)
	assert.Equal(t, job.ID, pub.jobs[0].ID)
	require.Len(t, pub.updates, 1)
	assert.Equal(t, messaging.StatusPending, pub.updates[0].Status)
}

func TestSubmitValidation(t *testing.T) {
	u := NewUploader(newMemStore(), newMemObjects(), &recordingPublisher{}, zap.NewNop())
	ctx := context.Background()

	_, err := u.Submit(ctx, Submission{StudentID: "student_1"})
	assert.ErrorIs(t, err, ErrNoFiles)

	_, err = u.Submit(ctx, Submission{Files: []File{{Name: "cv.png", Data: []byte("x")}}})
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = u.Submit(ctx, Submission{Files: []File{{Name: "cv.pdf", Data: make([]byte, MaxFileSize+1)}}})
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestSubmitMarksJobFailedWhenQueueIsDown(t *testing.T) {
	store, pub := newMemStore(), &recordingPublisher{jobErr: errors.New("channel closed")}
	u := NewUploader(store, newMemObjects(), pub, zap.NewNop())

	_, err := u.Submit(context.Background(), Submission{StudentID: "student_1", Files: []File{{Name: "cv.txt", Data: []byte("x")}}})
	require.Error(t, err)

	jobs, err := store.ListAnalysisJobsByStudent(context.Background(), "student_1")
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, messaging.StatusFailed, jobs[0].Status)
	require.Len(t, pub.updates, 1)
	assert.Equal(t, messaging.StatusFailed, pub.updates[0].Status)
}

func TestProcessAggregatesPerFile(t *testing.T) {
	store, objects, pub := newMemStore(), newMemObjects(), &recordingPublisher{}
	job := submit(t, store, objects, pub,
		File{Name: "good.txt", Data: []byte("Go developer with PostgreSQL")},
		File{Name: "broken.pdf", Data: []byte("not a pdf")},
	)
	analyzer := &scriptedAnalyzer{output: agentOutput}
	p := NewProcessor(store, objects, analyzer, zap.NewNop())
	p.Wait = 0

	results, err := p.Process(context.Background(), pub.jobs[0])
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.False(t, results[0].IsErrorResult)
	assert.Equal(t, 72, results[0].MatchScore)
	assert.True(t, results[1].IsErrorResult)
	assert.Contains(t, results[1].Error, "text extraction error")
	assert.Equal(t, 1, analyzer.calls)

	require.NoError(t, store.UpdateAnalysisJobStatus(context.Background(), database.UpdateAnalysisJobStatusParams{Status: messaging.StatusCompleted, ID: job.ID}))
	st, err := NewUploader(store, objects, pub, zap.NewNop()).Status(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, messaging.StatusCompleted, st.Status)
	assert.Len(t, st.Results, 2)
}

func TestProcessRetriesDownloadsAndAgent(t *testing.T) {
	store, objects, pub := newMemStore(), newMemObjects(), &recordingPublisher{}
	submit(t, store, objects, pub, File{Name: "cv.txt", Data: []byte("Go developer")})
	resumes, _ := store.GetResumesByJob(context.Background(), pub.jobs[0].ID)
	objects.failFirst[resumes[0].ObjectKey] = 2

	analyzer := &scriptedAnalyzer{err: errors.New("stream closed")}
	p := NewProcessor(store, objects, analyzer, zap.NewNop())
	p.Wait = 0

	results, err := p.Process(context.Background(), pub.jobs[0])
	require.NoError(t, err)
	assert.Equal(t, 3, objects.downloads[resumes[0].ObjectKey])
	assert.Equal(t, 2, analyzer.calls)
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Error, "agent stream error")
}

func TestProcessFailsWhenResultsCannotBeSaved(t *testing.T) {
	store, objects, pub := newMemStore(), newMemObjects(), &recordingPublisher{}
	submit(t, store, objects, pub, File{Name: "cv.txt", Data: []byte("Go developer")})
	store.saveErr = errors.New("db down")

	p := NewProcessor(store, objects, &scriptedAnalyzer{output: agentOutput}, zap.NewNop())
	p.Wait = 0

	_, err := p.Process(context.Background(), pub.jobs[0])
	assert.Error(t, err)
}

func TestStatusUnknownJob(t *testing.T) {
	u := NewUploader(newMemStore(), newMemObjects(), &recordingPublisher{}, zap.NewNop())
	_, err := u.Status(context.Background(), [16]byte{1})
	assert.ErrorIs(t, err, ErrJobNotFound)
}
