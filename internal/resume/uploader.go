package resume

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/muhammadolammi/aithera/internal/database"
	"github.com/muhammadolammi/aithera/internal/messaging"
	"go.uber.org/zap"
)

const MaxFileSize = 5 << 20

var (
	ErrNoFiles      = errors.New("at least one resume file is required")
	ErrFileTooLarge = errors.New("resume file is too large")
	ErrJobNotFound  = errors.New("analysis job not found")
)

type File struct {
	Name string
	Data []byte
}

type Submission struct {
	StudentID      string
	TargetRole     string
	JobDescription string
	Files          []File
}

// Publisher is the part of messaging.Publisher the uploader needs.
type Publisher interface {
	PublishJob(job messaging.Job) error
	PublishUpdate(u messaging.Update) error
}

// Uploader accepts resume files, stores them and queues the analysis.
type Uploader struct {
	store     Store
	objects   ObjectStore
	publisher Publisher
	log       *zap.Logger
}

func NewUploader(store Store, objects ObjectStore, publisher Publisher, log *zap.Logger) *Uploader {
	return &Uploader{store: store, objects: objects, publisher: publisher, log: log.Named("uploader")}
}

func (u *Uploader) Submit(ctx context.Context, sub Submission) (database.AnalysisJob, error) {
	if len(sub.Files) == 0 {
		return database.AnalysisJob{}, ErrNoFiles
	}
	mimes := make([]string, len(sub.Files))
	for i, f := range sub.Files {
		if len(f.Data) > MaxFileSize {
			return database.AnalysisJob{}, fmt.Errorf("%w: %s", ErrFileTooLarge, f.Name)
		}
		mime, err := MIMEFromFilename(f.Name)
		if err != nil {
			return database.AnalysisJob{}, err
		}
		mimes[i] = mime
	}

	job, err := u.store.CreateAnalysisJob(ctx, database.CreateAnalysisJobParams{
		StudentID:      sub.StudentID,
		TargetRole:     sub.TargetRole,
		JobDescription: sub.JobDescription,
	})
	if err != nil {
		return database.AnalysisJob{}, fmt.Errorf("failed to create analysis job: %w", err)
	}

	for i, f := range sub.Files {
		key := fmt.Sprintf("resumes/%s/%s%s", job.ID, uuid.NewString(), strings.ToLower(filepath.Ext(f.Name)))
		url, err := u.objects.Upload(ctx, key, mimes[i], f.Data)
		if err != nil {
			u.markFailed(ctx, job.ID, "upload failed")
			return database.AnalysisJob{}, err
		}
		_, err = u.store.CreateResume(ctx, database.CreateResumeParams{
			OriginalFilename: f.Name,
			Mime:             mimes[i],
			SizeBytes:        int64(len(f.Data)),
			StorageProvider:  storageProvider,
			ObjectKey:        key,
			StorageUrl:       url,
			UploadStatus:     "uploaded",
			JobID:            job.ID,
		})
		if err != nil {
			u.markFailed(ctx, job.ID, "upload failed")
			return database.AnalysisJob{}, fmt.Errorf("failed to record resume: %w", err)
		}
	}

	err = u.publisher.PublishJob(messaging.Job{
		ID:             job.ID,
		StudentID:      job.StudentID,
		TargetRole:     job.TargetRole,
		JobDescription: job.JobDescription,
		CreatedAt:      job.CreatedAt,
	})
	if err != nil {
		u.markFailed(ctx, job.ID, "could not queue analysis")
		return database.AnalysisJob{}, fmt.Errorf("failed to publish job: %w", err)
	}
	if err := u.publisher.PublishUpdate(messaging.Update{JobID: job.ID, Status: messaging.StatusPending, Message: "analysis queued"}); err != nil {
		u.log.Warn("failed to publish update", zap.Error(err))
	}
	u.log.Info("Analysis job queued", zap.String("job_id", job.ID.String()), zap.Int("files", len(sub.Files)))
	return job, nil
}

func (u *Uploader) markFailed(ctx context.Context, id uuid.UUID, msg string) {
	if err := u.store.UpdateAnalysisJobStatus(ctx, database.UpdateAnalysisJobStatusParams{Status: messaging.StatusFailed, ID: id}); err != nil {
		u.log.Error("failed to mark job failed", zap.String("job_id", id.String()), zap.Error(err))
	}
	if err := u.publisher.PublishUpdate(messaging.Update{JobID: id, Status: messaging.StatusFailed, Message: msg}); err != nil {
		u.log.Warn("failed to publish update", zap.Error(err))
	}
}

// JobStatus is a job with its results once the worker has stored them.
type JobStatus struct {
	ID         uuid.UUID `json:"id"`
	StudentID  string    `json:"studentId"`
	Status     string    `json:"status"`
	TargetRole string    `json:"targetRole"`
	Results    []Result  `json:"results,omitempty"`
}

func (u *Uploader) Status(ctx context.Context, id uuid.UUID) (JobStatus, error) {
	job, err := u.store.GetAnalysisJob(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return JobStatus{}, fmt.Errorf("%w: %s", ErrJobNotFound, id)
	}
	if err != nil {
		return JobStatus{}, err
	}
	st := JobStatus{ID: job.ID, StudentID: job.StudentID, Status: job.Status, TargetRole: job.TargetRole}
	if job.Status != messaging.StatusCompleted {
		return st, nil
	}
	res, err := u.store.GetAnalysisResultByJob(ctx, id)
	if err != nil {
		return JobStatus{}, fmt.Errorf("failed to load results: %w", err)
	}
	if err := json.Unmarshal(res.Results, &st.Results); err != nil {
		return JobStatus{}, fmt.Errorf("failed to decode results: %w", err)
	}
	return st, nil
}

// Jobs lists a student's jobs, newest first.
func (u *Uploader) Jobs(ctx context.Context, studentID string) ([]JobStatus, error) {
	jobs, err := u.store.ListAnalysisJobsByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	out := make([]JobStatus, len(jobs))
	for i, j := range jobs {
		out[i] = JobStatus{ID: j.ID, StudentID: j.StudentID, Status: j.Status, TargetRole: j.TargetRole}
	}
	return out, nil
}
