package resume

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadolammi/aithera/internal/database"
	"github.com/muhammadolammi/aithera/internal/messaging"
	"go.uber.org/zap"
)

// Store is the part of the generated queries the pipeline uses.
type Store interface {
	CreateAnalysisJob(ctx context.Context, arg database.CreateAnalysisJobParams) (database.AnalysisJob, error)
	GetAnalysisJob(ctx context.Context, id uuid.UUID) (database.AnalysisJob, error)
	ListAnalysisJobsByStudent(ctx context.Context, studentID string) ([]database.AnalysisJob, error)
	UpdateAnalysisJobStatus(ctx context.Context, arg database.UpdateAnalysisJobStatusParams) error
	CreateResume(ctx context.Context, arg database.CreateResumeParams) (database.Resume, error)
	GetResumesByJob(ctx context.Context, jobID uuid.UUID) ([]database.Resume, error)
	CreateOrUpdateAnalysisResult(ctx context.Context, arg database.CreateOrUpdateAnalysisResultParams) error
	GetAnalysisResultByJob(ctx context.Context, jobID uuid.UUID) (database.AnalysisResult, error)
}

// Analyzer scores one resume text for a job.
type Analyzer interface {
	Analyze(ctx context.Context, job messaging.Job, resumeText string) (string, error)
}

// Processor runs the analysis for every resume of a job: download, text
// extraction, agent analysis and persistence. Transient steps are retried.
type Processor struct {
	store    Store
	objects  ObjectStore
	analyzer Analyzer
	log      *zap.Logger

	// Wait is the base delay between retries.
	Wait time.Duration
}

func NewProcessor(store Store, objects ObjectStore, analyzer Analyzer, log *zap.Logger) *Processor {
	return &Processor{
		store:    store,
		objects:  objects,
		analyzer: analyzer,
		log:      log.Named("processor"),
		Wait:     500 * time.Millisecond,
	}
}

// Process analyzes a job's resumes and stores the results. Per-file failures
// become error entries; only failing to load or save the job fails the call.
func (p *Processor) Process(ctx context.Context, job messaging.Job) ([]Result, error) {
	resumes, err := p.store.GetResumesByJob(ctx, job.ID)
	if err != nil {
		return nil, fmt.Errorf("error getting resumes for job %s: %w", job.ID, err)
	}

	results := make([]Result, 0, len(resumes))
	for _, r := range resumes {
		results = append(results, p.processResume(ctx, job, r))
	}

	resultsJSON, err := json.Marshal(results)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis results: %w", err)
	}
	_, err = retry(ctx, 3, p.Wait, func() (any, error) {
		return nil, p.store.CreateOrUpdateAnalysisResult(ctx, database.CreateOrUpdateAnalysisResultParams{
			Results: resultsJSON,
			JobID:   job.ID,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save analysis result after retries: %w", err)
	}
	p.log.Info("Job analyzed", zap.String("job_id", job.ID.String()), zap.Int("resumes", len(results)))
	return results, nil
}

func (p *Processor) processResume(ctx context.Context, job messaging.Job, r database.Resume) Result {
	log := p.log.With(zap.String("job_id", job.ID.String()), zap.String("object_key", r.ObjectKey))

	data, err := retry(ctx, 3, p.Wait, func() ([]byte, error) {
		return p.objects.Download(ctx, r.ObjectKey)
	})
	if err != nil {
		log.Warn("Failed to download resume after retries", zap.Error(err))
		return errorResult(r.OriginalFilename, fmt.Sprintf("file download error: %v", err))
	}

	text, err := ExtractText(r.Mime, data)
	if err != nil {
		log.Warn("Text extraction failed", zap.Error(err))
		return errorResult(r.OriginalFilename, fmt.Sprintf("text extraction error: %v", err))
	}

	output, err := retry(ctx, 2, p.Wait, func() (string, error) {
		return p.analyzer.Analyze(ctx, job, text)
	})
	if err != nil {
		log.Warn("Agent failed after retries", zap.Error(err))
		return errorResult(r.OriginalFilename, fmt.Sprintf("agent stream error: %v", err))
	}
	return parseResult(r.OriginalFilename, output)
}
