package database

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

const createOrUpdateAnalysisResult = `-- name: CreateOrUpdateAnalysisResult :exec
INSERT INTO analysis_results (
results, job_id)
VALUES ( $1, $2)
ON CONFLICT (job_id)
DO UPDATE SET
    results = EXCLUDED.results,
    updated_at = CURRENT_TIMESTAMP
`

type CreateOrUpdateAnalysisResultParams struct {
	Results json.RawMessage
	JobID   uuid.UUID
}

func (q *Queries) CreateOrUpdateAnalysisResult(ctx context.Context, arg CreateOrUpdateAnalysisResultParams) error {
	_, err := q.db.ExecContext(ctx, createOrUpdateAnalysisResult, arg.Results, arg.JobID)
	return err
}

const getAnalysisResultByJob = `-- name: GetAnalysisResultByJob :one
SELECT id, results, job_id, created_at, updated_at FROM analysis_results WHERE job_id=$1
`

func (q *Queries) GetAnalysisResultByJob(ctx context.Context, jobID uuid.UUID) (AnalysisResult, error) {
	row := q.db.QueryRowContext(ctx, getAnalysisResultByJob, jobID)
	var i AnalysisResult
	err := row.Scan(
		&i.ID,
		&i.Results,
		&i.JobID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
