package database

import (
	"context"

	"github.com/google/uuid"
)

const createAnalysisJob = `-- name: CreateAnalysisJob :one
INSERT INTO analysis_jobs (student_id, status, target_role, job_description)
VALUES ($1, 'pending', $2, $3)
RETURNING id, created_at, student_id, status, target_role, job_description
`

type CreateAnalysisJobParams struct {
	StudentID      string
	TargetRole     string
	JobDescription string
}

func (q *Queries) CreateAnalysisJob(ctx context.Context, arg CreateAnalysisJobParams) (AnalysisJob, error) {
	row := q.db.QueryRowContext(ctx, createAnalysisJob, arg.StudentID, arg.TargetRole, arg.JobDescription)
	var i AnalysisJob
	err := row.Scan(
		&i.ID,
		&i.CreatedAt,
		&i.StudentID,
		&i.Status,
		&i.TargetRole,
		&i.JobDescription,
	)
	return i, err
}

const getAnalysisJob = `-- name: GetAnalysisJob :one
SELECT id, created_at, student_id, status, target_role, job_description FROM analysis_jobs WHERE id=$1
`

func (q *Queries) GetAnalysisJob(ctx context.Context, id uuid.UUID) (AnalysisJob, error) {
	row := q.db.QueryRowContext(ctx, getAnalysisJob, id)
	var i AnalysisJob
	err := row.Scan(
		&i.ID,
		&i.CreatedAt,
		&i.StudentID,
		&i.Status,
		&i.TargetRole,
		&i.JobDescription,
	)
	return i, err
}

const listAnalysisJobsByStudent = `-- name: ListAnalysisJobsByStudent :many
SELECT id, created_at, student_id, status, target_role, job_description FROM analysis_jobs
WHERE student_id=$1
ORDER BY created_at DESC
`

func (q *Queries) ListAnalysisJobsByStudent(ctx context.Context, studentID string) ([]AnalysisJob, error) {
	rows, err := q.db.QueryContext(ctx, listAnalysisJobsByStudent, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []AnalysisJob
	for rows.Next() {
		var i AnalysisJob
		if err := rows.Scan(
			&i.ID,
			&i.CreatedAt,
			&i.StudentID,
			&i.Status,
			&i.TargetRole,
			&i.JobDescription,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateAnalysisJobStatus = `-- name: UpdateAnalysisJobStatus :exec
UPDATE analysis_jobs
SET status=$1
WHERE id=$2
`

type UpdateAnalysisJobStatusParams struct {
	Status string
	ID     uuid.UUID
}

func (q *Queries) UpdateAnalysisJobStatus(ctx context.Context, arg UpdateAnalysisJobStatusParams) error {
	_, err := q.db.ExecContext(ctx, updateAnalysisJobStatus, arg.Status, arg.ID)
	return err
}
