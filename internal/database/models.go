package database

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type AnalysisJob struct {
	ID             uuid.UUID
	CreatedAt      time.Time
	StudentID      string
	Status         string
	TargetRole     string
	JobDescription string
}

type AnalysisResult struct {
	ID        uuid.UUID
	Results   json.RawMessage
	JobID     uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Resume struct {
	ID               uuid.UUID
	OriginalFilename string
	Mime             string
	SizeBytes        int64
	StorageProvider  string
	ObjectKey        string
	StorageUrl       string
	UploadStatus     string
	CreatedAt        time.Time
	JobID            uuid.UUID
}
