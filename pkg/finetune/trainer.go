package finetune

import (
	"context"

	"github.com/samber/lo"
)

type JobStatus string

const (
	JobStatusValidatingFiles JobStatus = "validating_files"
	JobStatusQueued          JobStatus = "queued"
	JobStatusRunning         JobStatus = "running"
	JobStatusSucceeded       JobStatus = "succeeded"
	JobStatusFailed          JobStatus = "failed"
	JobStatusCancelled       JobStatus = "cancelled"
)

func (s JobStatus) Terminal() bool {
	return lo.Contains([]JobStatus{JobStatusSucceeded, JobStatusFailed, JobStatusCancelled}, s)
}

type Job struct {
	ID             string    `json:"id"`
	Status         JobStatus `json:"status"`
	FineTunedModel string    `json:"fine_tuned_model,omitempty"`
	Error          string    `json:"error,omitempty"`
}

type JobRequest struct {
	BaseModel        string
	TrainingFileID   string
	ValidationFileID string
	Epochs           int
	BatchSize        int
	Suffix           string
}

// Trainer is the external fine-tuning service. It owns tokenization, the
// training loop and checkpointing.
type Trainer interface {
	UploadFile(ctx context.Context, path string) (string, error)
	CreateJob(ctx context.Context, req JobRequest) (Job, error)
	GetJob(ctx context.Context, id string) (Job, error)
}
