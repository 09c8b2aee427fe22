package finetune

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/obx0x3/empathy-dementia/pkg/dataset"
)

const (
	TrainJSONLFile      = "train.jsonl"
	ValidationJSONLFile = "validation.jsonl"
	ManifestFile        = "manifest.json"
)

type FineTuneWorkflows struct {
	Logger  *log.Logger
	Trainer Trainer
}

// Registry is satisfied by a Temporal worker and by the test workflow
// environment.
type Registry interface {
	RegisterWorkflow(w interface{})
	RegisterActivity(a interface{})
}

func (w *FineTuneWorkflows) RegisterWorkflowsAndActivities(registry Registry) {
	registry.RegisterWorkflow(w.FineTuneWorkflow)
	registry.RegisterActivity(w.PrepareDatasetActivity)
	registry.RegisterActivity(w.UploadDatasetActivity)
	registry.RegisterActivity(w.CreateJobActivity)
	registry.RegisterActivity(w.GetJobActivity)
	registry.RegisterActivity(w.SaveManifestActivity)
}

type FineTuneWorkflowInput struct {
	Config TrainingConfig `json:"config"`
}

type FineTuneWorkflowResult struct {
	JobID           string    `json:"job_id"`
	Status          JobStatus `json:"status"`
	FineTunedModel  string    `json:"fine_tuned_model"`
	TrainCount      int       `json:"train_count"`
	ValidationCount int       `json:"validation_count"`
	TestCount       int       `json:"test_count"`
}

func (w *FineTuneWorkflows) FineTuneWorkflow(ctx workflow.Context, input FineTuneWorkflowInput) (FineTuneWorkflowResult, error) {
	cfg := input.Config
	logger := workflow.GetLogger(ctx)

	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second * 2,
			MaximumInterval:    time.Minute,
			BackoffCoefficient: 2,
			MaximumAttempts:    3,
		},
	})

	var prepared PrepareDatasetActivityResponse
	err := workflow.ExecuteActivity(ctx, w.PrepareDatasetActivity, PrepareDatasetActivityInput{
		DataDir:   cfg.DataDir,
		OutputDir: cfg.OutputDir,
	}).Get(ctx, &prepared)
	if err != nil {
		return FineTuneWorkflowResult{}, errors.Wrap(err, "failed to prepare dataset")
	}

	result := FineTuneWorkflowResult{
		TrainCount:      prepared.TrainCount,
		ValidationCount: prepared.ValidationCount,
		TestCount:       prepared.TestCount,
	}

	var uploaded UploadDatasetActivityResponse
	err = workflow.ExecuteActivity(ctx, w.UploadDatasetActivity, UploadDatasetActivityInput{
		TrainPath:      prepared.TrainPath,
		ValidationPath: prepared.ValidationPath,
	}).Get(ctx, &uploaded)
	if err != nil {
		return result, errors.Wrap(err, "failed to upload dataset")
	}

	var job Job
	err = workflow.ExecuteActivity(ctx, w.CreateJobActivity, JobRequest{
		BaseModel:        cfg.BaseModel,
		TrainingFileID:   uploaded.TrainingFileID,
		ValidationFileID: uploaded.ValidationFileID,
		Epochs:           cfg.Epochs,
		BatchSize:        cfg.BatchSize,
		Suffix:           cfg.Suffix,
	}).Get(ctx, &job)
	if err != nil {
		return result, errors.Wrap(err, "failed to create fine-tuning job")
	}
	logger.Info("Fine-tuning job created", "job_id", job.ID, "status", job.Status)

	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = DefaultTrainingConfig().PollInterval
	}
	for !job.Status.Terminal() {
		if err := workflow.Sleep(ctx, pollInterval); err != nil {
			return result, err
		}
		if err := workflow.ExecuteActivity(ctx, w.GetJobActivity, job.ID).Get(ctx, &job); err != nil {
			return result, errors.Wrap(err, "failed to poll fine-tuning job")
		}
		logger.Debug("Fine-tuning job polled", "job_id", job.ID, "status", job.Status)
	}

	result.JobID = job.ID
	result.Status = job.Status
	result.FineTunedModel = job.FineTunedModel

	if job.Status != JobStatusSucceeded {
		return result, errors.Errorf("fine-tuning job %s ended with status %s: %s", job.ID, job.Status, job.Error)
	}

	err = workflow.ExecuteActivity(ctx, w.SaveManifestActivity, SaveManifestActivityInput{
		OutputDir: cfg.OutputDir,
		Config:    cfg,
		Result:    result,
	}).Get(ctx, nil)
	if err != nil {
		return result, errors.Wrap(err, "failed to save manifest")
	}

	return result, nil
}

type PrepareDatasetActivityInput struct {
	DataDir   string `json:"data_dir"`
	OutputDir string `json:"output_dir"`
}

type PrepareDatasetActivityResponse struct {
	TrainPath       string `json:"train_path"`
	ValidationPath  string `json:"validation_path"`
	TrainCount      int    `json:"train_count"`
	ValidationCount int    `json:"validation_count"`
	TestCount       int    `json:"test_count"`
}

// PrepareDatasetActivity loads the split artifacts and writes the train and
// validation splits as trainer-ready JSONL. The test split is held out.
func (w *FineTuneWorkflows) PrepareDatasetActivity(ctx context.Context, input PrepareDatasetActivityInput) (PrepareDatasetActivityResponse, error) {
	splits, err := dataset.LoadSplits(input.DataDir)
	if err != nil {
		return PrepareDatasetActivityResponse{}, errors.Wrap(err, "failed to load dataset splits")
	}
	if len(splits.Train) == 0 {
		return PrepareDatasetActivityResponse{}, temporal.NewNonRetryableApplicationError("training split is empty", "EmptyDataset", nil)
	}

	if err := os.MkdirAll(input.OutputDir, 0o755); err != nil {
		return PrepareDatasetActivityResponse{}, errors.Wrap(err, "failed to create output dir")
	}

	response := PrepareDatasetActivityResponse{
		TrainPath:       filepath.Join(input.OutputDir, TrainJSONLFile),
		TrainCount:      len(splits.Train),
		ValidationCount: len(splits.Validation),
		TestCount:       len(splits.Test),
	}
	if err := writeJSONLFile(response.TrainPath, Preprocess(splits.Train)); err != nil {
		return PrepareDatasetActivityResponse{}, err
	}
	if len(splits.Validation) > 0 {
		response.ValidationPath = filepath.Join(input.OutputDir, ValidationJSONLFile)
		if err := writeJSONLFile(response.ValidationPath, Preprocess(splits.Validation)); err != nil {
			return PrepareDatasetActivityResponse{}, err
		}
	}

	w.Logger.Info("Prepared fine-tuning dataset",
		"train", response.TrainCount,
		"validation", response.ValidationCount,
		"test", response.TestCount)
	return response, nil
}

type UploadDatasetActivityInput struct {
	TrainPath      string `json:"train_path"`
	ValidationPath string `json:"validation_path"`
}

type UploadDatasetActivityResponse struct {
	TrainingFileID   string `json:"training_file_id"`
	ValidationFileID string `json:"validation_file_id"`
}

func (w *FineTuneWorkflows) UploadDatasetActivity(ctx context.Context, input UploadDatasetActivityInput) (UploadDatasetActivityResponse, error) {
	trainID, err := w.Trainer.UploadFile(ctx, input.TrainPath)
	if err != nil {
		return UploadDatasetActivityResponse{}, err
	}

	response := UploadDatasetActivityResponse{TrainingFileID: trainID}
	if input.ValidationPath != "" {
		if response.ValidationFileID, err = w.Trainer.UploadFile(ctx, input.ValidationPath); err != nil {
			return UploadDatasetActivityResponse{}, err
		}
	}
	return response, nil
}

func (w *FineTuneWorkflows) CreateJobActivity(ctx context.Context, req JobRequest) (Job, error) {
	return w.Trainer.CreateJob(ctx, req)
}

func (w *FineTuneWorkflows) GetJobActivity(ctx context.Context, id string) (Job, error) {
	return w.Trainer.GetJob(ctx, id)
}

type SaveManifestActivityInput struct {
	OutputDir string                 `json:"output_dir"`
	Config    TrainingConfig         `json:"config"`
	Result    FineTuneWorkflowResult `json:"result"`
}

type Manifest struct {
	Config      TrainingConfig         `json:"config"`
	Result      FineTuneWorkflowResult `json:"result"`
	CompletedAt time.Time              `json:"completed_at"`
}

// SaveManifestActivity records which model the run produced next to the
// training files.
func (w *FineTuneWorkflows) SaveManifestActivity(ctx context.Context, input SaveManifestActivityInput) error {
	data, err := json.MarshalIndent(Manifest{
		Config:      input.Config,
		Result:      input.Result,
		CompletedAt: time.Now().UTC(),
	}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal manifest")
	}

	path := filepath.Join(input.OutputDir, ManifestFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	w.Logger.Info("Saved fine-tuning manifest", "path", path, "model", input.Result.FineTunedModel)
	return nil
}
