package finetune

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var _ Trainer = (*OpenAITrainer)(nil)

// OpenAITrainer runs jobs on an OpenAI-compatible fine-tuning API.
type OpenAITrainer struct {
	client *openai.Client
	logger *log.Logger
}

func NewOpenAITrainer(logger *log.Logger, apiKey, baseURL string, opts ...option.RequestOption) *OpenAITrainer {
	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	}, opts...)
	client := openai.NewClient(opts...)

	return &OpenAITrainer{
		client: &client,
		logger: logger,
	}
}

func (t *OpenAITrainer) UploadFile(ctx context.Context, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	uploaded, err := t.client.Files.New(ctx, openai.FileNewParams{
		File:    file,
		Purpose: openai.FilePurposeFineTune,
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", path, err)
	}

	t.logger.Info("Uploaded training file", "path", path, "file_id", uploaded.ID)
	return uploaded.ID, nil
}

func (t *OpenAITrainer) CreateJob(ctx context.Context, req JobRequest) (Job, error) {
	params := openai.FineTuningJobNewParams{
		Model:        openai.FineTuningJobNewParamsModel(req.BaseModel),
		TrainingFile: req.TrainingFileID,
		Hyperparameters: openai.FineTuningJobNewParamsHyperparameters{
			NEpochs: openai.FineTuningJobNewParamsHyperparametersNEpochsUnion{
				OfInt: openai.Int(int64(req.Epochs)),
			},
			BatchSize: openai.FineTuningJobNewParamsHyperparametersBatchSizeUnion{
				OfInt: openai.Int(int64(req.BatchSize)),
			},
		},
	}
	if req.ValidationFileID != "" {
		params.ValidationFile = openai.String(req.ValidationFileID)
	}
	if req.Suffix != "" {
		params.Suffix = openai.String(req.Suffix)
	}

	job, err := t.client.FineTuning.Jobs.New(ctx, params)
	if err != nil {
		return Job{}, fmt.Errorf("creating fine-tuning job: %w", err)
	}

	t.logger.Info("Created fine-tuning job", "job_id", job.ID, "model", req.BaseModel)
	return toJob(job), nil
}

func (t *OpenAITrainer) GetJob(ctx context.Context, id string) (Job, error) {
	job, err := t.client.FineTuning.Jobs.Get(ctx, id)
	if err != nil {
		return Job{}, fmt.Errorf("retrieving fine-tuning job %s: %w", id, err)
	}
	return toJob(job), nil
}

func toJob(job *openai.FineTuningJob) Job {
	return Job{
		ID:             job.ID,
		Status:         JobStatus(job.Status),
		FineTunedModel: job.FineTunedModel,
		Error:          job.Error.Message,
	}
}
