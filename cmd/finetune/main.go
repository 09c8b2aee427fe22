package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"github.com/obx0x3/empathy-dementia/pkg/bootstrap"
	"github.com/obx0x3/empathy-dementia/pkg/config"
	"github.com/obx0x3/empathy-dementia/pkg/finetune"
	"github.com/obx0x3/empathy-dementia/pkg/logging"
)

func main() {
	envs, err := config.LoadConfig(false)
	if err != nil {
		panic(err)
	}
	logger := logging.NewLogger(os.Stdout, envs.LogFormat, envs.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, envs, logging.NewFactory(logger)); err != nil {
		logger.Error("Fine-tuning failed", "error", err)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, envs *config.Config, factory *logging.Factory) error {
	logger := factory.ForService("finetune")

	if envs.CompletionsAPIKey == "" {
		return errors.New("COMPLETIONS_API_KEY is required for fine-tuning")
	}

	base := finetune.DefaultTrainingConfig()
	base.BaseModel = envs.FineTuneBaseModel
	base.Suffix = envs.FineTuneSuffix
	base.DataDir = envs.DatasetDir
	base.OutputDir = envs.FineTuneOutputDir
	cfg, err := finetune.LoadTrainingConfig(envs.FineTuneConfig, base)
	if err != nil {
		return err
	}

	temporalClient, err := bootstrap.CreateTemporalClient(
		factory.ForWorkflow("temporal"),
		envs.TemporalAddress,
		envs.TemporalNamespace,
		envs.TemporalAPIKey,
	)
	if err != nil {
		return err
	}
	defer temporalClient.Close()

	workflows := &finetune.FineTuneWorkflows{
		Logger:  factory.ForProcessor("finetune"),
		Trainer: finetune.NewOpenAITrainer(factory.ForClient("trainer"), envs.CompletionsAPIKey, envs.CompletionsAPIURL),
	}

	w := worker.New(temporalClient, envs.TemporalTaskQueue, worker.Options{
		MaxConcurrentActivityExecutionSize: 1,
	})
	workflows.RegisterWorkflowsAndActivities(w)
	if err := w.Start(); err != nil {
		return errors.Wrap(err, "Unable to start temporal worker")
	}
	defer w.Stop()

	workflowRun, err := temporalClient.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:        "finetune-" + uuid.NewString(),
		TaskQueue: envs.TemporalTaskQueue,
	}, workflows.FineTuneWorkflow, finetune.FineTuneWorkflowInput{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "failed to start fine-tuning workflow")
	}
	logger.Info("Fine-tuning workflow started", "workflow_id", workflowRun.GetID(), "run_id", workflowRun.GetRunID())

	var result finetune.FineTuneWorkflowResult
	if err := workflowRun.Get(ctx, &result); err != nil {
		return errors.Wrapf(err, "workflow %s", workflowRun.GetID())
	}

	logger.Info("Model trained and saved",
		"model", result.FineTunedModel,
		"job_id", result.JobID,
		"output_dir", cfg.OutputDir)
	return nil
}
