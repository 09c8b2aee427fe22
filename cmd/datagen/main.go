package main

import (
	"math/rand/v2"
	"os"

	"github.com/obx0x3/empathy-dementia/pkg/config"
	"github.com/obx0x3/empathy-dementia/pkg/dataset"
	"github.com/obx0x3/empathy-dementia/pkg/logging"
)

func main() {
	envs, err := config.LoadConfig(false)
	if err != nil {
		panic(err)
	}
	logger := logging.NewLogger(os.Stdout, envs.LogFormat, envs.LogLevel)

	synth := dataset.NewSynthesizer(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))

	splits, err := synth.BuildCorpus()
	if err != nil {
		logger.Error("Failed to build corpus", "error", err)
		os.Exit(1)
	}

	if err := dataset.SaveSplits(envs.DatasetDir, splits); err != nil {
		logger.Error("Failed to save dataset splits", "dir", envs.DatasetDir, "error", err)
		os.Exit(1)
	}

	logger.Info("Generated dataset splits",
		"dir", envs.DatasetDir,
		"train", len(splits.Train),
		"validation", len(splits.Validation),
		"test", len(splits.Test))
}
