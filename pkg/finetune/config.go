package finetune

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// TrainingConfig is the single set of knobs for a fine-tuning run.
type TrainingConfig struct {
	BaseModel    string        `json:"base_model" yaml:"base_model"`
	Epochs       int           `json:"epochs" yaml:"epochs"`
	BatchSize    int           `json:"batch_size" yaml:"batch_size"`
	Suffix       string        `json:"suffix" yaml:"suffix"`
	DataDir      string        `json:"data_dir" yaml:"data_dir"`
	OutputDir    string        `json:"output_dir" yaml:"output_dir"`
	PollInterval time.Duration `json:"poll_interval" yaml:"poll_interval"`
}

func DefaultTrainingConfig() TrainingConfig {
	return TrainingConfig{
		BaseModel:    "gpt-4o-mini-2024-07-18",
		Epochs:       4,
		BatchSize:    4,
		Suffix:       "empathy-dementia",
		DataDir:      ".",
		OutputDir:    "./model",
		PollInterval: 30 * time.Second,
	}
}

// LoadTrainingConfig overlays the YAML file at path on base. Keys missing
// from the file keep their base value, and a missing file returns base.
func LoadTrainingConfig(path string, base TrainingConfig) (TrainingConfig, error) {
	if path == "" {
		return base, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return base, nil
		}
		return TrainingConfig{}, fmt.Errorf("failed to read training config: %w", err)
	}

	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TrainingConfig{}, fmt.Errorf("failed to parse training config: %w", err)
	}
	if cfg.Epochs < 1 || cfg.BatchSize < 1 {
		return TrainingConfig{}, fmt.Errorf("training config %s: epochs and batch_size must be positive", path)
	}
	return cfg, nil
}
