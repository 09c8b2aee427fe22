package config

import (
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort        string
	ModelServerURL    string
	ModelServerWait   time.Duration
	CompletionsAPIURL string
	CompletionsAPIKey string
	CompletionsModel  string
	CompletionsRPM    int
	DatasetDir        string
	FineTuneBaseModel string
	FineTuneOutputDir string
	FineTuneSuffix    string
	FineTuneConfig    string
	TemporalAddress   string
	TemporalNamespace string
	TemporalTaskQueue string
	TemporalAPIKey    string
	LogLevel          string
	LogFormat         string
}

func getEnv(key, defaultValue string, printEnv bool) string {
	logger := log.Default()
	value := os.Getenv(key)
	if printEnv {
		logger.Info("Env", "key", key, "value", value)
	}
	if value == "" {
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue time.Duration, printEnv bool) time.Duration {
	value := getEnv(key, "", printEnv)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Default().Warn("Invalid duration, using default", "key", key, "value", value, "default", defaultValue)
		return defaultValue
	}
	return d
}

func getInt(key string, defaultValue int, printEnv bool) int {
	value := getEnv(key, "", printEnv)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		log.Default().Warn("Invalid integer, using default", "key", key, "value", value, "default", defaultValue)
		return defaultValue
	}
	return n
}

// LoadConfig reads the process configuration from the environment, after
// loading a .env file from the working directory when one exists. Secrets
// are never echoed, even with printEnv.
func LoadConfig(printEnv bool) (*Config, error) {
	_ = godotenv.Load()

	conf := &Config{
		ServerPort:        getEnv("SERVER_PORT", "7860", printEnv),
		ModelServerURL:    getEnv("MODEL_SERVER_URL", "", printEnv),
		ModelServerWait:   getDuration("MODEL_SERVER_WAIT", 10*time.Second, printEnv),
		CompletionsAPIURL: getEnv("COMPLETIONS_API_URL", "https://api.openai.com/v1", printEnv),
		CompletionsAPIKey: getEnv("COMPLETIONS_API_KEY", "", false),
		CompletionsModel:  getEnv("COMPLETIONS_MODEL", "gpt-4", printEnv),
		CompletionsRPM:    getInt("COMPLETIONS_RATE_LIMIT", 60, printEnv),
		DatasetDir:        getEnv("DATASET_DIR", ".", printEnv),
		FineTuneBaseModel: getEnv("FINETUNE_BASE_MODEL", "gpt-4o-mini-2024-07-18", printEnv),
		FineTuneOutputDir: getEnv("FINETUNE_OUTPUT_DIR", "./model", printEnv),
		FineTuneSuffix:    getEnv("FINETUNE_SUFFIX", "empathy-dementia", printEnv),
		FineTuneConfig:    getEnv("FINETUNE_CONFIG", "finetune.yaml", printEnv),
		TemporalAddress:   getEnv("TEMPORAL_ADDRESS", "localhost:7233", printEnv),
		TemporalNamespace: getEnv("TEMPORAL_NAMESPACE", "default", printEnv),
		TemporalTaskQueue: getEnv("TEMPORAL_TASK_QUEUE", "finetune", printEnv),
		TemporalAPIKey:    getEnv("TEMPORAL_API_KEY", "", false),
		LogLevel:          getEnv("LOG_LEVEL", "info", printEnv),
		LogFormat:         getEnv("LOG_FORMAT", "text", printEnv),
	}

	return conf, nil
}
