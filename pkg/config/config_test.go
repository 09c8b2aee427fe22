package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"SERVER_PORT", "MODEL_SERVER_URL", "COMPLETIONS_MODEL", "DATASET_DIR", "MODEL_SERVER_WAIT", "COMPLETIONS_RATE_LIMIT"} {
		t.Setenv(key, "")
	}

	conf, err := LoadConfig(false)
	require.NoError(t, err)

	assert.Equal(t, "7860", conf.ServerPort)
	assert.Empty(t, conf.ModelServerURL)
	assert.Equal(t, "gpt-4", conf.CompletionsModel)
	assert.Equal(t, ".", conf.DatasetDir)
	assert.Equal(t, 10*time.Second, conf.ModelServerWait)
	assert.Equal(t, "localhost:7233", conf.TemporalAddress)
	assert.Equal(t, 60, conf.CompletionsRPM)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("MODEL_SERVER_URL", "http://localhost:8080")
	t.Setenv("MODEL_SERVER_WAIT", "2s")
	t.Setenv("TEMPORAL_TASK_QUEUE", "custom")
	t.Setenv("COMPLETIONS_RATE_LIMIT", "5")

	conf, err := LoadConfig(false)
	require.NoError(t, err)

	assert.Equal(t, "9000", conf.ServerPort)
	assert.Equal(t, "http://localhost:8080", conf.ModelServerURL)
	assert.Equal(t, 2*time.Second, conf.ModelServerWait)
	assert.Equal(t, "custom", conf.TemporalTaskQueue)
	assert.Equal(t, 5, conf.CompletionsRPM)
}

func TestLoadConfigInvalidValues(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MODEL_SERVER_WAIT", "soon")
	t.Setenv("COMPLETIONS_RATE_LIMIT", "-3")

	conf, err := LoadConfig(false)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, conf.ModelServerWait)
	assert.Equal(t, 60, conf.CompletionsRPM)
}
