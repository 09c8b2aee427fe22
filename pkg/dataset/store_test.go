package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obx0x3/empathy-dementia/pkg/langdetect"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	splits, err := newTestSynthesizer(99).BuildCorpus()
	require.NoError(t, err)

	require.NoError(t, SaveSplits(dir, splits))

	loaded, err := LoadSplits(dir)
	require.NoError(t, err)
	assert.Equal(t, splits.Train, loaded.Train)
	assert.Equal(t, splits.Validation, loaded.Validation)
	assert.Equal(t, splits.Test, loaded.Test)
}

func TestSaveWritesLiteralUnicode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fr.json")
	records := []Example{{
		Input:             "Je ne sais pas où je suis.",
		Response:          "Ça arrive à beaucoup de gens.",
		Emotion:           "confused",
		Intent:            "vent",
		Tags:              []string{"fear", "loneliness", "aging"},
		CareMode:          true,
		Language:          langdetect.French,
		Difficulty:        "easy",
		IsDementiaRelated: true,
	}}

	require.NoError(t, Save(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "où je suis")
	assert.Contains(t, content, "Ça arrive")
	assert.NotContains(t, content, `\u00`)
	assert.Contains(t, content, "\n  {\n    \"input\"")
	assert.Contains(t, content, `"is_dementia_related": true`)
}

func TestSaveEmptyWritesArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, Save(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))

	records, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o600))
	_, err = Load(bad)
	assert.Error(t, err)
}
