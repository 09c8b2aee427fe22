package dataset

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obx0x3/empathy-dementia/pkg/langdetect"
)

func newTestSynthesizer(seed uint64) *Synthesizer {
	return NewSynthesizer(rand.New(rand.NewPCG(seed, seed+1)))
}

func TestGenerate(t *testing.T) {
	s := newTestSynthesizer(7)

	for _, lang := range langdetect.Supported {
		for _, count := range []int{0, 1, 5, 100} {
			examples, err := s.Generate(lang, count)
			require.NoError(t, err)
			require.NotNil(t, examples)
			require.Len(t, examples, count)

			for _, ex := range examples {
				assert.True(t, ex.IsDementiaRelated)
				assert.True(t, ex.CareMode)
				assert.Equal(t, lang, ex.Language)
				assert.Contains(t, TagGroups, ex.Tags)
				assert.Contains(t, Emotions, ex.Emotion)
				assert.Contains(t, Intents, ex.Intent)
				assert.Contains(t, Difficulties, ex.Difficulty)
				assert.NotContains(t, ex.Input, emotionPlaceholder)
			}
		}
	}
}

func TestGenerateResponseMatchesTemplate(t *testing.T) {
	s := newTestSynthesizer(11)

	for _, lang := range langdetect.Supported {
		examples, err := s.Generate(lang, 200)
		require.NoError(t, err)

		for _, ex := range examples {
			matched := false
			for _, tmpl := range templates[lang] {
				if tmpl.response != ex.Response {
					continue
				}
				if strings.ReplaceAll(tmpl.prompt, emotionPlaceholder, ex.Emotion) == ex.Input {
					matched = true
					break
				}
			}
			assert.True(t, matched, "input %q does not belong with response %q", ex.Input, ex.Response)
		}
	}
}

func TestGenerateTagsAreCopies(t *testing.T) {
	s := newTestSynthesizer(3)

	examples, err := s.Generate(langdetect.English, 20)
	require.NoError(t, err)

	for i := range examples {
		examples[i].Tags[0] = "mutated"
	}
	for _, group := range TagGroups {
		assert.NotEqual(t, "mutated", group[0])
	}
}

func TestGenerateInvalidArguments(t *testing.T) {
	s := newTestSynthesizer(1)

	_, err := s.Generate(langdetect.English, -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.Generate(langdetect.Language("de"), 3)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestGenerateIsReproducible(t *testing.T) {
	a, err := newTestSynthesizer(42).Generate(langdetect.French, 30)
	require.NoError(t, err)
	b, err := newTestSynthesizer(42).Generate(langdetect.French, 30)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestBuildCorpus(t *testing.T) {
	splits, err := newTestSynthesizer(2024).BuildCorpus()
	require.NoError(t, err)

	assert.Len(t, splits.Train, 105)
	assert.Len(t, splits.Validation, 30)
	assert.Len(t, splits.Test, 15)

	counts := map[langdetect.Language]int{}
	for _, part := range [][]Example{splits.Train, splits.Validation, splits.Test} {
		for _, ex := range part {
			counts[ex.Language]++
		}
	}
	assert.Equal(t, EnglishCount, counts[langdetect.English])
	assert.Equal(t, FrenchCount, counts[langdetect.French])
}

func TestShuffleKeepsRecords(t *testing.T) {
	s := newTestSynthesizer(5)
	records := numbered(50)
	shuffled := append([]Example(nil), records...)

	s.Shuffle(shuffled)

	assert.ElementsMatch(t, records, shuffled)
}
