package dataset

import (
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/obx0x3/empathy-dementia/pkg/langdetect"
)

var ErrInvalidArgument = errors.New("invalid argument")

const (
	EnglishCount = 100
	FrenchCount  = 50
)

// Synthesizer builds Example records from the fixed templates. All randomness
// comes from rng, so a seeded source gives a reproducible corpus.
type Synthesizer struct {
	rng *rand.Rand
}

func NewSynthesizer(rng *rand.Rand) *Synthesizer {
	return &Synthesizer{rng: rng}
}

// Generate returns count independent records for lang.
func (s *Synthesizer) Generate(lang langdetect.Language, count int) ([]Example, error) {
	pool, ok := templates[lang]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidArgument, "unsupported language %q", lang)
	}
	if count < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "negative count %d", count)
	}

	examples := make([]Example, 0, count)
	for range count {
		examples = append(examples, s.entry(lang, pool))
	}
	return examples, nil
}

func (s *Synthesizer) entry(lang langdetect.Language, pool []template) Example {
	tmpl := pick(s.rng, pool)
	emotion := pick(s.rng, Emotions)
	intent := pick(s.rng, Intents)
	tags := pick(s.rng, TagGroups)
	difficulty := pick(s.rng, Difficulties)

	return Example{
		Input:             strings.ReplaceAll(tmpl.prompt, emotionPlaceholder, emotion),
		Response:          tmpl.response,
		Emotion:           emotion,
		Intent:            intent,
		Tags:              slices.Clone(tags),
		CareMode:          true,
		Language:          lang,
		Difficulty:        difficulty,
		IsDementiaRelated: true,
	}
}

// Shuffle permutes records in place.
func (s *Synthesizer) Shuffle(records []Example) {
	s.rng.Shuffle(len(records), func(i, j int) {
		records[i], records[j] = records[j], records[i]
	})
}

// BuildCorpus generates the English and French records, shuffles the
// concatenation and splits it. Shuffling before the split keeps the French
// records, appended last, from collecting in validation and test.
func (s *Synthesizer) BuildCorpus() (Splits, error) {
	en, err := s.Generate(langdetect.English, EnglishCount)
	if err != nil {
		return Splits{}, err
	}
	fr, err := s.Generate(langdetect.French, FrenchCount)
	if err != nil {
		return Splits{}, err
	}

	all := append(en, fr...)
	s.Shuffle(all)
	return Split(all), nil
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}
