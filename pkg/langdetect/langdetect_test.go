package langdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		text string
		want Language
	}{
		{"Je suis fatigué", French},
		{"I am tired", English},
		{"Où suis-je?", French},
		{"OÙ EST MA FILLE", French},
		{"C'EST difficile", French},
		{"j’ai peur", French},
		{"Where am I?", English},
		{"", English},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.text))
		})
	}
}

func TestParse(t *testing.T) {
	lang, ok := Parse(" FR ")
	assert.True(t, ok)
	assert.Equal(t, French, lang)

	lang, ok = Parse("en")
	assert.True(t, ok)
	assert.Equal(t, English, lang)

	_, ok = Parse("de")
	assert.False(t, ok)
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, "emotion: ", Prefix(English))
	assert.Equal(t, "émotion: ", Prefix(French))
}
