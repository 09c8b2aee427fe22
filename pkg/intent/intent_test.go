package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		emotion string
		intent  string
		trigger bool
	}{
		{"lonely feeling", "I feel so lonely today", "lonely", "express_feelings", true},
		{"reassurance", "Am I OK? Do you care?", NeutralEmotion, "seek_reassurance", true},
		{"question", "Where are my keys", NeutralEmotion, "ask_question", false},
		{"happy", "I'm glad you came", "happy", "express_feelings", false},
		{"first emotion wins", "I am sad and scared", "sad", ChitChatIntent, true},
		{"nothing", "hello there", NeutralEmotion, ChitChatIntent, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.text)
			assert.Equal(t, tt.emotion, got.Emotion)
			assert.Equal(t, tt.intent, got.Intent)
			assert.Equal(t, tt.trigger, got.EmpathyTrigger)
			assert.Equal(t, FixedConfidence, got.Confidence)
		})
	}
}
