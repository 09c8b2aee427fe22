// Package intent is a keyword classifier for the emotion and intent behind a
// message. It is a heuristic; confidence is fixed.
package intent

import (
	"strings"

	"github.com/samber/lo"
)

const (
	NeutralEmotion  = "neutral"
	ChitChatIntent  = "chit_chat"
	FixedConfidence = 0.8
)

type Result struct {
	Intent         string  `json:"intent"`
	Emotion        string  `json:"emotion"`
	Confidence     float64 `json:"confidence"`
	EmpathyTrigger bool    `json:"empathy_trigger"`
}

type rule struct {
	label    string
	keywords []string
}

// Tables are ordered; the first rule with a matching keyword wins.
var emotionRules = []rule{
	{"sad", []string{"sad", "down", "blue", "depressed", "crying"}},
	{"anxious", []string{"anxious", "nervous", "worried", "panic", "fear"}},
	{"lonely", []string{"lonely", "alone", "isolated", "abandoned"}},
	{"confused", []string{"confused", "don’t understand", "don't understand", "lost", "unclear", "disoriented"}},
	{"scared", []string{"scared", "afraid", "terrified", "fearful"}},
	{"happy", []string{"happy", "joy", "glad", "excited", "content"}},
}

var intentRules = []rule{
	{"seek_reassurance", []string{"am i ok", "what’s wrong with me", "what's wrong with me", "do you care", "i feel bad"}},
	{"express_feelings", []string{"i feel", "i’m", "i'm", "i’m feeling", "it feels like"}},
	{"ask_question", []string{"what", "why", "how", "where", "when"}},
	{"memory_check", []string{"do you remember", "what happened", "what’s this"}},
}

var empathyEmotions = []string{"sad", "lonely", "anxious", "confused", "scared"}

func Detect(text string) Result {
	lower := strings.ToLower(text)

	emotion := firstMatch(emotionRules, lower, NeutralEmotion)
	intent := firstMatch(intentRules, lower, ChitChatIntent)

	return Result{
		Intent:         intent,
		Emotion:        emotion,
		Confidence:     FixedConfidence,
		EmpathyTrigger: lo.Contains(empathyEmotions, emotion) || intent == "seek_reassurance",
	}
}

func firstMatch(rules []rule, text, fallback string) string {
	match, ok := lo.Find(rules, func(r rule) bool {
		return lo.SomeBy(r.keywords, func(k string) bool {
			return strings.Contains(text, k)
		})
	})
	if !ok {
		return fallback
	}
	return match.label
}
