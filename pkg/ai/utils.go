package ai

import (
	"regexp"
	"strings"
)

var (
	thinkRegex        = regexp.MustCompile(`(?is)<think>.*?</think>`)
	thinkingRegex     = regexp.MustCompile(`(?is)<thinking>.*?</thinking>`)
	reasoningRegex    = regexp.MustCompile(`(?is)<reasoning>.*?</reasoning>`)
	multiNewlineRegex = regexp.MustCompile(`\n{3,}`)
)

// StripThinkingTags removes reasoning blocks some OpenAI-compatible local
// models emit before the answer.
func StripThinkingTags(content string) string {
	content = thinkRegex.ReplaceAllString(content, "")
	content = thinkingRegex.ReplaceAllString(content, "")
	content = reasoningRegex.ReplaceAllString(content, "")
	content = strings.TrimSpace(content)
	return multiNewlineRegex.ReplaceAllString(content, "\n\n")
}
