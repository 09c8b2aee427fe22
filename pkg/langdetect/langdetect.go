package langdetect

import (
	"strings"

	"github.com/samber/lo"
)

type Language string

const (
	English Language = "en"
	French  Language = "fr"
)

var Supported = []Language{English, French}

// frenchMarkers are matched as plain substrings of the lower-cased text, so
// "je" also fires inside words like "jeudi" or "jelly".
var frenchMarkers = []string{"je", "tu", "c'est", "j'ai", "où", "c’est", "j’ai"}

// Detect returns French when any marker occurs in text, English otherwise.
func Detect(text string) Language {
	lower := strings.ToLower(text)
	if lo.SomeBy(frenchMarkers, func(marker string) bool {
		return strings.Contains(lower, marker)
	}) {
		return French
	}
	return English
}

// Parse normalises a language code. The second return is false for codes
// outside Supported.
func Parse(code string) (Language, bool) {
	lang := Language(strings.ToLower(strings.TrimSpace(code)))
	return lang, lo.Contains(Supported, lang)
}

// Prefix is the task prefix the model was fine-tuned with.
func Prefix(lang Language) string {
	if lang == French {
		return "émotion: "
	}
	return "emotion: "
}

func (l Language) String() string {
	return string(l)
}
