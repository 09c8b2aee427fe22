package dataset

import "github.com/obx0x3/empathy-dementia/pkg/langdetect"

// Example is one synthetic training sample.
type Example struct {
	Input             string              `json:"input"`
	Response          string              `json:"response"`
	Emotion           string              `json:"emotion"`
	Intent            string              `json:"intent"`
	Tags              []string            `json:"tags"`
	CareMode          bool                `json:"care_mode"`
	Language          langdetect.Language `json:"language"`
	Difficulty        string              `json:"difficulty"`
	IsDementiaRelated bool                `json:"is_dementia_related"`
}

type template struct {
	prompt   string
	response string
}

const emotionPlaceholder = "{emotion}"

var (
	Emotions     = []string{"lonely", "confused", "sadness", "frustrated", "scared"}
	Intents      = []string{"seek_reassurance", "express_confusion", "seek_support", "vent", "request_help"}
	Difficulties = []string{"easy", "moderate", "hard"}
	TagGroups    = [][]string{
		{"memory", "forgetting", "support"},
		{"family", "burden", "dementia"},
		{"confusion", "orientation", "safety"},
		{"fear", "loneliness", "aging"},
		{"support", "validation", "love"},
	}
)

var templates = map[langdetect.Language][]template{
	langdetect.English: {
		{"I feel like {emotion}.", "You're not alone. You're understood."},
		{"I'm always {emotion}, it's scary.", "That sounds tough. I'm here to support you."},
		{"Sometimes I just feel so {emotion}.", "You're valued. Let's work through this together."},
		{"Why do I keep forgetting things?", "It's okay. Memory issues happen, and you’re not alone."},
		{"I don’t know where I am.", "Let’s take a deep breath. I can help guide you."},
	},
	langdetect.French: {
		{"Je me sens {emotion}.", "Tu n'es pas seul. Je suis là pour toi."},
		{"Je suis toujours {emotion}, c'est effrayant.", "C'est dur. Je te comprends."},
		{"Parfois je me sens si {emotion}.", "Tu comptes beaucoup. Ensemble, on va y arriver."},
		{"Pourquoi j'oublie tout le temps ?", "Ce n'est pas grave. Ça arrive à beaucoup de gens."},
		{"Je ne sais pas où je suis.", "Respire un peu. Je vais t'aider."},
	},
}
