package finetune

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"

	"github.com/obx0x3/empathy-dementia/pkg/ai"
	"github.com/obx0x3/empathy-dementia/pkg/dataset"
	"github.com/obx0x3/empathy-dementia/pkg/langdetect"
)

// TrainingPair is what the trainer sees of an Example: the prefixed prompt
// and the target reply. Metadata labels are dropped.
type TrainingPair struct {
	Source string
	Target string
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatLine struct {
	Messages []chatMessage `json:"messages"`
}

func Preprocess(examples []dataset.Example) []TrainingPair {
	return lo.Map(examples, func(ex dataset.Example, _ int) TrainingPair {
		return TrainingPair{
			Source: langdetect.Prefix(ex.Language) + ex.Input,
			Target: ex.Response,
		}
	})
}

// WriteJSONL writes one chat-format training line per pair. The system
// prompt matches the one used at inference.
func WriteJSONL(w io.Writer, pairs []TrainingPair) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)

	for i, pair := range pairs {
		line := chatLine{Messages: []chatMessage{
			{Role: "system", Content: ai.SupportSystemPrompt},
			{Role: "user", Content: pair.Source},
			{Role: "assistant", Content: pair.Target},
		}}
		if err := encoder.Encode(line); err != nil {
			return fmt.Errorf("encoding pair %d: %w", i, err)
		}
	}
	return nil
}

func writeJSONLFile(path string, pairs []TrainingPair) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteJSONL(file, pairs); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
