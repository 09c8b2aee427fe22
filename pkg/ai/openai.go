package ai

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	SupportSystemPrompt = "You are a compassionate assistant for dementia support. Answer with empathy and simplicity."
	EmptyReplyFallback  = "I'm here for you."
)

var _ Generator = (*OpenAIGenerator)(nil)

// OpenAIGenerator answers through any OpenAI-compatible chat completions API.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
	logger *log.Logger
}

func NewOpenAIGenerator(logger *log.Logger, apiKey, baseURL, model string, opts ...option.RequestOption) *OpenAIGenerator {
	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	}, opts...)
	client := openai.NewClient(opts...)

	return &OpenAIGenerator{
		client: &client,
		model:  model,
		logger: logger,
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, input string, maxLength int) (string, error) {
	params := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(SupportSystemPrompt),
			openai.UserMessage(input),
		},
		Model: g.model,
	}
	if maxLength > 0 {
		params.MaxTokens = openai.Int(int64(maxLength))
	}

	completion, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("OpenAI returned no completion choices")
	}

	content := StripThinkingTags(completion.Choices[0].Message.Content)
	if content == "" {
		g.logger.Warn("Empty completion content, using fallback reply", "model", g.model)
		return EmptyReplyFallback, nil
	}
	return content, nil
}
