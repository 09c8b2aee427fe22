package reply

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/obx0x3/empathy-dementia/pkg/ai"
	"github.com/obx0x3/empathy-dementia/pkg/langdetect"
)

// MaxReplyLength bounds the generated reply, in model tokens.
const MaxReplyLength = 50

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrGenerationFailed = errors.New("generation failed")
)

type Request struct {
	Message string
	// Language is optional; nil or empty runs the detector.
	Language *string
}

type Response struct {
	Reply    string              `json:"reply"`
	Language langdetect.Language `json:"language"`
}

// Service forwards prefixed messages to the text-generation collaborator. It
// holds no per-request state and is safe for concurrent use as long as the
// generator is.
type Service struct {
	generator ai.Generator
	logger    *log.Logger
}

func NewService(generator ai.Generator, logger *log.Logger) *Service {
	return &Service{
		generator: generator,
		logger:    logger,
	}
}

func (s *Service) Respond(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.Message) == "" {
		return Response{}, errors.Wrap(ErrInvalidArgument, "message is empty")
	}

	lang, err := ResolveLanguage(req.Message, req.Language)
	if err != nil {
		return Response{}, err
	}

	input := langdetect.Prefix(lang) + req.Message
	s.logger.Debug("Generating reply", "language", lang, "input_length", len(input))

	reply, err := s.generator.Generate(ctx, input, MaxReplyLength)
	if err != nil {
		if ctx.Err() != nil {
			s.logger.Warn("Generation cancelled", "error", err, "language", lang)
		} else {
			s.logger.Error("Generation failed", "error", err, "language", lang)
		}
		return Response{}, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	return Response{Reply: reply, Language: lang}, nil
}

// ResolveLanguage returns the explicit language when one is given and
// supported, and the detected language of message otherwise.
func ResolveLanguage(message string, language *string) (langdetect.Language, error) {
	if language == nil || strings.TrimSpace(*language) == "" {
		return langdetect.Detect(message), nil
	}

	lang, ok := langdetect.Parse(*language)
	if !ok {
		return "", errors.Wrapf(ErrInvalidArgument, "unsupported language %q", *language)
	}
	return lang, nil
}
