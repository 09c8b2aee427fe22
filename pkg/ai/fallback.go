package ai

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
)

var ErrNoGenerator = errors.New("no generator available")

var _ Generator = (*FallbackGenerator)(nil)

// FallbackGenerator prefers the primary generator and retries once on the
// fallback when the primary fails. Either side may be nil.
type FallbackGenerator struct {
	primary  Generator
	fallback Generator
	logger   *log.Logger
}

func NewFallbackGenerator(logger *log.Logger, primary, fallback Generator) *FallbackGenerator {
	return &FallbackGenerator{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (g *FallbackGenerator) Generate(ctx context.Context, input string, maxLength int) (string, error) {
	if g.primary != nil {
		g.logger.Debug("Attempting primary generation", "input_length", len(input), "max_length", maxLength)

		reply, err := g.primary.Generate(ctx, input, maxLength)
		if err == nil {
			return reply, nil
		}
		if g.fallback == nil {
			return "", err
		}
		g.logger.Warn("Primary generation failed, falling back", "error", err)
	}

	if g.fallback == nil {
		return "", ErrNoGenerator
	}

	g.logger.Debug("Using fallback generator", "input_length", len(input))
	return g.fallback.Generate(ctx, input, maxLength)
}

// Mode names the generator that will be tried first.
func (g *FallbackGenerator) Mode() string {
	switch {
	case g.primary != nil:
		return "model_server"
	case g.fallback != nil:
		return "remote_openai"
	default:
		return "none"
	}
}
