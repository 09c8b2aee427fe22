package ai

import (
	"context"
)

// Generator is the text-generation collaborator: one encoded input in, one
// decoded reply out, bounded by maxLength tokens.
type Generator interface {
	Generate(ctx context.Context, input string, maxLength int) (string, error)
}
