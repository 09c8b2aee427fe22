package ai

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockGenerator is a Generator whose replies are scripted with testify/mock.
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, input string, maxLength int) (string, error) {
	args := m.Called(ctx, input, maxLength)
	return args.String(0), args.Error(1)
}
