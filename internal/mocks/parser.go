package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/quantmind-br/esomanifest-go/internal/domain"
)

// MockParser mocks the domain.Parser interface
type MockParser struct {
	mock.Mock
}

// Parse mocks the parse operation
func (m *MockParser) Parse(ctx context.Context, doc *domain.Document, opts domain.ParseOptions) *domain.Result {
	args := m.Called(ctx, doc, opts)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Result)
}
