package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tasteit/tasteit/backend/internal/model"
	"github.com/tasteit/tasteit/backend/internal/store"
)

// MockStore is a mock implementation of the record store
type MockStore struct {
	mock.Mock
}

// Fetch mocks the Fetch method
func (m *MockStore) Fetch(ctx context.Context, q store.Query) ([]model.MatchResult, error) {
	return results(m.Called(ctx, q))
}

// Ping mocks the Ping method
func (m *MockStore) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockImageResolver is a mock implementation of the image resolver
type MockImageResolver struct {
	mock.Mock
}

// ResolveImage mocks the ResolveImage method
func (m *MockImageResolver) ResolveImage(ctx context.Context, ref string) (string, error) {
	args := m.Called(ctx, ref)
	return args.String(0), args.Error(1)
}

var _ store.Store = (*MockStore)(nil)
