package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/brewfinder/backend/internal/model"
	"github.com/pageza/brewfinder/backend/internal/query"
	"github.com/pageza/brewfinder/backend/internal/service"
)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

// Search mocks the Search method
func (m *MockRecipeService) Search(ctx context.Context, spec query.Spec) (*service.SearchResult, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SearchResult), args.Error(1)
}

// GetPublishedRecipe mocks the GetPublishedRecipe method
func (m *MockRecipeService) GetPublishedRecipe(ctx context.Context, id int64) (*model.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

// IncrementViewCount mocks the IncrementViewCount method
func (m *MockRecipeService) IncrementViewCount(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
