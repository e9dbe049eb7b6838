package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/brewfinder/backend/internal/model"
)

// MockTagStore is a mock implementation of service.TagStore
type MockTagStore struct {
	mock.Mock
}

func (m *MockTagStore) FindByIDs(ctx context.Context, ids []int64) ([]model.Tag, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tag), args.Error(1)
}

func (m *MockTagStore) List(ctx context.Context) ([]model.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tag), args.Error(1)
}

// MockTagService is a mock implementation of service.ITagService
type MockTagService struct {
	MockTagStore
}

// MockEquipmentService is a mock implementation of service.IEquipmentService
type MockEquipmentService struct {
	mock.Mock
}

func (m *MockEquipmentService) ListGrouped(ctx context.Context) (map[string][]model.Equipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]model.Equipment), args.Error(1)
}
