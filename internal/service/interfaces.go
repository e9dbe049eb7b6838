package service

import (
	"context"

	"github.com/pageza/brewfinder/backend/internal/model"
	"github.com/pageza/brewfinder/backend/internal/query"
)

// IRecipeService defines the read operations on recipes
type IRecipeService interface {
	Search(ctx context.Context, spec query.Spec) (*SearchResult, error)
	GetPublishedRecipe(ctx context.Context, id int64) (*model.Recipe, error)
	IncrementViewCount(ctx context.Context, id int64) (int64, error)
}

// IEquipmentService defines the equipment catalogue operations
type IEquipmentService interface {
	ListGrouped(ctx context.Context) (map[string][]model.Equipment, error)
}

// ITagService defines tag lookups
type ITagService interface {
	FindByIDs(ctx context.Context, ids []int64) ([]model.Tag, error)
	List(ctx context.Context) ([]model.Tag, error)
}

// TagStore is the persistence behind ITagService
type TagStore interface {
	FindByIDs(ctx context.Context, ids []int64) ([]model.Tag, error)
	List(ctx context.Context) ([]model.Tag, error)
}
