package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/pageza/brewfinder/backend/internal/model"
)

type gormTagStore struct {
	db *gorm.DB
}

// NewTagStore returns a TagStore backed by db
func NewTagStore(db *gorm.DB) TagStore {
	return &gormTagStore{db: db}
}

func (s *gormTagStore) FindByIDs(ctx context.Context, ids []int64) ([]model.Tag, error) {
	var tags []model.Tag
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("failed to find tags: %w", err)
	}
	return tags, nil
}

func (s *gormTagStore) List(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag
	if err := s.db.WithContext(ctx).Order("name ASC").Order("id ASC").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

// TagService resolves tags for recipes and filter UIs
type TagService struct {
	store TagStore
}

// NewTagService creates a new TagService instance
func NewTagService(store TagStore) *TagService {
	return &TagService{store: store}
}

// FindByIDs returns the tags for ids in the order given. Ids with no tag are
// dropped. An empty id list never reaches the store.
func (s *TagService) FindByIDs(ctx context.Context, ids []int64) ([]model.Tag, error) {
	if len(ids) == 0 {
		return []model.Tag{}, nil
	}

	found, err := s.store.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]model.Tag, len(found))
	for _, t := range found {
		byID[t.ID] = t
	}

	tags := make([]model.Tag, 0, len(ids))
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		t, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		tags = append(tags, t)
	}
	return tags, nil
}

// List returns every tag ordered by name
func (s *TagService) List(ctx context.Context) ([]model.Tag, error) {
	return s.store.List(ctx)
}
