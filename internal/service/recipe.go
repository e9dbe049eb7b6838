package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/pageza/brewfinder/backend/internal/logger"
	"github.com/pageza/brewfinder/backend/internal/model"
	"github.com/pageza/brewfinder/backend/internal/query"
)

// SearchResult is one page of matching recipes and the total match count.
type SearchResult struct {
	Recipes []model.Recipe
	Total   int64
	Page    int
	Limit   int
}

// RecipeService handles recipe reads
type RecipeService struct {
	db     *gorm.DB
	tags   ITagService
	logger *zap.Logger
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB, tags ITagService, log *zap.Logger) *RecipeService {
	return &RecipeService{
		db:     db,
		tags:   tags,
		logger: logger.OrNop(log),
	}
}

// Search runs the count and the page fetch for spec concurrently. Both
// queries see the same predicate but not necessarily the same snapshot.
func (s *RecipeService) Search(ctx context.Context, spec query.Spec) (*SearchResult, error) {
	clauses, err := translate(spec.Predicate)
	if err != nil {
		return nil, err
	}
	order, err := orderClause(spec.Orders)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("searching recipes", zap.Stringer("spec", spec))

	var (
		total   int64
		recipes []model.Recipe
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := s.db.WithContext(gctx).
			Model(&model.Recipe{}).
			Scopes(whereScope(clauses)).
			Count(&total).Error
		if err != nil {
			return fmt.Errorf("failed to count recipes: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		err := s.db.WithContext(gctx).
			Scopes(whereScope(clauses)).
			Preload("Equipment.Type").
			Preload("Tags").
			Order(order).
			Offset(spec.Skip).
			Limit(spec.Take).
			Find(&recipes).Error
		if err != nil {
			return fmt.Errorf("failed to fetch recipes: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &SearchResult{
		Recipes: recipes,
		Total:   total,
		Page:    spec.Page,
		Limit:   spec.Limit,
	}, nil
}

// GetPublishedRecipe loads a recipe with everything the detail view needs.
// Tags are resolved by id through the tag service.
func (s *RecipeService) GetPublishedRecipe(ctx context.Context, id int64) (*model.Recipe, error) {
	var recipe model.Recipe
	err := s.db.WithContext(ctx).
		Preload("Equipment.Type").
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_order ASC")
		}).
		Preload("Barista.SocialLinks", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&recipe, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	if !recipe.IsPublished {
		return nil, ErrRecipeNotPublished
	}

	var tagIDs []int64
	err = s.db.WithContext(ctx).
		Table("recipe_tags").
		Where("recipe_id = ?", id).
		Order("tag_id").
		Pluck("tag_id", &tagIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recipe tags: %w", err)
	}
	tags, err := s.tags.FindByIDs(ctx, tagIDs)
	if err != nil {
		return nil, err
	}
	recipe.Tags = tags

	return &recipe, nil
}

// IncrementViewCount bumps the view counter and returns the new value.
func (s *RecipeService) IncrementViewCount(ctx context.Context, id int64) (int64, error) {
	res := s.db.WithContext(ctx).
		Model(&model.Recipe{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if res.Error != nil {
		return 0, fmt.Errorf("failed to increment view count: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, ErrRecipeNotFound
	}

	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.Recipe{}).
		Where("id = ?", id).
		Pluck("view_count", &count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to read view count: %w", err)
	}
	return count, nil
}
