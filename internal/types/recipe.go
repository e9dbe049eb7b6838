package types

import (
	"time"

	"github.com/pageza/brewfinder/backend/internal/model"
)

// RecipeBase holds the fields shared by the list and detail views
type RecipeBase struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Summary     string           `json:"summary"`
	RoastLevel  model.RoastLevel `json:"roastLevel"`
	GrindSize   *model.GrindSize `json:"grindSize,omitempty"`
	BeanWeight  float64          `json:"beanWeight"`
	WaterTemp   float64          `json:"waterTemp"`
	WaterAmount float64          `json:"waterAmount"`
	BrewingTime *int             `json:"brewingTime,omitempty"`
	ViewCount   int64            `json:"viewCount"`
	PublishedAt *time.Time       `json:"publishedAt,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	Tags        []Tag            `json:"tags"`
}

// RecipeSummary is a recipe as it appears in search results
type RecipeSummary struct {
	RecipeBase
	Equipment []string `json:"equipment"`
}

// RecipeDetail is the full recipe view
type RecipeDetail struct {
	RecipeBase
	Equipment []EquipmentDetail `json:"equipment"`
	Steps     []Step            `json:"steps"`
	Barista   *Barista          `json:"barista,omitempty"`
}

// Step is one ordered brewing instruction
type Step struct {
	Order       int    `json:"order"`
	TimeSeconds *int   `json:"timeSeconds,omitempty"`
	Description string `json:"description"`
}

// Barista is the presenter of a recipe
type Barista struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Affiliation *string      `json:"affiliation,omitempty"`
	SocialLinks []SocialLink `json:"socialLinks"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Pagination describes where a page sits in the full result set
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int64 `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

// NewPagination computes pagination metadata. TotalPages is the ceiling of
// total/limit and is zero when there are no items. page is not checked
// against TotalPages.
func NewPagination(page, limit int, total int64) Pagination {
	var pages int64
	if limit > 0 {
		pages = (total + int64(limit) - 1) / int64(limit)
	}
	return Pagination{
		CurrentPage:  page,
		TotalPages:   pages,
		TotalItems:   total,
		ItemsPerPage: limit,
	}
}

// RecipeListResponse is the body of GET /api/recipes
type RecipeListResponse struct {
	Recipes    []RecipeSummary `json:"recipes"`
	Pagination Pagination      `json:"pagination"`
}
