// Package filter turns recipe search query strings into a validated Filter.
//
// Parsing is lenient: unknown shapes are dropped rather than reported. Validation
// applies defaults and rejects anything out of range, so FromQuery is the only
// entry point request handlers need.
package filter

import (
	"math"

	"github.com/pageza/brewfinder/backend/internal/model"
)

// Query-string keys understood by the parser.
const (
	KeyPage        = "page"
	KeyLimit       = "limit"
	KeyRoastLevel  = "roastLevel"
	KeyGrindSize   = "grindSize"
	KeyEquipment   = "equipment"
	KeyTags        = "tags"
	KeyBeanWeight  = "beanWeight"
	KeyWaterTemp   = "waterTemp"
	KeyWaterAmount = "waterAmount"
	KeySearch      = "search"
	KeySort        = "sort"
	KeyOrder       = "order"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// SortOrder is the direction of the primary sort key.
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// Sortable field names accepted by the sort parameter.
const (
	SortID          = "id"
	SortTitle       = "title"
	SortRoastLevel  = "roastLevel"
	SortGrindSize   = "grindSize"
	SortBeanWeight  = "beanWeight"
	SortWaterTemp   = "waterTemp"
	SortWaterAmount = "waterAmount"
	SortBrewingTime = "brewingTime"
	SortViewCount   = "viewCount"
	SortPublishedAt = "publishedAt"
	SortCreatedAt   = "createdAt"
	SortUpdatedAt   = "updatedAt"
)

// SortFields lists every sortable field.
var SortFields = []string{
	SortID,
	SortTitle,
	SortRoastLevel,
	SortGrindSize,
	SortBeanWeight,
	SortWaterTemp,
	SortWaterAmount,
	SortBrewingTime,
	SortViewCount,
	SortPublishedAt,
	SortCreatedAt,
	SortUpdatedAt,
}

// IsSortField reports whether name is a sortable field.
func IsSortField(name string) bool {
	for _, f := range SortFields {
		if f == name {
			return true
		}
	}
	return false
}

// Range is an inclusive numeric bound; either side may be absent.
type Range struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Partial is the parser output. Nil means the key was absent or unusable.
type Partial struct {
	Page        *int
	Limit       *int
	RoastLevel  []model.RoastLevel
	GrindSize   []model.GrindSize
	Equipment   []string
	Tags        []string
	BeanWeight  *Range
	WaterTemp   *Range
	WaterAmount *Range
	Search      *string
	Sort        *string
	Order       *SortOrder

	// Malformed holds the keys whose JSON range value could not be decoded.
	Malformed []string
}

// Filter is a fully defaulted and validated recipe search request.
type Filter struct {
	Page        int                `query:"page" validate:"min=1"`
	Limit       int                `query:"limit" validate:"min=1,max=100"`
	RoastLevel  []model.RoastLevel `query:"roastLevel" validate:"omitempty,dive,roastlevel"`
	GrindSize   []model.GrindSize  `query:"grindSize" validate:"omitempty,dive,grindsize"`
	Equipment   []string           `query:"equipment"`
	Tags        []string           `query:"tags"`
	BeanWeight  *Range             `query:"beanWeight"`
	WaterTemp   *Range             `query:"waterTemp"`
	WaterAmount *Range             `query:"waterAmount"`
	Search      string             `query:"search"`
	Sort        string             `query:"sort" validate:"omitempty,sortfield"`
	Order       SortOrder          `query:"order" validate:"omitempty,oneof=asc desc"`
}

// Offset is the number of rows skipped before the current page. It
// saturates at math.MaxInt, so a page far beyond the data stays empty.
func (f Filter) Offset() int {
	if f.Page <= 1 || f.Limit <= 0 {
		return 0
	}
	if f.Page-1 > math.MaxInt/f.Limit {
		return math.MaxInt
	}
	return (f.Page - 1) * f.Limit
}
