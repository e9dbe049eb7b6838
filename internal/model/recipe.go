package model

import (
	"time"
)

// RoastLevel is the roast darkness of the beans used in a recipe.
type RoastLevel string

const (
	RoastLight       RoastLevel = "LIGHT"
	RoastLightMedium RoastLevel = "LIGHT_MEDIUM"
	RoastMedium      RoastLevel = "MEDIUM"
	RoastMediumDark  RoastLevel = "MEDIUM_DARK"
	RoastDark        RoastLevel = "DARK"
	RoastFrench      RoastLevel = "FRENCH"
)

// RoastLevels lists every roast level from lightest to darkest.
var RoastLevels = []RoastLevel{
	RoastLight,
	RoastLightMedium,
	RoastMedium,
	RoastMediumDark,
	RoastDark,
	RoastFrench,
}

// Valid reports whether r is one of the known roast levels.
func (r RoastLevel) Valid() bool {
	for _, level := range RoastLevels {
		if r == level {
			return true
		}
	}
	return false
}

// GrindSize is the coarseness of the ground coffee.
type GrindSize string

const (
	GrindExtraFine    GrindSize = "EXTRA_FINE"
	GrindFine         GrindSize = "FINE"
	GrindMediumFine   GrindSize = "MEDIUM_FINE"
	GrindMedium       GrindSize = "MEDIUM"
	GrindMediumCoarse GrindSize = "MEDIUM_COARSE"
	GrindCoarse       GrindSize = "COARSE"
	GrindExtraCoarse  GrindSize = "EXTRA_COARSE"
)

// GrindSizes lists every grind size from finest to coarsest.
var GrindSizes = []GrindSize{
	GrindExtraFine,
	GrindFine,
	GrindMediumFine,
	GrindMedium,
	GrindMediumCoarse,
	GrindCoarse,
	GrindExtraCoarse,
}

// Valid reports whether g is one of the known grind sizes.
func (g GrindSize) Valid() bool {
	for _, size := range GrindSizes {
		if g == size {
			return true
		}
	}
	return false
}

// Recipe is a published or draft brewing recipe.
type Recipe struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`
	Title       string     `gorm:"size:255;not null"`
	Summary     string     `gorm:"type:text;not null;default:''"`
	RoastLevel  RoastLevel `gorm:"size:20;not null;index"`
	GrindSize   *GrindSize `gorm:"size:20;index"`
	BeanWeight  float64    `gorm:"not null"`
	WaterTemp   float64    `gorm:"not null"`
	WaterAmount float64    `gorm:"not null"`
	BrewingTime *int
	ViewCount   int64      `gorm:"not null;default:0"`
	IsPublished bool       `gorm:"not null;default:false;index"`
	PublishedAt *time.Time `gorm:"index"`

	BaristaID *int64
	Barista   *Barista     `gorm:"foreignKey:BaristaID"`
	Equipment []Equipment  `gorm:"many2many:recipe_equipment;"`
	Tags      []Tag        `gorm:"many2many:recipe_tags;"`
	Steps     []RecipeStep `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// RecipeStep is one ordered instruction of a recipe.
type RecipeStep struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	RecipeID    int64 `gorm:"not null;uniqueIndex:idx_recipe_steps_order"`
	StepOrder   int   `gorm:"not null;uniqueIndex:idx_recipe_steps_order"`
	TimeSeconds *int
	Description string `gorm:"type:text;not null"`
}
