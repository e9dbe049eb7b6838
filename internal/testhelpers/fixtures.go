package testhelpers

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/pageza/brewfinder/backend/internal/model"
)

// Recipe returns an unsaved, published recipe with plausible defaults.
func Recipe(title string) *model.Recipe {
	published := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &model.Recipe{
		Title:       title,
		Summary:     "A recipe called " + title,
		RoastLevel:  model.RoastMedium,
		BeanWeight:  18,
		WaterTemp:   93,
		WaterAmount: 300,
		IsPublished: true,
		PublishedAt: &published,
	}
}

// Create inserts every value or fails the test.
func Create(t *testing.T, db *gorm.DB, values ...interface{}) {
	t.Helper()
	for _, v := range values {
		if err := db.Create(v).Error; err != nil {
			t.Fatalf("failed to create %T: %v", v, err)
		}
	}
}

// CreateRecipes inserts n published recipes titled "<prefix> 01".. in id
// order, letting mutate adjust each one before insert.
func CreateRecipes(t *testing.T, db *gorm.DB, prefix string, n int, mutate func(i int, r *model.Recipe)) []*model.Recipe {
	t.Helper()
	out := make([]*model.Recipe, 0, n)
	for i := 0; i < n; i++ {
		r := Recipe(fmt.Sprintf("%s %02d", prefix, i+1))
		if mutate != nil {
			mutate(i, r)
		}
		Create(t, db, r)
		out = append(out, r)
	}
	return out
}

// EquipmentOf creates an equipment type (if needed) and an item of it.
func EquipmentOf(t *testing.T, db *gorm.DB, typeName, name string) *model.Equipment {
	t.Helper()
	var et model.EquipmentType
	if err := db.Where(model.EquipmentType{Name: typeName}).FirstOrCreate(&et).Error; err != nil {
		t.Fatalf("failed to create equipment type %s: %v", typeName, err)
	}
	item := &model.Equipment{Name: name, TypeID: et.ID, Type: et}
	Create(t, db, item)
	return item
}

// Tag creates a tag whose name is derived from slug.
func Tag(t *testing.T, db *gorm.DB, slug string) *model.Tag {
	t.Helper()
	tag := &model.Tag{Name: slug, Slug: slug}
	Create(t, db, tag)
	return tag
}
