package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/brewfinder/backend/internal/model"
)

// Stats counts the rows Apply created. Existing rows are left alone.
type Stats struct {
	EquipmentTypes int
	Equipment      int
	Tags           int
	Baristas       int
	Recipes        int
}

// Apply writes f to db in one transaction. Entities are matched by their
// unique name (slug for tags, title for recipes), so applying the same
// fixture twice creates nothing the second time.
func Apply(ctx context.Context, db *gorm.DB, f *Fixture, log *zap.Logger) (Stats, error) {
	var stats Stats
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		types := map[string]int64{}
		for _, t := range f.EquipmentTypes {
			row := model.EquipmentType{Name: t.Name, Description: t.Description}
			created, err := firstOrCreate(tx, &row, "name = ?", t.Name)
			if err != nil {
				return fmt.Errorf("equipment type %q: %w", t.Name, err)
			}
			stats.EquipmentTypes += created
			types[t.Name] = row.ID
		}

		equipment := map[string]model.Equipment{}
		for _, e := range f.Equipment {
			row := model.Equipment{
				Name:          e.Name,
				Brand:         e.Brand,
				Description:   e.Description,
				AffiliateLink: e.AffiliateLink,
				TypeID:        types[e.Type],
			}
			created, err := firstOrCreate(tx, &row, "name = ?", e.Name)
			if err != nil {
				return fmt.Errorf("equipment %q: %w", e.Name, err)
			}
			stats.Equipment += created
			equipment[e.Name] = row
		}

		tags := map[string]model.Tag{}
		for _, t := range f.Tags {
			row := model.Tag{Name: t.Name, Slug: t.Slug}
			created, err := firstOrCreate(tx, &row, "slug = ?", t.Slug)
			if err != nil {
				return fmt.Errorf("tag %q: %w", t.Slug, err)
			}
			stats.Tags += created
			tags[t.Slug] = row
		}

		baristas := map[string]int64{}
		for _, b := range f.Baristas {
			row := model.Barista{Name: b.Name, Affiliation: b.Affiliation}
			for i, l := range b.SocialLinks {
				row.SocialLinks = append(row.SocialLinks, model.SocialLink{
					Platform: l.Platform,
					URL:      l.URL,
					Position: i + 1,
				})
			}
			created, err := firstOrCreate(tx, &row, "name = ?", b.Name)
			if err != nil {
				return fmt.Errorf("barista %q: %w", b.Name, err)
			}
			stats.Baristas += created
			baristas[b.Name] = row.ID
		}

		for _, r := range f.Recipes {
			row := toRecipe(r, equipment, tags, baristas)
			created, err := firstOrCreate(tx, &row, "title = ?", r.Title)
			if err != nil {
				return fmt.Errorf("recipe %q: %w", r.Title, err)
			}
			stats.Recipes += created
		}
		return nil
	})
	if err != nil {
		return Stats{}, err
	}

	log.Info("seed applied",
		zap.Int("equipment_types", stats.EquipmentTypes),
		zap.Int("equipment", stats.Equipment),
		zap.Int("tags", stats.Tags),
		zap.Int("baristas", stats.Baristas),
		zap.Int("recipes", stats.Recipes),
	)
	return stats, nil
}

func toRecipe(r Recipe, equipment map[string]model.Equipment, tags map[string]model.Tag, baristas map[string]int64) model.Recipe {
	row := model.Recipe{
		Title:       r.Title,
		Summary:     r.Summary,
		RoastLevel:  r.RoastLevel,
		GrindSize:   r.GrindSize,
		BeanWeight:  r.BeanWeight,
		WaterTemp:   r.WaterTemp,
		WaterAmount: r.WaterAmount,
		BrewingTime: r.BrewingTime,
		IsPublished: r.Published,
		PublishedAt: r.PublishedAt,
	}
	if r.Published && row.PublishedAt == nil {
		now := time.Now().UTC()
		row.PublishedAt = &now
	}
	if id, ok := baristas[r.Barista]; ok {
		row.BaristaID = &id
	}
	for _, name := range r.Equipment {
		row.Equipment = append(row.Equipment, equipment[name])
	}
	for _, slug := range r.Tags {
		row.Tags = append(row.Tags, tags[slug])
	}
	for i, s := range r.Steps {
		row.Steps = append(row.Steps, model.RecipeStep{
			StepOrder:   i + 1,
			TimeSeconds: s.TimeSeconds,
			Description: s.Description,
		})
	}
	return row
}

// firstOrCreate loads the row matching cond into dest, or inserts dest.
// It returns 1 when a row was created.
func firstOrCreate(tx *gorm.DB, dest interface{}, cond string, args ...interface{}) (int, error) {
	err := tx.Where(cond, args...).Take(dest).Error
	if err == nil {
		return 0, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	if err := tx.Create(dest).Error; err != nil {
		return 0, err
	}
	return 1, nil
}
