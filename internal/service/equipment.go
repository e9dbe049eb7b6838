package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/pageza/brewfinder/backend/internal/model"
)

// EquipmentService lists brewing equipment
type EquipmentService struct {
	db *gorm.DB
}

// NewEquipmentService creates a new EquipmentService instance
func NewEquipmentService(db *gorm.DB) *EquipmentService {
	return &EquipmentService{db: db}
}

// ListGrouped returns equipment keyed by type name. Every group in
// model.EquipmentGroups is present, possibly empty; other types are left out.
func (s *EquipmentService) ListGrouped(ctx context.Context) (map[string][]model.Equipment, error) {
	var items []model.Equipment
	err := s.db.WithContext(ctx).
		Preload("Type").
		Joins("JOIN equipment_types ON equipment_types.id = equipment.type_id").
		Where("equipment_types.name IN ?", model.EquipmentGroups).
		Order("equipment.name ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}

	groups := make(map[string][]model.Equipment, len(model.EquipmentGroups))
	for _, name := range model.EquipmentGroups {
		groups[name] = []model.Equipment{}
	}
	for _, item := range items {
		groups[item.Type.Name] = append(groups[item.Type.Name], item)
	}
	return groups, nil
}
