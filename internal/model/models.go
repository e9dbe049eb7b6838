package model

// All returns every persisted model in dependency order, for auto-migration.
func All() []interface{} {
	return []interface{}{
		&EquipmentType{},
		&Equipment{},
		&Tag{},
		&Barista{},
		&SocialLink{},
		&Recipe{},
		&RecipeStep{},
	}
}
