package model

// Equipment type names exposed by the equipment listing.
const (
	EquipmentTypeGrinder = "grinder"
	EquipmentTypeDripper = "dripper"
	EquipmentTypeFilter  = "filter"
)

// EquipmentGroups are the type names equipment is grouped under, in display order.
var EquipmentGroups = []string{
	EquipmentTypeGrinder,
	EquipmentTypeDripper,
	EquipmentTypeFilter,
}

type EquipmentType struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"size:50;not null;uniqueIndex"`
	Description *string `gorm:"type:text"`
}

type Equipment struct {
	ID            int64         `gorm:"primaryKey;autoIncrement"`
	Name          string        `gorm:"size:255;not null;uniqueIndex"`
	Brand         *string       `gorm:"size:255"`
	Description   *string       `gorm:"type:text"`
	AffiliateLink *string       `gorm:"size:512"`
	TypeID        int64         `gorm:"not null;index"`
	Type          EquipmentType `gorm:"foreignKey:TypeID"`
}

// TableName keeps the uncountable noun as the table name
func (Equipment) TableName() string {
	return "equipment"
}
