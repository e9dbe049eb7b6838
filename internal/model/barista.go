package model

// Barista is the optional author or presenter of a recipe.
type Barista struct {
	ID          int64        `gorm:"primaryKey;autoIncrement"`
	Name        string       `gorm:"size:255;not null;uniqueIndex"`
	Affiliation *string      `gorm:"size:255"`
	SocialLinks []SocialLink `gorm:"foreignKey:BaristaID;constraint:OnDelete:CASCADE"`
}

// SocialLink is one entry of a barista's ordered link list.
type SocialLink struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	BaristaID int64  `gorm:"not null;index"`
	Platform  string `gorm:"size:50;not null"`
	URL       string `gorm:"size:512;not null"`
	Position  int    `gorm:"not null;default:0"`
}
