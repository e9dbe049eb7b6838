package model

type Tag struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"size:100;not null"`
	Slug string `gorm:"size:100;not null;uniqueIndex"`
}
