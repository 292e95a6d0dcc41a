package model

import "time"

// RecipeModel mirrors the 'recipes' table. UserID references users.id.
type RecipeModel struct {
	ID                uint   `gorm:"primaryKey"`
	Title             string `gorm:"type:varchar(255);not null"`
	Instructions      string `gorm:"type:text;not null"`
	MinutesToComplete *int
	UserID            uint `gorm:"not null;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}
