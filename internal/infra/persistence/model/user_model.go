package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID             uint    `gorm:"primaryKey"`
	Username       string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordSecret []byte  `gorm:"column:password_secret"`
	Bio            *string `gorm:"type:text"`
	ImageURL       *string `gorm:"type:varchar(2048)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Recipes  []RecipeModel  `gorm:"foreignKey:UserID"`
	Sessions []SessionModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
