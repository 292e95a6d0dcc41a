package model

import "time"

// SessionModel mirrors the 'sessions' table. Rows are deleted on logout and on login rotation.
type SessionModel struct {
	ID        uint      `gorm:"primaryKey"`
	TokenHash string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	UserID    *uint     `gorm:"index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
