package models

import "time"

// Admin represents an administrator account stored in the database.
type Admin struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	Username string `gorm:"type:text;not null;uniqueIndex" json:"username"` // Unique login name, case-sensitive.
	Password string `gorm:"type:text;not null" json:"-"`                    // Bcrypt hash; never serialized.

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"` // Creation timestamp.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"` // Last update timestamp.
}
