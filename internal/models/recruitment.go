package models

import "time"

// Recruitment is a posting candidates can apply to while it is active.
type Recruitment struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"`

	Title       string `gorm:"type:text;not null" json:"title"`
	// Description is Markdown rendered by the front end.
	Description string `gorm:"type:text;not null" json:"description"`
	// IsActive has no column default so that false survives gorm's zero-value skipping on insert.
	IsActive    bool   `gorm:"not null;index" json:"isActive"`

	Applications []Application `gorm:"foreignKey:RecruitmentID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}
