package models

import "time"

// ApplicationStatus is the processing state of an application.
type ApplicationStatus string

// Application statuses. Transitions are allowed in both directions.
const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusProcessed ApplicationStatus = "processed"
)

// Valid reports whether s is a known status.
func (s ApplicationStatus) Valid() bool {
	return s == ApplicationStatusPending || s == ApplicationStatusProcessed
}

// Application is a candidate submission against a recruitment.
// Only Status changes after creation.
type Application struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"`

	RecruitmentID uint64 `gorm:"not null;index" json:"recruitmentId"`

	Email     string            `gorm:"type:text;not null" json:"email"`
	// QQ is the candidate's QQ number.
	QQ        string            `gorm:"column:qq;type:text;not null" json:"qq"`
	// Bilibili is the candidate's platform handle.
	Bilibili  string            `gorm:"type:text;not null" json:"bilibili"`
	Portfolio string            `gorm:"type:text;not null;default:''" json:"portfolio"`
	Status    ApplicationStatus `gorm:"type:text;not null;default:'pending';index" json:"status"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"createdAt"`
}
