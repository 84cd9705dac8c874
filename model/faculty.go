package model

import (
	"time"
)

// Faculty is a teaching staff member. The default password is the local part
// of the email at creation time.
type Faculty struct {
	FacultyID    uint      `gorm:"primaryKey" json:"faculty_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Name         string    `gorm:"not null" json:"name"`
	Department   string    `gorm:"not null" json:"department"` // free text, not a Department FK
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`

	// Relationships
	Teaches   []Teaches  `gorm:"foreignKey:FacultyID;constraint:OnDelete:CASCADE" json:"-"`
	Questions []Question `gorm:"foreignKey:CreatedBy;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Faculty
func (Faculty) TableName() string {
	return "faculties"
}
