package model

import (
	"time"
)

// Course is an academic subject keyed by its subject code (e.g., "CS101").
// Courses are created by the admin and never updated afterwards.
type Course struct {
	SubjectCode string    `gorm:"primaryKey;type:varchar(20)" json:"subject_code"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Title       string    `gorm:"not null" json:"title"`
	DeptID      uint      `gorm:"not null;index" json:"dept_id"`

	// Relationships
	Department  Department   `gorm:"foreignKey:DeptID" json:"department,omitempty"`
	Teaches     []Teaches    `gorm:"foreignKey:SubjectCode;constraint:OnDelete:CASCADE" json:"-"`
	Questions   []Question   `gorm:"foreignKey:SubjectCode;constraint:OnDelete:CASCADE" json:"-"`
	Assignments []Assignment `gorm:"foreignKey:SubjectCode;constraint:OnDelete:CASCADE" json:"-"`
}
