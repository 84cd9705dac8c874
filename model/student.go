package model

import (
	"time"
)

// Student is keyed by the institutional student ID (chosen externally, e.g. "S001").
// The default password is derived from the date of birth at creation time.
type Student struct {
	StudentID    string    `gorm:"primaryKey;type:varchar(20)" json:"student_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	DOB          time.Time `gorm:"type:date;not null" json:"dob"`
	BatchID      uint      `gorm:"not null;index" json:"batch_id"`
	PasswordHash string    `gorm:"not null" json:"-"` // Never expose password in JSON

	// Relationships
	Batch       Batch                  `gorm:"foreignKey:BatchID" json:"batch,omitempty"`
	Takes       []Takes                `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	Allocations []AssignmentAllocation `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
}

// Takes is a student's enrollment in a course
type Takes struct {
	StudentID   string `gorm:"primaryKey;type:varchar(20)" json:"student_id"`
	SubjectCode string `gorm:"primaryKey;type:varchar(20)" json:"subject_code"`
	Semester    int    `json:"semester"`

	// Relationships
	Student Student `gorm:"foreignKey:StudentID" json:"-"`
	Course  Course  `gorm:"foreignKey:SubjectCode" json:"course,omitempty"`
}

// TableName specifies the table name for Takes
func (Takes) TableName() string {
	return "takes"
}
