package model

import (
	"time"
)

// Allocation statuses. The lifecycle is a single one-way transition:
// assigned -> submitted. There is no resubmit or reject.
const (
	AllocationStatusAssigned  = "assigned"
	AllocationStatusSubmitted = "submitted"
)

// AssignmentAllocation is the per-student instance of an assignment. The
// composite unique index makes re-distribution to the same student a no-op
// instead of a duplicate row.
type AssignmentAllocation struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	AssignmentID uint       `gorm:"not null;uniqueIndex:idx_assignment_student" json:"assignment_id"`
	StudentID    string     `gorm:"type:varchar(20);not null;uniqueIndex:idx_assignment_student" json:"student_id"`
	Status       string     `gorm:"type:varchar(20);not null;default:'assigned'" json:"status"`
	FilePath     string     `json:"file_path"`
	SubmittedOn  *time.Time `json:"submitted_on"`

	// Relationships
	Assignment Assignment `gorm:"foreignKey:AssignmentID" json:"assignment,omitempty"`
	Student    Student    `gorm:"foreignKey:StudentID" json:"-"`
}

// TableName specifies the table name for AssignmentAllocation
func (AssignmentAllocation) TableName() string {
	return "assignment_allocations"
}
