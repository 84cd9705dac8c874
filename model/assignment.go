package model

import (
	"time"
)

// Assignment is a titled set of questions for one subject
type Assignment struct {
	AssignmentID uint      `gorm:"primaryKey" json:"assignment_id"`
	CreatedOn    time.Time `gorm:"autoCreateTime" json:"created_on"`
	SubjectCode  string    `gorm:"type:varchar(20);not null;index" json:"subject_code"`
	Title        string    `gorm:"not null" json:"title"`

	// Relationships
	Course      Course                 `gorm:"foreignKey:SubjectCode" json:"course,omitempty"`
	Questions   []AssignmentQuestion   `gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	Allocations []AssignmentAllocation `gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE" json:"-"`
}

// AssignmentQuestion links an assignment to one of its questions
type AssignmentQuestion struct {
	AssignmentID uint `gorm:"primaryKey" json:"assignment_id"`
	QuestionID   uint `gorm:"primaryKey" json:"question_id"`

	// Relationships
	Assignment Assignment `gorm:"foreignKey:AssignmentID" json:"-"`
	Question   Question   `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
}
