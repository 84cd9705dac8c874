package model

import (
	"time"
)

// QuestionSource tags where a question's text came from
type QuestionSource string

const (
	// QuestionSourceTopic marks questions generated from a free-text topic
	QuestionSourceTopic QuestionSource = "TOPIC"
	// QuestionSourcePDF marks questions generated from an uploaded document
	QuestionSourcePDF QuestionSource = "PDF"
)

// Question is one candidate assignment question saved by a faculty member.
// Questions are created in bulk from a generation run.
type Question struct {
	QuestionID  uint           `gorm:"primaryKey" json:"question_id"`
	CreatedAt   time.Time      `json:"created_at"`
	Text        string         `gorm:"type:text;not null" json:"text"`
	Topic       string         `json:"topic"`
	Source      QuestionSource `gorm:"type:varchar(10);not null" json:"source"` // TOPIC or PDF
	SubjectCode string         `gorm:"type:varchar(20);not null;index" json:"subject_code"`
	CreatedBy   uint           `gorm:"not null" json:"created_by"`

	// Relationships
	Course  Course  `gorm:"foreignKey:SubjectCode" json:"-"`
	Creator Faculty `gorm:"foreignKey:CreatedBy" json:"-"`
}
