package model

import (
	"time"

	"gorm.io/datatypes"
)

// GenerationLog records one question-generation run against the completion
// service, including the token usage the API reported.
type GenerationLog struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	Source        QuestionSource `gorm:"type:varchar(10);not null" json:"source"`
	Topic         string         `json:"topic"`
	Model         string         `gorm:"type:varchar(100)" json:"model"`
	QuestionCount int            `json:"question_count"`
	Usage         datatypes.JSON `json:"usage"` // prompt/completion/total tokens as reported
}

// TableName specifies the table name for GenerationLog
func (GenerationLog) TableName() string {
	return "generation_logs"
}
