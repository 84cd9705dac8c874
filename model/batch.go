package model

import (
	"time"
)

// Batch is a cohort of students sharing department, semester and year
type Batch struct {
	ID        uint      `gorm:"primaryKey" json:"batch_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"not null" json:"batch_name"`
	Semester  int       `gorm:"not null" json:"semester"` // 1-8
	Year      int       `gorm:"not null" json:"year"`
	DeptID    uint      `gorm:"not null;index" json:"dept_id"`

	// Relationships
	Department Department `gorm:"foreignKey:DeptID" json:"department,omitempty"`
	Students   []Student  `gorm:"foreignKey:BatchID;constraint:OnDelete:CASCADE" json:"students,omitempty"`
	Teaches    []Teaches  `gorm:"foreignKey:BatchID;constraint:OnDelete:CASCADE" json:"teaches,omitempty"`
}
