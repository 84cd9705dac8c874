package model

import (
	"time"
)

// Department is a static reference entity owned by the admin
type Department struct {
	ID        uint      `gorm:"primaryKey" json:"dept_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Code      string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"dept_code"` // e.g., "CS", "MA"
	Name      string    `gorm:"not null" json:"dept_name"`

	// Relationships
	Courses []Course `gorm:"foreignKey:DeptID;constraint:OnDelete:CASCADE" json:"courses,omitempty"`
	Batches []Batch  `gorm:"foreignKey:DeptID;constraint:OnDelete:CASCADE" json:"batches,omitempty"`
}
