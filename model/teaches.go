package model

// Teaches is the (faculty, course, batch) association. It is the sole
// authorization boundary deciding which batches and students a faculty
// member may act on.
type Teaches struct {
	FacultyID   uint   `gorm:"primaryKey" json:"faculty_id"`
	SubjectCode string `gorm:"primaryKey;type:varchar(20)" json:"subject_code"`
	BatchID     uint   `gorm:"primaryKey" json:"batch_id"`

	// Relationships
	Faculty Faculty `gorm:"foreignKey:FacultyID" json:"faculty,omitempty"`
	Course  Course  `gorm:"foreignKey:SubjectCode" json:"course,omitempty"`
	Batch   Batch   `gorm:"foreignKey:BatchID" json:"batch,omitempty"`
}

// TableName specifies the table name for Teaches
func (Teaches) TableName() string {
	return "teaches"
}
