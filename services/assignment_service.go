package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/autoassign/api/model"
	"gorm.io/gorm"
)

// ErrAllocationNotFound is returned when a student has no allocation for the
// assignment they are acting on.
var ErrAllocationNotFound = errors.New("assignment not allocated to student")

// ErrAlreadySubmitted is returned on a second submission attempt. The
// allocation lifecycle is one-way; there is no resubmit.
var ErrAlreadySubmitted = errors.New("assignment already submitted")

// ErrAssignmentNotFound is returned when the referenced assignment does not
// exist. Handlers map it to 404 instead of the generic 400.
var ErrAssignmentNotFound = errors.New("assignment not found")

// DistributionResult summarizes one distribution run. Skipped counts students
// who already held an allocation from an earlier run.
type DistributionResult struct {
	AssignmentID uint     `json:"assignment_id"`
	Created      int      `json:"created"`
	Skipped      int      `json:"skipped"`
	SkippedIDs   []string `json:"skipped_ids,omitempty"`
}

// AssignmentService owns the assignment lifecycle: create from saved
// questions, distribute to students, accept submissions.
type AssignmentService struct {
	db *gorm.DB
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(db *gorm.DB) *AssignmentService {
	return &AssignmentService{db: db}
}

// CreateAssignment creates an assignment and its question links in one
// transaction. Every referenced question must exist; questions are not
// cross-checked against the assignment's subject.
func (s *AssignmentService) CreateAssignment(subjectCode, title string, questionIDs []uint) (*model.Assignment, error) {
	if subjectCode == "" {
		return nil, fmt.Errorf("subject code is required")
	}
	if title == "" {
		return nil, fmt.Errorf("assignment title is required")
	}
	if len(questionIDs) == 0 {
		return nil, fmt.Errorf("assignment needs at least one question")
	}

	assignment := model.Assignment{
		SubjectCode: subjectCode,
		Title:       title,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Question{}).
			Where("question_id IN ?", questionIDs).
			Count(&count).Error; err != nil {
			return err
		}
		if count != int64(len(questionIDs)) {
			return fmt.Errorf("one or more questions do not exist")
		}

		if err := tx.Create(&assignment).Error; err != nil {
			return err
		}

		links := make([]model.AssignmentQuestion, 0, len(questionIDs))
		for _, qid := range questionIDs {
			links = append(links, model.AssignmentQuestion{
				AssignmentID: assignment.AssignmentID,
				QuestionID:   qid,
			})
		}
		return tx.Create(&links).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	return &assignment, nil
}

// Distribute allocates the assignment to the given students in one
// transaction. Students who already hold an allocation are skipped, so
// re-running a distribution is safe and only creates the missing rows.
func (s *AssignmentService) Distribute(assignmentID uint, studentIDs []string) (*DistributionResult, error) {
	if len(studentIDs) == 0 {
		return nil, fmt.Errorf("no students to distribute to")
	}

	result := &DistributionResult{AssignmentID: assignmentID}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var assignment model.Assignment
		if err := tx.First(&assignment, assignmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAssignmentNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&model.Student{}).
			Where("student_id IN ?", studentIDs).
			Count(&count).Error; err != nil {
			return err
		}
		if count != int64(len(studentIDs)) {
			return fmt.Errorf("one or more students do not exist")
		}

		var existing []model.AssignmentAllocation
		if err := tx.Where("assignment_id = ? AND student_id IN ?", assignmentID, studentIDs).
			Find(&existing).Error; err != nil {
			return err
		}
		allocated := make(map[string]bool, len(existing))
		for _, a := range existing {
			allocated[a.StudentID] = true
		}

		var allocations []model.AssignmentAllocation
		for _, studentID := range studentIDs {
			if allocated[studentID] {
				result.Skipped++
				result.SkippedIDs = append(result.SkippedIDs, studentID)
				continue
			}
			allocations = append(allocations, model.AssignmentAllocation{
				AssignmentID: assignmentID,
				StudentID:    studentID,
				Status:       model.AllocationStatusAssigned,
			})
		}

		if len(allocations) > 0 {
			if err := tx.Create(&allocations).Error; err != nil {
				return err
			}
		}
		result.Created = len(allocations)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to distribute assignment: %w", err)
	}

	return result, nil
}

// Submit records a student's uploaded file against their allocation and
// moves it to submitted. The transition is one-way; a second submission
// fails with ErrAlreadySubmitted.
func (s *AssignmentService) Submit(assignmentID uint, studentID, filePath string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var allocation model.AssignmentAllocation
		err := tx.Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).
			First(&allocation).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAllocationNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to load allocation: %w", err)
		}

		if allocation.Status == model.AllocationStatusSubmitted {
			return ErrAlreadySubmitted
		}

		now := time.Now()
		allocation.FilePath = filePath
		allocation.Status = model.AllocationStatusSubmitted
		allocation.SubmittedOn = &now

		return tx.Save(&allocation).Error
	})
}

// AssignmentsBySubject returns a subject's assignments with questions
// preloaded, newest first.
func (s *AssignmentService) AssignmentsBySubject(subjectCode string) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := s.db.
		Preload("Questions.Question").
		Where("subject_code = ?", subjectCode).
		Order("assignment_id DESC").
		Find(&assignments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}
	return assignments, nil
}

// AllocationStatus returns the per-student allocation rows for an assignment
func (s *AssignmentService) AllocationStatus(assignmentID uint) ([]model.AssignmentAllocation, error) {
	var allocations []model.AssignmentAllocation
	err := s.db.
		Preload("Student").
		Where("assignment_id = ?", assignmentID).
		Order("student_id").
		Find(&allocations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load allocation status: %w", err)
	}
	return allocations, nil
}
