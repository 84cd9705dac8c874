package services

import (
	"fmt"

	"github.com/autoassign/api/model"
	"gorm.io/gorm"
)

// StudentAssignment is one assignment as the student dashboard shows it:
// assignment details, the questions, the teaching faculty, and the student's
// own allocation state.
type StudentAssignment struct {
	AssignmentID uint             `json:"assignment_id"`
	Title        string           `json:"title"`
	SubjectCode  string           `json:"subject_code"`
	SubjectTitle string           `json:"subject_title"`
	FacultyName  string           `json:"faculty_name"`
	CreatedOn    string           `json:"created_on"`
	Questions    []model.Question `json:"questions"`
	Status       string           `json:"status"`
	SubmittedOn  *string          `json:"submitted_on"`
	FilePath     string           `json:"file_path,omitempty"`
}

// GroupedAssignments partitions a student's assignments by allocation status
type GroupedAssignments struct {
	Pending   []StudentAssignment `json:"pending"`
	Submitted []StudentAssignment `json:"submitted"`
}

// PartitionByStatus splits assignments into pending and submitted buckets.
// Order within each bucket follows the input order.
func PartitionByStatus(assignments []StudentAssignment) GroupedAssignments {
	grouped := GroupedAssignments{
		Pending:   []StudentAssignment{},
		Submitted: []StudentAssignment{},
	}
	for _, a := range assignments {
		if a.Status == model.AllocationStatusSubmitted {
			grouped.Submitted = append(grouped.Submitted, a)
		} else {
			grouped.Pending = append(grouped.Pending, a)
		}
	}
	return grouped
}

// DashboardService serves the read models behind the student and faculty
// dashboard pages.
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// StudentCourses returns the courses a student is enrolled in via takes
func (s *DashboardService) StudentCourses(studentID string) ([]model.Course, error) {
	var courses []model.Course
	err := s.db.
		Joins("JOIN takes ON takes.subject_code = courses.subject_code").
		Where("takes.student_id = ?", studentID).
		Order("courses.subject_code").
		Find(&courses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load student courses: %w", err)
	}
	return courses, nil
}

// StudentAssignments returns the assignments allocated to the student for
// one course, newest first, with questions and the teaching faculty name
// resolved.
func (s *DashboardService) StudentAssignments(studentID, subjectCode string) ([]StudentAssignment, error) {
	var student model.Student
	if err := s.db.First(&student, "student_id = ?", studentID).Error; err != nil {
		return nil, fmt.Errorf("failed to load student: %w", err)
	}

	var allocations []model.AssignmentAllocation
	err := s.db.
		Preload("Assignment.Course").
		Preload("Assignment.Questions.Question").
		Joins("JOIN assignments ON assignments.assignment_id = assignment_allocations.assignment_id").
		Where("assignment_allocations.student_id = ? AND assignments.subject_code = ?", studentID, subjectCode).
		Order("assignment_allocations.assignment_id DESC").
		Find(&allocations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load allocations: %w", err)
	}

	result := make([]StudentAssignment, 0, len(allocations))
	for _, alloc := range allocations {
		item := StudentAssignment{
			AssignmentID: alloc.AssignmentID,
			Title:        alloc.Assignment.Title,
			SubjectCode:  alloc.Assignment.SubjectCode,
			SubjectTitle: alloc.Assignment.Course.Title,
			CreatedOn:    alloc.Assignment.CreatedOn.Format("2006-01-02"),
			Status:       alloc.Status,
			FilePath:     alloc.FilePath,
		}

		if alloc.SubmittedOn != nil {
			submitted := alloc.SubmittedOn.Format("2006-01-02 15:04:05")
			item.SubmittedOn = &submitted
		}

		item.Questions = make([]model.Question, 0, len(alloc.Assignment.Questions))
		for _, link := range alloc.Assignment.Questions {
			item.Questions = append(item.Questions, link.Question)
		}

		// Resolve the faculty teaching this subject to the student's batch
		var teaches model.Teaches
		facultyErr := s.db.
			Preload("Faculty").
			Where("subject_code = ? AND batch_id = ?", alloc.Assignment.SubjectCode, student.BatchID).
			First(&teaches).Error
		if facultyErr == nil {
			item.FacultyName = teaches.Faculty.Name
		}

		result = append(result, item)
	}
	return result, nil
}

// FacultySubjects returns the distinct courses a faculty member teaches
func (s *DashboardService) FacultySubjects(facultyID uint) ([]model.Course, error) {
	var courses []model.Course
	err := s.db.
		Distinct("courses.*").
		Joins("JOIN teaches ON teaches.subject_code = courses.subject_code").
		Where("teaches.faculty_id = ?", facultyID).
		Order("courses.subject_code").
		Find(&courses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load faculty subjects: %w", err)
	}
	return courses, nil
}

// FacultyBatches returns the batches a faculty member teaches a subject to
func (s *DashboardService) FacultyBatches(facultyID uint, subjectCode string) ([]model.Batch, error) {
	var batches []model.Batch
	err := s.db.
		Preload("Department").
		Joins("JOIN teaches ON teaches.batch_id = batches.id").
		Where("teaches.faculty_id = ? AND teaches.subject_code = ?", facultyID, subjectCode).
		Order("batches.id").
		Find(&batches).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load faculty batches: %w", err)
	}
	return batches, nil
}

// TeachesSubject reports whether the faculty member teaches the subject to
// any batch. Handlers use it as the authorization gate for subject-scoped
// operations.
func (s *DashboardService) TeachesSubject(facultyID uint, subjectCode string) (bool, error) {
	var count int64
	err := s.db.Model(&model.Teaches{}).
		Where("faculty_id = ? AND subject_code = ?", facultyID, subjectCode).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check teaching association: %w", err)
	}
	return count > 0, nil
}

// TeachesBatch reports whether the faculty member teaches any subject to the batch
func (s *DashboardService) TeachesBatch(facultyID, batchID uint) (bool, error) {
	var count int64
	err := s.db.Model(&model.Teaches{}).
		Where("faculty_id = ? AND batch_id = ?", facultyID, batchID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check teaching association: %w", err)
	}
	return count > 0, nil
}

// StudentsInBatch returns the batch roster ordered by student ID
func (s *DashboardService) StudentsInBatch(batchID uint) ([]model.Student, error) {
	var students []model.Student
	err := s.db.
		Where("batch_id = ?", batchID).
		Order("student_id").
		Find(&students).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load batch students: %w", err)
	}
	return students, nil
}
