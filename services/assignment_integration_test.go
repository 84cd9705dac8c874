package services

import (
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/autoassign/api/database"
	"github.com/autoassign/api/model"
	"gorm.io/gorm"
)

// setupIntegrationDB connects to the real database or skips the test.
// Run with: RUN_INTEGRATION_TESTS=true go test ./services/ -run Integration
func setupIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration test. Set RUN_INTEGRATION_TESTS=true to run.")
	}

	store, err := database.StartGORM()
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	if err := store.Init(); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		t.Fatal("Failed to get GORM DB instance")
	}
	return db
}

// seedAssignmentFixture creates a minimal department/batch/course/faculty/
// students graph and returns the pieces the tests need. Names are
// timestamped so repeated runs do not collide.
func seedAssignmentFixture(t *testing.T, db *gorm.DB) (subjectCode string, studentIDs []string, facultyID uint) {
	t.Helper()

	suffix := fmt.Sprintf("%d", time.Now().UnixNano())

	dept := model.Department{Code: "T" + suffix[len(suffix)-8:], Name: "Integration Test Dept"}
	if err := db.Create(&dept).Error; err != nil {
		t.Fatalf("failed to create department: %v", err)
	}

	batch := model.Batch{Name: "IT-" + suffix, Semester: 4, Year: time.Now().Year(), DeptID: dept.ID}
	if err := db.Create(&batch).Error; err != nil {
		t.Fatalf("failed to create batch: %v", err)
	}

	subjectCode = "IT" + suffix[len(suffix)-8:]
	course := model.Course{SubjectCode: subjectCode, Title: "Integration Testing", DeptID: dept.ID}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("failed to create course: %v", err)
	}

	faculty := model.Faculty{
		Name:         "Integration Faculty",
		Department:   "Integration Test Dept",
		Email:        fmt.Sprintf("faculty-%s@test.local", suffix),
		PasswordHash: "not-used",
	}
	if err := db.Create(&faculty).Error; err != nil {
		t.Fatalf("failed to create faculty: %v", err)
	}
	facultyID = faculty.FacultyID

	for i := 0; i < 2; i++ {
		id := fmt.Sprintf("IT%s%d", suffix[len(suffix)-6:], i)
		student := model.Student{
			StudentID:    id,
			Name:         fmt.Sprintf("Student %d", i),
			Email:        fmt.Sprintf("student-%s-%d@test.local", suffix, i),
			DOB:          time.Date(2003, time.May, 10, 0, 0, 0, 0, time.UTC),
			BatchID:      batch.ID,
			PasswordHash: "not-used",
		}
		if err := db.Create(&student).Error; err != nil {
			t.Fatalf("failed to create student: %v", err)
		}
		studentIDs = append(studentIDs, id)
	}

	return subjectCode, studentIDs, facultyID
}

func TestAssignmentLifecycleIntegration(t *testing.T) {
	db := setupIntegrationDB(t)
	subjectCode, studentIDs, facultyID := seedAssignmentFixture(t, db)

	questionSvc := NewQuestionService(db, nil)
	assignmentSvc := NewAssignmentService(db)

	// Save a question bank
	questions, err := questionSvc.SaveQuestions(subjectCode, facultyID, model.QuestionSourceTopic, "trees", []string{
		"What is an AVL tree?",
		"Explain tree rotations.",
	})
	if err != nil {
		t.Fatalf("SaveQuestions failed: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 saved questions, got %d", len(questions))
	}

	questionIDs := []uint{questions[0].QuestionID, questions[1].QuestionID}

	// Create the assignment
	assignment, err := assignmentSvc.CreateAssignment(subjectCode, "Tree Assignment", questionIDs)
	if err != nil {
		t.Fatalf("CreateAssignment failed: %v", err)
	}
	t.Logf("created assignment %d", assignment.AssignmentID)

	// Distributing a nonexistent assignment is a distinct failure class
	if _, err := assignmentSvc.Distribute(assignment.AssignmentID+100000, studentIDs); !errors.Is(err, ErrAssignmentNotFound) {
		t.Errorf("expected ErrAssignmentNotFound for unknown assignment, got %v", err)
	}

	// First distribution allocates everyone
	result, err := assignmentSvc.Distribute(assignment.AssignmentID, studentIDs)
	if err != nil {
		t.Fatalf("Distribute failed: %v", err)
	}
	if result.Created != 2 || result.Skipped != 0 {
		t.Errorf("expected 2 created / 0 skipped, got %d / %d", result.Created, result.Skipped)
	}

	// Re-running the distribution is idempotent
	result, err = assignmentSvc.Distribute(assignment.AssignmentID, studentIDs)
	if err != nil {
		t.Fatalf("second Distribute failed: %v", err)
	}
	if result.Created != 0 || result.Skipped != 2 {
		t.Errorf("expected 0 created / 2 skipped, got %d / %d", result.Created, result.Skipped)
	}

	// Submit once, then verify the transition is one-way
	if err := assignmentSvc.Submit(assignment.AssignmentID, studentIDs[0], "123-abcd-file.pdf"); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	err = assignmentSvc.Submit(assignment.AssignmentID, studentIDs[0], "456-efgh-file.pdf")
	if !errors.Is(err, ErrAlreadySubmitted) {
		t.Errorf("expected ErrAlreadySubmitted on resubmission, got %v", err)
	}

	// Unknown allocation
	err = assignmentSvc.Submit(assignment.AssignmentID, "NOBODY", "x.pdf")
	if !errors.Is(err, ErrAllocationNotFound) {
		t.Errorf("expected ErrAllocationNotFound, got %v", err)
	}

	// Allocation status reflects one submission
	allocations, err := assignmentSvc.AllocationStatus(assignment.AssignmentID)
	if err != nil {
		t.Fatalf("AllocationStatus failed: %v", err)
	}
	submitted := 0
	for _, a := range allocations {
		if a.Status == model.AllocationStatusSubmitted {
			submitted++
			if a.SubmittedOn == nil {
				t.Error("submitted allocation has no timestamp")
			}
		}
	}
	if submitted != 1 {
		t.Errorf("expected 1 submitted allocation, got %d", submitted)
	}
}
