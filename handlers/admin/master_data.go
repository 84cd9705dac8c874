package admin

import (
	"strings"
	"time"

	"github.com/autoassign/api/model"
	"github.com/autoassign/api/utils/auth"
	"github.com/autoassign/api/utils/response"
	"github.com/autoassign/api/utils/validation"
	"github.com/gofiber/fiber/v2"
)

// AddDepartmentRequest creates a department
type AddDepartmentRequest struct {
	DeptCode string `json:"dept_code" validate:"required,max=20"`
	DeptName string `json:"dept_name" validate:"required"`
}

// AddDepartment inserts a new department. Master data is append-only; there
// is no update or delete.
func (h *AdminHandler) AddDepartment(c *fiber.Ctx) error {
	var req AddDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequest(c, "Validation failed: "+err.Error())
	}

	dept := model.Department{
		Code: validation.SanitizeString(req.DeptCode),
		Name: validation.SanitizeString(req.DeptName),
	}
	if err := h.db.Create(&dept).Error; err != nil {
		if isDuplicateError(err) {
			return response.Conflict(c, "Department code already exists")
		}
		return response.InternalServerError(c, "Failed to create department")
	}

	return response.Created(c, dept)
}

// AddBatchRequest creates a batch within a department
type AddBatchRequest struct {
	BatchName string `json:"batch_name" validate:"required"`
	Semester  int    `json:"semester" validate:"required,min=1,max=8"`
	Year      int    `json:"year" validate:"required,min=2000"`
	DeptID    uint   `json:"dept_id" validate:"required"`
}

// AddBatch inserts a new batch
func (h *AdminHandler) AddBatch(c *fiber.Ctx) error {
	var req AddBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequest(c, "Validation failed: "+err.Error())
	}

	var dept model.Department
	if err := h.db.First(&dept, req.DeptID).Error; err != nil {
		return response.NotFound(c, "Department not found")
	}

	batch := model.Batch{
		Name:     validation.SanitizeString(req.BatchName),
		Semester: req.Semester,
		Year:     req.Year,
		DeptID:   req.DeptID,
	}
	if err := h.db.Create(&batch).Error; err != nil {
		return response.InternalServerError(c, "Failed to create batch")
	}

	return response.Created(c, batch)
}

// AddCourseRequest creates a course
type AddCourseRequest struct {
	SubjectCode string `json:"subject_code" validate:"required,max=20"`
	Title       string `json:"title" validate:"required"`
	DeptID      uint   `json:"dept_id" validate:"required"`
}

// AddCourse inserts a new course
func (h *AdminHandler) AddCourse(c *fiber.Ctx) error {
	var req AddCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequest(c, "Validation failed: "+err.Error())
	}

	var dept model.Department
	if err := h.db.First(&dept, req.DeptID).Error; err != nil {
		return response.NotFound(c, "Department not found")
	}

	course := model.Course{
		SubjectCode: validation.SanitizeString(req.SubjectCode),
		Title:       validation.SanitizeString(req.Title),
		DeptID:      req.DeptID,
	}
	if err := h.db.Create(&course).Error; err != nil {
		if isDuplicateError(err) {
			return response.Conflict(c, "Subject code already exists")
		}
		return response.InternalServerError(c, "Failed to create course")
	}

	return response.Created(c, course)
}

// AddFacultyRequest creates a faculty account
type AddFacultyRequest struct {
	FacultyName string `json:"facultyName" validate:"required"`
	Department  string `json:"department" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
}

// AddFaculty inserts a faculty member. The default password is the email
// local-part, bcrypt-hashed; faculty change it after first login.
func (h *AdminHandler) AddFaculty(c *fiber.Ctx) error {
	var req AddFacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequest(c, "Validation failed: "+err.Error())
	}

	hash, err := auth.HashPassword(auth.DefaultFacultyPassword(req.Email))
	if err != nil {
		return response.InternalServerError(c, "Failed to hash password")
	}

	faculty := model.Faculty{
		Name:         validation.SanitizeString(req.FacultyName),
		Department:   validation.SanitizeString(req.Department),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
	}
	if err := h.db.Create(&faculty).Error; err != nil {
		if isDuplicateError(err) {
			return response.Conflict(c, "Email already registered")
		}
		return response.InternalServerError(c, "Failed to create faculty")
	}

	return response.Created(c, faculty)
}

// AddStudentRequest creates a student account
type AddStudentRequest struct {
	StudentID   string `json:"studentId" validate:"required,max=20"`
	StudentName string `json:"studentName" validate:"required"`
	Department  string `json:"department"`
	Email       string `json:"email" validate:"required,email"`
	DOB         string `json:"dob" validate:"required"` // YYYY-MM-DD
	Batch       uint   `json:"batch" validate:"required"`
}

// AddStudent inserts a student. The default password is DDMMYYYY of the
// date of birth, bcrypt-hashed.
func (h *AdminHandler) AddStudent(c *fiber.Ctx) error {
	var req AddStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequest(c, "Validation failed: "+err.Error())
	}

	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		return response.BadRequest(c, "Invalid date of birth, expected YYYY-MM-DD")
	}

	var batch model.Batch
	if err := h.db.First(&batch, req.Batch).Error; err != nil {
		return response.NotFound(c, "Batch not found")
	}

	hash, err := auth.HashPassword(auth.DefaultStudentPassword(dob))
	if err != nil {
		return response.InternalServerError(c, "Failed to hash password")
	}

	student := model.Student{
		StudentID:    validation.SanitizeString(req.StudentID),
		Name:         validation.SanitizeString(req.StudentName),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		DOB:          dob,
		BatchID:      req.Batch,
		PasswordHash: hash,
	}
	if err := h.db.Create(&student).Error; err != nil {
		if isDuplicateError(err) {
			return response.Conflict(c, "Student ID or email already registered")
		}
		return response.InternalServerError(c, "Failed to create student")
	}

	return response.Created(c, student)
}

// AddTeachesRequest links a faculty member to a course and batch
type AddTeachesRequest struct {
	FacultyID   uint   `json:"faculty_id" validate:"required"`
	SubjectCode string `json:"subject_code" validate:"required"`
	BatchID     uint   `json:"batch_id" validate:"required"`
}

// AddTeaches inserts a teaches row, the authorization boundary for every
// faculty operation.
func (h *AdminHandler) AddTeaches(c *fiber.Ctx) error {
	var req AddTeachesRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequest(c, "Validation failed: "+err.Error())
	}

	var faculty model.Faculty
	if err := h.db.First(&faculty, req.FacultyID).Error; err != nil {
		return response.NotFound(c, "Faculty not found")
	}
	var course model.Course
	if err := h.db.First(&course, "subject_code = ?", req.SubjectCode).Error; err != nil {
		return response.NotFound(c, "Course not found")
	}
	var batch model.Batch
	if err := h.db.First(&batch, req.BatchID).Error; err != nil {
		return response.NotFound(c, "Batch not found")
	}

	teaches := model.Teaches{
		FacultyID:   req.FacultyID,
		SubjectCode: req.SubjectCode,
		BatchID:     req.BatchID,
	}
	if err := h.db.Create(&teaches).Error; err != nil {
		if isDuplicateError(err) {
			return response.Conflict(c, "Teaching association already exists")
		}
		return response.InternalServerError(c, "Failed to create teaching association")
	}

	return response.Created(c, teaches)
}

// isDuplicateError detects unique-constraint violations across the pgx
// driver's error shapes.
func isDuplicateError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint") ||
		strings.Contains(msg, "23505")
}
