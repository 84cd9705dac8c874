package admin

import (
	"strconv"
	"time"

	"github.com/autoassign/api/model"
	"github.com/autoassign/api/utils/response"
	"github.com/gofiber/fiber/v2"
)

// ListDepartments returns all departments ordered by code
func (h *AdminHandler) ListDepartments(c *fiber.Ctx) error {
	var departments []model.Department
	if err := h.db.Order("code").Find(&departments).Error; err != nil {
		return response.InternalServerError(c, "Failed to load departments")
	}
	return response.Success(c, departments)
}

// ListCourses returns all courses ordered by subject code
func (h *AdminHandler) ListCourses(c *fiber.Ctx) error {
	var courses []model.Course
	if err := h.db.Preload("Department").Order("subject_code").Find(&courses).Error; err != nil {
		return response.InternalServerError(c, "Failed to load courses")
	}
	return response.Success(c, courses)
}

// ListFaculties returns all faculty members ordered by name
func (h *AdminHandler) ListFaculties(c *fiber.Ctx) error {
	var faculties []model.Faculty
	if err := h.db.Order("name").Find(&faculties).Error; err != nil {
		return response.InternalServerError(c, "Failed to load faculties")
	}
	return response.Success(c, faculties)
}

// ListBatches filters batches by department and semester query parameters.
// Only the current year's batches are returned.
func (h *AdminHandler) ListBatches(c *fiber.Ctx) error {
	query := h.db.Model(&model.Batch{}).Where("year = ?", time.Now().Year())

	if dept := c.Query("department"); dept != "" {
		deptID, err := strconv.ParseUint(dept, 10, 64)
		if err != nil {
			return response.BadRequest(c, "Invalid department ID")
		}
		query = query.Where("dept_id = ?", uint(deptID))
	}
	if sem := c.Query("semester"); sem != "" {
		semester, err := strconv.Atoi(sem)
		if err != nil {
			return response.BadRequest(c, "Invalid semester")
		}
		query = query.Where("semester = ?", semester)
	}

	var batches []model.Batch
	if err := query.Order("id").Find(&batches).Error; err != nil {
		return response.InternalServerError(c, "Failed to load batches")
	}
	return response.Success(c, batches)
}

// ListBatchesByDepartment returns every batch of one department
func (h *AdminHandler) ListBatchesByDepartment(c *fiber.Ctx) error {
	deptID, err := strconv.ParseUint(c.Params("deptId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "Invalid department ID")
	}

	var batches []model.Batch
	if err := h.db.Where("dept_id = ?", uint(deptID)).Order("id").Find(&batches).Error; err != nil {
		return response.InternalServerError(c, "Failed to load batches")
	}
	return response.Success(c, batches)
}
