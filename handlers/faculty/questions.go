package faculty

import (
	"io"
	"strings"

	"github.com/autoassign/api/model"
	"github.com/autoassign/api/utils/response"
	"github.com/gofiber/fiber/v2"
)

// GenerateQuestionsRequest asks for questions about a free-form topic
type GenerateQuestionsRequest struct {
	Topic string `json:"topic" validate:"required"`
}

// GenerateQuestions generates candidate questions from a topic. Nothing is
// persisted until the faculty member saves an approved list.
func (h *FacultyHandler) GenerateQuestions(c *fiber.Ctx) error {
	var req GenerateQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(req.Topic) == "" {
		return response.BadRequest(c, "Topic is required")
	}

	questions, err := h.questions.GenerateFromTopic(c.Context(), req.Topic)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate questions")
	}

	return response.Success(c, fiber.Map{
		"questions": questions,
		"source":    model.QuestionSourceTopic,
		"topic":     req.Topic,
	})
}

// UploadPDF accepts a course-material PDF, extracts its text and generates
// candidate questions from the content. The file itself is not stored.
func (h *FacultyHandler) UploadPDF(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("pdf")
	if err != nil {
		return response.BadRequest(c, "PDF file is required")
	}
	if fileHeader.Size > MaxPDFSize {
		return response.BadRequest(c, "PDF exceeds the 10 MB limit")
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		return response.BadRequest(c, "Only PDF files are accepted")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.InternalServerError(c, "Failed to read uploaded file")
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return response.InternalServerError(c, "Failed to read uploaded file")
	}

	text, err := h.extractor.ExtractText(content)
	if err != nil {
		return response.BadRequest(c, "Could not extract text from PDF: "+err.Error())
	}

	questions, err := h.questions.GenerateFromPDF(c.Context(), text)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate questions")
	}

	return response.Success(c, fiber.Map{
		"questions": questions,
		"source":    model.QuestionSourcePDF,
	})
}

// SaveQuestionsRequest persists a faculty-approved question list
type SaveQuestionsRequest struct {
	Questions   []string `json:"questions" validate:"required,min=1"`
	Source      string   `json:"source" validate:"required,oneof=TOPIC PDF"`
	Topic       string   `json:"topic"`
	SubjectCode string   `json:"subject_code" validate:"required"`
}

// SaveQuestions stores approved questions for a subject. The caller must
// teach the subject.
func (h *FacultyHandler) SaveQuestions(c *fiber.Ctx) error {
	facultyID, ok := sessionFacultyID(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var req SaveQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequest(c, "Validation failed: "+err.Error())
	}

	teaches, err := h.dashboard.TeachesSubject(facultyID, req.SubjectCode)
	if err != nil {
		return response.InternalServerError(c, "Failed to verify teaching association")
	}
	if !teaches {
		return response.Forbidden(c, "You do not teach this subject")
	}

	saved, err := h.questions.SaveQuestions(
		req.SubjectCode,
		facultyID,
		model.QuestionSource(req.Source),
		req.Topic,
		req.Questions,
	)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	return response.Created(c, saved)
}

// QuestionsBySubject returns the saved question bank for a subject
func (h *FacultyHandler) QuestionsBySubject(c *fiber.Ctx) error {
	subjectCode := c.Params("subjectCode")
	if subjectCode == "" {
		return response.BadRequest(c, "Subject code is required")
	}

	questions, err := h.questions.QuestionsBySubject(subjectCode)
	if err != nil {
		return response.InternalServerError(c, "Failed to load questions")
	}
	return response.Success(c, questions)
}
