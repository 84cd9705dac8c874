package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/autoassign/api/model"
	"github.com/autoassign/api/services/groq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuestionCount is how many questions each generation run asks for
const QuestionCount = 10

// QuestionService generates assignment questions via the Groq API and
// persists approved ones per subject.
type QuestionService struct {
	db     *gorm.DB
	client *groq.Client
}

// NewQuestionService creates a new question service
func NewQuestionService(db *gorm.DB, client *groq.Client) *QuestionService {
	return &QuestionService{db: db, client: client}
}

// numberedItem matches list delimiters like "\n1." at line starts
var numberedItem = regexp.MustCompile(`\n\d+\.`)

// leadingNumber strips residual numbering like "3." or "3)" from an item
var leadingNumber = regexp.MustCompile(`^\d+[\.\)]\s*`)

// ParseNumberedList splits an LLM completion into individual questions.
// The expected shape is a numbered list ("1. ...\n2. ..."). When no numbered
// delimiters are present the text falls back to a plain line split, so a
// model that ignores the numbering instruction still yields usable items.
func ParseNumberedList(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var parts []string
	if numberedItem.MatchString("\n" + text) {
		parts = numberedItem.Split("\n"+text, -1)
	} else {
		parts = strings.Split(text, "\n")
	}

	questions := make([]string, 0, len(parts))
	for _, part := range parts {
		q := strings.TrimSpace(part)
		q = leadingNumber.ReplaceAllString(q, "")
		q = strings.TrimSpace(q)
		if q != "" {
			questions = append(questions, q)
		}
	}
	return questions
}

// topicPrompt builds the generation prompt for a free-form topic
func topicPrompt(topic string) string {
	return fmt.Sprintf(
		"Generate exactly %d assignment questions on the topic \"%s\" for a university course. "+
			"Return them as a numbered list (1. to %d.), one question per line, with no extra commentary.",
		QuestionCount, topic, QuestionCount)
}

// pdfPrompt builds the generation prompt for extracted PDF content
func pdfPrompt(content string) string {
	return fmt.Sprintf(
		"Based on the following course material, generate exactly %d assignment questions. "+
			"Return them as a numbered list (1. to %d.), one question per line, with no extra commentary.\n\n"+
			"Course material:\n%s",
		QuestionCount, QuestionCount, content)
}

// GenerateFromTopic asks the model for questions about a topic and returns
// the parsed list without persisting anything.
func (s *QuestionService) GenerateFromTopic(ctx context.Context, topic string) ([]string, error) {
	return s.generate(ctx, topicPrompt(topic), model.QuestionSourceTopic, topic)
}

// GenerateFromPDF asks the model for questions grounded in extracted PDF text
func (s *QuestionService) GenerateFromPDF(ctx context.Context, content string) ([]string, error) {
	return s.generate(ctx, pdfPrompt(content), model.QuestionSourcePDF, "")
}

func (s *QuestionService) generate(ctx context.Context, prompt string, source model.QuestionSource, topic string) ([]string, error) {
	completion, usage, err := s.client.SimpleCompletion(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	questions := ParseNumberedList(completion)
	if len(questions) == 0 {
		return nil, fmt.Errorf("model returned no parseable questions")
	}

	s.recordGeneration(source, topic, len(questions), usage)

	return questions, nil
}

// recordGeneration logs one generation run for auditing. Failures here are
// logged and swallowed so they never fail the user-facing request.
func (s *QuestionService) recordGeneration(source model.QuestionSource, topic string, count int, usage *groq.Usage) {
	entry := model.GenerationLog{
		Source:        source,
		Topic:         topic,
		Model:         s.client.Model(),
		QuestionCount: count,
	}
	if usage != nil {
		if raw, err := json.Marshal(usage); err == nil {
			entry.Usage = datatypes.JSON(raw)
		}
	}
	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("Warning: failed to record generation log: %v", err)
	}
}

// SaveQuestions persists a faculty-approved question list for a subject in
// one transaction. Blank entries are rejected up front.
func (s *QuestionService) SaveQuestions(subjectCode string, facultyID uint, source model.QuestionSource, topic string, texts []string) ([]model.Question, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("no questions to save")
	}

	questions := make([]model.Question, 0, len(texts))
	for _, text := range texts {
		text = strings.TrimSpace(text)
		if text == "" {
			return nil, fmt.Errorf("question text cannot be empty")
		}
		questions = append(questions, model.Question{
			Text:        text,
			Topic:       topic,
			Source:      source,
			SubjectCode: subjectCode,
			CreatedBy:   facultyID,
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&questions).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save questions: %w", err)
	}

	return questions, nil
}

// QuestionsBySubject returns all saved questions for a subject, newest first
func (s *QuestionService) QuestionsBySubject(subjectCode string) ([]model.Question, error) {
	var questions []model.Question
	err := s.db.
		Where("subject_code = ?", subjectCode).
		Order("question_id DESC").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	return questions, nil
}
