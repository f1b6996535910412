package devserver

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lumenlearn/lumen-go/derived"
	"github.com/lumenlearn/lumen-go/models"
)

type AssessmentsHandler struct {
	Store Store
}

func NewAssessmentsHandler(store Store) *AssessmentsHandler {
	return &AssessmentsHandler{Store: store}
}

// GetByTopic answers 404 for topics without an assessment; the client
// treats that as absence, not failure.
func (h *AssessmentsHandler) GetByTopic(c *fiber.Ctx) error {
	topicID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid topic ID",
		})
	}

	row, err := h.Store.AssessmentByTopic(topicID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "No assessment for topic",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query assessments",
		})
	}
	return c.JSON(assessmentWire(*row))
}

type submitRequest struct {
	Answers   []int `json:"answers"`
	TimeSpent int   `json:"timeSpent"`
}

// Submit scores the answers and records an immutable attempt. Retakes
// inside the cooldown window are refused.
func (h *AssessmentsHandler) Submit(c *fiber.Ctx) error {
	assessmentID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid assessment ID",
		})
	}

	assessment, err := h.Store.Assessment(assessmentID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Assessment not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query assessments",
		})
	}

	var req submitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	userID := currentUserID(c)
	prior, err := h.Store.AttemptsByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query attempts",
		})
	}
	var relevant []models.AssessmentAttempt
	for _, attempt := range prior {
		if attempt.AssessmentID == assessmentID {
			relevant = append(relevant, models.AssessmentAttempt{CompletedAt: attempt.CompletedAt})
		}
	}
	if eligible, wait := derived.RetakeEligibility(relevant, assessment.CooldownPeriod, time.Now().UTC()); !eligible {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error":        "Cooldown period active",
			"wait_minutes": wait,
		})
	}

	var questions []models.Question
	if err := json.Unmarshal([]byte(assessment.Questions), &questions); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Corrupt assessment questions",
		})
	}

	correct := 0
	for i, question := range questions {
		if i < len(req.Answers) && req.Answers[i] == question.CorrectAnswer {
			correct++
		}
	}
	score := derived.Percentage(correct, len(questions))

	answers, _ := json.Marshal(req.Answers)
	row := AttemptRow{
		UserID:         userID,
		AssessmentID:   assessmentID,
		TopicID:        assessment.TopicID,
		Score:          score,
		CorrectAnswers: correct,
		TotalQuestions: len(questions),
		TimeSpent:      req.TimeSpent,
		CompletedAt:    time.Now().UTC(),
		Answers:        string(answers),
	}
	if err := h.Store.CreateAttempt(&row); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not record attempt",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(attemptWire(row))
}
