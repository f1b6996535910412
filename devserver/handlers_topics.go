package devserver

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lumenlearn/lumen-go/models"
)

type TopicsHandler struct {
	Store Store
}

func NewTopicsHandler(store Store) *TopicsHandler {
	return &TopicsHandler{Store: store}
}

func (h *TopicsHandler) List(c *fiber.Ctx) error {
	rows, err := h.Store.Topics()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query topics",
		})
	}

	result := make([]fiber.Map, 0, len(rows))
	for _, row := range rows {
		result = append(result, topicWire(row, h.hasAssessment(row.ID)))
	}
	return c.JSON(result)
}

func (h *TopicsHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid topic ID",
		})
	}

	row, err := h.Store.Topic(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Topic not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query topics",
		})
	}
	return c.JSON(topicWire(*row, h.hasAssessment(row.ID)))
}

type topicRequest struct {
	Title        string `json:"title"`
	Category     string `json:"category"`
	Difficulty   string `json:"difficulty"`
	Status       string `json:"status"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	StudentCount int    `json:"studentCount"`
}

func (h *TopicsHandler) Create(c *fiber.Ctx) error {
	var req topicRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	row := TopicRow{
		Title:        req.Title,
		Category:     req.Category,
		Difficulty:   req.Difficulty,
		Status:       req.Status,
		Description:  req.Description,
		ImageURL:     req.Image,
		StudentCount: req.StudentCount,
		CreatedAt:    time.Now().UTC(),
	}
	if row.Difficulty == "" {
		row.Difficulty = models.DifficultyBeginner
	}
	if row.Status == "" {
		row.Status = models.StatusDraft
	}

	if err := h.Store.CreateTopic(&row); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create topic",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(topicWire(row, false))
}

func (h *TopicsHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid topic ID",
		})
	}

	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	row, err := h.Store.UpdateTopic(id, translateFields(body, topicColumns))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Topic not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update topic",
		})
	}
	return c.JSON(topicWire(*row, h.hasAssessment(row.ID)))
}

func (h *TopicsHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid topic ID",
		})
	}

	if err := h.Store.DeleteTopic(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Topic not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete topic",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// A topic has an assessment iff one exists for it.
func (h *TopicsHandler) hasAssessment(topicID int) bool {
	_, err := h.Store.AssessmentByTopic(topicID)
	return err == nil
}
