package devserver

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/lumenlearn/lumen-go/models"
)

type LessonsHandler struct {
	Store Store
}

func NewLessonsHandler(store Store) *LessonsHandler {
	return &LessonsHandler{Store: store}
}

func (h *LessonsHandler) ListByTopic(c *fiber.Ctx) error {
	topicID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid topic ID",
		})
	}

	rows, err := h.Store.LessonsByTopic(topicID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query lessons",
		})
	}

	result := make([]fiber.Map, 0, len(rows))
	for _, row := range rows {
		result = append(result, lessonWire(row))
	}
	return c.JSON(result)
}

func (h *LessonsHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid lesson ID",
		})
	}

	row, err := h.Store.Lesson(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Lesson not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query lessons",
		})
	}
	return c.JSON(lessonWire(*row))
}

type lessonRequest struct {
	TopicID       int               `json:"topicId"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Content       string            `json:"content"`
	Duration      string            `json:"duration"`
	Difficulty    string            `json:"difficulty"`
	VideoURL      string            `json:"videoUrl"`
	Prerequisites []string          `json:"prerequisites"`
	Downloads     []models.Download `json:"downloads"`
	Order         int               `json:"order"`
	Status        string            `json:"status"`
}

func (h *LessonsHandler) Create(c *fiber.Ctx) error {
	var req lessonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.TopicID == 0 || req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "topicId and title are required",
		})
	}

	// Download entries created through the API get server-issued ids.
	for i := range req.Downloads {
		if req.Downloads[i].ID == "" {
			req.Downloads[i].ID = uuid.NewString()
		}
	}

	prerequisites, _ := json.Marshal(req.Prerequisites)
	downloads, _ := json.Marshal(req.Downloads)

	now := time.Now().UTC()
	row := LessonRow{
		TopicID:       req.TopicID,
		Title:         req.Title,
		Description:   req.Description,
		Content:       req.Content,
		Duration:      req.Duration,
		Difficulty:    req.Difficulty,
		VideoURL:      req.VideoURL,
		Prerequisites: string(prerequisites),
		Downloads:     string(downloads),
		SequenceOrder: req.Order,
		Status:        req.Status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if row.Difficulty == "" {
		row.Difficulty = models.DifficultyBeginner
	}
	if row.Status == "" {
		row.Status = models.StatusDraft
	}

	if err := h.Store.CreateLesson(&row); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create lesson",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(lessonWire(row))
}

func (h *LessonsHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid lesson ID",
		})
	}

	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	fields := translateFields(body, lessonColumns)
	fields["updated_at"] = time.Now().UTC()

	row, err := h.Store.UpdateLesson(id, fields)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Lesson not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update lesson",
		})
	}
	return c.JSON(lessonWire(*row))
}

func (h *LessonsHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid lesson ID",
		})
	}

	if err := h.Store.DeleteLesson(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Lesson not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete lesson",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
