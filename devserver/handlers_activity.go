package devserver

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lumenlearn/lumen-go/derived"
)

type ActivityHandler struct {
	Store Store
}

func NewActivityHandler(store Store) *ActivityHandler {
	return &ActivityHandler{Store: store}
}

type completeRequest struct {
	TimeSpent int `json:"timeSpent"`
}

func (h *ActivityHandler) Complete(c *fiber.Ctx) error {
	lessonID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid lesson ID",
		})
	}

	lesson, err := h.Store.Lesson(lessonID)
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

	var req completeRequest
	c.BodyParser(&req) // body is optional

	row := CompletionRow{
		UserID:      currentUserID(c),
		LessonID:    lessonID,
		TopicID:     lesson.TopicID,
		CompletedAt: time.Now().UTC(),
		TimeSpent:   req.TimeSpent,
	}
	if err := h.Store.CreateCompletion(&row); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not record completion",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(completionWire(row))
}

func (h *ActivityHandler) Uncomplete(c *fiber.Ctx) error {
	lessonID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid lesson ID",
		})
	}

	if err := h.Store.DeleteCompletion(currentUserID(c), lessonID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Completion not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete completion",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ActivityHandler) View(c *fiber.Ctx) error {
	lessonID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid lesson ID",
		})
	}

	lesson, err := h.Store.Lesson(lessonID)
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

	row := ViewRow{
		UserID:   currentUserID(c),
		LessonID: lessonID,
		TopicID:  lesson.TopicID,
		ViewedAt: time.Now().UTC(),
	}
	if err := h.Store.CreateView(&row); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not record view",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(viewWire(row))
}

func (h *ActivityHandler) Completions(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	rows, err := h.Store.CompletionsByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query completions",
		})
	}

	result := make([]fiber.Map, 0, len(rows))
	for _, row := range rows {
		result = append(result, completionWire(row))
	}
	return c.JSON(result)
}

func (h *ActivityHandler) Attempts(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	rows, err := h.Store.AttemptsByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query attempts",
		})
	}

	result := make([]fiber.Map, 0, len(rows))
	for _, row := range rows {
		result = append(result, attemptWire(row))
	}
	return c.JSON(result)
}

// Progress derives the completion summary for one user and topic.
func (h *ActivityHandler) Progress(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}
	topicID, err := strconv.Atoi(c.Params("topicId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid topic ID",
		})
	}

	completions, err := h.Store.CompletionsByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query completions",
		})
	}
	completed := 0
	for _, completion := range completions {
		if completion.TopicID == topicID {
			completed++
		}
	}

	lessons, err := h.Store.LessonsByTopic(topicID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not query lessons",
		})
	}

	return c.JSON(fiber.Map{
		"user_id":    userID,
		"topic_id":   topicID,
		"completed":  completed,
		"total":      len(lessons),
		"percentage": derived.Percentage(completed, len(lessons)),
	})
}
