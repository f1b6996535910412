package devserver

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/lumenlearn/lumen-go/models"
)

// The devserver serializes records under the backend's snake_case wire
// convention. The client normalizes these into its canonical camelCase
// shape, so the shapes below double as normalization fixtures.

func topicWire(row TopicRow, hasAssessment bool) fiber.Map {
	return fiber.Map{
		"id":             row.ID,
		"title":          row.Title,
		"category":       row.Category,
		"difficulty":     row.Difficulty,
		"status":         row.Status,
		"description":    row.Description,
		"image_url":      row.ImageURL,
		"student_count":  row.StudentCount,
		"lesson_count":   row.LessonCount,
		"has_assessment": hasAssessment,
		"created_at":     row.CreatedAt,
	}
}

func lessonWire(row LessonRow) fiber.Map {
	var prerequisites []string
	if row.Prerequisites != "" {
		json.Unmarshal([]byte(row.Prerequisites), &prerequisites)
	}
	var downloads []models.Download
	if row.Downloads != "" {
		json.Unmarshal([]byte(row.Downloads), &downloads)
	}
	return fiber.Map{
		"id":             row.ID,
		"topic_id":       row.TopicID,
		"title":          row.Title,
		"description":    row.Description,
		"content":        row.Content,
		"duration":       row.Duration,
		"difficulty":     row.Difficulty,
		"video_url":      row.VideoURL,
		"prerequisites":  prerequisites,
		"downloads":      downloads,
		"sequence_order": row.SequenceOrder,
		"status":         row.Status,
		"created_at":     row.CreatedAt,
		"updated_at":     row.UpdatedAt,
	}
}

func assessmentWire(row AssessmentRow) fiber.Map {
	var questions []models.Question
	if row.Questions != "" {
		json.Unmarshal([]byte(row.Questions), &questions)
	}
	wire := make([]fiber.Map, 0, len(questions))
	for _, question := range questions {
		wire = append(wire, fiber.Map{
			"id":             question.ID,
			"type":           question.Type,
			"question":       question.Prompt,
			"options":        question.Options,
			"correct_answer": question.CorrectAnswer,
		})
	}
	return fiber.Map{
		"id":              row.ID,
		"topic_id":        row.TopicID,
		"total_questions": row.TotalQuestions,
		"time_limit":      row.TimeLimit,
		"cooldown_period": row.CooldownPeriod,
		"questions":       wire,
	}
}

func attemptWire(row AttemptRow) fiber.Map {
	var answers []int
	if row.Answers != "" {
		json.Unmarshal([]byte(row.Answers), &answers)
	}
	return fiber.Map{
		"id":              row.ID,
		"user_id":         row.UserID,
		"assessment_id":   row.AssessmentID,
		"topic_id":        row.TopicID,
		"score":           row.Score,
		"correct_answers": row.CorrectAnswers,
		"total_questions": row.TotalQuestions,
		"time_spent":      row.TimeSpent,
		"completed_at":    row.CompletedAt,
		"answers":         answers,
	}
}

func completionWire(row CompletionRow) fiber.Map {
	return fiber.Map{
		"id":           row.ID,
		"user_id":      row.UserID,
		"lesson_id":    row.LessonID,
		"topic_id":     row.TopicID,
		"completed_at": row.CompletedAt,
		"time_spent":   row.TimeSpent,
	}
}

func viewWire(row ViewRow) fiber.Map {
	return fiber.Map{
		"id":        row.ID,
		"user_id":   row.UserID,
		"lesson_id": row.LessonID,
		"topic_id":  row.TopicID,
		"viewed_at": row.ViewedAt,
		"duration":  row.Duration,
	}
}

func userWire(row UserRow) fiber.Map {
	return fiber.Map{
		"id":                 row.ID,
		"role":               row.Role,
		"first_name":         row.FirstName,
		"last_name":          row.LastName,
		"email":              row.Email,
		"bio":                row.Bio,
		"phone":              row.Phone,
		"location":           row.Location,
		"skills":             row.Skills,
		"interests":          row.Interests,
		"completed_lessons":  row.CompletedLessons,
		"completed_topics":   row.CompletedTopics,
		"assessments_passed": row.AssessmentsPassed,
	}
}

// Column translation for partial updates: request bodies arrive under the
// client's camelCase keys, the stores update snake_case columns.

var topicColumns = map[string]string{
	"title":        "title",
	"category":     "category",
	"difficulty":   "difficulty",
	"status":       "status",
	"description":  "description",
	"image":        "image_url",
	"studentCount": "student_count",
	"lessonCount":  "lesson_count",
}

var lessonColumns = map[string]string{
	"title":         "title",
	"description":   "description",
	"content":       "content",
	"duration":      "duration",
	"difficulty":    "difficulty",
	"videoUrl":      "video_url",
	"prerequisites": "prerequisites",
	"downloads":     "downloads",
	"order":         "sequence_order",
	"status":        "status",
}

var userColumns = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"email":     "email",
	"bio":       "bio",
	"phone":     "phone",
	"location":  "location",
	"skills":    "skills",
	"interests": "interests",
}

// translateFields maps camelCase body keys onto column names, dropping
// anything a caller may not update. JSON-column values are re-marshaled to
// text.
func translateFields(body map[string]interface{}, columns map[string]string) map[string]interface{} {
	fields := make(map[string]interface{})
	for key, value := range body {
		column, allowed := columns[key]
		if !allowed {
			continue
		}
		if key == "prerequisites" || key == "downloads" {
			buf, err := json.Marshal(value)
			if err != nil {
				continue
			}
			value = string(buf)
		}
		fields[column] = value
	}
	return fields
}
