package models

import "time"

// Difficulty levels and statuses used across topics and lessons.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"

	StatusDraft     = "Draft"
	StatusPublished = "Published"
)

type Topic struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	Difficulty    string    `json:"difficulty"` // Beginner, Intermediate, Advanced
	Status        string    `json:"status"`     // Draft, Published
	Description   string    `json:"description"`
	Image         string    `json:"image"`
	StudentCount  int       `json:"studentCount"`
	LessonCount   int       `json:"lessonCount"`
	HasAssessment bool      `json:"hasAssessment"`
	CreatedAt     time.Time `json:"createdAt"`
}
