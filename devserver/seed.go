package devserver

import (
	"encoding/json"

	"github.com/lumenlearn/lumen-go/models"
	"github.com/lumenlearn/lumen-go/synthetic"
)

// seed loads the demo dataset into an empty store. The devserver and the
// client's synthetic fallback intentionally serve the same records.
func seed(store Store) error {
	topics, lessons, assessments, users := synthetic.Dataset()

	for _, topic := range topics {
		row := TopicRow{
			ID:           topic.ID,
			Title:        topic.Title,
			Category:     topic.Category,
			Difficulty:   topic.Difficulty,
			Status:       topic.Status,
			Description:  topic.Description,
			ImageURL:     topic.Image,
			StudentCount: topic.StudentCount,
			LessonCount:  topic.LessonCount,
			CreatedAt:    topic.CreatedAt,
		}
		if err := store.CreateTopic(&row); err != nil {
			return err
		}
	}

	for _, lesson := range lessons {
		row, err := lessonToRow(lesson)
		if err != nil {
			return err
		}
		if err := store.CreateLesson(row); err != nil {
			return err
		}
	}

	for _, assessment := range assessments {
		questions, err := json.Marshal(assessment.Questions)
		if err != nil {
			return err
		}
		row := AssessmentRow{
			ID:             assessment.ID,
			TopicID:        assessment.TopicID,
			TotalQuestions: assessment.TotalQuestions,
			TimeLimit:      assessment.TimeLimit,
			CooldownPeriod: assessment.CooldownPeriod,
			Questions:      string(questions),
		}
		if err := store.CreateAssessment(&row); err != nil {
			return err
		}
	}

	for _, user := range users {
		row := UserRow{
			ID:        user.ID,
			Role:      user.Role,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Bio:       user.Bio,
			Phone:     user.Phone,
			Location:  user.Location,
			Skills:    user.Skills,
			Interests: user.Interests,
		}
		if err := store.CreateUser(&row); err != nil {
			return err
		}
	}
	return nil
}

func lessonToRow(lesson models.Lesson) (*LessonRow, error) {
	prerequisites, err := json.Marshal(lesson.Prerequisites)
	if err != nil {
		return nil, err
	}
	downloads, err := json.Marshal(lesson.Downloads)
	if err != nil {
		return nil, err
	}
	return &LessonRow{
		ID:            lesson.ID,
		TopicID:       lesson.TopicID,
		Title:         lesson.Title,
		Description:   lesson.Description,
		Content:       lesson.Content,
		Duration:      lesson.Duration,
		Difficulty:    lesson.Difficulty,
		VideoURL:      lesson.VideoURL,
		Prerequisites: string(prerequisites),
		Downloads:     string(downloads),
		SequenceOrder: lesson.Order,
		Status:        lesson.Status,
		CreatedAt:     lesson.CreatedAt,
		UpdatedAt:     lesson.UpdatedAt,
	}, nil
}
