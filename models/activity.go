package models

import "time"

// LessonCompletion records that a user finished a lesson. Reversing a
// completion deletes the record.
type LessonCompletion struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId"`
	LessonID    int       `json:"lessonId"`
	TopicID     int       `json:"topicId"`
	CompletedAt time.Time `json:"completedAt"`
	TimeSpent   int       `json:"timeSpent,omitempty"` // minutes
}

// LessonView is append-only; one record per first render of a lesson per
// session.
type LessonView struct {
	ID       int       `json:"id"`
	UserID   int       `json:"userId"`
	LessonID int       `json:"lessonId"`
	TopicID  int       `json:"topicId"`
	ViewedAt time.Time `json:"viewedAt"`
	Duration int       `json:"duration,omitempty"` // minutes
}

// TopicProgress is the derived completion summary for one user and topic.
type TopicProgress struct {
	UserID     int `json:"userId"`
	TopicID    int `json:"topicId"`
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}
