// Package devserver is a local stub backend for dashboard development. It
// serves the same REST surface as the production API, snake_case wire
// fields included, so the client exercises its real normalization path.
package devserver

import (
	"errors"
	"time"
)

// ErrNotFound is the store-level absence signal; handlers map it to 404.
var ErrNotFound = errors.New("record not found")

// Row types are the devserver's storage shape. Nested structures are held
// as JSON text columns so the same structs work for gorm and the in-memory
// store.

type TopicRow struct {
	ID           int `gorm:"primaryKey"`
	Title        string
	Category     string
	Difficulty   string
	Status       string
	Description  string
	ImageURL     string
	StudentCount int
	LessonCount  int
	CreatedAt    time.Time
}

type LessonRow struct {
	ID            int `gorm:"primaryKey"`
	TopicID       int `gorm:"index"`
	Title         string
	Description   string
	Content       string
	Duration      string
	Difficulty    string
	VideoURL      string
	Prerequisites string // JSON array of lesson titles
	Downloads     string // JSON array of download objects
	SequenceOrder int
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type AssessmentRow struct {
	ID             int `gorm:"primaryKey"`
	TopicID        int `gorm:"uniqueIndex"` // at most one per topic
	TotalQuestions int
	TimeLimit      int
	CooldownPeriod int
	Questions      string // JSON array of question objects
}

type AttemptRow struct {
	ID             int `gorm:"primaryKey"`
	UserID         int `gorm:"index"`
	AssessmentID   int
	TopicID        int
	Score          int
	CorrectAnswers int
	TotalQuestions int
	TimeSpent      int
	CompletedAt    time.Time
	Answers        string // JSON array of answer indexes
}

type CompletionRow struct {
	ID          int `gorm:"primaryKey"`
	UserID      int `gorm:"index"`
	LessonID    int
	TopicID     int
	CompletedAt time.Time
	TimeSpent   int
}

type ViewRow struct {
	ID       int `gorm:"primaryKey"`
	UserID   int `gorm:"index"`
	LessonID int
	TopicID  int
	ViewedAt time.Time
	Duration int
}

type UserRow struct {
	ID                int `gorm:"primaryKey"`
	Role              string
	FirstName         string
	LastName          string
	Email             string `gorm:"uniqueIndex"`
	Bio               string
	Phone             string
	Location          string
	Skills            string
	Interests         string
	CompletedLessons  int
	CompletedTopics   int
	AssessmentsPassed int
}

// Store is what the handlers need; the gorm store backs it with postgres
// and the memory store backs it with seeded maps.
type Store interface {
	Topics() ([]TopicRow, error)
	Topic(id int) (*TopicRow, error)
	CreateTopic(row *TopicRow) error
	UpdateTopic(id int, fields map[string]interface{}) (*TopicRow, error)
	DeleteTopic(id int) error

	LessonsByTopic(topicID int) ([]LessonRow, error)
	Lesson(id int) (*LessonRow, error)
	CreateLesson(row *LessonRow) error
	UpdateLesson(id int, fields map[string]interface{}) (*LessonRow, error)
	DeleteLesson(id int) error

	Assessment(id int) (*AssessmentRow, error)
	AssessmentByTopic(topicID int) (*AssessmentRow, error)
	CreateAssessment(row *AssessmentRow) error
	CreateAttempt(row *AttemptRow) error
	AttemptsByUser(userID int) ([]AttemptRow, error)

	CompletionsByUser(userID int) ([]CompletionRow, error)
	CreateCompletion(row *CompletionRow) error
	DeleteCompletion(userID, lessonID int) error
	CreateView(row *ViewRow) error

	Users() ([]UserRow, error)
	User(id int) (*UserRow, error)
	CreateUser(row *UserRow) error
	UserByEmail(email string) (*UserRow, error)
	UpdateUser(id int, fields map[string]interface{}) (*UserRow, error)
}
