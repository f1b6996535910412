package models

import "time"

// Question types.
const (
	QuestionTrueFalse      = "true-false"
	QuestionMultipleChoice = "multiple-choice"
)

type Assessment struct {
	ID             int        `json:"id"`
	TopicID        int        `json:"topicId"` // at most one assessment per topic
	TotalQuestions int        `json:"totalQuestions"`
	TimeLimit      int        `json:"timeLimit"`      // minutes
	CooldownPeriod int        `json:"cooldownPeriod"` // hours between attempts
	Questions      []Question `json:"questions"`
}

type Question struct {
	ID            int      `json:"id"`
	Type          string   `json:"type"` // true-false, multiple-choice
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// AssessmentAttempt is immutable once created; a retake is a new record.
type AssessmentAttempt struct {
	ID             int       `json:"id"`
	UserID         int       `json:"userId"`
	AssessmentID   int       `json:"assessmentId"`
	TopicID        int       `json:"topicId"`
	Score          int       `json:"score"` // 0-100
	CorrectAnswers int       `json:"correctAnswers"`
	TotalQuestions int       `json:"totalQuestions"`
	TimeSpent      int       `json:"timeSpent"` // minutes
	CompletedAt    time.Time `json:"completedAt"`
	Answers        []int     `json:"answers"` // aligned with questions
}
