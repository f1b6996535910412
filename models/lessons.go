package models

import "time"

type Lesson struct {
	ID            int        `json:"id"`
	TopicID       int        `json:"topicId"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Content       string     `json:"content"`
	Duration      string     `json:"duration"` // free-form, e.g. "15 min"
	Difficulty    string     `json:"difficulty"`
	VideoURL      string     `json:"videoUrl"`
	Prerequisites []string   `json:"prerequisites"` // lesson titles, not ids
	Downloads     []Download `json:"downloads"`
	Order         int        `json:"order"` // position within topic
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type Download struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Size string `json:"size"`
	URL  string `json:"url"`
}
