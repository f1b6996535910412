package synthetic

import (
	"time"

	"github.com/lumenlearn/lumen-go/models"
)

// The demo dataset is fixed: repeated reads must return identical data so
// the dashboard behaves deterministically without a backend. The devserver
// seeds its store from the same tables.

var seedTime = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

// Dataset exposes the demo tables so the devserver can seed its store with
// the same records the fallback serves.
func Dataset() ([]models.Topic, []models.Lesson, []models.Assessment, []models.User) {
	return demoTopics(), demoLessons(), demoAssessments(), demoUsers()
}

func demoTopics() []models.Topic {
	return []models.Topic{
		{
			ID:            1,
			Title:         "Web Development Basics",
			Category:      "Programming",
			Difficulty:    models.DifficultyBeginner,
			Status:        models.StatusPublished,
			Description:   "HTML, CSS and the anatomy of a web page.",
			Image:         "/images/topics/web-dev.png",
			StudentCount:  128,
			LessonCount:   3,
			HasAssessment: true,
			CreatedAt:     seedTime,
		},
		{
			ID:            2,
			Title:         "Data Analysis Fundamentals",
			Category:      "Data",
			Difficulty:    models.DifficultyIntermediate,
			Status:        models.StatusPublished,
			Description:   "From raw tables to defensible conclusions.",
			Image:         "/images/topics/data-analysis.png",
			StudentCount:  74,
			LessonCount:   2,
			HasAssessment: false,
			CreatedAt:     seedTime.Add(24 * time.Hour),
		},
		{
			ID:           3,
			Title:        "Digital Marketing",
			Category:     "Business",
			Difficulty:   models.DifficultyBeginner,
			Status:       models.StatusDraft,
			Description:  "Channels, funnels and honest metrics.",
			Image:        "/images/topics/marketing.png",
			StudentCount: 0,
			LessonCount:  0,
			CreatedAt:    seedTime.Add(48 * time.Hour),
		},
	}
}

func demoLessons() []models.Lesson {
	return []models.Lesson{
		{
			ID:          1,
			TopicID:     1,
			Title:       "Structure with HTML",
			Description: "Elements, attributes and the document tree.",
			Content:     "<p>Every page starts with structure.</p>",
			Duration:    "15 min",
			Difficulty:  models.DifficultyBeginner,
			VideoURL:    "https://videos.example.com/html-structure",
			Downloads: []models.Download{
				{ID: "dl-html-cheatsheet", Name: "HTML cheat sheet", Size: "120 KB", URL: "/downloads/html-cheatsheet.pdf"},
			},
			Order:     1,
			Status:    models.StatusPublished,
			CreatedAt: seedTime,
			UpdatedAt: seedTime,
		},
		{
			ID:            2,
			TopicID:       1,
			Title:         "Styling with CSS",
			Description:   "Selectors, the cascade and layout.",
			Content:       "<p>Style follows structure.</p>",
			Duration:      "20 min",
			Difficulty:    models.DifficultyBeginner,
			VideoURL:      "https://videos.example.com/css-styling",
			Prerequisites: []string{"Structure with HTML"},
			Order:         2,
			Status:        models.StatusPublished,
			CreatedAt:     seedTime,
			UpdatedAt:     seedTime,
		},
		{
			ID:            3,
			TopicID:       1,
			Title:         "Publishing a Page",
			Description:   "Hosting, domains and going live.",
			Content:       "<p>Ship it.</p>",
			Duration:      "10 min",
			Difficulty:    models.DifficultyBeginner,
			Prerequisites: []string{"Structure with HTML", "Styling with CSS"},
			Order:         3,
			Status:        models.StatusPublished,
			CreatedAt:     seedTime,
			UpdatedAt:     seedTime,
		},
		{
			ID:          4,
			TopicID:     2,
			Title:       "Tables and Types",
			Description: "Rows, columns and what they mean.",
			Content:     "<p>Data has shape.</p>",
			Duration:    "25 min",
			Difficulty:  models.DifficultyIntermediate,
			Order:       1,
			Status:      models.StatusPublished,
			CreatedAt:   seedTime.Add(24 * time.Hour),
			UpdatedAt:   seedTime.Add(24 * time.Hour),
		},
		{
			ID:          5,
			TopicID:     2,
			Title:       "Aggregation and Averages",
			Description: "Summaries that do not lie.",
			Content:     "<p>Means, medians, modes.</p>",
			Duration:    "30 min",
			Difficulty:  models.DifficultyIntermediate,
			Order:       2,
			Status:      models.StatusPublished,
			CreatedAt:   seedTime.Add(24 * time.Hour),
			UpdatedAt:   seedTime.Add(24 * time.Hour),
		},
	}
}

func demoAssessments() []models.Assessment {
	return []models.Assessment{
		{
			ID:             1,
			TopicID:        1,
			TotalQuestions: 2,
			TimeLimit:      15,
			CooldownPeriod: 24,
			Questions: []models.Question{
				{
					ID:            1,
					Type:          models.QuestionTrueFalse,
					Prompt:        "HTML describes the structure of a page.",
					CorrectAnswer: 0,
				},
				{
					ID:            2,
					Type:          models.QuestionMultipleChoice,
					Prompt:        "Which language controls presentation?",
					Options:       []string{"CSS", "HTML", "FTP", "SMTP"},
					CorrectAnswer: 0,
				},
			},
		},
	}
}

func demoUsers() []models.User {
	return []models.User{
		{
			ID:        1,
			Role:      models.RoleAdmin,
			FirstName: "Alice",
			LastName:  "Marsh",
			Email:     "alice.marsh@lumenlearn.dev",
			Bio:       "Curriculum lead.",
			Location:  "Lisbon",
		},
		{
			ID:        2,
			Role:      models.RoleStudent,
			FirstName: "Sam",
			LastName:  "Ortiz",
			Email:     "sam.ortiz@lumenlearn.dev",
			Skills:    "spreadsheets, writing",
			Interests: "web development",
		},
	}
}
