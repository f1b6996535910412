// Package synthetic is the deterministic fallback dataset served when no
// backend is reachable or an individual read fails. Reads return the same
// data on every call; writes echo a plausible entity without mutating
// anything, so nothing written here survives a reload.
package synthetic

import (
	"context"
	"time"

	"github.com/lumenlearn/lumen-go/models"
)

const defaultLatency = 120 * time.Millisecond

type Provider struct {
	latency time.Duration
	nextID  int
}

func NewProvider() *Provider {
	return &Provider{latency: defaultLatency, nextID: 1000}
}

// WithLatency overrides the simulated delay, for tests.
func (p *Provider) WithLatency(d time.Duration) *Provider {
	p.latency = d
	return p
}

// delay simulates network latency so callers cannot distinguish synthetic
// mode by synchronous timing.
func (p *Provider) delay(ctx context.Context) {
	if p.latency <= 0 {
		return
	}
	timer := time.NewTimer(p.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (p *Provider) Topics(ctx context.Context) []models.Topic {
	p.delay(ctx)
	return demoTopics()
}

func (p *Provider) Topic(ctx context.Context, id int) *models.Topic {
	p.delay(ctx)
	for _, topic := range demoTopics() {
		if topic.ID == id {
			return &topic
		}
	}
	return nil
}

func (p *Provider) LessonsByTopic(ctx context.Context, topicID int) []models.Lesson {
	p.delay(ctx)
	var lessons []models.Lesson
	for _, lesson := range demoLessons() {
		if lesson.TopicID == topicID {
			lessons = append(lessons, lesson)
		}
	}
	return lessons
}

func (p *Provider) Lesson(ctx context.Context, id int) *models.Lesson {
	p.delay(ctx)
	for _, lesson := range demoLessons() {
		if lesson.ID == id {
			return &lesson
		}
	}
	return nil
}

// AssessmentByTopic returns nil for topics without an assessment; that is
// absence, not an error.
func (p *Provider) AssessmentByTopic(ctx context.Context, topicID int) *models.Assessment {
	p.delay(ctx)
	for _, assessment := range demoAssessments() {
		if assessment.TopicID == topicID {
			return &assessment
		}
	}
	return nil
}

func (p *Provider) Users(ctx context.Context) []models.User {
	p.delay(ctx)
	return demoUsers()
}

func (p *Provider) User(ctx context.Context, id int) *models.User {
	p.delay(ctx)
	for _, user := range demoUsers() {
		if user.ID == id {
			return &user
		}
	}
	return nil
}

// Completions is empty by design: activity logs are user-generated and the
// demo dataset carries reference data only.
func (p *Provider) Completions(ctx context.Context, userID int) []models.LessonCompletion {
	p.delay(ctx)
	return []models.LessonCompletion{}
}

func (p *Provider) Attempts(ctx context.Context, userID int) []models.AssessmentAttempt {
	p.delay(ctx)
	return []models.AssessmentAttempt{}
}

// Echo writes: each returns a plausible entity with a synthetic id but
// performs no durable mutation.

func (p *Provider) CreateTopic(ctx context.Context, topic models.Topic) models.Topic {
	p.delay(ctx)
	topic.ID = p.issueID()
	if topic.Difficulty == "" {
		topic.Difficulty = models.DifficultyBeginner
	}
	if topic.Status == "" {
		topic.Status = models.StatusDraft
	}
	topic.CreatedAt = time.Now().UTC()
	return topic
}

func (p *Provider) CreateLesson(ctx context.Context, lesson models.Lesson) models.Lesson {
	p.delay(ctx)
	lesson.ID = p.issueID()
	now := time.Now().UTC()
	lesson.CreatedAt = now
	lesson.UpdatedAt = now
	if lesson.Status == "" {
		lesson.Status = models.StatusDraft
	}
	return lesson
}

func (p *Provider) issueID() int {
	p.nextID++
	return p.nextID
}
