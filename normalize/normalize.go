// Package normalize maps heterogeneous wire records onto the canonical
// camelCase entity shapes. The live backend speaks snake_case, the
// synthetic provider speaks the canonical shape, and older API revisions
// mixed the two; everything past the gateway handles canonical entities
// only, so records that still carry wire-format fields after mapping are
// rejected here rather than passed through.
package normalize

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/lumenlearn/lumen-go/models"
)

// ErrForeignField marks a record that exposes a non-canonical field after
// alias mapping. Collection helpers drop such records instead of failing.
var ErrForeignField = errors.New("record carries a non-canonical field")

// Raw is one undecoded wire record.
type Raw = map[string]json.RawMessage

// fieldSpec describes one entity's canonical keys and the known wire
// alternates for them.
type fieldSpec struct {
	canonical map[string]bool
	aliases   map[string]string
}

func newFieldSpec(canonical []string, aliases map[string]string) fieldSpec {
	set := make(map[string]bool, len(canonical))
	for _, key := range canonical {
		set[key] = true
	}
	return fieldSpec{canonical: set, aliases: aliases}
}

// remap renames known alias keys to their canonical spelling. An alias is
// consumed only when the canonical key is absent; when both spellings are
// present the canonical one wins and the leftover alias fails the scan
// below. Any key that is neither canonical nor a consumable alias rejects
// the record. Canonical-only input passes through untouched, which is what
// makes normalization idempotent.
func remap(raw Raw, spec fieldSpec) (Raw, error) {
	mapped := make(Raw, len(raw))
	for key, value := range raw {
		mapped[key] = value
	}

	for alias, canonical := range spec.aliases {
		value, present := mapped[alias]
		if !present {
			continue
		}
		if _, hasCanonical := mapped[canonical]; hasCanonical {
			continue
		}
		mapped[canonical] = value
		delete(mapped, alias)
	}

	for key := range mapped {
		if !spec.canonical[key] {
			return nil, fmt.Errorf("%w: %q", ErrForeignField, key)
		}
	}
	return mapped, nil
}

func decode(mapped Raw, target interface{}) error {
	buf, err := json.Marshal(mapped)
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, target)
}

// asText coerces a field that must be text: a bare number becomes its
// decimal string, optionally with a unit suffix.
func asText(mapped Raw, key, unit string) {
	value, present := mapped[key]
	if !present {
		return
	}
	var n float64
	if err := json.Unmarshal(value, &n); err != nil {
		return // already a string or otherwise non-numeric
	}
	text := strconv.FormatFloat(n, 'f', -1, 64)
	if unit != "" {
		text += " " + unit
	}
	quoted, _ := json.Marshal(text)
	mapped[key] = quoted
}

var topicSpec = newFieldSpec(
	[]string{"id", "title", "category", "difficulty", "status", "description",
		"image", "studentCount", "lessonCount", "hasAssessment", "createdAt"},
	map[string]string{
		"student_count":  "studentCount",
		"lesson_count":   "lessonCount",
		"has_assessment": "hasAssessment",
		"created_at":     "createdAt",
		"image_url":      "image",
		"logo_url":       "image",
	},
)

func Topic(raw Raw) (*models.Topic, error) {
	mapped, err := remap(raw, topicSpec)
	if err != nil {
		return nil, err
	}
	var topic models.Topic
	if err := decode(mapped, &topic); err != nil {
		return nil, err
	}
	applyEnumDefaults(&topic.Difficulty, &topic.Status)
	return &topic, nil
}

var lessonSpec = newFieldSpec(
	[]string{"id", "topicId", "title", "description", "content", "duration",
		"difficulty", "videoUrl", "prerequisites", "downloads", "order",
		"status", "createdAt", "updatedAt"},
	map[string]string{
		"topic_id":         "topicId",
		"video_url":        "videoUrl",
		"sequence_order":   "order",
		"duration_minutes": "duration",
		"created_at":       "createdAt",
		"updated_at":       "updatedAt",
	},
)

func Lesson(raw Raw) (*models.Lesson, error) {
	mapped, err := remap(raw, lessonSpec)
	if err != nil {
		return nil, err
	}
	asText(mapped, "duration", "min")
	var lesson models.Lesson
	if err := decode(mapped, &lesson); err != nil {
		return nil, err
	}
	applyEnumDefaults(&lesson.Difficulty, &lesson.Status)
	return &lesson, nil
}

var completionSpec = newFieldSpec(
	[]string{"id", "userId", "lessonId", "topicId", "completedAt", "timeSpent"},
	map[string]string{
		"user_id":      "userId",
		"lesson_id":    "lessonId",
		"topic_id":     "topicId",
		"completed_at": "completedAt",
		"time_spent":   "timeSpent",
	},
)

func Completion(raw Raw) (*models.LessonCompletion, error) {
	mapped, err := remap(raw, completionSpec)
	if err != nil {
		return nil, err
	}
	var completion models.LessonCompletion
	if err := decode(mapped, &completion); err != nil {
		return nil, err
	}
	return &completion, nil
}

var viewSpec = newFieldSpec(
	[]string{"id", "userId", "lessonId", "topicId", "viewedAt", "duration"},
	map[string]string{
		"user_id":   "userId",
		"lesson_id": "lessonId",
		"topic_id":  "topicId",
		"viewed_at": "viewedAt",
	},
)

func View(raw Raw) (*models.LessonView, error) {
	mapped, err := remap(raw, viewSpec)
	if err != nil {
		return nil, err
	}
	var view models.LessonView
	if err := decode(mapped, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

var assessmentSpec = newFieldSpec(
	[]string{"id", "topicId", "totalQuestions", "timeLimit", "cooldownPeriod", "questions"},
	map[string]string{
		"topic_id":        "topicId",
		"total_questions": "totalQuestions",
		"time_limit":      "timeLimit",
		"cooldown_period": "cooldownPeriod",
	},
)

var questionSpec = newFieldSpec(
	[]string{"id", "type", "prompt", "options", "correctAnswer"},
	map[string]string{
		"correct_answer": "correctAnswer",
		"question":       "prompt",
	},
)

func Assessment(raw Raw) (*models.Assessment, error) {
	mapped, err := remap(raw, assessmentSpec)
	if err != nil {
		return nil, err
	}

	// Questions are remapped individually; one foreign-shaped question
	// rejects the whole assessment rather than silently truncating it.
	if rawQuestions, present := mapped["questions"]; present {
		var items []Raw
		if err := json.Unmarshal(rawQuestions, &items); err != nil {
			return nil, err
		}
		for i, item := range items {
			remapped, err := remap(item, questionSpec)
			if err != nil {
				return nil, err
			}
			items[i] = remapped
		}
		buf, err := json.Marshal(items)
		if err != nil {
			return nil, err
		}
		mapped["questions"] = buf
	}

	var assessment models.Assessment
	if err := decode(mapped, &assessment); err != nil {
		return nil, err
	}
	return &assessment, nil
}

var attemptSpec = newFieldSpec(
	[]string{"id", "userId", "assessmentId", "topicId", "score", "correctAnswers",
		"totalQuestions", "timeSpent", "completedAt", "answers"},
	map[string]string{
		"user_id":         "userId",
		"assessment_id":   "assessmentId",
		"topic_id":        "topicId",
		"correct_answers": "correctAnswers",
		"total_questions": "totalQuestions",
		"time_spent":      "timeSpent",
		"completed_at":    "completedAt",
	},
)

func Attempt(raw Raw) (*models.AssessmentAttempt, error) {
	mapped, err := remap(raw, attemptSpec)
	if err != nil {
		return nil, err
	}
	var attempt models.AssessmentAttempt
	if err := decode(mapped, &attempt); err != nil {
		return nil, err
	}
	return &attempt, nil
}

var userSpec = newFieldSpec(
	[]string{"id", "role", "firstName", "lastName", "email", "bio", "phone",
		"location", "skills", "interests", "completedLessons", "completedTopics",
		"assessmentsPassed"},
	map[string]string{
		"first_name":         "firstName",
		"last_name":          "lastName",
		"completed_lessons":  "completedLessons",
		"completed_topics":   "completedTopics",
		"assessments_passed": "assessmentsPassed",
	},
)

func User(raw Raw) (*models.User, error) {
	mapped, err := remap(raw, userSpec)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := decode(mapped, &user); err != nil {
		return nil, err
	}
	if user.Role == "" {
		user.Role = models.RoleStudent
	}
	return &user, nil
}

func applyEnumDefaults(difficulty, status *string) {
	if *difficulty == "" {
		*difficulty = models.DifficultyBeginner
	}
	if *status == "" {
		*status = models.StatusDraft
	}
}

// Collection helpers drop rejected records, so a list can legitimately come
// back shorter than the server's record count.

func Topics(raws []Raw) []models.Topic {
	topics := make([]models.Topic, 0, len(raws))
	for _, raw := range raws {
		if topic, err := Topic(raw); err == nil {
			topics = append(topics, *topic)
		}
	}
	return topics
}

func Lessons(raws []Raw) []models.Lesson {
	lessons := make([]models.Lesson, 0, len(raws))
	for _, raw := range raws {
		if lesson, err := Lesson(raw); err == nil {
			lessons = append(lessons, *lesson)
		}
	}
	return lessons
}

func Completions(raws []Raw) []models.LessonCompletion {
	completions := make([]models.LessonCompletion, 0, len(raws))
	for _, raw := range raws {
		if completion, err := Completion(raw); err == nil {
			completions = append(completions, *completion)
		}
	}
	return completions
}

func Attempts(raws []Raw) []models.AssessmentAttempt {
	attempts := make([]models.AssessmentAttempt, 0, len(raws))
	for _, raw := range raws {
		if attempt, err := Attempt(raw); err == nil {
			attempts = append(attempts, *attempt)
		}
	}
	return attempts
}

func Users(raws []Raw) []models.User {
	users := make([]models.User, 0, len(raws))
	for _, raw := range raws {
		if user, err := User(raw); err == nil {
			users = append(users, *user)
		}
	}
	return users
}
