package devserver

import (
	"sort"
	"sync"
	"time"
)

// MemStore is the fallback store when no postgres is configured. Everything
// lives in process memory and disappears on restart, which is fine for a
// development fixture.
type MemStore struct {
	mu          sync.Mutex
	topics      map[int]TopicRow
	lessons     map[int]LessonRow
	assessments map[int]AssessmentRow
	attempts    map[int]AttemptRow
	completions map[int]CompletionRow
	views       map[int]ViewRow
	users       map[int]UserRow
	nextID      int
}

func NewMemStore() (*MemStore, error) {
	store := &MemStore{
		topics:      make(map[int]TopicRow),
		lessons:     make(map[int]LessonRow),
		assessments: make(map[int]AssessmentRow),
		attempts:    make(map[int]AttemptRow),
		completions: make(map[int]CompletionRow),
		views:       make(map[int]ViewRow),
		users:       make(map[int]UserRow),
		nextID:      100,
	}
	if err := seed(store); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *MemStore) issueID() int {
	s.nextID++
	return s.nextID
}

func (s *MemStore) Topics() ([]TopicRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]TopicRow, 0, len(s.topics))
	for _, row := range s.topics {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows, nil
}

func (s *MemStore) Topic(id int) (*TopicRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.topics[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &row, nil
}

func (s *MemStore) CreateTopic(row *TopicRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if row.ID == 0 {
		row.ID = s.issueID()
	}
	s.topics[row.ID] = *row
	return nil
}

func (s *MemStore) UpdateTopic(id int, fields map[string]interface{}) (*TopicRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.topics[id]
	if !ok {
		return nil, ErrNotFound
	}
	for key, value := range fields {
		switch key {
		case "title":
			row.Title = asString(value)
		case "category":
			row.Category = asString(value)
		case "difficulty":
			row.Difficulty = asString(value)
		case "status":
			row.Status = asString(value)
		case "description":
			row.Description = asString(value)
		case "image_url":
			row.ImageURL = asString(value)
		case "student_count":
			row.StudentCount = asInt(value)
		case "lesson_count":
			row.LessonCount = asInt(value)
		}
	}
	s.topics[id] = row
	return &row, nil
}

func (s *MemStore) DeleteTopic(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.topics[id]; !ok {
		return ErrNotFound
	}
	delete(s.topics, id)
	return nil
}

func (s *MemStore) LessonsByTopic(topicID int) ([]LessonRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rows []LessonRow
	for _, row := range s.lessons {
		if row.TopicID == topicID {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].SequenceOrder < rows[j].SequenceOrder })
	return rows, nil
}

func (s *MemStore) Lesson(id int) (*LessonRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.lessons[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &row, nil
}

func (s *MemStore) CreateLesson(row *LessonRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if row.ID == 0 {
		row.ID = s.issueID()
	}
	s.lessons[row.ID] = *row
	return nil
}

func (s *MemStore) UpdateLesson(id int, fields map[string]interface{}) (*LessonRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.lessons[id]
	if !ok {
		return nil, ErrNotFound
	}
	for key, value := range fields {
		switch key {
		case "title":
			row.Title = asString(value)
		case "description":
			row.Description = asString(value)
		case "content":
			row.Content = asString(value)
		case "duration":
			row.Duration = asString(value)
		case "difficulty":
			row.Difficulty = asString(value)
		case "video_url":
			row.VideoURL = asString(value)
		case "prerequisites":
			row.Prerequisites = asString(value)
		case "downloads":
			row.Downloads = asString(value)
		case "sequence_order":
			row.SequenceOrder = asInt(value)
		case "status":
			row.Status = asString(value)
		case "updated_at":
			if t, ok := value.(time.Time); ok {
				row.UpdatedAt = t
			}
		}
	}
	s.lessons[id] = row
	return &row, nil
}

func (s *MemStore) DeleteLesson(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.lessons[id]; !ok {
		return ErrNotFound
	}
	delete(s.lessons, id)
	return nil
}

func (s *MemStore) Assessment(id int) (*AssessmentRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.assessments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &row, nil
}

func (s *MemStore) AssessmentByTopic(topicID int) (*AssessmentRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.assessments {
		if row.TopicID == topicID {
			return &row, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) CreateAssessment(row *AssessmentRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if row.ID == 0 {
		row.ID = s.issueID()
	}
	s.assessments[row.ID] = *row
	return nil
}

func (s *MemStore) CreateAttempt(row *AttemptRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if row.ID == 0 {
		row.ID = s.issueID()
	}
	s.attempts[row.ID] = *row
	return nil
}

func (s *MemStore) AttemptsByUser(userID int) ([]AttemptRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rows []AttemptRow
	for _, row := range s.attempts {
		if row.UserID == userID {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CompletedAt.After(rows[j].CompletedAt) })
	return rows, nil
}

func (s *MemStore) CompletionsByUser(userID int) ([]CompletionRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rows []CompletionRow
	for _, row := range s.completions {
		if row.UserID == userID {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows, nil
}

func (s *MemStore) CreateCompletion(row *CompletionRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if row.ID == 0 {
		row.ID = s.issueID()
	}
	s.completions[row.ID] = *row
	return nil
}

func (s *MemStore) DeleteCompletion(userID, lessonID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, row := range s.completions {
		if row.UserID == userID && row.LessonID == lessonID {
			delete(s.completions, id)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemStore) CreateView(row *ViewRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if row.ID == 0 {
		row.ID = s.issueID()
	}
	s.views[row.ID] = *row
	return nil
}

func (s *MemStore) Users() ([]UserRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]UserRow, 0, len(s.users))
	for _, row := range s.users {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows, nil
}

func (s *MemStore) User(id int) (*UserRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &row, nil
}

func (s *MemStore) CreateUser(row *UserRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if row.ID == 0 {
		row.ID = s.issueID()
	}
	s.users[row.ID] = *row
	return nil
}

func (s *MemStore) UserByEmail(email string) (*UserRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.users {
		if row.Email == email {
			return &row, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) UpdateUser(id int, fields map[string]interface{}) (*UserRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	for key, value := range fields {
		switch key {
		case "first_name":
			row.FirstName = asString(value)
		case "last_name":
			row.LastName = asString(value)
		case "email":
			row.Email = asString(value)
		case "bio":
			row.Bio = asString(value)
		case "phone":
			row.Phone = asString(value)
		case "location":
			row.Location = asString(value)
		case "skills":
			row.Skills = asString(value)
		case "interests":
			row.Interests = asString(value)
		case "completed_lessons":
			row.CompletedLessons = asInt(value)
		case "completed_topics":
			row.CompletedTopics = asInt(value)
		case "assessments_passed":
			row.AssessmentsPassed = asInt(value)
		}
	}
	s.users[id] = row
	return &row, nil
}

func asString(value interface{}) string {
	s, _ := value.(string)
	return s
}

func asInt(value interface{}) int {
	switch n := value.(type) {
	case int:
		return n
	case float64: // JSON numbers decode as float64
		return int(n)
	}
	return 0
}
