package devserver

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lumenlearn/lumen-go/config"
)

// GormStore keeps devserver data in postgres so it survives restarts.
type GormStore struct {
	db *gorm.DB
}

func OpenGorm(cfg *config.Config) (*GormStore, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	err = db.AutoMigrate(
		&TopicRow{}, &LessonRow{}, &AssessmentRow{}, &AttemptRow{},
		&CompletionRow{}, &ViewRow{}, &UserRow{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	store := &GormStore{db: db}
	var topicCount int64
	db.Model(&TopicRow{}).Count(&topicCount)
	if topicCount == 0 {
		if err := seed(store); err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
	}
	return store, nil
}

func (s *GormStore) Topics() ([]TopicRow, error) {
	var rows []TopicRow
	return rows, s.db.Order("id").Find(&rows).Error
}

func (s *GormStore) Topic(id int) (*TopicRow, error) {
	var row TopicRow
	if err := s.db.First(&row, id).Error; err != nil {
		return nil, mapGormErr(err)
	}
	return &row, nil
}

func (s *GormStore) CreateTopic(row *TopicRow) error {
	return s.db.Create(row).Error
}

func (s *GormStore) UpdateTopic(id int, fields map[string]interface{}) (*TopicRow, error) {
	result := s.db.Model(&TopicRow{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.Topic(id)
}

func (s *GormStore) DeleteTopic(id int) error {
	result := s.db.Delete(&TopicRow{}, id)
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return result.Error
}

func (s *GormStore) LessonsByTopic(topicID int) ([]LessonRow, error) {
	var rows []LessonRow
	return rows, s.db.Where("topic_id = ?", topicID).Order("sequence_order").Find(&rows).Error
}

func (s *GormStore) Lesson(id int) (*LessonRow, error) {
	var row LessonRow
	if err := s.db.First(&row, id).Error; err != nil {
		return nil, mapGormErr(err)
	}
	return &row, nil
}

func (s *GormStore) CreateLesson(row *LessonRow) error {
	return s.db.Create(row).Error
}

func (s *GormStore) UpdateLesson(id int, fields map[string]interface{}) (*LessonRow, error) {
	result := s.db.Model(&LessonRow{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.Lesson(id)
}

func (s *GormStore) DeleteLesson(id int) error {
	result := s.db.Delete(&LessonRow{}, id)
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return result.Error
}

func (s *GormStore) Assessment(id int) (*AssessmentRow, error) {
	var row AssessmentRow
	if err := s.db.First(&row, id).Error; err != nil {
		return nil, mapGormErr(err)
	}
	return &row, nil
}

func (s *GormStore) AssessmentByTopic(topicID int) (*AssessmentRow, error) {
	var row AssessmentRow
	if err := s.db.Where("topic_id = ?", topicID).First(&row).Error; err != nil {
		return nil, mapGormErr(err)
	}
	return &row, nil
}

func (s *GormStore) CreateAssessment(row *AssessmentRow) error {
	return s.db.Create(row).Error
}

func (s *GormStore) CreateAttempt(row *AttemptRow) error {
	return s.db.Create(row).Error
}

func (s *GormStore) AttemptsByUser(userID int) ([]AttemptRow, error) {
	var rows []AttemptRow
	return rows, s.db.Where("user_id = ?", userID).Order("completed_at desc").Find(&rows).Error
}

func (s *GormStore) CompletionsByUser(userID int) ([]CompletionRow, error) {
	var rows []CompletionRow
	return rows, s.db.Where("user_id = ?", userID).Find(&rows).Error
}

func (s *GormStore) CreateCompletion(row *CompletionRow) error {
	return s.db.Create(row).Error
}

func (s *GormStore) DeleteCompletion(userID, lessonID int) error {
	result := s.db.Where("user_id = ? AND lesson_id = ?", userID, lessonID).Delete(&CompletionRow{})
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return result.Error
}

func (s *GormStore) CreateView(row *ViewRow) error {
	return s.db.Create(row).Error
}

func (s *GormStore) Users() ([]UserRow, error) {
	var rows []UserRow
	return rows, s.db.Order("id").Find(&rows).Error
}

func (s *GormStore) User(id int) (*UserRow, error) {
	var row UserRow
	if err := s.db.First(&row, id).Error; err != nil {
		return nil, mapGormErr(err)
	}
	return &row, nil
}

func (s *GormStore) CreateUser(row *UserRow) error {
	return s.db.Create(row).Error
}

func (s *GormStore) UserByEmail(email string) (*UserRow, error) {
	var row UserRow
	if err := s.db.Where("email = ?", email).First(&row).Error; err != nil {
		return nil, mapGormErr(err)
	}
	return &row, nil
}

func (s *GormStore) UpdateUser(id int, fields map[string]interface{}) (*UserRow, error) {
	result := s.db.Model(&UserRow{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.User(id)
}

func mapGormErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
