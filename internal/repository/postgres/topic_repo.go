package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/gradequiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/gradequiz-api/internal/pkg/errors"
)

// TopicRepo реализует repository.TopicRepository
type TopicRepo struct {
	db *gorm.DB
}

// NewTopicRepo создает новый репозиторий тем
func NewTopicRepo(db *gorm.DB) *TopicRepo {
	return &TopicRepo{db: db}
}

// GetByName возвращает тему по имени. Регистр не учитывается: "GRADE 5"
// и "Grade 5" находят одну и ту же тему, как и кеш, где ключ приводится
// к нижнему регистру.
func (r *TopicRepo) GetByName(name string) (*entity.Topic, error) {
	var topic entity.Topic
	err := r.db.Where("LOWER(topic_name) = LOWER(?)", name).First(&topic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &topic, nil
}

// List возвращает все темы, отсортированные по имени
func (r *TopicRepo) List() ([]entity.Topic, error) {
	var topics []entity.Topic
	err := r.db.Order("topic_name").Find(&topics).Error
	return topics, err
}
