package repository

import (
	"github.com/yourusername/gradequiz-api/internal/domain/entity"
)

// TopicRepository определяет методы для работы с темами (банк вопросов, только чтение)
type TopicRepository interface {
	GetByName(name string) (*entity.Topic, error)
	List() ([]entity.Topic, error)
}
