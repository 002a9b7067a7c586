package repository

import (
	"github.com/yourusername/gradequiz-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами (только чтение)
type QuestionRepository interface {
	// GetRandomByTopic возвращает до limit случайных вопросов темы
	// (равномерная выборка без повторов)
	GetRandomByTopic(topicID uint, limit int) ([]entity.Question, error)
}
