package repository

import (
	"github.com/yourusername/gradequiz-api/internal/domain/entity"
)

// AnswerRepository определяет методы для работы с вариантами ответов (только чтение)
type AnswerRepository interface {
	GetByQuestionID(questionID uint) ([]entity.Answer, error)
	// GetByIDs возвращает варианты ответов по списку идентификаторов.
	// Используется при оценке, чтобы сверять сданные ответы с тем набором,
	// который был зафиксирован при выдаче викторины.
	GetByIDs(ids []uint) ([]entity.Answer, error)
}
