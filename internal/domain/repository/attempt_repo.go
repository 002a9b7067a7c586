package repository

import (
	"github.com/yourusername/gradequiz-api/internal/domain/entity"
)

// AttemptRepository определяет методы для работы с попытками прохождения викторины
type AttemptRepository interface {
	Create(attempt *entity.Attempt) error
	GetByID(id uint) (*entity.Attempt, error)
	// GetByUserID возвращает попытки пользователя, отсортированные по test_date DESC
	GetByUserID(userID uint) ([]entity.Attempt, error)
	// SubmitGrade записывает сданные ответы и счет одним условным UPDATE:
	// строка обновляется только если попытка принадлежит userID и еще в статусе open.
	// Возвращает количество затронутых строк; 0 означает, что попытка уже оценена
	// (или не прошла проверку владельца) и запись не изменилась.
	SubmitGrade(attemptID, userID uint, selected entity.UintArray, score int) (int64, error)
}
