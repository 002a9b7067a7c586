package service

import (
	"github.com/yourusername/gradequiz-api/internal/domain/entity"
	"github.com/yourusername/gradequiz-api/internal/domain/repository"
)

// ResultService предоставляет доступ к истории попыток
type ResultService struct {
	attemptRepo repository.AttemptRepository
}

// NewResultService создает новый сервис результатов
func NewResultService(attemptRepo repository.AttemptRepository) *ResultService {
	return &ResultService{attemptRepo: attemptRepo}
}

// GetUserAttempts возвращает попытки пользователя, самые свежие первыми.
// Отсутствие попыток — это не ошибка, а пустой список.
func (s *ResultService) GetUserAttempts(userID uint) ([]entity.Attempt, error) {
	attempts, err := s.attemptRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if attempts == nil {
		attempts = []entity.Attempt{}
	}
	return attempts, nil
}
