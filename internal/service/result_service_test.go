package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/gradequiz-api/internal/domain/entity"
)

func TestResultService_GetUserAttempts(t *testing.T) {
	// Arrange: репозиторий возвращает попытки свежими первыми
	attemptRepo := new(MockAttemptRepository)
	newer := entity.Attempt{ID: 2, UserID: 9, Score: 8, Status: entity.AttemptStatusGraded, TestDate: time.Now()}
	older := entity.Attempt{ID: 1, UserID: 9, Score: 5, Status: entity.AttemptStatusGraded, TestDate: time.Now().Add(-time.Hour)}
	attemptRepo.On("GetByUserID", uint(9)).Return([]entity.Attempt{newer, older}, nil)

	svc := NewResultService(attemptRepo)

	// Act
	attempts, err := svc.GetUserAttempts(9)

	// Assert: порядок репозитория сохраняется
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	assert.Equal(t, uint(2), attempts[0].ID)
	assert.Equal(t, uint(1), attempts[1].ID)
}

func TestResultService_GetUserAttempts_Empty(t *testing.T) {
	// Arrange: у пользователя нет попыток
	attemptRepo := new(MockAttemptRepository)
	attemptRepo.On("GetByUserID", uint(9)).Return(nil, nil)

	svc := NewResultService(attemptRepo)

	// Act
	attempts, err := svc.GetUserAttempts(9)

	// Assert: пустой список, а не nil и не ошибка
	require.NoError(t, err)
	assert.NotNil(t, attempts)
	assert.Empty(t, attempts)
}

func TestResultService_GetUserAttempts_RepositoryError(t *testing.T) {
	// Arrange
	attemptRepo := new(MockAttemptRepository)
	attemptRepo.On("GetByUserID", uint(9)).Return(nil, errors.New("connection reset"))

	svc := NewResultService(attemptRepo)

	// Act
	attempts, err := svc.GetUserAttempts(9)

	// Assert
	require.Error(t, err)
	assert.Nil(t, attempts)
}
