package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/yourusername/gradequiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/gradequiz-api/internal/pkg/errors"
)

// AttemptRepo реализует repository.AttemptRepository
type AttemptRepo struct {
	db *gorm.DB
}

// NewAttemptRepo создает новый репозиторий попыток
func NewAttemptRepo(db *gorm.DB) *AttemptRepo {
	return &AttemptRepo{db: db}
}

// Create создает новую попытку
func (r *AttemptRepo) Create(attempt *entity.Attempt) error {
	return r.db.Create(attempt).Error
}

// GetByID возвращает попытку по ID
func (r *AttemptRepo) GetByID(id uint) (*entity.Attempt, error) {
	var attempt entity.Attempt
	err := r.db.First(&attempt, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &attempt, nil
}

// GetByUserID возвращает попытки пользователя, самые свежие первыми
func (r *AttemptRepo) GetByUserID(userID uint) ([]entity.Attempt, error) {
	var attempts []entity.Attempt
	err := r.db.
		Where("user_id = ?", userID).
		Order("test_date DESC").
		Find(&attempts).Error
	return attempts, err
}

// SubmitGrade записывает сданные ответы и счет условным UPDATE.
// Условие status = 'open' гарантирует, что из двух конкурентных сдач одной
// попытки ровно одна запишет результат, вторая получит 0 затронутых строк.
func (r *AttemptRepo) SubmitGrade(attemptID, userID uint, selected entity.UintArray, score int) (int64, error) {
	result := r.db.Model(&entity.Attempt{}).
		Where("attempt_id = ? AND user_id = ? AND status = ?", attemptID, userID, entity.AttemptStatusOpen).
		Updates(map[string]interface{}{
			"selected_answers": selected,
			"score":            score,
			"status":           entity.AttemptStatusGraded,
			"submitted_at":     time.Now(),
		})
	return result.RowsAffected, result.Error
}
