package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/gradequiz-api/internal/domain/entity"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// GetRandomByTopic возвращает до limit случайных вопросов темы.
// ORDER BY RANDOM() здесь приемлем: банк вопросов одной темы измеряется
// десятками строк, а не миллионами.
func (r *QuestionRepo) GetRandomByTopic(topicID uint, limit int) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.
		Where("topic_id = ?", topicID).
		Order("RANDOM()").
		Limit(limit).
		Find(&questions).Error
	return questions, err
}
