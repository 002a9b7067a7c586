package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/gradequiz-api/internal/domain/entity"
)

// AnswerRepo реализует repository.AnswerRepository
type AnswerRepo struct {
	db *gorm.DB
}

// NewAnswerRepo создает новый репозиторий вариантов ответов
func NewAnswerRepo(db *gorm.DB) *AnswerRepo {
	return &AnswerRepo{db: db}
}

// GetByQuestionID возвращает все варианты ответа на вопрос
func (r *AnswerRepo) GetByQuestionID(questionID uint) ([]entity.Answer, error) {
	var answers []entity.Answer
	err := r.db.Where("question_id = ?", questionID).Order("answer_id").Find(&answers).Error
	return answers, err
}

// GetByIDs возвращает варианты ответов по списку идентификаторов
func (r *AnswerRepo) GetByIDs(ids []uint) ([]entity.Answer, error) {
	if len(ids) == 0 {
		return []entity.Answer{}, nil
	}
	var answers []entity.Answer
	err := r.db.Where("answer_id IN ?", ids).Find(&answers).Error
	return answers, err
}
