package entity

// Answer представляет вариант ответа на вопрос.
// У каждого вопроса ровно один вариант с IsCorrect = true; инвариант
// поддерживается данными, а не схемой.
type Answer struct {
	ID         uint   `gorm:"primaryKey;column:answer_id" json:"answer_id"`
	QuestionID uint   `gorm:"not null;index" json:"question_id"`
	Text       string `gorm:"size:500;not null;column:answer_text" json:"answer_text"`
	IsCorrect  bool   `gorm:"not null;default:false" json:"-"` // Скрыто от клиента
}

// TableName определяет имя таблицы для GORM
func (Answer) TableName() string {
	return "answers"
}
