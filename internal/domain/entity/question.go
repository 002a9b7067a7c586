package entity

import (
	"time"
)

// Question представляет вопрос из банка вопросов
type Question struct {
	ID        uint      `gorm:"primaryKey;column:question_id" json:"question_id"`
	TopicID   uint      `gorm:"not null;index" json:"topic_id"`
	Text      string    `gorm:"size:500;not null;column:question_text" json:"question_text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}
