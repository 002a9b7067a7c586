package service

import (
	"time"
)

// QuizConfig задает параметры выдачи викторины
type QuizConfig struct {
	// QuestionsPerQuiz — сколько вопросов выдается в одной попытке
	QuestionsPerQuiz int
	// AnswersPerQuestion — сколько вариантов ответа показывается на вопрос
	AnswersPerQuestion int
	// TopicCacheTTL — время жизни записи темы в кеше
	TopicCacheTTL time.Duration
}

// DefaultQuizConfig возвращает конфигурацию по умолчанию
func DefaultQuizConfig() *QuizConfig {
	return &QuizConfig{
		QuestionsPerQuiz:   10,
		AnswersPerQuestion: 4,
		TopicCacheTTL:      10 * time.Minute,
	}
}
