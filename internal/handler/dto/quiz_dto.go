package dto

import (
	"time"

	"github.com/yourusername/gradequiz-api/internal/domain/entity"
	"github.com/yourusername/gradequiz-api/internal/service"
)

// AnswerOption представляет вариант ответа в формате для клиента.
// Признак правильности клиенту не передается.
type AnswerOption struct {
	AnswerID   uint   `json:"answer_id"`
	AnswerText string `json:"answer_text"`
}

// IssuedQuestionResponse представляет выданный вопрос с вариантами ответа
type IssuedQuestionResponse struct {
	QuestionID   uint           `json:"question_id"`
	QuestionText string         `json:"question_text"`
	Answers      []AnswerOption `json:"answers"`
}

// StartQuizResponse представляет ответ на выдачу викторины
type StartQuizResponse struct {
	AttemptID uint                     `json:"attempt_id"`
	Questions []IssuedQuestionResponse `json:"questions"`
}

// AttemptResponse представляет попытку в формате для клиента
type AttemptResponse struct {
	AttemptID       uint       `json:"attempt_id"`
	UserID          uint       `json:"user_id"`
	QuestionList    []uint     `json:"question_list"`
	AnswerOrder     [][]uint   `json:"answer_order"`
	SelectedAnswers []uint     `json:"selected_answers"`
	Score           int        `json:"score"`
	Status          string     `json:"status"`
	TestDate        time.Time  `json:"test_date"`
	SubmittedAt     *time.Time `json:"submitted_at,omitempty"`
}

// TopicResponse представляет тему в формате для клиента
type TopicResponse struct {
	TopicID   uint   `json:"topic_id"`
	TopicName string `json:"topic_name"`
}

// NewStartQuizResponse создает DTO для выданной викторины
func NewStartQuizResponse(attempt *entity.Attempt, issued []service.IssuedQuestion) *StartQuizResponse {
	questions := make([]IssuedQuestionResponse, 0, len(issued))
	for _, iq := range issued {
		options := make([]AnswerOption, 0, len(iq.Answers))
		for _, a := range iq.Answers {
			options = append(options, AnswerOption{
				AnswerID:   a.ID,
				AnswerText: a.Text,
			})
		}
		questions = append(questions, IssuedQuestionResponse{
			QuestionID:   iq.Question.ID,
			QuestionText: iq.Question.Text,
			Answers:      options,
		})
	}
	return &StartQuizResponse{
		AttemptID: attempt.ID,
		Questions: questions,
	}
}

// NewAttemptResponse создает DTO для попытки
func NewAttemptResponse(attempt *entity.Attempt) *AttemptResponse {
	if attempt == nil {
		return nil
	}
	return &AttemptResponse{
		AttemptID:       attempt.ID,
		UserID:          attempt.UserID,
		QuestionList:    attempt.QuestionList,
		AnswerOrder:     attempt.AnswerOrder,
		SelectedAnswers: attempt.SelectedAnswers,
		Score:           attempt.Score,
		Status:          attempt.Status,
		TestDate:        attempt.TestDate,
		SubmittedAt:     attempt.SubmittedAt,
	}
}

// NewListAttemptResponse создает список DTO для истории попыток
func NewListAttemptResponse(attempts []entity.Attempt) []*AttemptResponse {
	responses := make([]*AttemptResponse, 0, len(attempts))
	for i := range attempts {
		responses = append(responses, NewAttemptResponse(&attempts[i]))
	}
	return responses
}

// NewListTopicResponse создает список DTO для тем
func NewListTopicResponse(topics []entity.Topic) []TopicResponse {
	responses := make([]TopicResponse, 0, len(topics))
	for _, t := range topics {
		responses = append(responses, TopicResponse{
			TopicID:   t.ID,
			TopicName: t.Name,
		})
	}
	return responses
}
