package service

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/yourusername/gradequiz-api/internal/domain/entity"
	"github.com/yourusername/gradequiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/gradequiz-api/internal/pkg/errors"
)

// IssuedQuestion - вопрос вместе с вариантами ответа в порядке показа клиенту
type IssuedQuestion struct {
	Question entity.Question
	Answers  []entity.Answer
}

// QuizService реализует выдачу и оценку викторин
type QuizService struct {
	topicRepo    repository.TopicRepository
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	attemptRepo  repository.AttemptRepository
	cacheRepo    repository.CacheRepository
	config       *QuizConfig
}

// NewQuizService создает новый сервис викторин
func NewQuizService(
	topicRepo repository.TopicRepository,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	attemptRepo repository.AttemptRepository,
	cacheRepo repository.CacheRepository,
	config *QuizConfig,
) *QuizService {
	if config == nil {
		config = DefaultQuizConfig()
	}
	return &QuizService{
		topicRepo:    topicRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		attemptRepo:  attemptRepo,
		cacheRepo:    cacheRepo,
		config:       config,
	}
}

// Topics возвращает список доступных тем
func (s *QuizService) Topics() ([]entity.Topic, error) {
	return s.topicRepo.List()
}

// IssueQuiz выдает пользователю новую викторину по теме: выбирает случайные
// вопросы, для каждого — варианты ответа, и фиксирует выданный набор в попытке.
// Порядок вопросов и вариантов в возвращаемом слайсе в точности совпадает
// с сохраненными question_list/answer_order.
func (s *QuizService) IssueQuiz(userID uint, topicName string) (*entity.Attempt, []IssuedQuestion, error) {
	topic, err := s.findTopic(topicName)
	if err != nil {
		return nil, nil, err
	}

	questions, err := s.questionRepo.GetRandomByTopic(topic.ID, s.config.QuestionsPerQuiz)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load questions for topic %q: %w", topicName, err)
	}
	if len(questions) < s.config.QuestionsPerQuiz {
		// Неполную викторину не выдаем: у темы должно быть минимум QuestionsPerQuiz вопросов
		return nil, nil, fmt.Errorf(
			"topic %q has only %d of %d required questions: %w",
			topicName, len(questions), s.config.QuestionsPerQuiz, apperrors.ErrInsufficientContent,
		)
	}

	issued := make([]IssuedQuestion, 0, len(questions))
	questionList := make(entity.UintArray, 0, len(questions))
	answerOrder := make(entity.UintMatrix, 0, len(questions))

	for _, question := range questions {
		answers, err := s.answerRepo.GetByQuestionID(question.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load answers for question %d: %w", question.ID, err)
		}

		sampled, err := s.sampleAnswers(question.ID, answers)
		if err != nil {
			return nil, nil, err
		}

		shown := make([]uint, len(sampled))
		for i, a := range sampled {
			shown[i] = a.ID
		}

		issued = append(issued, IssuedQuestion{Question: question, Answers: sampled})
		questionList = append(questionList, question.ID)
		answerOrder = append(answerOrder, shown)
	}

	attempt := &entity.Attempt{
		UserID:          userID,
		QuestionList:    questionList,
		AnswerOrder:     answerOrder,
		SelectedAnswers: entity.UintArray{},
		Score:           0,
		Status:          entity.AttemptStatusOpen,
	}
	if err := s.attemptRepo.Create(attempt); err != nil {
		return nil, nil, fmt.Errorf("failed to create attempt: %w", err)
	}

	log.Printf("[QuizService] Выдана попытка ID=%d пользователю ID=%d по теме %q", attempt.ID, userID, topicName)
	return attempt, issued, nil
}

// sampleAnswers выбирает варианты для показа: правильный ответ включается
// всегда, остальные места заполняются случайными неправильными, после чего
// набор перемешивается. Без принудительного включения правильного ответа
// вопрос мог бы оказаться без верного варианта вовсе.
func (s *QuizService) sampleAnswers(questionID uint, answers []entity.Answer) ([]entity.Answer, error) {
	var correct []entity.Answer
	var incorrect []entity.Answer
	for _, a := range answers {
		if a.IsCorrect {
			correct = append(correct, a)
		} else {
			incorrect = append(incorrect, a)
		}
	}

	if len(correct) != 1 {
		return nil, fmt.Errorf(
			"question %d has %d correct answers, expected exactly 1: %w",
			questionID, len(correct), apperrors.ErrInsufficientContent,
		)
	}
	needed := s.config.AnswersPerQuestion - 1
	if len(incorrect) < needed {
		return nil, fmt.Errorf(
			"question %d has only %d incorrect answers, need %d: %w",
			questionID, len(incorrect), needed, apperrors.ErrInsufficientContent,
		)
	}

	rand.Shuffle(len(incorrect), func(i, j int) {
		incorrect[i], incorrect[j] = incorrect[j], incorrect[i]
	})

	sampled := make([]entity.Answer, 0, s.config.AnswersPerQuestion)
	sampled = append(sampled, correct[0])
	sampled = append(sampled, incorrect[:needed]...)
	rand.Shuffle(len(sampled), func(i, j int) {
		sampled[i], sampled[j] = sampled[j], sampled[i]
	})

	return sampled, nil
}

// SubmitQuiz принимает сданные ответы, оценивает попытку и фиксирует результат.
// Оценка идет строго по сохраненным question_list/answer_order, а не по
// текущему состоянию банка вопросов: счет стабилен, даже если банк изменился
// после выдачи.
func (s *QuizService) SubmitQuiz(attemptID, userID uint, selected []uint) (*entity.Attempt, error) {
	if len(selected) != s.config.QuestionsPerQuiz {
		return nil, fmt.Errorf(
			"expected exactly %d selected answers, got %d: %w",
			s.config.QuestionsPerQuiz, len(selected), apperrors.ErrValidation,
		)
	}

	attempt, err := s.attemptRepo.GetByID(attemptID)
	if err != nil {
		return nil, err
	}
	if !attempt.IsOwnedBy(userID) {
		return nil, fmt.Errorf("attempt %d belongs to another user: %w", attemptID, apperrors.ErrForbidden)
	}
	if attempt.IsGraded() {
		return nil, fmt.Errorf("attempt %d: %w", attemptID, apperrors.ErrAlreadySubmitted)
	}

	score, err := s.gradeAttempt(attempt, selected)
	if err != nil {
		return nil, err
	}

	rows, err := s.attemptRepo.SubmitGrade(attemptID, userID, entity.UintArray(selected), score)
	if err != nil {
		return nil, fmt.Errorf("failed to save grade for attempt %d: %w", attemptID, err)
	}
	if rows == 0 {
		// Конкурентная сдача успела раньше: условный UPDATE не нашел открытую попытку
		return nil, fmt.Errorf("attempt %d: %w", attemptID, apperrors.ErrAlreadySubmitted)
	}

	attempt.SelectedAnswers = entity.UintArray(selected)
	attempt.Score = score
	attempt.Status = entity.AttemptStatusGraded

	log.Printf("[QuizService] Попытка ID=%d пользователя ID=%d оценена: %d/%d",
		attemptID, userID, score, s.config.QuestionsPerQuiz)
	return attempt, nil
}

// gradeAttempt считает число позиций, где сданный ответ совпадает с правильным
// вариантом среди показанных на этой позиции
func (s *QuizService) gradeAttempt(attempt *entity.Attempt, selected []uint) (int, error) {
	if len(attempt.AnswerOrder) != len(attempt.QuestionList) {
		return 0, fmt.Errorf("attempt %d has inconsistent question/answer order lengths", attempt.ID)
	}

	var shownIDs []uint
	for _, order := range attempt.AnswerOrder {
		shownIDs = append(shownIDs, order...)
	}

	answers, err := s.answerRepo.GetByIDs(shownIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to load answers for attempt %d: %w", attempt.ID, err)
	}
	byID := make(map[uint]entity.Answer, len(answers))
	for _, a := range answers {
		byID[a.ID] = a
	}

	score := 0
	for i := range attempt.QuestionList {
		if i >= len(selected) {
			break
		}
		for _, answerID := range attempt.AnswerOrder[i] {
			if answer, ok := byID[answerID]; ok && answer.IsCorrect && selected[i] == answerID {
				score++
				break
			}
		}
	}
	return score, nil
}

// findTopic ищет тему по имени, сначала в кеше, затем в БД
func (s *QuizService) findTopic(topicName string) (*entity.Topic, error) {
	name := strings.TrimSpace(topicName)
	if name == "" {
		return nil, fmt.Errorf("topic name is empty: %w", apperrors.ErrValidation)
	}

	cacheKey := "topic:name:" + strings.ToLower(name)
	if s.cacheRepo != nil {
		var cached entity.Topic
		if err := s.cacheRepo.GetJSON(cacheKey, &cached); err == nil && cached.ID != 0 {
			return &cached, nil
		}
	}

	topic, err := s.topicRepo.GetByName(name)
	if err != nil {
		return nil, err
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetJSON(cacheKey, topic, s.config.TopicCacheTTL); err != nil {
			log.Printf("[QuizService] Не удалось закешировать тему %q: %v", name, err)
		}
	}
	return topic, nil
}
