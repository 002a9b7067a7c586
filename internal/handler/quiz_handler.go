package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/gradequiz-api/internal/handler/dto"
	apperrors "github.com/yourusername/gradequiz-api/internal/pkg/errors"
	"github.com/yourusername/gradequiz-api/internal/service"
)

// QuizHandler обрабатывает запросы, связанные с выдачей и сдачей викторин
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторин
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// StartQuizRequest представляет запрос на выдачу викторины.
// Поле называется grade: в интерфейсе тема выбирается как "класс".
type StartQuizRequest struct {
	Grade string `json:"grade" binding:"required,min=1,max=100"`
}

// StartQuiz обрабатывает запрос на выдачу новой викторины
func (h *QuizHandler) StartQuiz(c *gin.Context) {
	var req StartQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet("user_id").(uint)

	attempt, issued, err := h.quizService.IssueQuiz(userID, req.Grade)
	if err != nil {
		h.handleQuizError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewStartQuizResponse(attempt, issued))
}

// SubmitQuizRequest представляет запрос на сдачу ответов
type SubmitQuizRequest struct {
	AttemptID       uint   `json:"attempt_id" binding:"required"`
	SelectedAnswers []uint `json:"selected_answers" binding:"required"`
}

// SubmitQuiz обрабатывает сдачу ответов и возвращает счет
func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	var req SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet("user_id").(uint)

	attempt, err := h.quizService.SubmitQuiz(req.AttemptID, userID, req.SelectedAnswers)
	if err != nil {
		h.handleQuizError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Submission saved successfully.",
		"score":     attempt.Score,
		"userId":    userID,
		"attemptId": attempt.ID,
	})
}

// ListTopics возвращает список доступных тем
func (h *QuizHandler) ListTopics(c *gin.Context) {
	topics, err := h.quizService.Topics()
	if err != nil {
		h.handleQuizError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"topics": dto.NewListTopicResponse(topics)})
}

// handleQuizError преобразует ошибки сервиса в HTTP статусы
func (h *QuizHandler) handleQuizError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Attempt belongs to another user"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInsufficientContent):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Topic does not have enough questions or answers"})
	case errors.Is(err, apperrors.ErrAlreadySubmitted):
		c.JSON(http.StatusConflict, gin.H{"error": "Attempt has already been submitted"})
	default:
		// Внутренние детали клиенту не раскрываем
		log.Printf("[QuizHandler] Внутренняя ошибка: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
