package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/gradequiz-api/internal/handler/dto"
	"github.com/yourusername/gradequiz-api/internal/service"
)

// ResultHandler обрабатывает запросы к истории попыток
type ResultHandler struct {
	resultService *service.ResultService
}

// NewResultHandler создает новый обработчик результатов
func NewResultHandler(resultService *service.ResultService) *ResultHandler {
	return &ResultHandler{resultService: resultService}
}

// GetPastAttempts возвращает историю попыток аутентифицированного пользователя,
// самые свежие первыми
func (h *ResultHandler) GetPastAttempts(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	attempts, err := h.resultService.GetUserAttempts(userID)
	if err != nil {
		log.Printf("[ResultHandler] Ошибка получения истории попыток пользователя ID=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": dto.NewListAttemptResponse(attempts)})
}
