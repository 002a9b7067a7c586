package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/gradequiz-api/internal/handler/dto"
	apperrors "github.com/yourusername/gradequiz-api/internal/pkg/errors"
	"github.com/yourusername/gradequiz-api/internal/service"
	"github.com/yourusername/gradequiz-api/pkg/auth"
)

// UserHandler обрабатывает запросы, связанные с пользователями
type UserHandler struct {
	userService *service.UserService
	jwtService  *auth.JWTService
}

// NewUserHandler создает новый обработчик пользователей
func NewUserHandler(userService *service.UserService, jwtService *auth.JWTService) *UserHandler {
	return &UserHandler{
		userService: userService,
		jwtService:  jwtService,
	}
}

// RegisterRequest представляет запрос на регистрацию.
// Имена полей с заглавной буквы — формат, который отправляет фронтенд.
type RegisterRequest struct {
	Name  string `json:"Name" binding:"required,min=1,max=100"`
	Email string `json:"Email" binding:"required,email,max=100"`
	Phone string `json:"Phone" binding:"omitempty,max=20"`
}

// Register обрабатывает запрос на регистрацию по контактным данным.
// Повторная регистрация с известным email возвращает токен существующего
// пользователя.
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.RegisterOrLogin(req.Name, req.Email, req.Phone)
	if err != nil {
		log.Printf("[UserHandler] Ошибка регистрации пользователя: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	token, err := h.jwtService.GenerateToken(user)
	if err != nil {
		log.Printf("[UserHandler] Ошибка генерации токена для пользователя ID=%d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetMe возвращает данные аутентифицированного пользователя
func (h *UserHandler) GetMe(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	user, err := h.userService.GetByID(userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("[UserHandler] Ошибка получения пользователя ID=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}
