package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/yourusername/gradequiz-api/internal/domain/entity"
	"github.com/yourusername/gradequiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/gradequiz-api/internal/pkg/errors"
)

// UserService предоставляет методы для работы с пользователями
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService создает новый сервис пользователей
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// RegisterOrLogin возвращает пользователя по email, создавая его при первом
// обращении. Email служит естественным ключом: повторная регистрация с тем же
// адресом возвращает существующую запись.
func (s *UserService) RegisterOrLogin(name, email, phone string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.userRepo.GetByEmail(email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	user := &entity.User{
		Name:  strings.TrimSpace(name),
		Email: email,
		Phone: strings.TrimSpace(phone),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("[UserService] Создан новый пользователь ID=%d", user.ID)
	return user, nil
}

// GetByID возвращает пользователя по ID
func (s *UserService) GetByID(userID uint) (*entity.User, error) {
	return s.userRepo.GetByID(userID)
}
