package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/gradequiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/gradequiz-api/internal/pkg/errors"
)

// MockUserRepository реализует repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id uint) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func TestUserService_RegisterOrLogin_NewUser(t *testing.T) {
	// Arrange: пользователя с таким email еще нет
	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", "ivan@example.com").Return(nil, apperrors.ErrNotFound)
	userRepo.On("Create", mock.AnythingOfType("*entity.User")).Run(func(args mock.Arguments) {
		args.Get(0).(*entity.User).ID = 42
	}).Return(nil)

	svc := NewUserService(userRepo)

	// Act
	user, err := svc.RegisterOrLogin("Иван", "ivan@example.com", "+79990001122")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, uint(42), user.ID)
	assert.Equal(t, "Иван", user.Name)
	assert.Equal(t, "ivan@example.com", user.Email)
	assert.Equal(t, "+79990001122", user.Phone)
	userRepo.AssertExpectations(t)
}

func TestUserService_RegisterOrLogin_ExistingUser(t *testing.T) {
	// Arrange: пользователь с таким email уже существует
	userRepo := new(MockUserRepository)
	existing := &entity.User{ID: 7, Name: "Иван", Email: "ivan@example.com"}
	userRepo.On("GetByEmail", "ivan@example.com").Return(existing, nil)

	svc := NewUserService(userRepo)

	// Act: повторная регистрация возвращает существующую запись
	user, err := svc.RegisterOrLogin("Иван Другой", "ivan@example.com", "")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, uint(7), user.ID)
	assert.Equal(t, "Иван", user.Name, "имя существующего пользователя не перезаписывается")
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUserService_RegisterOrLogin_EmailNormalized(t *testing.T) {
	// Arrange: email приводится к нижнему регистру и очищается от пробелов
	userRepo := new(MockUserRepository)
	existing := &entity.User{ID: 7, Email: "ivan@example.com"}
	userRepo.On("GetByEmail", "ivan@example.com").Return(existing, nil)

	svc := NewUserService(userRepo)

	// Act
	user, err := svc.RegisterOrLogin("Иван", "  IVAN@Example.COM ", "")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, uint(7), user.ID)
	userRepo.AssertExpectations(t)
}

func TestUserService_RegisterOrLogin_LookupError(t *testing.T) {
	// Arrange: ошибка БД, отличная от "не найдено", не ведет к созданию
	userRepo := new(MockUserRepository)
	userRepo.On("GetByEmail", "ivan@example.com").Return(nil, errors.New("connection reset"))

	svc := NewUserService(userRepo)

	// Act
	_, err := svc.RegisterOrLogin("Иван", "ivan@example.com", "")

	// Assert
	require.Error(t, err)
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}
