package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized используется для ошибок аутентификации (нет токена, неверный токен).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden используется, когда ресурс принадлежит другому пользователю.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrInsufficientContent используется, когда в банке вопросов недостаточно
	// вопросов или вариантов ответа для выдачи полноценной викторины.
	ErrInsufficientContent = errors.New("insufficient content")

	// ErrAlreadySubmitted используется при повторной сдаче уже оцененной попытки.
	ErrAlreadySubmitted = errors.New("attempt already submitted")
)
