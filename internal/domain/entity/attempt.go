package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// UintArray - пользовательский тип для хранения списка идентификаторов в JSONB
type UintArray []uint

// Scan реализует интерфейс sql.Scanner для UintArray
// Используется GORM для чтения JSONB данных из базы
func (a *UintArray) Scan(value interface{}) error {
	// Обработка NULL значений из базы данных
	if value == nil {
		*a = UintArray{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	if len(bytes) == 0 {
		*a = UintArray{}
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Value реализует интерфейс driver.Valuer для UintArray
func (a UintArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return []byte("[]"), nil // Возвращаем пустой JSON массив вместо null
	}
	return json.Marshal(a)
}

// UintMatrix - пользовательский тип для хранения списка списков идентификаторов в JSONB.
// Используется для answer_order: позиция i содержит порядок вариантов ответа
// для вопроса question_list[i] в том виде, в котором они были показаны клиенту.
type UintMatrix [][]uint

// Scan реализует интерфейс sql.Scanner для UintMatrix
func (m *UintMatrix) Scan(value interface{}) error {
	if value == nil {
		*m = UintMatrix{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	if len(bytes) == 0 {
		*m = UintMatrix{}
		return nil
	}

	return json.Unmarshal(bytes, m)
}

// Value реализует интерфейс driver.Valuer для UintMatrix
func (m UintMatrix) Value() (driver.Value, error) {
	if len(m) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(m)
}

// Статусы жизненного цикла попытки
const (
	// AttemptStatusOpen - попытка создана, ответы еще не сданы
	AttemptStatusOpen = "open"
	// AttemptStatusGraded - ответы сданы и оценены; дальнейшие изменения запрещены
	AttemptStatusGraded = "graded"
)

// Attempt представляет одну попытку прохождения викторины: от выдачи вопросов
// до (опциональной) сдачи ответов и оценки
type Attempt struct {
	ID              uint       `gorm:"primaryKey;column:attempt_id" json:"attempt_id"`
	UserID          uint       `gorm:"not null;index:idx_test_attempts_user_date" json:"user_id"`
	QuestionList    UintArray  `gorm:"type:jsonb;not null" json:"question_list"`
	AnswerOrder     UintMatrix `gorm:"type:jsonb;not null" json:"answer_order"`
	SelectedAnswers UintArray  `gorm:"type:jsonb;not null" json:"selected_answers"`
	Score           int        `gorm:"not null;default:0" json:"score"`
	Status          string     `gorm:"size:20;not null;default:'open'" json:"status"`
	TestDate        time.Time  `gorm:"not null;autoCreateTime;index:idx_test_attempts_user_date" json:"test_date"`
	SubmittedAt     *time.Time `gorm:"type:timestamp" json:"submitted_at,omitempty"`
}

// TableName определяет имя таблицы для GORM
func (Attempt) TableName() string {
	return "test_attempts"
}

// IsGraded возвращает true, если попытка уже оценена
func (a *Attempt) IsGraded() bool {
	return a.Status == AttemptStatusGraded
}

// IsOwnedBy проверяет принадлежность попытки пользователю
func (a *Attempt) IsOwnedBy(userID uint) bool {
	return a.UserID == userID
}
