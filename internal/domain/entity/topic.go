package entity

// Topic представляет категорию вопросов (в интерфейсе называется "grade").
// Статические справочные данные, из кода не изменяются.
type Topic struct {
	ID   uint   `gorm:"primaryKey;column:topic_id" json:"topic_id"`
	Name string `gorm:"size:100;not null;uniqueIndex;column:topic_name" json:"topic_name"`
}

// TableName определяет имя таблицы для GORM
func (Topic) TableName() string {
	return "topics"
}
