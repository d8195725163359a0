package models

import "time"

// DateLayout формат календарного дня, используемый в логах привычек,
// воды и финансовых записях.
const DateLayout = "2006-01-02"

// Habit представляет привычку пользователя.
type Habit struct {
	ID        string    // Уникальный идентификатор привычки
	UserUID   string    // Владелец привычки
	Title     string    // Название
	Frequency string    // Периодичность: daily или weekly
	Category  string    // Категория (произвольная)
	CreatedAt time.Time // Дата создания
}

// HabitLog фиксирует выполнение привычки за календарный день.
// На пару (HabitID, Date) существует не более одной записи — эта
// уникальность делает отметку идемпотентной и обратимой.
type HabitLog struct {
	ID      string // Уникальный идентификатор записи
	HabitID string // Привычка, к которой относится отметка
	UserUID string // Владелец записи
	Date    string // Календарный день в формате 2006-01-02
}

// DummyHabit используется для приёма данных привычки из JSON-запроса.
type DummyHabit struct {
	Title     string `json:"title" validate:"required"`                    // Название привычки
	Frequency string `json:"frequency" validate:"required,oneof=daily weekly"` // Периодичность
	Category  string `json:"category"`                                     // Категория
}

// DummyHabitToggle используется для отметки выполнения привычки за день.
type DummyHabitToggle struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"` // Календарный день
}
