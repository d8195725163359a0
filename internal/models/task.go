package models

import "time"

// Task представляет задачу пользователя. Завершение одностороннее:
// после перехода Completed в true повторное завершение ничего не меняет
// и опыт повторно не начисляется.
type Task struct {
	ID          string     // Уникальный идентификатор задачи
	UserUID     string     // Владелец задачи
	Title       string     // Название
	Priority    string     // Приоритет: low, medium или high
	DueDate     string     // Срок в формате 2006-01-02
	Completed   bool       // Признак завершения
	CompletedAt *time.Time // Момент завершения, устанавливается один раз
	CreatedAt   time.Time  // Дата создания
}

// DummyTask используется для приёма данных задачи из JSON-запроса.
type DummyTask struct {
	Title    string `json:"title" validate:"required"`                         // Название задачи
	Priority string `json:"priority" validate:"required,oneof=low medium high"` // Приоритет
	DueDate  string `json:"due_date" validate:"required,datetime=2006-01-02"`  // Срок выполнения
}
