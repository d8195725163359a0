package models

import "time"

// DiaryEntry представляет запись дневника. Доступ к записям закрыт
// PIN-кодом: чтение и запись возможны только в разблокированной сессии.
type DiaryEntry struct {
	ID        string    // Уникальный идентификатор записи
	UserUID   string    // Владелец записи
	Title     string    // Заголовок (опциональный)
	Content   string    // Текст записи
	CreatedAt time.Time // Дата создания
	UpdatedAt time.Time // Дата последнего изменения
}

// DummyDiaryEntry используется для приёма записи дневника из JSON-запроса.
type DummyDiaryEntry struct {
	Title   string `json:"title"`                       // Заголовок
	Content string `json:"content" validate:"required"` // Текст записи
}

// DummyDiaryUnlock используется для разблокировки дневника PIN-кодом.
type DummyDiaryUnlock struct {
	Pin string `json:"pin" validate:"required"` // PIN-код
}
