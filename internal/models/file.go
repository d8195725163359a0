package models

import "time"

// MaxFileSize предельный размер содержимого файла (5 МБ), проверяется
// до обращения к хранилищу.
const MaxFileSize = 5 * 1024 * 1024

// LinkedEntity опциональная ссылка файла на владеющую сущность,
// например финансовую запись.
type LinkedEntity struct {
	Type string `json:"type" validate:"required"` // Тип сущности
	ID   string `json:"id" validate:"required"`   // Идентификатор сущности
}

// UserFile представляет загруженный пользователем файл. Содержимое
// хранится самодостаточно, закодированным в строку (data URI).
type UserFile struct {
	ID           string        // Уникальный идентификатор файла
	UserUID      string        // Владелец файла
	FileName     string        // Имя файла
	Data         string        // Закодированное содержимое
	MimeType     string        // MIME-тип
	LinkedEntity *LinkedEntity // Ссылка на владеющую сущность (опционально)
	CreatedAt    time.Time     // Дата загрузки
}

// DummyUserFile используется для приёма файла из JSON-запроса.
type DummyUserFile struct {
	FileName     string        `json:"file_name" validate:"required"` // Имя файла
	Data         string        `json:"data" validate:"required"`      // Закодированное содержимое
	MimeType     string        `json:"mime_type" validate:"required"` // MIME-тип
	LinkedEntity *LinkedEntity `json:"linked_entity,omitempty"`       // Ссылка на сущность
}
