package models

import "time"

// FinancialEntry представляет запись финансового журнала. Знак суммы
// определяется полем Type, само значение Amount всегда положительное.
type FinancialEntry struct {
	ID          string    // Уникальный идентификатор записи
	UserUID     string    // Владелец записи
	Type        string    // Тип: income или expense
	Amount      float64   // Сумма (строго положительная)
	Description string    // Описание
	Category    string    // Категория
	Date        string    // Дата операции в формате 2006-01-02
	Attachments []string  // Идентификаторы прикреплённых файлов (по порядку)
	CreatedAt   time.Time // Дата создания записи
}

// DummyFinanceEntry используется для приёма финансовой записи из JSON-запроса.
type DummyFinanceEntry struct {
	Type        string  `json:"type" validate:"required,oneof=income expense"` // Тип записи
	Amount      float64 `json:"amount" validate:"required,gt=0"`               // Сумма (>0)
	Description string  `json:"description" validate:"required"`               // Описание
	Category    string  `json:"category"`                                      // Категория
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`  // Дата операции
}

// DummyFinanceImport используется для массового импорта табличного текста.
// Каждая строка: дата, описание, знаковая сумма, категория.
type DummyFinanceImport struct {
	Data string `json:"data" validate:"required"` // Текст в формате CSV
}

// DummyAttachment используется для прикрепления файла к финансовой записи.
type DummyAttachment struct {
	FileID string `json:"file_id" validate:"required"` // Идентификатор файла
}
