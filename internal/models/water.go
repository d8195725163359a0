package models

// WaterLog фиксирует один приём воды. Записей за день может быть
// несколько, дневной итог всегда считается суммированием.
type WaterLog struct {
	ID      string // Уникальный идентификатор записи
	UserUID string // Владелец записи
	Amount  int    // Объём в миллилитрах (строго положительный)
	Date    string // Календарный день в формате 2006-01-02
}

// DummyWaterLog используется для приёма записи о воде из JSON-запроса.
type DummyWaterLog struct {
	Amount int `json:"amount" validate:"required,gt=0"` // Объём в миллилитрах
}
