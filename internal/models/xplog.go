package models

import "time"

// XPLog одна запись журнала начисления опыта. Журнал только дополняется:
// записи никогда не изменяются и не удаляются, сумма начислений
// пользователя равна его текущему XP.
type XPLog struct {
	ID        string    // Уникальный идентификатор записи
	UserUID   string    // Пользователь, которому начислен опыт
	Amount    int       // Размер начисления (положительный)
	Source    string    // Причина начисления (свободный текст)
	Timestamp time.Time // Момент начисления
}

// XPAward результат начисления опыта: новые значения профиля после
// атомарного пересчёта.
type XPAward struct {
	XP     int // Опыт после начисления
	Level  int // Пересчитанный уровень
	Streak int // Серия активных дней после обновления
}
