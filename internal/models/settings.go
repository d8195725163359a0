package models

// DefaultWaterGoal дневная цель по воде в миллилитрах для нового профиля.
const DefaultWaterGoal = 2500

// UserSettings настройки пользователя, одна строка на пользователя.
type UserSettings struct {
	WaterGoal            int    // Дневная цель по воде, мл
	NotificationsEnabled bool   // Включены ли уведомления
	Theme                string // Тема оформления: dark или light
}

// DummyUserSettings используется для приёма настроек из JSON-запроса.
type DummyUserSettings struct {
	WaterGoal            int    `json:"water_goal" validate:"required,gt=0"`        // Цель по воде (>0)
	NotificationsEnabled bool   `json:"notifications_enabled"`                      // Уведомления
	Theme                string `json:"theme" validate:"required,oneof=dark light"` // Тема
}

// ReminderTarget адресат напоминания о воде: пользователь с включёнными
// уведомлениями и его дневная цель.
type ReminderTarget struct {
	UserUID   string // Идентификатор пользователя
	Username  string // Имя пользователя
	Email     string // Электронная почта
	WaterGoal int    // Дневная цель по воде, мл
}
