// Package models содержит доменные структуры трекера: профиль пользователя,
// привычки, задачи, финансы, тренировки, дневник и вспомогательные типы
// для приёма данных из JSON-запросов (Dummy*-структуры с тегами валидации).
package models

import "time"

// User представляет профиль пользователя вместе с данными учётной записи.
// Поле Level никогда не изменяется независимо: оно пересчитывается из XP
// по формуле floor(sqrt(xp/100)) + 1 при каждом начислении опыта.
type User struct {
	UID              string    // Уникальный идентификатор пользователя
	Username         string    // Имя пользователя (уникальное)
	Email            string    // Электронная почта
	PasswordHash     string    // Хэш пароля учётной записи
	Role             string    // Роль пользователя, admin или user
	XP               int       // Накопленный опыт (неотрицательный)
	Level            int       // Уровень, производный от XP
	Streak           int       // Количество подряд активных дней
	LastActive       time.Time // Момент последнего активного действия
	UnlockedFeatures []string  // Набор открытых функций
	DiaryPinHash     string    // Хэш PIN-кода дневника
	CreatedAt        time.Time // Дата регистрации
}

// DummyRegister используется для приёма данных регистрации из JSON-запроса.
type DummyRegister struct {
	Username string `json:"username" validate:"required,alphanum"` // Имя пользователя
	Email    string `json:"email" validate:"required,email"`       // Электронная почта
	Password string `json:"password" validate:"required,min=6"`    // Пароль
	DiaryPin string `json:"diary_pin" validate:"required,min=4"`   // PIN-код дневника
}

// DummyLogin используется для приёма данных входа из JSON-запроса.
type DummyLogin struct {
	Username string `json:"username" validate:"required"` // Имя пользователя
	Password string `json:"password" validate:"required"` // Пароль
}

// DummyUserUpdate описывает изменяемые поля профиля. DiaryPin приходит
// в открытом виде и хэшируется перед сохранением, в хранилище попадает
// только хэш.
type DummyUserUpdate struct {
	Name     string `json:"name"`                          // Отображаемое имя
	Email    string `json:"email" validate:"omitempty,email"` // Электронная почта
	DiaryPin string `json:"diary_pin" validate:"omitempty,min=4"` // Новый PIN-код дневника (опционально)
}

// UserUpdate содержит подготовленные к записи изменения профиля.
// Пустое значение означает «не изменять», для PIN передаётся уже хэш.
type UserUpdate struct {
	Name         string
	Email        string
	DiaryPinHash string
}

// DummyFeature используется для открытия функции профиля.
type DummyFeature struct {
	Feature string `json:"feature" validate:"required"` // Тег открываемой функции
}
