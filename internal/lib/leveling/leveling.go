// Package leveling содержит правила начисления опыта: формулу уровня,
// размеры наград за действия и правило обновления серии активных дней.
// Все функции чистые, хранилища используют их при пересчёте профиля.
package leveling

import (
	"math"
	"time"
)

// Размеры наград за действия пользователя, в единицах опыта.
const (
	RewardHabit   = 10 // Отметка выполнения привычки
	RewardTask    = 15 // Завершение задачи
	RewardFinance = 8  // Финансовая запись
	RewardWorkout = 20 // Завершённая тренировка
	RewardDiary   = 12 // Запись в дневнике
	RewardWater   = 2  // Приём воды
)

// Level возвращает уровень для накопленного опыта:
// floor(sqrt(xp/100)) + 1. Уровень никогда не хранится отдельно от XP,
// он всегда производный.
func Level(xp int) int {
	if xp < 0 {
		return 1
	}
	return int(math.Floor(math.Sqrt(float64(xp)/100))) + 1
}

// NextStreak возвращает новое значение серии активных дней после
// активного действия в момент now. Повторное действие в тот же день
// серию не меняет, действие на следующий календарный день продлевает
// её на единицу, более длинный перерыв сбрасывает серию до единицы.
func NextStreak(streak int, lastActive, now time.Time) int {
	if lastActive.IsZero() {
		return 1
	}
	last := truncateToDay(lastActive)
	cur := truncateToDay(now)
	switch days := int(cur.Sub(last).Hours() / 24); {
	case days == 0:
		if streak < 1 {
			return 1
		}
		return streak
	case days == 1:
		return streak + 1
	default:
		return 1
	}
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
