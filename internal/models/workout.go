package models

import "time"

// Exercise описывает одно упражнение плана тренировки.
type Exercise struct {
	Name   string `json:"name" validate:"required"`        // Название упражнения
	Sets   int    `json:"sets" validate:"required,gt=0"`   // Количество подходов
	Reps   string `json:"reps" validate:"required"`        // Повторения (свободный формат)
	Weight string `json:"weight,omitempty"`                // Рекомендуемый вес (опционально)
}

// WorkoutPlan представляет план тренировки. План создаётся либо вручную,
// либо внешним генератором; после сохранения происхождение не различается.
type WorkoutPlan struct {
	ID          string     // Уникальный идентификатор плана
	UserUID     string     // Владелец плана
	Name        string     // Название
	Description string     // Краткое описание
	Exercises   []Exercise // Упорядоченный список упражнений
	CreatedAt   time.Time  // Дата создания
}

// DummyWorkoutPlan используется для приёма плана тренировки из JSON-запроса.
type DummyWorkoutPlan struct {
	Name        string     `json:"name" validate:"required"`                  // Название плана
	Description string     `json:"description"`                              // Описание
	Exercises   []Exercise `json:"exercises" validate:"required,min=1,dive"` // Упражнения
}

// DummyGenerateWorkout используется для запроса генерации плана тренировки.
type DummyGenerateWorkout struct {
	Goal string `json:"goal" validate:"required"` // Цель тренировки
}
