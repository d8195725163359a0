// Package storage определяет общий интерфейс хранилища трекера и его
// ошибки. Интерфейс реализуют два взаимозаменяемых бэкенда: PostgreSQL
// (internal/storage/postgres) и локальный JSON-файл
// (internal/storage/filestore). Выбор бэкенда происходит при старте
// приложения и не виден сервисному слою.
package storage

import (
	"context"
	"errors"

	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

// ErrNotFound возвращается, когда запрошенная запись отсутствует или
// принадлежит другому пользователю.
var ErrNotFound = errors.New("entry not found")

// ErrAlreadyExists возвращается при попытке создать запись,
// нарушающую уникальность, например пользователя с занятым именем.
var ErrAlreadyExists = errors.New("entry already exists")

// Storage описывает полный набор операций хранилища. Сервисы объявляют
// собственные узкие интерфейсы, этот используется при сборке приложения.
type Storage interface {
	// Пользователи
	RegisterUser(ctx context.Context, user models.User) (string, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUser(ctx context.Context, userUID string) (*models.User, error)
	UpdateUser(ctx context.Context, userUID string, upd models.UserUpdate) (int, error)
	AwardXP(ctx context.Context, userUID string, amount int, source string) (*models.XPAward, error)
	UnlockFeature(ctx context.Context, userUID, feature string) error
	ListUsers(ctx context.Context) ([]*models.User, error)
	CountStats(ctx context.Context) (*models.AdminStats, error)

	// Привычки
	CreateHabit(ctx context.Context, habit models.Habit) (string, error)
	ListHabits(ctx context.Context, userUID string) ([]*models.Habit, error)
	UpdateHabit(ctx context.Context, userUID, id string, upd models.DummyHabit) (int, error)
	RemoveHabit(ctx context.Context, userUID, id string) (int, error)
	CreateHabitLog(ctx context.Context, habitLog models.HabitLog) (bool, error)
	RemoveHabitLog(ctx context.Context, userUID, habitID, date string) (int, error)
	ListHabitLogs(ctx context.Context, userUID string) ([]*models.HabitLog, error)

	// Задачи
	CreateTask(ctx context.Context, task models.Task) (string, error)
	ListTasks(ctx context.Context, userUID string) ([]*models.Task, error)
	CompleteTask(ctx context.Context, userUID, id string) (bool, error)
	RemoveTask(ctx context.Context, userUID, id string) (int, error)

	// Финансы
	CreateFinanceEntry(ctx context.Context, entry models.FinancialEntry) (string, error)
	ListFinanceEntrys(ctx context.Context, userUID string) ([]*models.FinancialEntry, error)
	RemoveFinanceEntry(ctx context.Context, userUID, id string) (int, error)
	AttachFileToFinanceEntry(ctx context.Context, userUID, entryID, fileID string) error

	// Тренировки
	CreateWorkoutPlan(ctx context.Context, plan models.WorkoutPlan) (string, error)
	ListWorkoutPlans(ctx context.Context, userUID string) ([]*models.WorkoutPlan, error)

	// Вода
	CreateWaterLog(ctx context.Context, waterLog models.WaterLog) (string, error)
	ListWaterLogs(ctx context.Context, userUID, date string) ([]*models.WaterLog, error)

	// Дневник
	CreateDiaryEntry(ctx context.Context, entry models.DiaryEntry) (string, error)
	ListDiaryEntrys(ctx context.Context, userUID string) ([]*models.DiaryEntry, error)
	UpdateDiaryEntry(ctx context.Context, userUID, id string, upd models.DummyDiaryEntry) (int, error)
	RemoveDiaryEntry(ctx context.Context, userUID, id string) (int, error)

	// Файлы
	CreateUserFile(ctx context.Context, file models.UserFile) (string, error)
	ListUserFiles(ctx context.Context, userUID string) ([]*models.UserFile, error)
	RemoveUserFile(ctx context.Context, userUID, id string) (int, error)

	// Опыт и настройки
	ListXPLogs(ctx context.Context, userUID string) ([]*models.XPLog, error)
	GetSettings(ctx context.Context, userUID string) (*models.UserSettings, error)
	UpsertSettings(ctx context.Context, userUID string, settings models.UserSettings) error
	ListNotifiableUsers(ctx context.Context) ([]*models.ReminderTarget, error)
}
