package filestore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
	"github.com/magabrotheeeer/liferpg-tracker/internal/storage"
)

func newTestStorage(t *testing.T) (*Storage, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tracker.json")
	s, err := New(path)
	require.NoError(t, err)
	return s, path
}

func registerTestUser(t *testing.T, s *Storage) string {
	t.Helper()
	uid, err := s.RegisterUser(context.Background(), models.User{
		Username:     "tester",
		Email:        "tester@example.com",
		PasswordHash: "hash",
		Role:         "user",
		DiaryPinHash: "pinhash",
	})
	require.NoError(t, err)
	return uid
}

func TestStorage_RegisterUser(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	uid := registerTestUser(t, s)
	assert.NotEmpty(t, uid)

	user, err := s.GetUser(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "tester", user.Username)
	assert.Equal(t, 1, user.Level)

	_, err = s.RegisterUser(ctx, models.User{Username: "tester"})
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)
}

func TestStorage_SnapshotSurvivesReopen(t *testing.T) {
	s, path := newTestStorage(t)
	ctx := context.Background()

	uid := registerTestUser(t, s)
	_, err := s.CreateHabit(ctx, models.Habit{UserUID: uid, Title: "Чтение", Frequency: "daily"})
	require.NoError(t, err)

	reopened, err := New(path)
	require.NoError(t, err)

	user, err := reopened.GetUserByUsername(ctx, "tester")
	require.NoError(t, err)
	assert.Equal(t, uid, user.UID)

	habits, err := reopened.ListHabits(ctx, uid)
	require.NoError(t, err)
	require.Len(t, habits, 1)
	assert.Equal(t, "Чтение", habits[0].Title)
}

func TestStorage_AwardXP(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()
	uid := registerTestUser(t, s)

	award, err := s.AwardXP(ctx, uid, 10, "Привычка выполнена")
	require.NoError(t, err)
	assert.Equal(t, 10, award.XP)
	assert.Equal(t, 1, award.Level)
	assert.Equal(t, 1, award.Streak)

	// 100 опыта в сумме поднимают второй уровень
	award, err = s.AwardXP(ctx, uid, 90, "Задача завершена")
	require.NoError(t, err)
	assert.Equal(t, 100, award.XP)
	assert.Equal(t, 2, award.Level)

	logs, err := s.ListXPLogs(ctx, uid)
	require.NoError(t, err)
	require.Len(t, logs, 2)

	// сумма журнала опыта совпадает с опытом профиля
	var sum int
	for _, l := range logs {
		sum += l.Amount
	}
	assert.Equal(t, award.XP, sum)

	_, err = s.AwardXP(ctx, "ghost", 10, "Привычка выполнена")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStorage_HabitLogToggle(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()
	uid := registerTestUser(t, s)

	habitID, err := s.CreateHabit(ctx, models.Habit{UserUID: uid, Title: "Зарядка", Frequency: "daily"})
	require.NoError(t, err)

	created, err := s.CreateHabitLog(ctx, models.HabitLog{HabitID: habitID, UserUID: uid, Date: "2026-08-28"})
	require.NoError(t, err)
	assert.True(t, created)

	// повторная отметка за тот же день не создаёт дубликат
	created, err = s.CreateHabitLog(ctx, models.HabitLog{HabitID: habitID, UserUID: uid, Date: "2026-08-28"})
	require.NoError(t, err)
	assert.False(t, created)

	removed, err := s.RemoveHabitLog(ctx, uid, habitID, "2026-08-28")
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = s.CreateHabitLog(ctx, models.HabitLog{HabitID: "ghost", UserUID: uid, Date: "2026-08-28"})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStorage_HabitLogsSurviveHabitRemoval(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()
	uid := registerTestUser(t, s)

	habitID, err := s.CreateHabit(ctx, models.Habit{UserUID: uid, Title: "Бег", Frequency: "daily"})
	require.NoError(t, err)

	_, err = s.CreateHabitLog(ctx, models.HabitLog{HabitID: habitID, UserUID: uid, Date: "2026-08-27"})
	require.NoError(t, err)

	removed, err := s.RemoveHabit(ctx, uid, habitID)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	logs, err := s.ListHabitLogs(ctx, uid)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, habitID, logs[0].HabitID)
}

func TestStorage_CompleteTask(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()
	uid := registerTestUser(t, s)

	taskID, err := s.CreateTask(ctx, models.Task{UserUID: uid, Title: "Отчёт", Priority: "high"})
	require.NoError(t, err)

	completedNow, err := s.CompleteTask(ctx, uid, taskID)
	require.NoError(t, err)
	assert.True(t, completedNow)

	// переход односторонний, повторное завершение ничего не меняет
	completedNow, err = s.CompleteTask(ctx, uid, taskID)
	require.NoError(t, err)
	assert.False(t, completedNow)

	_, err = s.CompleteTask(ctx, uid, "ghost")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStorage_GetSettingsDefaults(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()
	uid := registerTestUser(t, s)

	settings, err := s.GetSettings(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultWaterGoal, settings.WaterGoal)
	assert.True(t, settings.NotificationsEnabled)
	assert.Equal(t, "dark", settings.Theme)

	err = s.UpsertSettings(ctx, uid, models.UserSettings{
		WaterGoal:            3000,
		NotificationsEnabled: false,
		Theme:                "light",
	})
	require.NoError(t, err)

	settings, err = s.GetSettings(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, 3000, settings.WaterGoal)
	assert.False(t, settings.NotificationsEnabled)
	assert.Equal(t, "light", settings.Theme)
}

func TestStorage_AttachFileToFinanceEntry(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()
	uid := registerTestUser(t, s)

	entryID, err := s.CreateFinanceEntry(ctx, models.FinancialEntry{
		UserUID: uid, Type: "expense", Amount: 100, Description: "Кафе", Date: "2026-08-28",
	})
	require.NoError(t, err)

	require.NoError(t, s.AttachFileToFinanceEntry(ctx, uid, entryID, "file-1"))
	// повторная привязка идемпотентна
	require.NoError(t, s.AttachFileToFinanceEntry(ctx, uid, entryID, "file-1"))

	entries, err := s.ListFinanceEntrys(ctx, uid)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"file-1"}, entries[0].Attachments)

	err = s.AttachFileToFinanceEntry(ctx, uid, "ghost", "file-1")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStorage_CancelledContext(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.ListHabits(ctx, "user-1")
	assert.Error(t, err)
}
