// Package filestore реализует хранилище трекера в локальном JSON-файле.
// Все коллекции держатся в памяти, каждая мутация целиком перезаписывает
// файл-снимок. Бэкенд рассчитан на одиночную установку без базы данных
// и реализует тот же интерфейс, что и PostgreSQL-бэкенд.
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

// snapshot полное содержимое хранилища, сериализуемое в JSON-файл.
type snapshot struct {
	Users          []*models.User                  `json:"users"`
	Habits         []*models.Habit                 `json:"habits"`
	HabitLogs      []*models.HabitLog              `json:"habit_logs"`
	Tasks          []*models.Task                  `json:"tasks"`
	FinanceEntries []*models.FinancialEntry        `json:"finance_entries"`
	WorkoutPlans   []*models.WorkoutPlan           `json:"workout_plans"`
	WaterLogs      []*models.WaterLog              `json:"water_logs"`
	DiaryEntries   []*models.DiaryEntry            `json:"diary_entries"`
	UserFiles      []*models.UserFile              `json:"user_files"`
	XPLogs         []*models.XPLog                 `json:"xp_logs"`
	Settings       map[string]*models.UserSettings `json:"settings"`
}

// Storage хранилище в JSON-файле. Все методы сериализуются мьютексом,
// конкурентных читателей файла нет.
type Storage struct {
	mu   sync.Mutex
	path string
	data *snapshot
}

// New открывает хранилище по пути к файлу-снимку. Отсутствующий файл
// означает пустое хранилище, каталог создаётся при необходимости.
func New(path string) (*Storage, error) {
	const op = "storage.filestore.New"

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	data := &snapshot{Settings: make(map[string]*models.UserSettings)}
	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// первый запуск, файла ещё нет
	case err != nil:
		return nil, fmt.Errorf("%s: %w", op, err)
	default:
		if err := json.Unmarshal(raw, data); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if data.Settings == nil {
			data.Settings = make(map[string]*models.UserSettings)
		}
	}

	return &Storage{path: path, data: data}, nil
}

// save перезаписывает файл-снимок целиком. Вызывается под мьютексом
// после каждой мутации, запись через временный файл с переименованием.
func (s *Storage) save() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
