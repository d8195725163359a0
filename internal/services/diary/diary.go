// Package services содержит бизнес-логику дневника с PIN-защитой.
// Все операции с записями требуют разблокированной сессии: PIN
// проверяется по bcrypt-хешу, окно доступа живёт пять минут и
// продлевается каждым обращением.
package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/leveling"
	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/pin"
	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

// XPSourceDiary причина начисления опыта за запись в дневнике.
const XPSourceDiary = "Запись в дневнике"

// UnlockWindow время жизни разблокированной сессии дневника.
const UnlockWindow = 5 * time.Minute

// ErrLocked возвращается при обращении к дневнику без разблокировки.
var ErrLocked = errors.New("diary is locked")

// ErrWrongPin возвращается при неверном PIN-коде.
var ErrWrongPin = errors.New("wrong pin")

// DiaryRepository определяет методы для работы с дневником в хранилище.
type DiaryRepository interface {
	// GetUser возвращает пользователя по UID, нужен хеш PIN.
	GetUser(ctx context.Context, userUID string) (*models.User, error)
	// CreateDiaryEntry добавляет запись дневника.
	CreateDiaryEntry(ctx context.Context, entry models.DiaryEntry) (string, error)
	// ListDiaryEntrys возвращает записи дневника пользователя.
	ListDiaryEntrys(ctx context.Context, userUID string) ([]*models.DiaryEntry, error)
	// UpdateDiaryEntry обновляет запись дневника.
	UpdateDiaryEntry(ctx context.Context, userUID, id string, upd models.DummyDiaryEntry) (int, error)
	// RemoveDiaryEntry удаляет запись дневника.
	RemoveDiaryEntry(ctx context.Context, userUID, id string) (int, error)
	// AwardXP атомарно начисляет опыт и возвращает новые значения профиля.
	AwardXP(ctx context.Context, userUID string, amount int, source string) (*models.XPAward, error)
}

// DiaryService реализует бизнес-логику дневника. Состояние разблокировок
// держится в памяти процесса и не переживает рестарт, это сознательное
// сужение: после рестарта дневник снова заперт.
type DiaryService struct {
	repo   DiaryRepository
	log    *slog.Logger
	window time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewDiaryService создает новый экземпляр DiaryService.
func NewDiaryService(repo DiaryRepository, log *slog.Logger) *DiaryService {
	return &DiaryService{
		repo:   repo,
		log:    log,
		window: UnlockWindow,
		timers: make(map[string]*time.Timer),
	}
}

// Unlock проверяет PIN и открывает окно доступа к дневнику.
func (s *DiaryService) Unlock(ctx context.Context, userUID, rawPin string) error {
	user, err := s.repo.GetUser(ctx, userUID)
	if err != nil {
		return err
	}
	if err := pin.CompareHash(user.DiaryPinHash, rawPin); err != nil {
		return ErrWrongPin
	}

	s.refreshWindow(userUID)
	s.log.Info("diary unlocked", slog.String("useruid", userUID))
	return nil
}

// refreshWindow открывает или продлевает окно доступа пользователя.
func (s *DiaryService) refreshWindow(userUID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[userUID]; ok {
		t.Stop()
	}
	s.timers[userUID] = time.AfterFunc(s.window, func() {
		s.mu.Lock()
		delete(s.timers, userUID)
		s.mu.Unlock()
	})
}

// checkUnlocked возвращает ErrLocked, если окно доступа закрыто,
// и продлевает его в противном случае.
func (s *DiaryService) checkUnlocked(userUID string) error {
	s.mu.Lock()
	_, ok := s.timers[userUID]
	s.mu.Unlock()
	if !ok {
		return ErrLocked
	}
	s.refreshWindow(userUID)
	return nil
}

// Create добавляет запись дневника и начисляет опыт.
func (s *DiaryService) Create(ctx context.Context, userUID string, req models.DummyDiaryEntry) (string, *models.XPAward, error) {
	if err := s.checkUnlocked(userUID); err != nil {
		return "", nil, err
	}

	id, err := s.repo.CreateDiaryEntry(ctx, models.DiaryEntry{
		UserUID: userUID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return "", nil, err
	}
	s.log.Info("created new diary entry", slog.String("id", id))

	award, err := s.repo.AwardXP(ctx, userUID, leveling.RewardDiary, XPSourceDiary)
	if err != nil {
		s.log.Warn("failed to award xp for diary entry", sl.Err(err))
		return id, nil, nil
	}
	return id, award, nil
}

// List возвращает записи дневника, сначала новые.
func (s *DiaryService) List(ctx context.Context, userUID string) ([]*models.DiaryEntry, error) {
	if err := s.checkUnlocked(userUID); err != nil {
		return nil, err
	}
	return s.repo.ListDiaryEntrys(ctx, userUID)
}

// Update обновляет запись дневника без начисления опыта.
func (s *DiaryService) Update(ctx context.Context, userUID, id string, req models.DummyDiaryEntry) (int, error) {
	if err := s.checkUnlocked(userUID); err != nil {
		return 0, err
	}
	return s.repo.UpdateDiaryEntry(ctx, userUID, id, req)
}

// Remove удаляет запись дневника.
func (s *DiaryService) Remove(ctx context.Context, userUID, id string) (int, error) {
	if err := s.checkUnlocked(userUID); err != nil {
		return 0, err
	}
	return s.repo.RemoveDiaryEntry(ctx, userUID, id)
}
