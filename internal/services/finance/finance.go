// Package services содержит бизнес-логику финансового журнала, включая
// массовый импорт табличного текста.
package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/leveling"
	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

// XPSourceFinance причина начисления опыта за финансовую запись.
const XPSourceFinance = "Финансовая запись добавлена"

// FinanceRepository определяет методы для работы с финансами в хранилище.
type FinanceRepository interface {
	// CreateFinanceEntry добавляет финансовую запись и возвращает её ID.
	CreateFinanceEntry(ctx context.Context, entry models.FinancialEntry) (string, error)
	// ListFinanceEntrys возвращает финансовые записи пользователя.
	ListFinanceEntrys(ctx context.Context, userUID string) ([]*models.FinancialEntry, error)
	// RemoveFinanceEntry удаляет финансовую запись.
	RemoveFinanceEntry(ctx context.Context, userUID, id string) (int, error)
	// AttachFileToFinanceEntry добавляет файл в список вложений записи.
	AttachFileToFinanceEntry(ctx context.Context, userUID, entryID, fileID string) error
	// AwardXP атомарно начисляет опыт и возвращает новые значения профиля.
	AwardXP(ctx context.Context, userUID string, amount int, source string) (*models.XPAward, error)
}

// FinanceService реализует бизнес-логику финансового журнала.
type FinanceService struct {
	repo FinanceRepository
	log  *slog.Logger
}

// NewFinanceService создает новый экземпляр FinanceService.
func NewFinanceService(repo FinanceRepository, log *slog.Logger) *FinanceService {
	return &FinanceService{
		repo: repo,
		log:  log,
	}
}

// Create добавляет финансовую запись и начисляет опыт. Неудача
// начисления запись не откатывает.
func (s *FinanceService) Create(ctx context.Context, userUID string, req models.DummyFinanceEntry) (string, *models.XPAward, error) {
	id, err := s.repo.CreateFinanceEntry(ctx, models.FinancialEntry{
		UserUID:     userUID,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Date:        req.Date,
	})
	if err != nil {
		return "", nil, err
	}
	s.log.Info("created new finance entry", slog.String("id", id))

	award, err := s.repo.AwardXP(ctx, userUID, leveling.RewardFinance, XPSourceFinance)
	if err != nil {
		s.log.Warn("failed to award xp for finance entry", sl.Err(err))
		return id, nil, nil
	}
	return id, award, nil
}

// List возвращает финансовые записи пользователя, сначала новые.
func (s *FinanceService) List(ctx context.Context, userUID string) ([]*models.FinancialEntry, error) {
	return s.repo.ListFinanceEntrys(ctx, userUID)
}

// Remove удаляет финансовую запись и возвращает количество удалённых записей.
func (s *FinanceService) Remove(ctx context.Context, userUID, id string) (int, error) {
	return s.repo.RemoveFinanceEntry(ctx, userUID, id)
}

// Attach добавляет файл в список вложений записи.
func (s *FinanceService) Attach(ctx context.Context, userUID, entryID, fileID string) error {
	return s.repo.AttachFileToFinanceEntry(ctx, userUID, entryID, fileID)
}

// Import разбирает табличный текст и создаёт записи пакетом. Каждая
// строка: дата, описание, знаковая сумма, категория. Знак суммы
// определяет тип записи. Строки без даты, описания или суммы
// пропускаются. За каждую созданную запись опыт начисляется как при
// обычном добавлении, неудача начисления импорт не прерывает.
func (s *FinanceService) Import(ctx context.Context, userUID, data string) (int, error) {
	reader := csv.NewReader(strings.NewReader(data))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("invalid csv: %w", err)
	}

	var imported int
	for _, rec := range records {
		if len(rec) < 3 {
			continue
		}
		date := strings.TrimSpace(rec[0])
		if _, err := time.Parse(models.DateLayout, date); err != nil {
			continue
		}
		description := strings.TrimSpace(rec[1])
		if description == "" {
			continue
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
		if err != nil || amount == 0 {
			continue
		}
		entryType := "income"
		if amount < 0 {
			entryType = "expense"
			amount = -amount
		}
		category := ""
		if len(rec) > 3 {
			category = strings.TrimSpace(rec[3])
		}

		if _, err := s.repo.CreateFinanceEntry(ctx, models.FinancialEntry{
			UserUID:     userUID,
			Type:        entryType,
			Amount:      amount,
			Description: description,
			Category:    category,
			Date:        date,
		}); err != nil {
			return imported, err
		}
		imported++

		if _, err := s.repo.AwardXP(ctx, userUID, leveling.RewardFinance, XPSourceFinance); err != nil {
			s.log.Warn("failed to award xp for imported finance entry", sl.Err(err))
		}
	}

	s.log.Info("imported finance entries", slog.Int("count", imported))
	return imported, nil
}
