package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/liferpg-tracker/internal/lib/leveling"
	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateFinanceEntry(ctx context.Context, entry models.FinancialEntry) (string, error) {
	args := m.Called(ctx, entry)
	return args.String(0), args.Error(1)
}
func (m *RepoMock) ListFinanceEntrys(ctx context.Context, userUID string) ([]*models.FinancialEntry, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FinancialEntry), args.Error(1)
}
func (m *RepoMock) RemoveFinanceEntry(ctx context.Context, userUID, id string) (int, error) {
	args := m.Called(ctx, userUID, id)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) AttachFileToFinanceEntry(ctx context.Context, userUID, entryID, fileID string) error {
	return m.Called(ctx, userUID, entryID, fileID).Error(0)
}
func (m *RepoMock) AwardXP(ctx context.Context, userUID string, amount int, source string) (*models.XPAward, error) {
	args := m.Called(ctx, userUID, amount, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.XPAward), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestFinanceService_Create(t *testing.T) {
	req := models.DummyFinanceEntry{
		Type:        "expense",
		Amount:      1250.50,
		Description: "Продукты",
		Category:    "еда",
		Date:        "2026-08-28",
	}

	t.Run("success with award", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("CreateFinanceEntry", mock.Anything, mock.MatchedBy(func(e models.FinancialEntry) bool {
			return e.UserUID == "user-1" && e.Type == "expense" && e.Amount == 1250.50
		})).Return("entry-1", nil).Once()
		repo.On("AwardXP", mock.Anything, "user-1", leveling.RewardFinance, XPSourceFinance).
			Return(&models.XPAward{XP: 8, Level: 1, Streak: 1}, nil).Once()

		svc := NewFinanceService(repo, newNoopLogger())
		id, award, err := svc.Create(context.Background(), "user-1", req)

		assert.NoError(t, err)
		assert.Equal(t, "entry-1", id)
		assert.NotNil(t, award)
		repo.AssertExpectations(t)
	})

	t.Run("award failure keeps the entry", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("CreateFinanceEntry", mock.Anything, mock.Anything).Return("entry-2", nil).Once()
		repo.On("AwardXP", mock.Anything, "user-1", leveling.RewardFinance, XPSourceFinance).
			Return(nil, errors.New("db down")).Once()

		svc := NewFinanceService(repo, newNoopLogger())
		id, award, err := svc.Create(context.Background(), "user-1", req)

		assert.NoError(t, err)
		assert.Equal(t, "entry-2", id)
		assert.Nil(t, award)
		repo.AssertExpectations(t)
	})
}

func TestFinanceService_Import(t *testing.T) {
	tests := []struct {
		name         string
		data         string
		wantImported int
		wantEntries  []models.FinancialEntry
		wantErr      bool
	}{
		{
			name: "mixed income and expense",
			data: "2026-08-01,Зарплата,85000,работа\n2026-08-02,Продукты,-3200.50,еда\n",
			wantEntries: []models.FinancialEntry{
				{UserUID: "user-1", Type: "income", Amount: 85000, Description: "Зарплата", Category: "работа", Date: "2026-08-01"},
				{UserUID: "user-1", Type: "expense", Amount: 3200.50, Description: "Продукты", Category: "еда", Date: "2026-08-02"},
			},
			wantImported: 2,
		},
		{
			name: "bad rows are skipped",
			data: "not-a-date,Ошибка,100,еда\n2026-08-03,Без суммы,abc,еда\n2026-08-04,Ноль,0,еда\n2026-08-05,Кафе,-700\n",
			wantEntries: []models.FinancialEntry{
				{UserUID: "user-1", Type: "expense", Amount: 700, Description: "Кафе", Category: "", Date: "2026-08-05"},
			},
			wantImported: 1,
		},
		{
			name:         "row with empty description is skipped",
			data:         "2026-08-05,,100,еда\n2026-08-06,  ,200,еда\n",
			wantImported: 0,
		},
		{
			name:         "empty input",
			data:         "",
			wantImported: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			for _, want := range tt.wantEntries {
				want := want
				repo.On("CreateFinanceEntry", mock.Anything, want).Return("id-"+want.Date, nil).Once()
			}
			if tt.wantImported > 0 {
				// опыт начисляется за каждую созданную запись
				repo.On("AwardXP", mock.Anything, "user-1", leveling.RewardFinance, XPSourceFinance).
					Return(&models.XPAward{XP: 8, Level: 1, Streak: 1}, nil).Times(tt.wantImported)
			}

			svc := NewFinanceService(repo, newNoopLogger())
			imported, err := svc.Import(context.Background(), "user-1", tt.data)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantImported, imported)
			repo.AssertExpectations(t)
		})
	}
}

func TestFinanceService_Import_AwardFailureDoesNotStop(t *testing.T) {
	repo := new(RepoMock)
	repo.On("CreateFinanceEntry", mock.Anything, mock.Anything).Return("entry-1", nil).Times(2)
	repo.On("AwardXP", mock.Anything, "user-1", leveling.RewardFinance, XPSourceFinance).
		Return(nil, errors.New("db down")).Times(2)

	svc := NewFinanceService(repo, newNoopLogger())
	imported, err := svc.Import(context.Background(), "user-1",
		"2026-08-01,Зарплата,85000,работа\n2026-08-02,Продукты,-3200.50,еда\n")

	assert.NoError(t, err)
	assert.Equal(t, 2, imported)
	repo.AssertExpectations(t)
}
