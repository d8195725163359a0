package filestore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

// CreateWorkoutPlan добавляет план тренировки и возвращает его ID.
func (s *Storage) CreateWorkoutPlan(ctx context.Context, plan models.WorkoutPlan) (string, error) {
	const op = "storage.CreateWorkoutPlan"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	plan.ID = uuid.NewString()
	plan.CreatedAt = time.Now()
	s.data.WorkoutPlans = append(s.data.WorkoutPlans, &plan)

	if err := s.save(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return plan.ID, nil
}

// ListWorkoutPlans возвращает планы тренировок пользователя, сначала новые.
func (s *Storage) ListWorkoutPlans(ctx context.Context, userUID string) ([]*models.WorkoutPlan, error) {
	const op = "storage.ListWorkoutPlans"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*models.WorkoutPlan
	for _, p := range s.data.WorkoutPlans {
		if p.UserUID == userUID {
			item := *p
			result = append(result, &item)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}
