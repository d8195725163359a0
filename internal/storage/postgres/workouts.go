package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

// CreateWorkoutPlan вставляет новый план тренировки и возвращает его ID.
// Упражнения сериализуются в JSONB с сохранением порядка.
func (s *Storage) CreateWorkoutPlan(ctx context.Context, plan models.WorkoutPlan) (string, error) {
	const op = "storage.CreateWorkoutPlan"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	exercises, err := json.Marshal(plan.Exercises)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO workout_plans (user_uid, name, description, exercises)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	var newID string
	err = s.DB.QueryRowContext(ctx, query,
		plan.UserUID, plan.Name, plan.Description, exercises).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListWorkoutPlans возвращает планы тренировок пользователя, сначала новые.
func (s *Storage) ListWorkoutPlans(ctx context.Context, userUID string) ([]*models.WorkoutPlan, error) {
	const op = "storage.ListWorkoutPlans"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, name, description, exercises, created_at
			  FROM workout_plans
			  WHERE user_uid = $1
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []*models.WorkoutPlan
	for rows.Next() {
		var item models.WorkoutPlan
		var exercises []byte
		if err := rows.Scan(&item.ID, &item.UserUID, &item.Name, &item.Description,
			&exercises, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err := json.Unmarshal(exercises, &item.Exercises); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	err = rows.Close()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
