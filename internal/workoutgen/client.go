// Package workoutgen реализует клиент внешнего генератора планов
// тренировок поверх Gemini API. Клиент просит модель ответить строгим
// JSON-объектом плана и превращает его в черновик models.WorkoutPlan.
// Любой недоступный, пустой или некорректный ответ модели считается
// ошибкой генерации, частичные планы не сохраняются.
package workoutgen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/magabrotheeeer/liferpg-tracker/internal/config"
	"github.com/magabrotheeeer/liferpg-tracker/internal/models"
)

// ErrBadPlan возвращается, когда модель ответила, но ответ не удалось
// разобрать в корректный план.
var ErrBadPlan = errors.New("generator returned malformed plan")

type Client struct {
	apiURL     string
	model      string
	apiKey     string
	httpClient *http.Client
}

// NewClient создаёт новый клиент генератора планов тренировок.
func NewClient(cfg config.Gemini) *Client {
	return &Client{
		apiURL:     cfg.GeminiAddress,
		model:      cfg.GeminiModel,
		apiKey:     cfg.GeminiAPIKey,
		httpClient: &http.Client{Timeout: cfg.GeminiTimeout},
	}
}

// Generate запрашивает у модели план тренировки под заданную цель,
// учитывая текущий уровень пользователя.
func (c *Client) Generate(ctx context.Context, goal string, level int) (*models.WorkoutPlan, error) {
	const op = "workoutgen.Generate"

	prompt := fmt.Sprintf(
		"Create a workout plan for the following goal: %s. "+
			"The user is at fitness level %d, scale the difficulty accordingly. "+
			"Respond with a JSON object: name, description and a list of exercises "+
			"(name, sets, reps and optional weight).", goal, level)

	reqBody := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   workoutPlanSchema(),
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(reqBody); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.apiURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected status: %s", op, resp.Status)
	}

	var genResp generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrBadPlan)
	}

	var payload planPayload
	if err := json.Unmarshal([]byte(genResp.Candidates[0].Content.Parts[0].Text), &payload); err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrBadPlan)
	}
	if payload.Name == "" || len(payload.Exercises) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrBadPlan)
	}

	plan := models.WorkoutPlan{
		Name:        payload.Name,
		Description: payload.Description,
	}
	for _, e := range payload.Exercises {
		if e.Name == "" || e.Sets <= 0 || e.Reps == "" {
			return nil, fmt.Errorf("%s: %w", op, ErrBadPlan)
		}
		plan.Exercises = append(plan.Exercises, models.Exercise{
			Name:   e.Name,
			Sets:   e.Sets,
			Reps:   e.Reps,
			Weight: e.Weight,
		})
	}
	return &plan, nil
}
