package workoutgen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/liferpg-tracker/internal/config"
)

func newTestClient(srvURL string) *Client {
	return NewClient(config.Gemini{
		GeminiAddress: srvURL,
		GeminiModel:   "test-model",
		GeminiAPIKey:  "test-key",
		GeminiTimeout: 5 * time.Second,
	})
}

// candidateResponse оборачивает текст плана в структуру ответа generateContent.
func candidateResponse(planJSON string) string {
	resp := map[string]any{
		"candidates": []map[string]any{{
			"content": map[string]any{
				"parts": []map[string]any{{"text": planJSON}},
			},
		}},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestClient_Generate(t *testing.T) {
	validPlan := `{
		"name": "Набор массы",
		"description": "Базовая программа на три дня",
		"exercises": [
			{"name": "Приседания", "sets": 5, "reps": "5", "weight": "80kg"},
			{"name": "Жим лёжа", "sets": 5, "reps": "5"}
		]
	}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req generateContentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "build muscle")
		assert.Contains(t, req.Contents[0].Parts[0].Text, "fitness level 3")
		assert.Equal(t, "application/json", req.GenerationConfig.ResponseMimeType)

		_, _ = w.Write([]byte(candidateResponse(validPlan)))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	plan, err := client.Generate(context.Background(), "build muscle", 3)

	require.NoError(t, err)
	assert.Equal(t, "Набор массы", plan.Name)
	assert.Equal(t, "Базовая программа на три дня", plan.Description)
	require.Len(t, plan.Exercises, 2)
	assert.Equal(t, "Приседания", plan.Exercises[0].Name)
	assert.Equal(t, 5, plan.Exercises[0].Sets)
	assert.Equal(t, "80kg", plan.Exercises[0].Weight)
}

func TestClient_Generate_BadResponses(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{
			name: "no candidates",
			body: `{"candidates": []}`,
		},
		{
			name: "payload is not json",
			body: candidateResponse("here is your plan: squats and bench press"),
		},
		{
			name: "plan without name",
			body: candidateResponse(`{"description": "d", "exercises": [{"name": "Squat", "sets": 3, "reps": "10"}]}`),
		},
		{
			name: "plan without exercises",
			body: candidateResponse(`{"name": "План", "description": "d", "exercises": []}`),
		},
		{
			name: "exercise with zero sets",
			body: candidateResponse(`{"name": "План", "exercises": [{"name": "Squat", "sets": 0, "reps": "10"}]}`),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := newTestClient(srv.URL)
			_, err := client.Generate(context.Background(), "lose weight", 1)

			assert.ErrorIs(t, err, ErrBadPlan)
		})
	}
}

func TestClient_Generate_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Generate(context.Background(), "lose weight", 1)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrBadPlan)
}
