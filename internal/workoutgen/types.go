package workoutgen

// generateContentRequest тело запроса generateContent.
type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generationConfig заставляет модель отвечать строго JSON-объектом
// заданной схемы.
type generationConfig struct {
	ResponseMimeType string  `json:"responseMimeType"`
	ResponseSchema   *schema `json:"responseSchema,omitempty"`
}

type schema struct {
	Type       string             `json:"type"`
	Properties map[string]*schema `json:"properties,omitempty"`
	Items      *schema            `json:"items,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

// generateContentResponse ответ generateContent, используется только
// текст первой части первого кандидата.
type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// planPayload структура JSON-ответа модели.
type planPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Exercises   []struct {
		Name   string `json:"name"`
		Sets   int    `json:"sets"`
		Reps   string `json:"reps"`
		Weight string `json:"weight"`
	} `json:"exercises"`
}

func workoutPlanSchema() *schema {
	return &schema{
		Type: "OBJECT",
		Properties: map[string]*schema{
			"name":        {Type: "STRING"},
			"description": {Type: "STRING"},
			"exercises": {
				Type: "ARRAY",
				Items: &schema{
					Type: "OBJECT",
					Properties: map[string]*schema{
						"name":   {Type: "STRING"},
						"sets":   {Type: "INTEGER"},
						"reps":   {Type: "STRING"},
						"weight": {Type: "STRING"},
					},
					Required: []string{"name", "sets", "reps"},
				},
			},
		},
		Required: []string{"name", "description", "exercises"},
	}
}
