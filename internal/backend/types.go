package backend

import "atum/internal/models"

// Request payloads, one per endpoint. Optional fields are omitted when empty.

type GenerateCodeRequest struct {
	Query    string `json:"query"`
	Language string `json:"language"`
}

type GenerateTestsRequest struct {
	Code      string `json:"code"`
	Language  string `json:"language"`
	Framework string `json:"framework"`
}

type GenerateDocsRequest struct {
	Code        string `json:"code"`
	Language    string `json:"language,omitempty"`
	ProjectName string `json:"project_name,omitempty"`
}

type QualityReportRequest struct {
	Code     string `json:"code"`
	Language string `json:"language,omitempty"`
}

// Wire responses. These are never handed to callers; adapters turn them into
// an Outcome.

type generateCodeResponse struct {
	GeneratedCode string `json:"generated_code"`
}

type generateTestsResponse struct {
	OK    bool     `json:"ok"`
	Tests string   `json:"tests"`
	Notes []string `json:"notes"`
}

type generateDocsResponse struct {
	OK       bool     `json:"ok"`
	Content  string   `json:"content"`
	Filename string   `json:"filename"`
	Notes    []string `json:"notes"`
}

type qualityMetricResponse struct {
	Name        string  `json:"name" validate:"required"`
	Score       float64 `json:"score" validate:"min=0,max=100"`
	Letter      string  `json:"letter"`
	Explanation string  `json:"explanation"`
}

type qualityReportResponse struct {
	OK          bool                    `json:"ok"`
	FinalGrade  string                  `json:"final_grade" validate:"omitempty,oneof=A+ A A- B+ B B- C+ C C- D F"`
	FinalScore  float64                 `json:"final_score" validate:"min=0,max=100"`
	Metrics     []qualityMetricResponse `json:"metrics" validate:"dive"`
	Suggestions []string                `json:"suggestions"`
}

// Outcome is the tagged result of one call that reached the backend: either
// OK with a Payload, or a logical failure described by Messages.
type Outcome[T any] struct {
	OK       bool
	Payload  T
	Messages []string
}

func success[T any](payload T) Outcome[T] {
	return Outcome[T]{OK: true, Payload: payload}
}

func failure[T any](messages []string) Outcome[T] {
	return Outcome[T]{Messages: messages}
}

type (
	CodeOutcome    = Outcome[string]
	TestsOutcome   = Outcome[string]
	DocsOutcome    = Outcome[models.Documentation]
	QualityOutcome = Outcome[models.QualityReport]
)
