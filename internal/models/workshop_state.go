package models

// SelectionState mirrors the user's current choices.
type SelectionState struct {
	Query     string    `json:"query"`
	Language  Language  `json:"language"`
	Framework Framework `json:"framework"`
}

// WorkshopState is the full view of the controller sent to the frontend.
// Nil result pointers mean the action has never succeeded.
type WorkshopState struct {
	Selection       SelectionState  `json:"selection"`
	ManualCode      string          `json:"manualCode"`
	EffectiveSource string          `json:"effectiveSource"`
	Placeholder     string          `json:"placeholder"`
	GeneratedCode   *string         `json:"generatedCode"`
	GeneratedTests  *string         `json:"generatedTests"`
	Documentation   *Documentation  `json:"documentation"`
	QualityReport   *QualityReport  `json:"qualityReport"`
	DetailsExpanded bool            `json:"detailsExpanded"`
	GradeColor      string          `json:"gradeColor"`
	Busy            map[string]bool `json:"busy"`
	Error           *Notification   `json:"error"`
	Notification    *Notification   `json:"notification"`
}
