package models

// DefaultDocumentationFilename is used when the backend omits a filename.
const DefaultDocumentationFilename = "documentation.md"

// Documentation is the generated documentation bundle.
type Documentation struct {
	Content  string   `json:"content"`
	Filename string   `json:"filename"`
	Notes    []string `json:"notes"`
}

// Grade is a letter grade assigned by the quality report.
type Grade string

const (
	GradeAPlus  Grade = "A+"
	GradeA      Grade = "A"
	GradeAMinus Grade = "A-"
	GradeBPlus  Grade = "B+"
	GradeB      Grade = "B"
	GradeBMinus Grade = "B-"
	GradeCPlus  Grade = "C+"
	GradeC      Grade = "C"
	GradeCMinus Grade = "C-"
	GradeD      Grade = "D"
	GradeF      Grade = "F"
)

// NeutralGradeColor is shown when a report carries no recognised grade.
const NeutralGradeColor = "#6b7280"

var gradeColors = map[Grade]string{
	GradeAPlus:  "#15803d",
	GradeA:      "#16a34a",
	GradeAMinus: "#22c55e",
	GradeBPlus:  "#2563eb",
	GradeB:      "#3b82f6",
	GradeBMinus: "#60a5fa",
	GradeCPlus:  "#d97706",
	GradeC:      "#f59e0b",
	GradeCMinus: "#fbbf24",
	GradeD:      "#ea580c",
	GradeF:      "#dc2626",
}

// GradeColor maps a grade to its presentation color.
func GradeColor(g Grade) string {
	if c, ok := gradeColors[g]; ok {
		return c
	}
	return NeutralGradeColor
}

// QualityMetric is a single scored dimension of a quality report.
type QualityMetric struct {
	Name        string  `json:"name"`
	Score       float64 `json:"score"`
	Letter      string  `json:"letter"`
	Explanation string  `json:"explanation"`
}

// QualityReport is the graded analysis returned by the quality endpoint.
type QualityReport struct {
	FinalGrade  Grade           `json:"finalGrade"`
	FinalScore  float64         `json:"finalScore"`
	Metrics     []QualityMetric `json:"metrics"`
	Suggestions []string        `json:"suggestions"`
}
