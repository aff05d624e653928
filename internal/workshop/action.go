package workshop

// Action names one of the four independently triggerable operations.
type Action string

const (
	ActionGenerateCode  Action = "generate-code"
	ActionGenerateTests Action = "generate-tests"
	ActionGenerateDocs  Action = "generate-docs"
	ActionQualityReport Action = "quality-report"
)

// Actions lists every action in display order.
var Actions = []Action{ActionGenerateCode, ActionGenerateTests, ActionGenerateDocs, ActionQualityReport}

func (a Action) Valid() bool {
	for _, known := range Actions {
		if a == known {
			return true
		}
	}
	return false
}

// verb is used in failure messages, e.g. "Error generating tests: ...".
func (a Action) verb() string {
	switch a {
	case ActionGenerateCode:
		return "generating code"
	case ActionGenerateTests:
		return "generating tests"
	case ActionGenerateDocs:
		return "generating documentation"
	case ActionQualityReport:
		return "generating quality report"
	}
	return string(a)
}

// fallbackFailure is reported when the backend flags a failure without notes.
func (a Action) fallbackFailure() string {
	switch a {
	case ActionGenerateCode:
		return "Failed to generate code"
	case ActionGenerateTests:
		return "Failed to generate tests"
	case ActionGenerateDocs:
		return "Failed to generate documentation"
	case ActionQualityReport:
		return "Failed to generate quality report"
	}
	return "Request failed"
}

func (a Action) fallbackSuccess() string {
	switch a {
	case ActionGenerateCode:
		return "Code generated"
	case ActionGenerateTests:
		return "Tests generated"
	case ActionGenerateDocs:
		return "Documentation generated"
	case ActionQualityReport:
		return "Quality report ready"
	}
	return "Done"
}
