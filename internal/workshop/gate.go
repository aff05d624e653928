package workshop

import (
	"strings"

	"atum/internal/backend"
)

const (
	MsgMissingQuery     = "Please describe the code you want to generate"
	MsgMissingLanguage  = "Please select a programming language"
	MsgMissingSource    = "Please generate or paste some code first"
	MsgMissingFramework = "Please select a testing framework"
)

// MaxProjectNameLength caps the project name derived from the query.
const MaxProjectNameLength = 80

// GateError is returned when an action's preconditions are not met.
// No request is issued for a gated action.
type GateError struct {
	Action  Action
	Message string
}

func (e *GateError) Error() string { return e.Message }

func gated(a Action, msg string) *GateError {
	return &GateError{Action: a, Message: msg}
}

func GateGenerateCode(sel Selection) (backend.GenerateCodeRequest, error) {
	if strings.TrimSpace(sel.Query) == "" {
		return backend.GenerateCodeRequest{}, gated(ActionGenerateCode, MsgMissingQuery)
	}
	if sel.Language == "" {
		return backend.GenerateCodeRequest{}, gated(ActionGenerateCode, MsgMissingLanguage)
	}
	return backend.GenerateCodeRequest{Query: sel.Query, Language: string(sel.Language)}, nil
}

func GateGenerateTests(sel Selection, source string) (backend.GenerateTestsRequest, error) {
	if !HasUsableSource(source) {
		return backend.GenerateTestsRequest{}, gated(ActionGenerateTests, MsgMissingSource)
	}
	if sel.Language == "" {
		return backend.GenerateTestsRequest{}, gated(ActionGenerateTests, MsgMissingLanguage)
	}
	if sel.Framework == "" {
		return backend.GenerateTestsRequest{}, gated(ActionGenerateTests, MsgMissingFramework)
	}
	return backend.GenerateTestsRequest{
		Code:      source,
		Language:  string(sel.Language),
		Framework: string(sel.Framework),
	}, nil
}

func GateGenerateDocs(sel Selection, source string) (backend.GenerateDocsRequest, error) {
	if !HasUsableSource(source) {
		return backend.GenerateDocsRequest{}, gated(ActionGenerateDocs, MsgMissingSource)
	}
	return backend.GenerateDocsRequest{
		Code:        source,
		Language:    string(sel.Language),
		ProjectName: ProjectName(sel.Query),
	}, nil
}

func GateQualityReport(sel Selection, source string) (backend.QualityReportRequest, error) {
	if !HasUsableSource(source) {
		return backend.QualityReportRequest{}, gated(ActionQualityReport, MsgMissingSource)
	}
	return backend.QualityReportRequest{Code: source, Language: string(sel.Language)}, nil
}

// ProjectName derives the documentation project name from the query:
// trimmed and cut to MaxProjectNameLength characters.
func ProjectName(query string) string {
	name := strings.TrimSpace(query)
	if r := []rune(name); len(r) > MaxProjectNameLength {
		name = string(r[:MaxProjectNameLength])
	}
	return name
}
