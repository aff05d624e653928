package workshop

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atum/internal/backend"
	"atum/internal/models"
)

func requireGateMessage(t *testing.T, err error, action Action, msg string) {
	t.Helper()
	var gerr *GateError
	require.True(t, errors.As(err, &gerr), "expected GateError, got %v", err)
	assert.Equal(t, action, gerr.Action)
	assert.Equal(t, msg, gerr.Message)
}

func TestGateGenerateCode(t *testing.T) {
	_, err := GateGenerateCode(Selection{Query: "  ", Language: models.LanguageGo})
	requireGateMessage(t, err, ActionGenerateCode, MsgMissingQuery)

	_, err = GateGenerateCode(Selection{Query: "fizzbuzz"})
	requireGateMessage(t, err, ActionGenerateCode, MsgMissingLanguage)

	req, err := GateGenerateCode(Selection{Query: "fizzbuzz", Language: models.LanguageGo})
	require.NoError(t, err)
	assert.Equal(t, backend.GenerateCodeRequest{Query: "fizzbuzz", Language: "go"}, req)
}

func TestGateGenerateTests(t *testing.T) {
	full := Selection{Language: models.LanguagePython, Framework: models.FrameworkPytest}

	_, err := GateGenerateTests(full, "")
	requireGateMessage(t, err, ActionGenerateTests, MsgMissingSource)

	_, err = GateGenerateTests(full, Placeholder)
	requireGateMessage(t, err, ActionGenerateTests, MsgMissingSource)

	_, err = GateGenerateTests(Selection{Framework: models.FrameworkPytest}, "x = 1")
	requireGateMessage(t, err, ActionGenerateTests, MsgMissingLanguage)

	_, err = GateGenerateTests(Selection{Language: models.LanguagePython}, "x = 1")
	requireGateMessage(t, err, ActionGenerateTests, MsgMissingFramework)

	req, err := GateGenerateTests(full, "x = 1")
	require.NoError(t, err)
	assert.Equal(t, backend.GenerateTestsRequest{Code: "x = 1", Language: "python", Framework: "pytest"}, req)
}

func TestGateGenerateDocs(t *testing.T) {
	_, err := GateGenerateDocs(Selection{}, " \n")
	requireGateMessage(t, err, ActionGenerateDocs, MsgMissingSource)

	req, err := GateGenerateDocs(Selection{}, "x = 1")
	require.NoError(t, err)
	assert.Equal(t, backend.GenerateDocsRequest{Code: "x = 1"}, req)

	req, err = GateGenerateDocs(Selection{Query: "  Inventory API  ", Language: models.LanguageGo}, "x = 1")
	require.NoError(t, err)
	assert.Equal(t, backend.GenerateDocsRequest{Code: "x = 1", Language: "go", ProjectName: "Inventory API"}, req)
}

func TestGateQualityReport(t *testing.T) {
	_, err := GateQualityReport(Selection{Language: models.LanguageGo}, "")
	requireGateMessage(t, err, ActionQualityReport, MsgMissingSource)

	req, err := GateQualityReport(Selection{}, "x = 1")
	require.NoError(t, err)
	assert.Equal(t, backend.QualityReportRequest{Code: "x = 1"}, req)

	req, err = GateQualityReport(Selection{Language: models.LanguageRuby}, "x = 1")
	require.NoError(t, err)
	assert.Equal(t, "ruby", req.Language)
}

func TestProjectName_TruncatesTo80Characters(t *testing.T) {
	long := "  " + strings.Repeat("é", 100) + "  "
	name := ProjectName(long)
	assert.Equal(t, 80, len([]rune(name)))
	assert.Equal(t, strings.Repeat("é", 80), name)
	assert.Equal(t, "", ProjectName("   "))
}
