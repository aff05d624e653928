package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atum/internal/models"
)

func newTestServer(t *testing.T, path string, status int, body string, capture *map[string]any) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, path, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		if capture != nil {
			m := map[string]any{}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&m))
			*capture = m
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL + "/")
}

func TestGenerateCode_SendsQueryAndLanguage(t *testing.T) {
	var got map[string]any
	c := newTestServer(t, PathGenerateCode, http.StatusOK, `{"generated_code":"print('hi')"}`, &got)

	out, err := c.GenerateCode(context.Background(), GenerateCodeRequest{Query: "say hi", Language: "python"})
	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.Equal(t, "print('hi')", out.Payload)
	assert.Equal(t, map[string]any{"query": "say hi", "language": "python"}, got)
}

func TestGenerateCode_EmptyBodyFallsBackToComment(t *testing.T) {
	c := newTestServer(t, PathGenerateCode, http.StatusOK, `{}`, nil)

	out, err := c.GenerateCode(context.Background(), GenerateCodeRequest{Query: "q", Language: "go"})
	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.Equal(t, "// No code generated", out.Payload)
}

func TestGenerateTests_ApplicationFailureCarriesNotes(t *testing.T) {
	c := newTestServer(t, PathGenerateTests, http.StatusOK, `{"ok":false,"notes":["Error: Code cannot be empty","retry"]}`, nil)

	out, err := c.GenerateTests(context.Background(), GenerateTestsRequest{Code: "x", Language: "python", Framework: "pytest"})
	require.NoError(t, err)
	assert.False(t, out.OK)
	assert.Equal(t, []string{"Error: Code cannot be empty", "retry"}, out.Messages)
}

func TestGenerateDocs_OmitsOptionalFieldsAndDefaultsFilename(t *testing.T) {
	var got map[string]any
	c := newTestServer(t, PathGenerateDocs, http.StatusOK, `{"ok":true,"content":"# Doc"}`, &got)

	out, err := c.GenerateDocs(context.Background(), GenerateDocsRequest{Code: "x"})
	require.NoError(t, err)
	require.True(t, out.OK)
	assert.Equal(t, models.Documentation{Content: "# Doc", Filename: "documentation.md", Notes: []string{}}, out.Payload)
	assert.Equal(t, map[string]any{"code": "x"}, got)
}

func TestGenerateDocs_KeepsReturnedFilename(t *testing.T) {
	c := newTestServer(t, PathGenerateDocs, http.StatusOK, `{"ok":true,"content":"c","filename":"atum_documentation.md","notes":["ok"]}`, nil)

	out, err := c.GenerateDocs(context.Background(), GenerateDocsRequest{Code: "x", Language: "go", ProjectName: "Atum"})
	require.NoError(t, err)
	assert.Equal(t, "atum_documentation.md", out.Payload.Filename)
	assert.Equal(t, []string{"ok"}, out.Payload.Notes)
}

func TestQualityReport_Success(t *testing.T) {
	body := `{"ok":true,"final_grade":"B","final_score":82,"metrics":[{"name":"Lines of Code","score":95,"letter":"A","explanation":"Size looks manageable."}],"suggestions":[]}`
	c := newTestServer(t, PathQualityReport, http.StatusOK, body, nil)

	out, err := c.QualityReport(context.Background(), QualityReportRequest{Code: "x", Language: "go"})
	require.NoError(t, err)
	require.True(t, out.OK)
	assert.Equal(t, models.GradeB, out.Payload.FinalGrade)
	assert.Equal(t, 82.0, out.Payload.FinalScore)
	require.Len(t, out.Payload.Metrics, 1)
	assert.Equal(t, "Lines of Code", out.Payload.Metrics[0].Name)
	assert.Empty(t, out.Payload.Suggestions)
}

func TestQualityReport_AcceptsFractionalScores(t *testing.T) {
	body := `{"ok":true,"final_grade":"B","final_score":82.5,"metrics":[{"name":"LOC","score":90.25,"letter":"A-","explanation":"ok"}],"suggestions":[]}`
	c := newTestServer(t, PathQualityReport, http.StatusOK, body, nil)

	out, err := c.QualityReport(context.Background(), QualityReportRequest{Code: "x"})
	require.NoError(t, err)
	require.True(t, out.OK, "messages: %v", out.Messages)
	assert.InDelta(t, 82.5, out.Payload.FinalScore, 1e-9)
	require.Len(t, out.Payload.Metrics, 1)
	assert.InDelta(t, 90.25, out.Payload.Metrics[0].Score, 1e-9)
}

func TestQualityReport_FailureUsesSuggestions(t *testing.T) {
	c := newTestServer(t, PathQualityReport, http.StatusOK, `{"ok":false,"final_grade":"F","suggestions":["Error: Code cannot be empty"]}`, nil)

	out, err := c.QualityReport(context.Background(), QualityReportRequest{Code: "x"})
	require.NoError(t, err)
	assert.False(t, out.OK)
	assert.Equal(t, []string{"Error: Code cannot be empty"}, out.Messages)
}

func TestQualityReport_RejectsOutOfRangeScore(t *testing.T) {
	c := newTestServer(t, PathQualityReport, http.StatusOK, `{"ok":true,"final_grade":"B","final_score":140,"metrics":[],"suggestions":[]}`, nil)

	out, err := c.QualityReport(context.Background(), QualityReportRequest{Code: "x"})
	require.NoError(t, err)
	assert.False(t, out.OK)
	require.Len(t, out.Messages, 1)
	assert.Contains(t, out.Messages[0], "invalid quality report")
}

func TestPost_NonSuccessStatusIsTransportError(t *testing.T) {
	c := newTestServer(t, PathGenerateDocs, http.StatusInternalServerError, `{"ok":true,"content":"ignored"}`, nil)

	_, err := c.GenerateDocs(context.Background(), GenerateDocsRequest{Code: "x"})
	require.Error(t, err)
	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, http.StatusInternalServerError, te.Status)
	assert.Equal(t, 500, StatusCode(err))
	assert.Equal(t, "HTTP error! status: 500", err.Error())
}

func TestPost_NetworkFailureIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(url)
	_, err := c.QualityReport(context.Background(), QualityReportRequest{Code: "x"})
	require.Error(t, err)
	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, 0, te.Status)
}

func TestNewClient_DefaultsBaseURL(t *testing.T) {
	c := NewClient("  ")
	assert.Equal(t, DefaultBaseURL, c.BaseURL())

	c.SetBaseURL("http://example.test:9000/")
	assert.Equal(t, "http://example.test:9000", c.BaseURL())
}

func TestAppError_JoinsMessages(t *testing.T) {
	assert.Equal(t, "a, b", (&AppError{Messages: []string{"a", "b"}, Fallback: "f"}).Error())
	assert.Equal(t, "f", (&AppError{Fallback: "f"}).Error())
}
