package backend

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"atum/internal/models"
)

const noCodeGenerated = "// No code generated"

var validate = validator.New()

func adaptCode(r generateCodeResponse) CodeOutcome {
	if r.GeneratedCode == "" {
		return success(noCodeGenerated)
	}
	return success(r.GeneratedCode)
}

func adaptTests(r generateTestsResponse) TestsOutcome {
	if !r.OK || r.Tests == "" {
		return failure[string](r.Notes)
	}
	return success(r.Tests)
}

func adaptDocs(r generateDocsResponse) DocsOutcome {
	if !r.OK {
		return failure[models.Documentation](r.Notes)
	}
	filename := strings.TrimSpace(r.Filename)
	if filename == "" {
		filename = models.DefaultDocumentationFilename
	}
	return success(models.Documentation{
		Content:  r.Content,
		Filename: filename,
		Notes:    nonNil(r.Notes),
	})
}

func adaptQuality(r qualityReportResponse) QualityOutcome {
	if !r.OK {
		return failure[models.QualityReport](r.Suggestions)
	}
	if err := validate.Struct(r); err != nil {
		return failure[models.QualityReport]([]string{fmt.Sprintf("invalid quality report: %v", err)})
	}
	metrics := make([]models.QualityMetric, 0, len(r.Metrics))
	for _, m := range r.Metrics {
		metrics = append(metrics, models.QualityMetric{
			Name:        m.Name,
			Score:       m.Score,
			Letter:      m.Letter,
			Explanation: m.Explanation,
		})
	}
	return success(models.QualityReport{
		FinalGrade:  models.Grade(r.FinalGrade),
		FinalScore:  r.FinalScore,
		Metrics:     metrics,
		Suggestions: nonNil(r.Suggestions),
	})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
