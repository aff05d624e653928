package workshop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"atum/internal/models"
)

func TestResultStore_QualityViewEmpty(t *testing.T) {
	var r ResultStore
	report, expanded := r.QualityView()
	assert.Nil(t, report)
	assert.False(t, expanded)
}

func TestResultStore_NewReportCollapsesDetails(t *testing.T) {
	var r ResultStore
	r.SetQuality(models.QualityReport{FinalScore: 70})
	require.True(t, r.ToggleDetails())

	r.SetQuality(models.QualityReport{FinalScore: 71.5})
	report, expanded := r.QualityView()
	require.NotNil(t, report)
	assert.Equal(t, 71.5, report.FinalScore)
	assert.False(t, expanded)
}

// Even scores are never toggled, so any snapshot showing one must have
// its details collapsed.
func TestController_StatePairsReportWithItsDetailsFlag(t *testing.T) {
	c := NewController(&stubBackend{})
	store := c.Results()

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		for i := 0; i < 2000; i++ {
			store.SetQuality(models.QualityReport{FinalScore: float64(i % 100)})
			if i%2 == 1 {
				store.ToggleDetails()
			}
		}
		return nil
	})
	g.Go(func() error {
		for i := 0; i < 2000 && ctx.Err() == nil; i++ {
			st := c.State()
			if st.QualityReport != nil && int(st.QualityReport.FinalScore)%2 == 0 {
				assert.False(t, st.DetailsExpanded, "score %v", st.QualityReport.FinalScore)
			}
		}
		return nil
	})
	require.NoError(t, g.Wait())
}
