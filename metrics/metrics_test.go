package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuesioner/models"
)

func TestSetReport(t *testing.T) {
	m := New()
	m.SetReport(models.AggregateReport{
		TotalResponden: 3,
		Dimensions: map[models.Dimension]models.Tally{
			models.DimensionGoal: {Ya: 7, Tidak: 2},
		},
	})

	assert.Equal(t, 3.0, testutil.ToFloat64(m.Respondents))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.Tallies.WithLabelValues("goal", "ya")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Tallies.WithLabelValues("goal", "tidak")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Tallies.WithLabelValues("latency", "ya")))
}

func TestCounters(t *testing.T) {
	m := New()
	m.ObserveSubmission(true)
	m.ObserveSubmission(false)
	m.ObserveSubmission(false)
	m.ObserveAppend(true)
	m.IncrementValidationFailures()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Submissions.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Submissions.WithLabelValues("failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Appends.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationFailures))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveSubmission(true)
		m.ObserveAppend(false)
		m.IncrementValidationFailures()
		m.SetReport(models.AggregateReport{})
	})
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveSubmission(true)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `kuesioner_submissions_total{result="success"} 1`))
}
