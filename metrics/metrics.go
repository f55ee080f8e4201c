package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"kuesioner/models"
)

// Metrics holds all Prometheus metrics for the application. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	Submissions        *prometheus.CounterVec
	Appends            *prometheus.CounterVec
	ValidationFailures prometheus.Counter
	Respondents        prometheus.Gauge
	Tallies            *prometheus.GaugeVec

	gatherer prometheus.Gatherer
}

// New registers the metrics on a fresh registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry())
}

func NewWithRegistry(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kuesioner_submissions_total",
			Help: "Remote submission attempts by result",
		}, []string{"result"}),
		Appends: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kuesioner_record_appends_total",
			Help: "Local record store appends by result",
		}, []string{"result"}),
		ValidationFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "kuesioner_validation_failures_total",
			Help: "Submissions rejected by field validation",
		}),
		Respondents: factory.NewGauge(prometheus.GaugeOpts{
			Name: "kuesioner_respondents",
			Help: "Number of stored responses at the last report refresh",
		}),
		Tallies: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "kuesioner_dimension_answers",
			Help: "Ya/Tidak answers per dimension at the last report refresh",
		}, []string{"dimension", "answer"}),
		gatherer: reg,
	}
}

func result(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}

func (m *Metrics) ObserveSubmission(ok bool) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(result(ok)).Inc()
}

func (m *Metrics) ObserveAppend(ok bool) {
	if m == nil {
		return
	}
	m.Appends.WithLabelValues(result(ok)).Inc()
}

func (m *Metrics) IncrementValidationFailures() {
	if m == nil {
		return
	}
	m.ValidationFailures.Inc()
}

// SetReport publishes an aggregate report as gauges.
func (m *Metrics) SetReport(report models.AggregateReport) {
	if m == nil {
		return
	}
	m.Respondents.Set(float64(report.TotalResponden))
	for _, d := range models.Dimensions {
		t := report.Dimensions[d]
		m.Tallies.WithLabelValues(string(d), "ya").Set(float64(t.Ya))
		m.Tallies.WithLabelValues(string(d), "tidak").Set(float64(t.Tidak))
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
