package workers

import (
	"context"
	"time"

	"go.uber.org/zap"

	"kuesioner/metrics"
	"kuesioner/models"
	"kuesioner/store"
	"kuesioner/survey"
	"kuesioner/tools"
)

// ReportRefresher keeps the aggregate report published as metrics. It
// refreshes on a ticker and, debounced, after appends.
type ReportRefresher struct {
	records  *store.RecordStore
	metrics  *metrics.Metrics
	logger   *zap.Logger
	interval time.Duration
	debounce *tools.Debouncer
}

func NewReportRefresher(records *store.RecordStore, m *metrics.Metrics, logger *zap.Logger, interval, window time.Duration) *ReportRefresher {
	r := &ReportRefresher{
		records:  records,
		metrics:  m,
		logger:   logger,
		interval: interval,
	}
	r.debounce = tools.NewDebouncer(window, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		r.Refresh(ctx)
	})
	return r
}

// SetRecords binds the store once it exists; the store's append hook
// usually points back at Trigger.
func (r *ReportRefresher) SetRecords(records *store.RecordStore) {
	r.records = records
}

// Trigger schedules a refresh after the debounce window.
func (r *ReportRefresher) Trigger() {
	r.debounce.Trigger()
}

// Refresh aggregates the stored records and publishes the result. The
// published numbers are the real aggregate, never the sample data.
func (r *ReportRefresher) Refresh(ctx context.Context) models.AggregateReport {
	report := survey.Aggregate(r.records.ReadAll(ctx))
	r.metrics.SetReport(report)
	r.logger.Debug("report refreshed", zap.Int("respondents", report.TotalResponden))
	return report
}

// Start refreshes once, then on every tick until ctx is done.
func (r *ReportRefresher) Start(ctx context.Context) error {
	defer r.debounce.Stop()

	r.Refresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.Refresh(ctx)
		}
	}
}
