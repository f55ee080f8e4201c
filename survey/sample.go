package survey

import "kuesioner/models"

// SampleReport is the demonstration dataset shown when nothing was
// collected yet.
func SampleReport() models.AggregateReport {
	return models.AggregateReport{
		TotalResponden: 45,
		Dimensions: map[models.Dimension]models.Tally{
			models.DimensionAdaptation:  {Ya: 185, Tidak: 40},
			models.DimensionGoal:        {Ya: 175, Tidak: 50},
			models.DimensionIntegration: {Ya: 195, Tidak: 30},
			models.DimensionLatency:     {Ya: 188, Tidak: 37},
		},
	}
}

// ReportWithFallback aggregates records, or returns the sample report
// when there are none. sample tells the caller which one it got.
func ReportWithFallback(records []models.ResponseRecord) (report models.AggregateReport, sample bool) {
	if len(records) == 0 {
		return SampleReport(), true
	}
	return Aggregate(records), false
}
