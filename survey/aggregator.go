// Package survey holds the questionnaire rules: the form definition, field
// validation, progress estimation and the per-dimension aggregation.
// Nothing here touches storage or the network.
package survey

import "kuesioner/models"

// Aggregate tallies Ya/Tidak answers of every record per dimension.
// Values other than the two recognized answers, and missing keys, are
// ignored. The result depends only on the multiset of records.
func Aggregate(records []models.ResponseRecord) models.AggregateReport {
	report := EmptyReport()
	report.TotalResponden = len(records)

	for _, d := range models.Dimensions {
		keys := d.QuestionKeys()
		tally := report.Dimensions[d]
		for _, r := range records {
			for _, k := range keys {
				switch r[k] {
				case models.ANSWER_YES:
					tally.Ya++
				case models.ANSWER_NO:
					tally.Tidak++
				}
			}
		}
		report.Dimensions[d] = tally
	}

	return report
}

// EmptyReport returns a report with every dimension present and zeroed.
func EmptyReport() models.AggregateReport {
	dims := make(map[models.Dimension]models.Tally, len(models.Dimensions))
	for _, d := range models.Dimensions {
		dims[d] = models.Tally{}
	}
	return models.AggregateReport{Dimensions: dims}
}
