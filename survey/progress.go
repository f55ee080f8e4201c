package survey

import (
	"math"
	"strings"

	"kuesioner/models"
)

// Progress is the answered share of the questionnaire.
type Progress struct {
	Percent  int `json:"progress"`
	Answered int `json:"answered"`
	Total    int `json:"total"`
}

// EstimateProgress counts answered questions: one per required text,
// number or select field with a non-blank value, and at most one per radio
// group with a selection. The percentage uses the fixed total and is
// rounded to the nearest integer.
func EstimateProgress(form models.Form, values map[string]string, total int) Progress {
	answered := 0
	groups := map[string]bool{}

	for _, f := range form.Fields {
		selected := strings.TrimSpace(values[f.Name]) != ""
		if f.IsRadio() {
			groups[f.Name] = groups[f.Name] || selected
			continue
		}
		if f.Required && selected {
			answered++
		}
	}
	for _, ok := range groups {
		if ok {
			answered++
		}
	}

	p := Progress{Answered: answered, Total: total}
	if total > 0 {
		p.Percent = int(math.Round(100 * float64(answered) / float64(total)))
	}
	return p
}
