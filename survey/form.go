package survey

import "kuesioner/models"

// TotalQuestions is 5 identity fields plus 20 dimension questions.
const TotalQuestions = 5 + 4*models.QuestionsPerDimension

var yesNo = []string{models.ANSWER_YES, models.ANSWER_NO}

func bound(v float64) *float64 { return &v }

// DefaultForm is the research questionnaire: identity fields first, then
// the A/G/I/L question groups.
func DefaultForm() models.Form {
	fields := []models.FieldConstraint{
		{Name: "nama", Label: "Nama Lengkap", Type: models.FIELD_TYPE_TEXT, Required: true},
		{Name: "usia", Label: "Usia", Type: models.FIELD_TYPE_NUMBER, Required: true, Min: bound(18), Max: bound(65)},
		{Name: "jenis_kelamin", Label: "Jenis Kelamin", Type: models.FIELD_TYPE_RADIO, Required: true,
			Options: []string{"Laki-laki", "Perempuan"}},
		{Name: "pendidikan", Label: "Pendidikan Terakhir", Type: models.FIELD_TYPE_SELECT, Required: true,
			Options: []string{"SMA/SMK", "D3", "S1", "S2", "S3"}},
		{Name: "pekerjaan", Label: "Pekerjaan", Type: models.FIELD_TYPE_TEXT, Required: true},
	}

	for _, d := range models.Dimensions {
		for _, key := range d.QuestionKeys() {
			fields = append(fields, models.FieldConstraint{
				Name:     key,
				Label:    key,
				Type:     models.FIELD_TYPE_RADIO,
				Required: true,
				Options:  append([]string(nil), yesNo...),
			})
		}
	}

	return models.Form{Fields: fields, TotalQuestions: TotalQuestions}
}
