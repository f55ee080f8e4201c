package models

/************************************************
/**** MARK: FIELD TYPES ****/
/************************************************/
const FIELD_TYPE_TEXT = "text"
const FIELD_TYPE_NUMBER = "number"
const FIELD_TYPE_SELECT = "select"
const FIELD_TYPE_RADIO = "radio"

// FieldConstraint describes one input of the questionnaire. A radio group
// is a single constraint named after the shared input name.
// Min and Max are optional; nil means no bound, and zero is a real bound.
type FieldConstraint struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Options  []string `json:"options,omitempty"`
}

// IsRadio reports whether the field is a radio group.
func (f FieldConstraint) IsRadio() bool {
	return f.Type == FIELD_TYPE_RADIO
}

// Form is the ordered list of fields; order decides which invalid field
// comes first.
type Form struct {
	Fields []FieldConstraint `json:"fields"`
	// TotalQuestions is the number of logical questions used by the
	// progress estimate.
	TotalQuestions int `json:"total_questions"`
}

