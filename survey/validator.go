package survey

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"kuesioner/models"
)

// Reasons reported for an invalid field.
const (
	ReasonRequired   = "required"
	ReasonNotANumber = "not_a_number"
	ReasonBelowMin   = "below_min"
	ReasonAboveMax   = "above_max"
)

// decimalNumber admits plain decimal notation only. ParseFloat alone would
// also take "NaN", "Inf", hex floats and underscored digits.
var decimalNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// FieldError names one invalid field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidateField checks one value against its constraint. For a radio group
// the value is the selected option, empty when nothing is selected.
func ValidateField(f models.FieldConstraint, value string) (bool, string) {
	value = strings.TrimSpace(value)

	if f.Required && value == "" {
		return false, ReasonRequired
	}

	if f.Type == models.FIELD_TYPE_NUMBER && value != "" {
		if !decimalNumber.MatchString(value) {
			return false, ReasonNotANumber
		}
		n, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return false, ReasonNotANumber
		}
		if f.Min != nil && n < *f.Min {
			return false, ReasonBelowMin
		}
		if f.Max != nil && n > *f.Max {
			return false, ReasonAboveMax
		}
	}

	return true, ""
}

// Validator validates whole forms and keeps the error marks of the last
// run. A Validator is not safe for concurrent use; create one per
// submission.
type Validator struct {
	form   models.Form
	marks  map[string]string
	errors []FieldError
}

func NewValidator(form models.Form) *Validator {
	return &Validator{form: form, marks: map[string]string{}}
}

// Validate runs every field of the form against values and returns true
// when all of them pass. Marks from a previous run are cleared first.
func (v *Validator) Validate(values map[string]string) bool {
	clear(v.marks)
	v.errors = v.errors[:0]

	for _, f := range v.form.Fields {
		ok, reason := ValidateField(f, values[f.Name])
		if ok {
			continue
		}
		v.marks[f.Name] = reason
		v.errors = append(v.errors, FieldError{Field: f.Name, Reason: reason})
	}

	return len(v.errors) == 0
}

// Marked reports whether the field carries an error mark.
func (v *Validator) Marked(name string) bool {
	_, ok := v.marks[name]
	return ok
}

// FirstInvalid returns the first invalid field in form order.
func (v *Validator) FirstInvalid() (string, bool) {
	if len(v.errors) == 0 {
		return "", false
	}
	return v.errors[0].Field, true
}

// Errors returns the field errors of the last run in form order.
func (v *Validator) Errors() []FieldError {
	out := make([]FieldError, len(v.errors))
	copy(out, v.errors)
	return out
}
