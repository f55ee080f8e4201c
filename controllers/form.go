package controllers

import (
	"net/http"

	"kuesioner/survey"

	"github.com/gin-gonic/gin"
)

// MessageIncomplete is shown when required fields are missing.
const MessageIncomplete = "Mohon lengkapi semua field yang wajib diisi"

// GET /api/form
func GetForm(c *gin.Context) {
	env, ok := requireEnv(c)
	if !ok {
		return
	}
	RespondSuccess(c, gin.H{"form": env.Form})
}

// POST /api/validate
// Returns the validation result without submitting anything.
func ValidateResponse(c *gin.Context) {
	env, ok := requireEnv(c)
	if !ok {
		return
	}
	record, ok := BindRecord(c)
	if !ok {
		return
	}

	v := survey.NewValidator(env.Form)
	valid := v.Validate(record)
	first, _ := v.FirstInvalid()

	RespondSuccess(c, gin.H{
		"valid":         valid,
		"first_invalid": first,
		"errors":        v.Errors(),
	})
}

// POST /api/progress
func GetProgress(c *gin.Context) {
	env, ok := requireEnv(c)
	if !ok {
		return
	}
	record, ok := BindRecord(c)
	if !ok {
		return
	}

	total := env.Form.TotalQuestions
	if total <= 0 {
		RespondError(c, "form has no question total", http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, survey.EstimateProgress(env.Form, record, total))
}
