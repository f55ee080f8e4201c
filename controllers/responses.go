package controllers

import (
	"net/http"

	"kuesioner/models"
	"kuesioner/survey"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MessageSubmitFailed is shown when the collector could not be reached.
const MessageSubmitFailed = "Gagal mengirim jawaban. Silakan coba lagi."

// POST /api/responses
// Validates the answers, sends them to the collector once and appends
// them to the local record store. The two steps are independent: the
// response reports both outcomes.
func CreateResponse(c *gin.Context) {
	env, ok := requireEnv(c)
	if !ok {
		return
	}
	record, ok := BindRecord(c)
	if !ok {
		return
	}

	v := survey.NewValidator(env.Form)
	if !v.Validate(record) {
		env.Metrics.IncrementValidationFailures()
		first, _ := v.FirstInvalid()
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         MessageIncomplete,
			"first_invalid": first,
			"errors":        v.Errors(),
		})
		return
	}

	result := env.Submitter.Submit(c.Request.Context(), record)

	stored := true
	if _, err := env.Records.Append(c.Request.Context(), record); err != nil {
		stored = false
		env.Logger.Warn("response not stored locally", zap.Error(err))
	}
	env.Metrics.ObserveAppend(stored)

	if !result.Success {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":  MessageSubmitFailed,
			"remote": result,
			"stored": stored,
		})
		return
	}

	RespondSuccess(c, gin.H{
		"success":   true,
		"remote":    result,
		"stored":    stored,
		"timestamp": result.Record[models.TimestampKey],
	})
}

// GET /api/responses
func GetResponses(c *gin.Context) {
	env, ok := requireEnv(c)
	if !ok {
		return
	}
	records := env.Records.ReadAll(c.Request.Context())
	RespondSuccess(c, gin.H{"responses": records, "count": len(records)})
}
