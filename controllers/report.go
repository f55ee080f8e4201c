package controllers

import (
	"kuesioner/survey"

	"github.com/gin-gonic/gin"
)

// GET /api/report
// Aggregates the stored responses. With nothing stored yet the fixed
// sample report is returned and flagged.
func GetReport(c *gin.Context) {
	env, ok := requireEnv(c)
	if !ok {
		return
	}

	report, sample := survey.ReportWithFallback(env.Records.ReadAll(c.Request.Context()))
	RespondSuccess(c, gin.H{
		"totalResponden": report.TotalResponden,
		"dimensions":     report.Dimensions,
		"sample":         sample,
	})
}
