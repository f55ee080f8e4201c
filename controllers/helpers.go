package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"kuesioner/models"

	"github.com/gin-gonic/gin"
)

// BindRecord reads a flat JSON object of field name -> value. Numbers and
// booleans become strings; nested values are rejected.
func BindRecord(c *gin.Context) (models.ResponseRecord, bool) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		RespondError(c, "invalid json", http.StatusBadRequest)
		return nil, false
	}
	record, err := RecordFromJSON(raw)
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return record, true
}

func RecordFromJSON(raw map[string]any) (models.ResponseRecord, error) {
	record := make(models.ResponseRecord, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case nil:
			record[k] = ""
		case string:
			record[k] = val
		case bool:
			record[k] = strconv.FormatBool(val)
		case float64:
			record[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case json.Number:
			record[k] = val.String()
		default:
			return nil, fmt.Errorf("field %s: nested values are not allowed", k)
		}
	}
	return record, nil
}
