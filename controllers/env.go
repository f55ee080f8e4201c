package controllers

import (
	"net/http"

	"kuesioner/metrics"
	"kuesioner/models"
	"kuesioner/store"
	"kuesioner/tools"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const envKey = "env"

// Env carries the collaborators every handler needs.
type Env struct {
	Form      models.Form
	Records   *store.RecordStore
	Submitter *tools.Submitter
	Metrics   *metrics.Metrics
	Logger    *zap.Logger
}

// SetEnvToContext is installed on the gin engine before any route.
func SetEnvToContext(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(envKey, env)
		c.Next()
	}
}

func EnvInstance(c *gin.Context) *Env {
	v, ok := c.Get(envKey)
	if !ok {
		return nil
	}
	env, _ := v.(*Env)
	return env
}

func requireEnv(c *gin.Context) (*Env, bool) {
	env := EnvInstance(c)
	if env == nil {
		RespondError(c, "env not configured in context", http.StatusInternalServerError)
		return nil, false
	}
	return env, true
}
