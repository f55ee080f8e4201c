package router

import (
	"kuesioner/controllers"
	"kuesioner/middleware"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares.
func Initialize(r *gin.Engine, env *controllers.Env) {
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())
	r.Use(controllers.SetEnvToContext(env))

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "ok")
	})
	if env.Metrics != nil {
		r.GET("/metrics", gin.WrapH(env.Metrics.Handler()))
	}

	api := r.Group("/api")
	api.Use(Logger(env.Logger))

	// Questionnaire
	api.GET("/form", controllers.GetForm)
	api.POST("/validate", controllers.ValidateResponse)
	api.POST("/progress", controllers.GetProgress)

	// Responses (append-only)
	api.POST("/responses", controllers.CreateResponse)
	api.GET("/responses", controllers.GetResponses)

	// Report for the chart page
	api.GET("/report", controllers.GetReport)

	env.Logger.Info("routes initialized")
}
