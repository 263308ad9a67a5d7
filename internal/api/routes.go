package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	api.Use(LanguageMiddleware())
	{
		api.GET("/health", h.CheckHealth)
		api.GET("/dashboard", h.GetDashboard)
		api.GET("/achievements", h.GetAchievements)
		api.GET("/insights", h.GetInsights)

		api.GET("/subjects", h.ListSubjects)
		api.POST("/subjects", h.CreateSubject)
		api.PUT("/subjects/:id", h.UpdateSubject)
		api.DELETE("/subjects/:id", h.DeleteSubject)

		api.GET("/tasks", h.ListTasks)
		api.POST("/tasks", h.CreateTask)
		api.PUT("/tasks/:id", h.UpdateTask)
		api.POST("/tasks/:id/toggle", h.ToggleTask)
		api.DELETE("/tasks/:id", h.DeleteTask)

		api.GET("/sessions", h.ListSessions)
		api.POST("/sessions", h.CreateSession)

		api.GET("/timer", h.GetTimer)
		api.POST("/timer/start", h.StartTimer)
		api.POST("/timer/pause", h.PauseTimer)
		api.POST("/timer/stop", h.StopTimer)
		api.PUT("/timer/mode", h.SetTimerMode)
		api.PUT("/timer/subject", h.SetTimerSubject)

		api.GET("/preferences", h.GetPreferences)
		api.PUT("/preferences/theme", h.SetTheme)
		api.PUT("/preferences/profile", h.UpdateProfile)
	}
}

// NewRouter returns a gin engine with recovery, request logging and every route.
func NewRouter(h *Handler, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), GinZapMiddleware(logger))
	RegisterRoutes(r, h)
	return r
}
