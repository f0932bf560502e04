package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine, h Handler) error {
	tmpl, err := ParseTemplates()
	if err != nil {
		return err
	}
	router.SetHTMLTemplate(tmpl)

	router.Use(h.HandleMetricsMiddleware)
	router.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	session := router.Group("/", h.HandleSessionMiddleware)
	session.GET("/", h.HandleIndex)
	session.POST("/tasks", h.HandleAddTaskForm)
	session.POST("/tasks/clear-completed", h.HandleClearCompletedForm)
	session.POST("/tasks/:id/toggle", h.HandleToggleTaskForm)
	session.POST("/tasks/:id/delete", h.HandleDeleteTaskForm)

	api := session.Group("/api/v1")
	api.GET("/tasks", h.HandleGetTasks)
	api.POST("/tasks", h.HandleCreateTask)
	api.PATCH("/tasks/:id/toggle", h.HandleToggleTask)
	api.DELETE("/tasks/:id", h.HandleDeleteTask)
	api.POST("/tasks/clear-completed", h.HandleClearCompleted)
	api.PUT("/draft", h.HandleSetDraft)
	api.GET("/events", h.HandleEvents)

	return nil
}
