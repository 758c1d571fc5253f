// Package server assembles the mock REST backend the client talks to,
// the Go analog of running json-server against db.json. Resources live
// at the root, json-server style, without an /api prefix.
package server

import (
	"github.com/gin-gonic/gin"

	"projectmanager/internal/server/handlers"
	"projectmanager/internal/server/middleware"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	userHandler *handlers.UserHandler,
	projectHandler *handlers.ProjectHandler,
	taskHandler *handlers.TaskHandler,
) {
	root := r.Group("/")
	root.Use(middleware.LanguageMiddleware())
	{
		root.GET("/health", healthHandler.CheckHealth)

		root.GET("/users", userHandler.List)
		root.GET("/users/:id", userHandler.Get)
		root.POST("/users", userHandler.Create)

		root.GET("/projects", projectHandler.List)
		root.GET("/projects/:id", projectHandler.Get)
		root.POST("/projects", projectHandler.Create)
		root.PATCH("/projects/:id", projectHandler.Update)
		root.DELETE("/projects/:id", projectHandler.Delete)

		root.GET("/tasks", taskHandler.List)
		root.POST("/tasks", taskHandler.Create)
		root.PATCH("/tasks/:id", taskHandler.Update)
		root.DELETE("/tasks/:id", taskHandler.Delete)
	}
}
