package routes

import (
	"github.com/gin-gonic/gin"

	"dotdo/internal/auth"
	"dotdo/internal/controller"
	"dotdo/internal/middleware"
)

// Deps are the wired controllers the router mounts.
type Deps struct {
	Auth      *auth.Handler
	Todos     *controller.TodoController
	Memos     *controller.MemoController
	Chat      *controller.ChatController
	Health    *controller.HealthController
	JWTSecret string
}

// Router assembles the gin engine.
func Router(d Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID())

	router.GET("/health", d.Health.Health)
	router.GET("/ready", d.Health.Ready)

	router.POST("/api/auth/signup", d.Auth.Signup)
	router.POST("/api/auth/login", d.Auth.Login)

	api := router.Group("/api")
	api.Use(middleware.Auth(d.JWTSecret))
	{
		api.GET("/auth/me", d.Auth.Me)

		api.GET("/todos", d.Todos.List)
		api.POST("/todos", d.Todos.Create)
		api.PUT("/todos/:id", d.Todos.Update)
		api.DELETE("/todos/:id", d.Todos.Delete)

		api.GET("/memos", d.Memos.List)
		api.POST("/memos", d.Memos.Create)
		api.PUT("/memos/:id", d.Memos.Update)
		api.DELETE("/memos/:id", d.Memos.Delete)

		api.POST("/chatbot", d.Chat.Chat)
	}

	return router
}
