package v1

import (
	"github.com/gin-gonic/gin"

	"companion-api/internal/interfaces/httpserver/handlers"
)

func registerGameRoutes(router gin.IRoutes, handler *handlers.GameHandler) {
	router.GET("/games", handler.List)
	router.GET("/games/active", handler.Active)
	router.POST("/games/:game_id/start", handler.Start)
	router.POST("/games/exit", handler.Exit)
}
