package v1

import (
	"github.com/gin-gonic/gin"

	"companion-api/internal/interfaces/httpserver/handlers"
)

func registerRelationshipRoutes(router gin.IRoutes, handler *handlers.RelationshipHandler) {
	router.GET("/relationship", handler.Get)
	router.PUT("/relationship", handler.Set)
	router.POST("/relationship/reset", handler.Reset)
}
