package v1

import (
	"github.com/gin-gonic/gin"

	"companion-api/internal/interfaces/httpserver/handlers"
)

func registerChatRoutes(router gin.IRoutes, handler *handlers.ChatHandler) {
	router.POST("/chat/messages", handler.Send)
	router.GET("/chat/messages", handler.History)
	router.DELETE("/chat/messages", handler.Clear)
	router.POST("/chat/voice", handler.SendVoice)
}
