package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	chat := rg.Group("/chat")
	{
		chat.POST("/messages", h.SendMessage)
		chat.GET("/sessions/:id/history", h.History)
		chat.DELETE("/sessions/:id/history", h.ClearHistory)
		chat.GET("/status", h.Status)
	}
}
