package routes

import (
	"go-items-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers all routes related to the AI proxy
func RegisterChatRoutes(rg *gin.RouterGroup, chatHandler handlers.ChatHandlerInterface) {

	chat := rg.Group("/chatgpt")
	{
		chat.POST("/chat", chatHandler.Chat)
		chat.POST("/analyze-item", chatHandler.AnalyzeItemDescription)
		chat.POST("/generate-titles", chatHandler.GenerateItemTitles)
		chat.GET("/health", chatHandler.Health)
	}
}
