package routes

import (
	"go-items-api/internal/api/handlers"
	"go-items-api/internal/app"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific
// registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	//Create handlers
	itemHandler := handlers.NewItemHandler(app.ItemRepo, app.ChatService, app.Validator)
	chatHandler := handlers.NewChatHandler(app.ChatService, app.Validator)
	simulationHandler := handlers.NewSimulationHandler(app.SimulationService, app.Validator)
	systemHandler := handlers.NewSystemHandler(app.DB, app.ChatService)

	// --- Register Resource Routes ---
	// Items and the AI proxy live at the engine root; the simulation proxy
	// keeps its versioned prefix.
	root := router.Group("")
	RegisterItemRoutes(root, itemHandler)
	RegisterChatRoutes(root, chatHandler)

	apiV1 := router.Group("/api/v1")
	RegisterSimulationRoutes(apiV1, simulationHandler)

	// --- Liveness / Info ---
	router.GET("/", systemHandler.Root)
	router.GET("/health", systemHandler.HealthCheck)

	logrus.Info("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
