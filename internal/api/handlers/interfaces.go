package handlers

import "github.com/gin-gonic/gin"

// ItemHandlerInterface defines the methods needed by the item routes.
type ItemHandlerInterface interface {
	GetItems(c *gin.Context)
	CreateItem(c *gin.Context)
	GetItemByID(c *gin.Context)
	UpdateItem(c *gin.Context)
	DeleteItem(c *gin.Context)
	AnalyzeItem(c *gin.Context)
	SuggestImprovements(c *gin.Context)
}

// ChatHandlerInterface defines the methods needed by the chatgpt routes.
type ChatHandlerInterface interface {
	Chat(c *gin.Context)
	AnalyzeItemDescription(c *gin.Context)
	GenerateItemTitles(c *gin.Context)
	Health(c *gin.Context)
}

// SimulationHandlerInterface defines the methods needed by the simulation routes.
type SimulationHandlerInterface interface {
	RunSimulation(c *gin.Context)
	RunSimulationREST(c *gin.Context)
	GetModels(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var _ ItemHandlerInterface = (*ItemHandler)(nil)
var _ ChatHandlerInterface = (*ChatHandler)(nil)
var _ SimulationHandlerInterface = (*SimulationHandler)(nil)
