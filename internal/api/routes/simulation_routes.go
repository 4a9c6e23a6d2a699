package routes

import (
	"go-items-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterSimulationRoutes registers all routes related to the simulation proxy
func RegisterSimulationRoutes(rg *gin.RouterGroup, simulationHandler handlers.SimulationHandlerInterface) {

	simulations := rg.Group("/simulations")
	{
		simulations.POST("/run", simulationHandler.RunSimulation)
		simulations.POST("/run-rest", simulationHandler.RunSimulationREST)
	}

	rg.GET("/models", simulationHandler.GetModels)
}
