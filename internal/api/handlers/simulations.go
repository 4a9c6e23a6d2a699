package handlers

import (
	"errors"
	"net/http"

	"go-items-api/internal/services"
	"go-items-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// SimulationHandler exposes the simulation cloud proxy endpoints.
type SimulationHandler struct {
	sim       services.SimulationRunner
	validator *validator.Validate
}

// NewSimulationHandler creates a new SimulationHandler with the given
// dependencies.
func NewSimulationHandler(sim services.SimulationRunner, validate *validator.Validate) *SimulationHandler {
	return &SimulationHandler{sim: sim, validator: validate}
}

// RunSimulation godoc
// @Summary      Run a cloud simulation
// @Description  Resolves the latest model version, applies input overrides and returns the extracted metrics once the run completes.
// @Tags         simulations
// @Accept       json
// @Produce      json
// @Param        request body      dto.SimulationRequest true  "Model, experiment and input overrides"
// @Success      200  {object}  dto.SimulationResponse "Completed run"
// @Failure      422  {object}  map[string]string{error=string} "Server capacity is not an integer"
// @Failure      500  {object}  map[string]string{error=string} "Simulation failed"
// @Failure      503  {object}  map[string]string{error=string} "Simulation service not configured"
// @Router       /simulations/run [post]
func (h *SimulationHandler) RunSimulation(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	response, err := h.sim.Run(c.Request.Context(), req)
	if err != nil {
		h.writeRunError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// RunSimulationREST godoc
// @Summary      Run a cloud simulation via the raw REST surface
// @Description  Issues version lookup, run submission and result retrieval as three sequential REST calls and forwards the raw payloads.
// @Tags         simulations
// @Accept       json
// @Produce      json
// @Param        request body      dto.SimulationRequest true  "Model, experiment and input overrides"
// @Success      200  {object}  dto.SimulationRESTResponse "Raw run payload"
// @Failure      500  {object}  map[string]string{error=string} "Simulation failed"
// @Failure      503  {object}  map[string]string{error=string} "Simulation service not configured"
// @Router       /simulations/run-rest [post]
func (h *SimulationHandler) RunSimulationREST(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	response, err := h.sim.RunREST(c.Request.Context(), req)
	if err != nil {
		h.writeRunError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetModels godoc
// @Summary      List available simulation models
// @Description  Lists the cloud models visible to the configured account.
// @Tags         simulations
// @Produce      json
// @Success      200  {object}  dto.ModelsResponse "Available models"
// @Failure      500  {object}  map[string]string{error=string} "Listing failed"
// @Failure      503  {object}  map[string]string{error=string} "Simulation service not configured"
// @Router       /models [get]
func (h *SimulationHandler) GetModels(c *gin.Context) {
	summaries, err := h.sim.ListModels(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Simulation service is not configured"})
			return
		}
		logrus.Errorf("Error listing simulation models: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list models"})
		return
	}
	c.JSON(http.StatusOK, dto.ModelsResponse{Models: summaries})
}

func (h *SimulationHandler) bindRequest(c *gin.Context) (*dto.SimulationRequest, bool) {
	var req dto.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid request body: " + err.Error()})
		return nil, false
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed", "details": formatValidationErrors(err)})
		return nil, false
	}
	return &req, true
}

func (h *SimulationHandler) writeRunError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Simulation service is not configured"})
	case errors.Is(err, services.ErrBadCapacity):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Parameter 'Server capacity' must be an integer"})
	default:
		logrus.Errorf("Error running simulation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Simulation failed"})
	}
}
