package handlers

import (
	"net/http"

	"go-items-api/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SystemHandler serves the liveness/info endpoints.
type SystemHandler struct {
	db   *gorm.DB
	chat services.ChatCompleter
}

// NewSystemHandler creates a new SystemHandler with the given dependencies.
func NewSystemHandler(db *gorm.DB, chat services.ChatCompleter) *SystemHandler {
	return &SystemHandler{db: db, chat: chat}
}

// Root godoc
// @Summary      Service info
// @Description  Welcome message with the endpoint map and AI availability.
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string "Service info"
// @Router       / [get]
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":           "Welcome to the Items CRUD API with ChatGPT and AnyLogic integration",
		"chatgpt_available": h.chat.Configured(),
		"endpoints": gin.H{
			"items":       "/items",
			"chatgpt":     "/chatgpt",
			"simulations": "/api/v1/simulations",
			"docs":        "/swagger/index.html",
		},
	})
}

// HealthCheck godoc
// @Summary      Health check
// @Description  Check if the service and its dependencies are up.
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string "API is healthy"
// @Router       /health [get]
func (h *SystemHandler) HealthCheck(c *gin.Context) {
	databaseStatus := "available"
	if sqlDB, err := h.db.DB(); err != nil {
		databaseStatus = "unavailable"
	} else if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		databaseStatus = "unavailable"
	}

	chatStatus := "not_configured"
	if h.chat.Configured() {
		chatStatus = "available"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"services": gin.H{
			"database": databaseStatus,
			"chatgpt":  chatStatus,
		},
	})
}
