package handlers

import (
	"net/http"

	"go-items-api/internal/services"
	"go-items-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ChatHandler exposes the AI proxy endpoints.
type ChatHandler struct {
	chat      services.ChatCompleter
	validator *validator.Validate
}

// NewChatHandler creates a new ChatHandler with the given dependencies.
func NewChatHandler(chat services.ChatCompleter, validate *validator.Validate) *ChatHandler {
	return &ChatHandler{chat: chat, validator: validate}
}

// ensureConfigured writes a 503 response when the provider credential is
// absent, so callers can tell "not set up" from "broken".
func (h *ChatHandler) ensureConfigured(c *gin.Context) bool {
	if !h.chat.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ChatGPT service is not configured"})
		return false
	}
	return true
}

// Chat godoc
// @Summary      Raw chat completion
// @Description  Forwards role-tagged message turns to the completion provider. Provider failures are reported in-band.
// @Tags         chatgpt
// @Accept       json
// @Produce      json
// @Param        prompt body      dto.ChatPrompt true  "Conversation turns and tuning parameters"
// @Success      200  {object}  dto.ChatResponse "Completion outcome"
// @Failure      422  {object}  map[string]string{error=string} "Validation failed"
// @Failure      503  {object}  map[string]string{error=string} "AI service not configured"
// @Router       /chatgpt/chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	if !h.ensureConfigured(c) {
		return
	}

	var prompt dto.ChatPrompt
	if err := c.ShouldBindJSON(&prompt); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.validator.Struct(prompt); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed", "details": formatValidationErrors(err)})
		return
	}

	temperature := services.DefaultTemperature
	if prompt.Temperature != nil {
		temperature = *prompt.Temperature
	}
	maxTokens := services.DefaultMaxTokens
	if prompt.MaxTokens != nil {
		maxTokens = *prompt.MaxTokens
	}

	response, err := h.chat.GetChatCompletion(c.Request.Context(), prompt.Messages, temperature, maxTokens)
	if err != nil {
		c.JSON(http.StatusOK, dto.ChatResponse{Success: false, Error: "Failed to get response from ChatGPT"})
		return
	}
	c.JSON(http.StatusOK, dto.ChatResponse{Success: true, Response: response})
}

// AnalyzeItemDescription godoc
// @Summary      Analyze an item description
// @Description  Runs the fixed analysis and title-generation prompts over a caller-supplied description.
// @Tags         chatgpt
// @Accept       json
// @Produce      json
// @Param        request body      dto.ItemAnalysisRequest true  "Description to analyze"
// @Success      200  {object}  dto.ItemAnalysisResponse "Analysis result"
// @Failure      422  {object}  map[string]string{error=string} "Validation failed"
// @Failure      500  {object}  map[string]string{error=string} "Analysis failed"
// @Failure      503  {object}  map[string]string{error=string} "AI service not configured"
// @Router       /chatgpt/analyze-item [post]
func (h *ChatHandler) AnalyzeItemDescription(c *gin.Context) {
	if !h.ensureConfigured(c) {
		return
	}

	var req dto.ItemAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed", "details": formatValidationErrors(err)})
		return
	}

	analysis, err := h.chat.AnalyzeItemDescription(c.Request.Context(), req.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze item description"})
		return
	}

	titles, err := h.chat.GenerateItemTitles(c.Request.Context(), req.Description)
	if err != nil {
		titles = "Failed to generate titles"
	}

	c.JSON(http.StatusOK, dto.ItemAnalysisResponse{
		OriginalDescription: req.Description,
		Analysis:            analysis,
		GeneratedTitles:     titles,
	})
}

// GenerateItemTitles godoc
// @Summary      Generate item titles
// @Description  Runs the fixed title-generation prompt over a caller-supplied description.
// @Tags         chatgpt
// @Accept       json
// @Produce      json
// @Param        request body      dto.TitleGenerationRequest true  "Description to title"
// @Success      200  {object}  dto.TitleGenerationResponse "Generated titles"
// @Failure      422  {object}  map[string]string{error=string} "Validation failed"
// @Failure      500  {object}  map[string]string{error=string} "Generation failed"
// @Failure      503  {object}  map[string]string{error=string} "AI service not configured"
// @Router       /chatgpt/generate-titles [post]
func (h *ChatHandler) GenerateItemTitles(c *gin.Context) {
	if !h.ensureConfigured(c) {
		return
	}

	var req dto.TitleGenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed", "details": formatValidationErrors(err)})
		return
	}

	titles, err := h.chat.GenerateItemTitles(c.Request.Context(), req.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate titles"})
		return
	}

	c.JSON(http.StatusOK, dto.TitleGenerationResponse{
		OriginalDescription: req.Description,
		GeneratedTitles:     titles,
	})
}

// Health godoc
// @Summary      AI proxy health
// @Description  Reports whether the completion provider is configured.
// @Tags         chatgpt
// @Produce      json
// @Success      200  {object}  map[string]string "Configuration state"
// @Router       /chatgpt/health [get]
func (h *ChatHandler) Health(c *gin.Context) {
	status := "not_configured"
	if h.chat.Configured() {
		status = "available"
	}
	c.JSON(http.StatusOK, gin.H{
		"service": "chatgpt",
		"status":  status,
		"model":   h.chat.Model(),
	})
}
