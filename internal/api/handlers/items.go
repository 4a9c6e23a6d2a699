package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"go-items-api/internal/models"
	"go-items-api/internal/services"
	"go-items-api/internal/storage"
	"go-items-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// ItemHandler holds the repository and AI proxy dependencies for item
// operations.
type ItemHandler struct {
	repo      storage.ItemRepository
	chat      services.ChatCompleter
	validator *validator.Validate
}

// NewItemHandler creates a new ItemHandler with the given dependencies.
func NewItemHandler(repo storage.ItemRepository, chat services.ChatCompleter, validate *validator.Validate) *ItemHandler {
	return &ItemHandler{repo: repo, chat: chat, validator: validate}
}

// GetItems godoc
// @Summary      List items
// @Description  Retrieves items with offset/limit pagination and an optional case-insensitive title filter.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        skip   query     int     false  "Number of records to skip"  default(0)
// @Param        limit  query     int     false  "Maximum records to return (1-1000)"  default(100)
// @Param        title  query     string  false  "Title substring filter"
// @Success      200  {array}   dto.ItemResponse "Successfully retrieved list of items"
// @Failure      422  {object}  map[string]string{error=string} "Validation failed"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /items [get]
func (h *ItemHandler) GetItems(c *gin.Context) {
	var query dto.ListItemsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	if err := h.validator.Struct(query); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed", "details": formatValidationErrors(err)})
		return
	}

	items, err := h.repo.List(c.Request.Context(), query.Skip, query.Limit, query.Title)
	if err != nil {
		logrus.Errorf("Error fetching items: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve items"})
		return
	}

	responses := make([]dto.ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, MapItemToResponse(&items[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// GetItemByID godoc
// @Summary      Get an item by ID
// @Description  Retrieves details for a specific item by its ID.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Item ID"
// @Success      200  {object}  dto.ItemResponse "Successfully retrieved item"
// @Failure      404  {object}  map[string]string{error=string} "Item Not Found"
// @Failure      422  {object}  map[string]string{error=string} "Invalid ID"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /items/{id} [get]
func (h *ItemHandler) GetItemByID(c *gin.Context) {
	id, ok := h.itemID(c)
	if !ok {
		return
	}

	item, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		} else {
			logrus.Errorf("Error fetching item by ID %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item"})
		}
		return
	}
	c.JSON(http.StatusOK, MapItemToResponse(item))
}

// CreateItem godoc
// @Summary      Create a new item
// @Description  Adds a new item; the store assigns the ID.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        item body      dto.CreateItemRequest true  "Item to create"
// @Success      201  {object}  dto.ItemResponse "Item created successfully"
// @Failure      422  {object}  map[string]string{error=string} "Validation failed"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /items [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed", "details": formatValidationErrors(err)})
		return
	}

	item, err := h.repo.Create(c.Request.Context(), &req)
	if err != nil {
		logrus.Errorf("Error creating item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}

	c.JSON(http.StatusCreated, MapItemToResponse(item))
}

// UpdateItem godoc
// @Summary      Partially update an item
// @Description  Applies only the supplied fields; omitted fields keep their stored values.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id   path      int                   true  "Item ID"
// @Param        item body      dto.UpdateItemRequest true  "Fields to update"
// @Success      200  {object}  dto.ItemResponse "Item updated successfully"
// @Failure      404  {object}  map[string]string{error=string} "Item Not Found"
// @Failure      422  {object}  map[string]string{error=string} "Validation failed"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /items/{id} [put]
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	id, ok := h.itemID(c)
	if !ok {
		return
	}

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed", "details": formatValidationErrors(err)})
		return
	}

	item, err := h.repo.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		} else {
			logrus.Errorf("Error updating item %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		}
		return
	}

	c.JSON(http.StatusOK, MapItemToResponse(item))
}

// DeleteItem godoc
// @Summary      Delete an item by ID
// @Description  Removes an item from the database by its ID.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Item ID"
// @Success      200  {object}  dto.DeleteItemResponse "Item deleted successfully"
// @Failure      404  {object}  map[string]string{error=string} "Item Not Found"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /items/{id} [delete]
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	id, ok := h.itemID(c)
	if !ok {
		return
	}

	err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		} else {
			logrus.Errorf("Error deleting item %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.DeleteItemResponse{Message: "Item deleted successfully"})
}

// AnalyzeItem godoc
// @Summary      Analyze a stored item with AI
// @Description  Runs the analysis and title-generation prompts over the item's description.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Item ID"
// @Success      200  {object}  dto.ItemAnalysisResponse "Analysis result"
// @Failure      400  {object}  map[string]string{error=string} "Item has no description"
// @Failure      404  {object}  map[string]string{error=string} "Item Not Found"
// @Failure      500  {object}  map[string]string{error=string} "AI analysis failed"
// @Failure      503  {object}  map[string]string{error=string} "AI service not configured"
// @Router       /items/{id}/analyze [post]
func (h *ItemHandler) AnalyzeItem(c *gin.Context) {
	if !h.chat.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ChatGPT service is not configured"})
		return
	}

	item, ok := h.itemWithDescription(c)
	if !ok {
		return
	}

	analysis, err := h.chat.AnalyzeItemDescription(c.Request.Context(), *item.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI analysis failed"})
		return
	}

	titles, err := h.chat.GenerateItemTitles(c.Request.Context(), *item.Description)
	if err != nil {
		titles = "Failed to generate titles"
	}

	c.JSON(http.StatusOK, dto.ItemAnalysisResponse{
		OriginalDescription: *item.Description,
		Analysis:            analysis,
		GeneratedTitles:     titles,
	})
}

// SuggestImprovements godoc
// @Summary      AI suggestions for an item's description
// @Description  Asks the AI proxy for concrete improvements to the stored description.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Item ID"
// @Success      200  {object}  dto.SuggestImprovementsResponse "Suggestions"
// @Failure      400  {object}  map[string]string{error=string} "Item has no description"
// @Failure      404  {object}  map[string]string{error=string} "Item Not Found"
// @Failure      503  {object}  map[string]string{error=string} "AI service not configured"
// @Router       /items/{id}/suggest-improvements [post]
func (h *ItemHandler) SuggestImprovements(c *gin.Context) {
	if !h.chat.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ChatGPT service is not configured"})
		return
	}

	item, ok := h.itemWithDescription(c)
	if !ok {
		return
	}

	prompt := "Review this product description and suggest improvements: 1) 3 alternative descriptions, " +
		"2) SEO keywords, 3) text structure, 4) calls to action. " +
		"Description: " + *item.Description

	messages := []dto.ChatMessage{
		{Role: "system", Content: "You are a marketing expert."},
		{Role: "user", Content: prompt},
	}

	suggestions, err := h.chat.GetChatCompletion(c.Request.Context(), messages, services.DefaultTemperature, services.DefaultMaxTokens)
	if err != nil {
		suggestions = "Failed to generate suggestions"
	}

	c.JSON(http.StatusOK, dto.SuggestImprovementsResponse{
		ItemID:              item.ID,
		OriginalDescription: *item.Description,
		Suggestions:         suggestions,
	})
}

// itemID parses the path id, writing a 422 response on failure.
func (h *ItemHandler) itemID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Item id must be an integer"})
		return 0, false
	}
	return id, true
}

// itemWithDescription loads the item and requires a non-empty description,
// writing the error response itself when either check fails.
func (h *ItemHandler) itemWithDescription(c *gin.Context) (*models.Item, bool) {
	id, ok := h.itemID(c)
	if !ok {
		return nil, false
	}

	item, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		} else {
			logrus.Errorf("Error fetching item by ID %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item"})
		}
		return nil, false
	}

	if item.Description == nil || *item.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Item has no description"})
		return nil, false
	}
	return item, true
}
