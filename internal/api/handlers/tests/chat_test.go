package routes_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-items-api/internal/api/handlers"
	"go-items-api/internal/api/routes"
	"go-items-api/internal/services"
	"go-items-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Helper Function for Setup ---

func setupTestRouterWithChatMocks() (*gin.Engine, *MockChatService, *handlers.ChatHandler) {
	gin.SetMode(gin.TestMode)
	mockChat := new(MockChatService)
	validate := validator.New()
	handler := handlers.NewChatHandler(mockChat, validate)
	router := gin.New()
	return router, mockChat, handler
}

func TestRegisterChatRoutes(t *testing.T) {
	// Arrange
	gin.SetMode(gin.TestMode)

	mockHandler := new(MockChatHandler)

	router := gin.New()
	testGroup := router.Group("/")

	// Act
	routes.RegisterChatRoutes(testGroup, mockHandler)

	// Assert
	expectedRoutes := []struct {
		Method string
		Path   string
	}{
		{http.MethodPost, "/chatgpt/chat"},
		{http.MethodPost, "/chatgpt/analyze-item"},
		{http.MethodPost, "/chatgpt/generate-titles"},
		{http.MethodGet, "/chatgpt/health"},
	}

	registeredRoutes := router.Routes()

	registeredMap := make(map[string]bool)
	for _, routeInfo := range registeredRoutes {
		registeredMap[routeInfo.Method+" "+routeInfo.Path] = true
	}

	assert.Len(t, registeredRoutes, len(expectedRoutes), "Number of registered routes should match expected")
	for _, expected := range expectedRoutes {
		assert.True(t, registeredMap[expected.Method+" "+expected.Path], "Expected route %s %s to be registered", expected.Method, expected.Path)
	}
}

func TestChatHandler_Chat(t *testing.T) {
	t.Run("Success With Default Parameters", func(t *testing.T) {
		router, mockChat, handler := setupTestRouterWithChatMocks()
		router.POST("/chatgpt/chat", handler.Chat)

		messages := []dto.ChatMessage{{Role: "user", Content: "hi"}}
		mockChat.On("Configured").Return(true).Once()
		mockChat.On("GetChatCompletion", mock.Anything, messages, services.DefaultTemperature, services.DefaultMaxTokens).
			Return("hello there", nil).Once()

		body, _ := json.Marshal(dto.ChatPrompt{Messages: messages})

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/chatgpt/chat", bytes.NewBuffer(body))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response dto.ChatResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.True(t, response.Success)
		assert.Equal(t, "hello there", response.Response)
		assert.Empty(t, response.Error)
		mockChat.AssertExpectations(t)
	})

	t.Run("Success With Explicit Parameters", func(t *testing.T) {
		router, mockChat, handler := setupTestRouterWithChatMocks()
		router.POST("/chatgpt/chat", handler.Chat)

		temperature := float32(0.2)
		maxTokens := 64
		messages := []dto.ChatMessage{{Role: "user", Content: "hi"}}
		mockChat.On("Configured").Return(true).Once()
		mockChat.On("GetChatCompletion", mock.Anything, messages, temperature, maxTokens).
			Return("terse reply", nil).Once()

		body, _ := json.Marshal(dto.ChatPrompt{Messages: messages, Temperature: &temperature, MaxTokens: &maxTokens})

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/chatgpt/chat", bytes.NewBuffer(body))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		mockChat.AssertExpectations(t)
	})

	t.Run("Provider Failure Is Reported In-Band", func(t *testing.T) {
		router, mockChat, handler := setupTestRouterWithChatMocks()
		router.POST("/chatgpt/chat", handler.Chat)

		mockChat.On("Configured").Return(true).Once()
		mockChat.On("GetChatCompletion", mock.Anything, mock.Anything, services.DefaultTemperature, services.DefaultMaxTokens).
			Return("", services.ErrCompletionFailed).Once()

		body, _ := json.Marshal(dto.ChatPrompt{Messages: []dto.ChatMessage{{Role: "user", Content: "hi"}}})

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/chatgpt/chat", bytes.NewBuffer(body))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		// Failure is still a 200; the payload carries the outcome.
		assert.Equal(t, http.StatusOK, recorder.Code)

		var response dto.ChatResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.False(t, response.Success)
		assert.Equal(t, "Failed to get response from ChatGPT", response.Error)
		mockChat.AssertExpectations(t)
	})

	t.Run("Service Unavailable When Not Configured", func(t *testing.T) {
		router, mockChat, handler := setupTestRouterWithChatMocks()
		router.POST("/chatgpt/chat", handler.Chat)

		mockChat.On("Configured").Return(false).Once()

		body, _ := json.Marshal(dto.ChatPrompt{Messages: []dto.ChatMessage{{Role: "user", Content: "hi"}}})

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/chatgpt/chat", bytes.NewBuffer(body))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "not configured")
		mockChat.AssertNotCalled(t, "GetChatCompletion")
	})

	t.Run("Validation Error - Empty Messages", func(t *testing.T) {
		router, mockChat, handler := setupTestRouterWithChatMocks()
		router.POST("/chatgpt/chat", handler.Chat)

		mockChat.On("Configured").Return(true).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/chatgpt/chat", bytes.NewBufferString(`{"messages":[]}`))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		mockChat.AssertNotCalled(t, "GetChatCompletion")
	})

	t.Run("Validation Error - Temperature Out Of Range", func(t *testing.T) {
		router, mockChat, handler := setupTestRouterWithChatMocks()
		router.POST("/chatgpt/chat", handler.Chat)

		mockChat.On("Configured").Return(true).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/chatgpt/chat",
			bytes.NewBufferString(`{"messages":[{"role":"user","content":"hi"}],"temperature":1.5}`))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	})
}

func TestChatHandler_AnalyzeItemDescription(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mockChat, handler := setupTestRouterWithChatMocks()
		router.POST("/chatgpt/analyze-item", handler.AnalyzeItemDescription)

		mockChat.On("Configured").Return(true).Once()
		mockChat.On("AnalyzeItemDescription", mock.Anything, "a very sturdy widget").Return("solid analysis", nil).Once()
		mockChat.On("GenerateItemTitles", mock.Anything, "a very sturdy widget").Return("1. Widget Pro", nil).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/chatgpt/analyze-item",
			bytes.NewBufferString(`{"description":"a very sturdy widget"}`))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response dto.ItemAnalysisResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "a very sturdy widget", response.OriginalDescription)
		assert.Equal(t, "solid analysis", response.Analysis)
		assert.Equal(t, "1. Widget Pro", response.GeneratedTitles)
		mockChat.AssertExpectations(t)
	})

	t.Run("Internal Server Error - Analysis Failed", func(t *testing.T) {
		router, mockChat, handler := setupTestRouterWithChatMocks()
		router.POST("/chatgpt/analyze-item", handler.AnalyzeItemDescription)

		mockChat.On("Configured").Return(true).Once()
		mockChat.On("AnalyzeItemDescription", mock.Anything, "a very sturdy widget").
			Return("", errors.New("provider down")).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/chatgpt/analyze-item",
			bytes.NewBufferString(`{"description":"a very sturdy widget"}`))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		mockChat.AssertNotCalled(t, "GenerateItemTitles")
	})

	t.Run("Validation Error - Short Description", func(t *testing.T) {
		router, mockChat, handler := setupTestRouterWithChatMocks()
		router.POST("/chatgpt/analyze-item", handler.AnalyzeItemDescription)

		mockChat.On("Configured").Return(true).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/chatgpt/analyze-item",
			bytes.NewBufferString(`{"description":"short"}`))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		mockChat.AssertNotCalled(t, "AnalyzeItemDescription")
	})
}

func TestChatHandler_GenerateItemTitles(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mockChat, handler := setupTestRouterWithChatMocks()
		router.POST("/chatgpt/generate-titles", handler.GenerateItemTitles)

		mockChat.On("Configured").Return(true).Once()
		mockChat.On("GenerateItemTitles", mock.Anything, "a very sturdy widget").Return("1. Widget Pro", nil).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/chatgpt/generate-titles",
			bytes.NewBufferString(`{"description":"a very sturdy widget"}`))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response dto.TitleGenerationResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "1. Widget Pro", response.GeneratedTitles)
		mockChat.AssertExpectations(t)
	})

	t.Run("Internal Server Error - Generation Failed", func(t *testing.T) {
		router, mockChat, handler := setupTestRouterWithChatMocks()
		router.POST("/chatgpt/generate-titles", handler.GenerateItemTitles)

		mockChat.On("Configured").Return(true).Once()
		mockChat.On("GenerateItemTitles", mock.Anything, "a very sturdy widget").
			Return("", errors.New("provider down")).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/chatgpt/generate-titles",
			bytes.NewBufferString(`{"description":"a very sturdy widget"}`))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Failed to generate titles")
	})
}

func TestChatHandler_Health(t *testing.T) {
	t.Run("Available", func(t *testing.T) {
		router, mockChat, handler := setupTestRouterWithChatMocks()
		router.GET("/chatgpt/health", handler.Health)

		mockChat.On("Configured").Return(true).Once()
		mockChat.On("Model").Return("gpt-3.5-turbo").Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/chatgpt/health", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response map[string]string
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "chatgpt", response["service"])
		assert.Equal(t, "available", response["status"])
		assert.Equal(t, "gpt-3.5-turbo", response["model"])
	})

	t.Run("Not Configured", func(t *testing.T) {
		router, mockChat, handler := setupTestRouterWithChatMocks()
		router.GET("/chatgpt/health", handler.Health)

		mockChat.On("Configured").Return(false).Once()
		mockChat.On("Model").Return("gpt-3.5-turbo").Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/chatgpt/health", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "not_configured")
	})
}
