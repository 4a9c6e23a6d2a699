package routes_test

import (
	"context"
	"errors"

	"go-items-api/internal/api/handlers"
	"go-items-api/internal/models"
	"go-items-api/internal/services"
	"go-items-api/internal/storage"
	"go-items-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// MockItemRepository is a mock type for the storage.ItemRepository interface
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) List(ctx context.Context, offset, limit int, titleFilter string) ([]models.Item, error) {
	args := m.Called(ctx, offset, limit, titleFilter)
	if items, ok := args.Get(0).([]models.Item); ok {
		return items, args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return nil, errors.New("mock return value type mismatch for []models.Item")
}

func (m *MockItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemRepository) Create(ctx context.Context, req *dto.CreateItemRequest) (*models.Item, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemRepository) Update(ctx context.Context, id int64, req *dto.UpdateItemRequest) (*models.Item, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ storage.ItemRepository = (*MockItemRepository)(nil)

// MockChatService is a mock type for the services.ChatCompleter interface
type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) GetChatCompletion(ctx context.Context, messages []dto.ChatMessage, temperature float32, maxTokens int) (string, error) {
	args := m.Called(ctx, messages, temperature, maxTokens)
	return args.String(0), args.Error(1)
}

func (m *MockChatService) AnalyzeItemDescription(ctx context.Context, description string) (string, error) {
	args := m.Called(ctx, description)
	return args.String(0), args.Error(1)
}

func (m *MockChatService) GenerateItemTitles(ctx context.Context, description string) (string, error) {
	args := m.Called(ctx, description)
	return args.String(0), args.Error(1)
}

func (m *MockChatService) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockChatService) Model() string {
	args := m.Called()
	return args.String(0)
}

var _ services.ChatCompleter = (*MockChatService)(nil)

// MockSimulationService is a mock type for the services.SimulationRunner interface
type MockSimulationService struct {
	mock.Mock
}

func (m *MockSimulationService) Run(ctx context.Context, req *dto.SimulationRequest) (*dto.SimulationResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SimulationResponse), args.Error(1)
}

func (m *MockSimulationService) RunREST(ctx context.Context, req *dto.SimulationRequest) (*dto.SimulationRESTResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SimulationRESTResponse), args.Error(1)
}

func (m *MockSimulationService) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockSimulationService) ListModels(ctx context.Context) ([]dto.ModelSummary, error) {
	args := m.Called(ctx)
	if summaries, ok := args.Get(0).([]dto.ModelSummary); ok {
		return summaries, args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return nil, errors.New("mock return value type mismatch for []dto.ModelSummary")
}

var _ services.SimulationRunner = (*MockSimulationService)(nil)

// MockItemHandler is a mock implementation of ItemHandlerInterface
type MockItemHandler struct {
	mock.Mock
}

func (m *MockItemHandler) GetItems(c *gin.Context)            { m.Called(c) }
func (m *MockItemHandler) GetItemByID(c *gin.Context)         { m.Called(c) }
func (m *MockItemHandler) CreateItem(c *gin.Context)          { m.Called(c) }
func (m *MockItemHandler) UpdateItem(c *gin.Context)          { m.Called(c) }
func (m *MockItemHandler) DeleteItem(c *gin.Context)          { m.Called(c) }
func (m *MockItemHandler) AnalyzeItem(c *gin.Context)         { m.Called(c) }
func (m *MockItemHandler) SuggestImprovements(c *gin.Context) { m.Called(c) }

// Ensure MockItemHandler implements the interface (compile-time check)
var _ handlers.ItemHandlerInterface = (*MockItemHandler)(nil)

// MockChatHandler is a mock implementation of ChatHandlerInterface
type MockChatHandler struct {
	mock.Mock
}

func (m *MockChatHandler) Chat(c *gin.Context)                   { m.Called(c) }
func (m *MockChatHandler) AnalyzeItemDescription(c *gin.Context) { m.Called(c) }
func (m *MockChatHandler) GenerateItemTitles(c *gin.Context)     { m.Called(c) }
func (m *MockChatHandler) Health(c *gin.Context)                 { m.Called(c) }

var _ handlers.ChatHandlerInterface = (*MockChatHandler)(nil)

// MockSimulationHandler is a mock implementation of SimulationHandlerInterface
type MockSimulationHandler struct {
	mock.Mock
}

func (m *MockSimulationHandler) RunSimulation(c *gin.Context)     { m.Called(c) }
func (m *MockSimulationHandler) RunSimulationREST(c *gin.Context) { m.Called(c) }
func (m *MockSimulationHandler) GetModels(c *gin.Context)         { m.Called(c) }

var _ handlers.SimulationHandlerInterface = (*MockSimulationHandler)(nil)
