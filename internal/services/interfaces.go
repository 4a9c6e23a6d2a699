package services

import (
	"context"

	"go-items-api/internal/transport/dto"
)

// ChatCompleter is the boundary to the chat completion provider.
type ChatCompleter interface {
	GetChatCompletion(ctx context.Context, messages []dto.ChatMessage, temperature float32, maxTokens int) (string, error)
	AnalyzeItemDescription(ctx context.Context, description string) (string, error)
	GenerateItemTitles(ctx context.Context, description string) (string, error)
	Configured() bool
	Model() string
}

// SimulationRunner is the boundary to the simulation cloud provider.
type SimulationRunner interface {
	Run(ctx context.Context, req *dto.SimulationRequest) (*dto.SimulationResponse, error)
	RunREST(ctx context.Context, req *dto.SimulationRequest) (*dto.SimulationRESTResponse, error)
	ListModels(ctx context.Context) ([]dto.ModelSummary, error)
	Configured() bool
}

// Ensure implementations satisfy the interfaces (compile-time check)
var _ ChatCompleter = (*ChatService)(nil)
var _ SimulationRunner = (*SimulationService)(nil)
