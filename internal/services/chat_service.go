package services

import (
	"context"
	"fmt"

	"go-items-api/config"
	"go-items-api/internal/transport/dto"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// completionAPI is the slice of the OpenAI client this service uses,
// abstracted so tests can substitute a fake provider.
type completionAPI interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ChatService wraps the OpenAI client to keep handlers lean. When the API
// key is empty no client is constructed and every call short-circuits with
// ErrNotConfigured, never touching the network.
type ChatService struct {
	api   completionAPI
	model string
}

// NewChatService creates a ChatService from configuration.
func NewChatService(cfg config.OpenAIConfig) *ChatService {
	s := &ChatService{model: cfg.Model}
	if cfg.APIKey != "" {
		s.api = openai.NewClient(cfg.APIKey)
	}
	return s
}

// Configured reports whether the provider credential is present.
func (s *ChatService) Configured() bool {
	return s.api != nil
}

// Model returns the configured completion model name.
func (s *ChatService) Model() string {
	return s.model
}

// GetChatCompletion requests a completion for the given role-tagged turns
// and returns the first choice's text. All provider-side failures collapse
// into ErrCompletionFailed; the original error is only logged.
func (s *ChatService) GetChatCompletion(ctx context.Context, messages []dto.ChatMessage, temperature float32, maxTokens int) (string, error) {
	if s.api == nil {
		logrus.Warn("ChatGPT client not configured")
		return "", ErrNotConfigured
	}

	request := openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
	for _, m := range messages {
		request.Messages = append(request.Messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	response, err := s.api.CreateChatCompletion(ctx, request)
	if err != nil {
		logrus.Errorf("ChatGPT API call failed: %v", err)
		return "", ErrCompletionFailed
	}
	if len(response.Choices) == 0 {
		logrus.Error("ChatGPT API returned no choices")
		return "", ErrCompletionFailed
	}

	return response.Choices[0].Message.Content, nil
}

// AnalyzeItemDescription builds the fixed analysis prompt around the
// completion primitive.
func (s *ChatService) AnalyzeItemDescription(ctx context.Context, description string) (string, error) {
	prompt := fmt.Sprintf(
		"Analyze the following product description and provide a short report covering: "+
			"1) key characteristics, 2) target audience, 3) recommendations, 4) an overall rating from 1 to 10. "+
			"Description: %s", description)
	messages := []dto.ChatMessage{
		{Role: openai.ChatMessageRoleSystem, Content: "You are a product analysis assistant."},
		{Role: openai.ChatMessageRoleUser, Content: prompt},
	}
	return s.GetChatCompletion(ctx, messages, DefaultTemperature, DefaultMaxTokens)
}

// GenerateItemTitles builds the fixed title-generation prompt around the
// completion primitive.
func (s *ChatService) GenerateItemTitles(ctx context.Context, description string) (string, error) {
	prompt := fmt.Sprintf(
		"Write 3 short catchy titles (at most 60 characters each) for the following product. "+
			"Use different styles and avoid repetition. "+
			"Description: %s", description)
	messages := []dto.ChatMessage{
		{Role: openai.ChatMessageRoleSystem, Content: "You are a marketing specialist."},
		{Role: openai.ChatMessageRoleUser, Content: prompt},
	}
	return s.GetChatCompletion(ctx, messages, DefaultTemperature, DefaultMaxTokens)
}

// Defaults applied when a chat request omits tuning parameters.
const (
	DefaultTemperature float32 = 0.7
	DefaultMaxTokens           = 512
)
