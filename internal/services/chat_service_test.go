package services

import (
	"context"
	"errors"
	"testing"

	"go-items-api/config"
	"go-items-api/internal/transport/dto"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompletionAPI records the last request and returns a canned response.
type fakeCompletionAPI struct {
	lastRequest openai.ChatCompletionRequest
	calls       int
	response    openai.ChatCompletionResponse
	err         error
}

func (f *fakeCompletionAPI) CreateChatCompletion(_ context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.calls++
	f.lastRequest = request
	return f.response, f.err
}

func completionResponse(text string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: text}},
		},
	}
}

func TestChatService_Unconfigured(t *testing.T) {
	service := NewChatService(config.OpenAIConfig{APIKey: "", Model: "gpt-3.5-turbo"})

	assert.False(t, service.Configured())

	_, err := service.GetChatCompletion(context.Background(), []dto.ChatMessage{{Role: "user", Content: "hi"}}, 0.7, 512)
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = service.AnalyzeItemDescription(context.Background(), "a sturdy widget")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = service.GenerateItemTitles(context.Background(), "a sturdy widget")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestChatService_GetChatCompletion(t *testing.T) {
	t.Run("returns the first choice's text", func(t *testing.T) {
		fake := &fakeCompletionAPI{response: completionResponse("hello there")}
		service := &ChatService{api: fake, model: "gpt-3.5-turbo"}

		text, err := service.GetChatCompletion(context.Background(), []dto.ChatMessage{
			{Role: "system", Content: "be brief"},
			{Role: "user", Content: "hi"},
		}, 0.3, 128)
		require.NoError(t, err)
		assert.Equal(t, "hello there", text)

		assert.Equal(t, "gpt-3.5-turbo", fake.lastRequest.Model)
		assert.Equal(t, float32(0.3), fake.lastRequest.Temperature)
		assert.Equal(t, 128, fake.lastRequest.MaxTokens)
		require.Len(t, fake.lastRequest.Messages, 2)
		assert.Equal(t, "system", fake.lastRequest.Messages[0].Role)
		assert.Equal(t, "hi", fake.lastRequest.Messages[1].Content)
	})

	t.Run("provider errors collapse into ErrCompletionFailed", func(t *testing.T) {
		fake := &fakeCompletionAPI{err: errors.New("rate limited")}
		service := &ChatService{api: fake, model: "gpt-3.5-turbo"}

		_, err := service.GetChatCompletion(context.Background(), []dto.ChatMessage{{Role: "user", Content: "hi"}}, 0.7, 512)
		assert.ErrorIs(t, err, ErrCompletionFailed)
	})

	t.Run("empty choice list is ErrCompletionFailed", func(t *testing.T) {
		fake := &fakeCompletionAPI{response: openai.ChatCompletionResponse{}}
		service := &ChatService{api: fake, model: "gpt-3.5-turbo"}

		_, err := service.GetChatCompletion(context.Background(), []dto.ChatMessage{{Role: "user", Content: "hi"}}, 0.7, 512)
		assert.ErrorIs(t, err, ErrCompletionFailed)
	})
}

func TestChatService_PromptTemplates(t *testing.T) {
	t.Run("analysis prompt embeds the description", func(t *testing.T) {
		fake := &fakeCompletionAPI{response: completionResponse("report")}
		service := &ChatService{api: fake, model: "gpt-3.5-turbo"}

		text, err := service.AnalyzeItemDescription(context.Background(), "a sturdy widget")
		require.NoError(t, err)
		assert.Equal(t, "report", text)

		require.Len(t, fake.lastRequest.Messages, 2)
		assert.Equal(t, openai.ChatMessageRoleSystem, fake.lastRequest.Messages[0].Role)
		assert.Contains(t, fake.lastRequest.Messages[1].Content, "a sturdy widget")
		assert.Contains(t, fake.lastRequest.Messages[1].Content, "rating from 1 to 10")
	})

	t.Run("title prompt embeds the description", func(t *testing.T) {
		fake := &fakeCompletionAPI{response: completionResponse("titles")}
		service := &ChatService{api: fake, model: "gpt-3.5-turbo"}

		_, err := service.GenerateItemTitles(context.Background(), "a sturdy widget")
		require.NoError(t, err)

		require.Len(t, fake.lastRequest.Messages, 2)
		assert.Contains(t, fake.lastRequest.Messages[1].Content, "a sturdy widget")
		assert.Contains(t, fake.lastRequest.Messages[1].Content, "3 short catchy titles")
	})
}
