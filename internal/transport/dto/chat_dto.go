package dto

// ChatMessage is a single role-tagged turn in a conversation.
type ChatMessage struct {
	Role    string `json:"role" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// ChatPrompt defines the structure for a raw chat completion request.
// Temperature and MaxTokens are optional; handlers default them to 0.7
// and 512 respectively before validation.
type ChatPrompt struct {
	Messages    []ChatMessage `json:"messages" validate:"required,min=1,dive"`
	Temperature *float32      `json:"temperature" validate:"omitempty,gte=0,lte=1"`
	MaxTokens   *int          `json:"max_tokens" validate:"omitempty,gte=1,lte=4096"`
}

// ChatResponse reports the outcome of a raw chat completion request.
// Provider failures are surfaced in-band through Success/Error.
type ChatResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}

// ItemAnalysisRequest asks the AI proxy to analyze an item description.
type ItemAnalysisRequest struct {
	Description string `json:"description" validate:"required,min=10"`
}

// ItemAnalysisResponse carries the analysis plus generated titles.
type ItemAnalysisResponse struct {
	OriginalDescription string `json:"original_description"`
	Analysis            string `json:"analysis"`
	GeneratedTitles     string `json:"generated_titles"`
}

// TitleGenerationRequest asks the AI proxy for title suggestions.
type TitleGenerationRequest struct {
	Description string  `json:"description" validate:"required,min=10"`
	Style       *string `json:"style" validate:"omitempty,max=100"`
}

// TitleGenerationResponse carries the generated titles.
type TitleGenerationResponse struct {
	OriginalDescription string `json:"original_description"`
	GeneratedTitles     string `json:"generated_titles"`
}

// SuggestImprovementsResponse carries free-form improvement suggestions
// for a stored item's description.
type SuggestImprovementsResponse struct {
	ItemID              int64  `json:"item_id"`
	OriginalDescription string `json:"original_description"`
	Suggestions         string `json:"suggestions"`
}
