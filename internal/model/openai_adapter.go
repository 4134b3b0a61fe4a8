package model

import (
	"context"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// Completion parameters are fixed for every request.
const (
	CompletionModel       = openai.GPT3Dot5Turbo
	CompletionMaxTokens   = 150
	CompletionTemperature = float32(0.7)
)

// OpenAIChatModel calls the chat completions endpoint once per Generate.
type OpenAIChatModel struct {
	client *openai.Client
	model  string
}

func newOpenAIChatModel(apiKey, baseURL string, httpClient *http.Client) *OpenAIChatModel {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	if httpClient != nil {
		clientConfig.HTTPClient = httpClient
	}

	return &OpenAIChatModel{
		client: openai.NewClientWithConfig(clientConfig),
		model:  CompletionModel,
	}
}

// Generate returns the raw content of the first choice, or "" when the
// service returned no choices.
func (m *OpenAIChatModel) Generate(ctx context.Context, messages []ChatMessage) (string, error) {
	resp, err := m.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       m.model,
		Messages:    convertMessages(messages),
		MaxTokens:   CompletionMaxTokens,
		Temperature: CompletionTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func convertMessages(messages []ChatMessage) []openai.ChatCompletionMessage {
	result := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		role := openai.ChatMessageRoleUser
		switch msg.Role {
		case RoleSystem:
			role = openai.ChatMessageRoleSystem
		case RoleAssistant:
			role = openai.ChatMessageRoleAssistant
		}

		result = append(result, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		})
	}
	return result
}
