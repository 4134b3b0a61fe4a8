package service

import (
	"context"
	"fmt"
	"strings"

	"companion-backend/internal/config"
	"companion-backend/internal/model"
	"companion-backend/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ChatModel is the completion service: role-tagged messages in, text out.
type ChatModel interface {
	Generate(ctx context.Context, messages []model.ChatMessage) (string, error)
}

type ChatService struct {
	chatModel    ChatModel
	historyLimit int
}

func NewChatService(cfg *config.Config, chatModel ChatModel) *ChatService {
	return &ChatService{
		chatModel:    chatModel,
		historyLimit: cfg.Chat.HistoryLimit,
	}
}

// BuildMessages composes system prompt, sanitized history and the user message.
func (s *ChatService) BuildMessages(req model.ChatRequest) []model.ChatMessage {
	history := SanitizeHistory(req.History, s.historyLimit)

	messages := make([]model.ChatMessage, 0, len(history)+2)
	messages = append(messages, model.ChatMessage{Role: model.RoleSystem, Content: BuildSystemPrompt(req.CompanionName)})
	messages = append(messages, history...)
	messages = append(messages, model.ChatMessage{Role: model.RoleUser, Content: req.UserMessage})
	return messages
}

// Reply validates req and returns the companion's trimmed reply. Validation
// failures are *model.ValidationError; an empty completion is ErrEmptyResponse.
func (s *ChatService) Reply(ctx context.Context, req model.ChatRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	log := logger.WithFields(logrus.Fields{"companion": req.CompanionName})
	log.Infof("Chat request for %s: %s", req.CompanionName, req.UserMessage)

	messages := s.BuildMessages(req)
	log.Debugf("Sending %d messages upstream", len(messages))

	reply, err := s.generate(ctx, messages)
	if err != nil {
		return "", err
	}

	log.Infof("Generated response: %s", reply)
	return reply, nil
}

func (s *ChatService) generate(ctx context.Context, messages []model.ChatMessage) (string, error) {
	text, err := s.chatModel.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("generate reply: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
