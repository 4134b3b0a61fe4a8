package service

import (
	"strings"

	"companion-backend/internal/model"
)

// SanitizeHistory keeps the last limit raw entries (all of them when limit <= 0),
// then drops entries whose trimmed content is empty. Truncation happens first,
// so fewer than limit messages may survive.
func SanitizeHistory(history model.History, limit int) []model.ChatMessage {
	if limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}

	// filter only after truncating
	messages := make([]model.ChatMessage, 0, len(history))
	for _, entry := range history {
		content := strings.TrimSpace(entry.Content)
		if content == "" {
			continue
		}

		role := model.RoleUser
		if entry.IsAI() {
			role = model.RoleAssistant
		}
		messages = append(messages, model.ChatMessage{Role: role, Content: content})
	}
	return messages
}
