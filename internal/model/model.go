package model

import (
	"companion-backend/internal/config"
	"companion-backend/internal/utils"
	"companion-backend/pkg/logger"
)

// NewChatModel builds the process-wide completion client. It is created once
// and shared by all requests.
func NewChatModel(cfg config.OpenAIConfig) *OpenAIChatModel {
	logger.Infof("Using OpenAI model %s, API key %s", CompletionModel, maskKey(cfg.APIKey))
	if cfg.BaseURL != "" {
		logger.Infof("Using OpenAI base URL %s", cfg.BaseURL)
	}
	if cfg.DebugRequest {
		logger.Warnf("Upstream request debug logging is enabled; message content will be logged")
	}

	httpClient := utils.NewHTTPClient(cfg.Timeout, cfg.DebugRequest)
	return newOpenAIChatModel(cfg.APIKey, cfg.BaseURL, httpClient)
}

func maskKey(key string) string {
	if len(key) > 8 {
		return key[:3] + "..." + key[len(key)-4:]
	}
	return "***"
}
