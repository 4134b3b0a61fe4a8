// Package api is the entry point for hosting platforms that own the listener
// and invoke an exported Handler per request.
package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"companion-backend/internal/config"
	"companion-backend/internal/handler"
	"companion-backend/internal/model"
	"companion-backend/internal/router"
	"companion-backend/internal/service"
	"companion-backend/pkg/logger"
)

var (
	initOnce sync.Once
	app      http.Handler
)

// misconfiguredModel stands in for the completion client when initialisation
// failed, so only the generation stage reports the error.
type misconfiguredModel struct {
	err error
}

func (m misconfiguredModel) Generate(ctx context.Context, messages []model.ChatMessage) (string, error) {
	return "", fmt.Errorf("chat function is misconfigured: %w", m.err)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newHandler(load func() (*config.Config, error)) http.Handler {
	var chatModel service.ChatModel

	cfg, err := load()
	if err != nil {
		logger.Errorf("Chat function is misconfigured: %v", err)
		// CORS, routing and validation keep working; POSTs that pass
		// validation get the generic 500.
		cfg = &config.Config{}
		chatModel = misconfiguredModel{err: err}
	} else {
		chatModel = model.NewChatModel(cfg.OpenAI)
	}

	chatService := service.NewChatService(cfg, chatModel)
	return chatRoute(router.New(handler.NewChatHandler(chatService)))
}

// chatRoute serves the chat endpoint regardless of the platform route it is
// mounted on.
func chatRoute(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r2 := new(http.Request)
		*r2 = *r
		r2.URL = new(url.URL)
		*r2.URL = *r.URL
		r2.URL.Path = handler.ChatPath
		r2.URL.RawPath = ""
		next.ServeHTTP(w, r2)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initOnce.Do(func() {
		app = newHandler(loadConfig)
	})
	app.ServeHTTP(w, r)
}
