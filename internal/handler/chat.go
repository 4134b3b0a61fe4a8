package handler

import (
	"net/http"
	"time"

	"companion-backend/internal/middleware"
	"companion-backend/internal/model"
	"companion-backend/internal/service"
	"companion-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	ChatPath = "/chat"

	// StatusClientClosedRequest marks requests abandoned by the caller in the access log.
	StatusClientClosedRequest = 499

	allowedChatMethods = "POST, OPTIONS"
	internalError      = "Internal server error"
)

type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// Chat runs the request pipeline for POST /chat. Every branch decides the
// status and body before anything is written.
func (h *ChatHandler) Chat(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.Header("Allow", allowedChatMethods)
		c.JSON(http.StatusMethodNotAllowed, model.Failure("Method Not Allowed"))
		return
	}

	log := logger.WithFields(logrus.Fields{middleware.RequestIDKey: c.GetString(middleware.RequestIDKey)})

	body, err := c.GetRawData()
	if err != nil {
		log.WithError(err).Error("Error reading request body")
		c.JSON(http.StatusInternalServerError, model.Failure(internalError))
		return
	}

	req, err := model.DecodeChatRequest(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.Failure(err.Error()))
		return
	}

	reply, err := h.chatService.Reply(c.Request.Context(), req)
	if err != nil {
		if model.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, model.Failure(err.Error()))
			return
		}
		if ctxErr := c.Request.Context().Err(); ctxErr != nil {
			// the caller is gone; nothing useful can be sent
			log.WithError(err).Warn("Chat request cancelled")
			c.AbortWithStatus(StatusClientClosedRequest)
			return
		}

		log.WithError(err).Error("Error generating response")
		c.JSON(http.StatusInternalServerError, model.Failure(internalError))
		return
	}

	c.JSON(http.StatusOK, model.Reply(reply))
}

// Index describes the API.
func (h *ChatHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, model.InfoResponse{
		Success:  true,
		Message:  "Chatbot API is running",
		Endpoint: ChatPath,
		Method:   http.MethodPost,
	})
}

func (h *ChatHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
	})
}

func (h *ChatHandler) NotFound(c *gin.Context) {
	resp := model.Failure("Route not found")
	resp.Path = c.Request.URL.Path
	c.JSON(http.StatusNotFound, resp)
}
