package router

import (
	"net/http"
	"net/url"
	"strings"

	"companion-backend/internal/handler"
	"companion-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// New returns the single request handler shared by the standalone server and
// the hosted-platform entry point.
func New(chatHandler *handler.ChatHandler) http.Handler {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	// trailing slashes are trimmed before routing, never redirected
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	// liveness, outside the chat API
	router.GET("/health", chatHandler.Health)
	router.Any("/", chatHandler.Index)
	router.Any(handler.ChatPath, chatHandler.Chat)
	router.NoRoute(chatHandler.NotFound)

	return trimTrailingSlash(router)
}

// trimTrailingSlash routes "/chat/" like "/chat" instead of redirecting.
func trimTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := r.URL.Path
		if len(p) <= 1 || !strings.HasSuffix(p, "/") {
			next.ServeHTTP(w, r)
			return
		}

		r2 := new(http.Request)
		*r2 = *r
		r2.URL = new(url.URL)
		*r2.URL = *r.URL
		r2.URL.Path = strings.TrimSuffix(p, "/")
		r2.URL.RawPath = ""
		next.ServeHTTP(w, r2)
	})
}
