package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":      "*",
	"Access-Control-Allow-Credentials": "true",
	"Access-Control-Allow-Methods":     "GET,POST,PUT,DELETE,OPTIONS",
	"Access-Control-Allow-Headers":     "Content-Type, Authorization",
}

// CORS stamps the permissive CORS headers on every response and answers
// preflight requests for any path with an empty 200.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		for name, value := range corsHeaders {
			c.Header(name, value)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}
