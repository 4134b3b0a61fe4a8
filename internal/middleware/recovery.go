package middleware

import (
	"net/http"

	"companion-backend/internal/model"
	"companion-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Recovery turns a panic into the generic 500 envelope, unless a response
// has already been started.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.WithFields(logrus.Fields{
			RequestIDKey: c.GetString(RequestIDKey),
			"panic":      recovered,
		}).Error("Unhandled error")

		if c.Writer.Written() {
			c.Abort()
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.Failure("Internal server error"))
	})
}
