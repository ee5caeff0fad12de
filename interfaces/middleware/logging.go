package middleware

import (
	"net/http"
	"time"

	"popular-videos/domain/apperror"
	"popular-videos/domain/dto"
	"popular-videos/infrastructure/logger"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Logging writes one structured entry per request once it completes.
func Logging() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		path := ctx.Request.URL.Path

		ctx.Next()

		entry := logger.GetLogger().WithFields(log.Fields{
			"request_id": GetRequestID(ctx),
			"method":     ctx.Request.Method,
			"path":       path,
			"status":     ctx.Writer.Status(),
			"size":       ctx.Writer.Size(),
			"duration":   time.Since(start).String(),
			"remote_ip":  ctx.ClientIP(),
		})
		switch status := ctx.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			entry.Warn("Request completed")
		default:
			entry.Info("Request completed")
		}
	}
}

// Recovery turns a panic into the generic internal error body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(ctx *gin.Context, recovered any) {
		logger.GetLogger().WithFields(log.Fields{
			"request_id": GetRequestID(ctx),
			"error":      recovered,
		}).Error("Panic recovered")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: apperror.MessageInternalFailed})
	})
}
