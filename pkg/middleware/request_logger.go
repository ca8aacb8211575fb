package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"apextip/pkg/utils"
)

// RequestLogger installs a request-scoped logrus entry and logs one line per request.
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		entry := log.WithFields(logrus.Fields{
			"trace_id": c.GetString(utils.CtxTraceID),
			"method":   c.Request.Method,
			"path":     c.FullPath(),
		})
		c.Set(utils.CtxLogger, entry)

		c.Next()

		status := c.Writer.Status()
		fields := logrus.Fields{
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		}
		if creatorID := c.GetString(utils.CtxCreatorID); creatorID != "" {
			fields["creator_id"] = creatorID
		}

		switch {
		case status >= http.StatusInternalServerError:
			entry.WithFields(fields).Error("request completed")
		case status >= http.StatusBadRequest:
			entry.WithFields(fields).Warn("request completed")
		default:
			entry.WithFields(fields).Info("request completed")
		}
	}
}

// Recovery turns panics into the standard 500 envelope.
func Recovery(log *logrus.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithFields(logrus.Fields{
			"trace_id": c.GetString(utils.CtxTraceID),
			"panic":    recovered,
		}).Error("panic recovered")
		utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
		c.Abort()
	})
}
