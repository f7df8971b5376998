package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/superpoll-api/internal/metrics"
	"github.com/ErlanBelekov/superpoll-api/internal/repository"
	"github.com/ErlanBelekov/superpoll-api/internal/transport/http/handler"
	"github.com/gin-gonic/gin"
)

// ErrorLog writes the stack of every 500 to sink. The write happens in the
// background and its failure never changes the response.
func ErrorLog(sink repository.LogErrorRepository, logger *slog.Logger) gin.HandlerFunc {
	logger = logger.With("component", "error_log")
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() != http.StatusInternalServerError {
			return
		}
		stack := c.GetString(handler.StackKey)
		if stack == "" {
			return
		}

		ctx := context.WithoutCancel(c.Request.Context())
		go func() {
			if err := sink.LogError(ctx, stack); err != nil {
				metrics.ErrorLogFailuresTotal.Inc()
				logger.WarnContext(ctx, "write error log", "error", err)
			}
		}()
	}
}
