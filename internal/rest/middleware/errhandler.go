package middleware

import (
	"github.com/gin-gonic/gin"
	ierr "github.com/invoicesystem/invoicesystem/internal/errors"
	"github.com/invoicesystem/invoicesystem/internal/logger"
	"github.com/invoicesystem/invoicesystem/internal/sentry"
	"github.com/invoicesystem/invoicesystem/internal/types"
)

// ErrorHandler renders the last handler error as an ierr.ErrorResponse with
// the status mapped from its sentinel. Server errors are reported to Sentry.
func ErrorHandler(log *logger.Logger, sentrySvc *sentry.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := ierr.HTTPStatusFromErr(err)

		fields := []interface{}{
			"status", status,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"request_id", types.GetRequestID(c.Request.Context()),
			"error", err,
		}
		if status >= 500 {
			log.Errorw("request failed", fields...)
			sentrySvc.CaptureException(err)
		} else {
			log.Debugw("request rejected", fields...)
		}

		if c.Writer.Written() {
			return
		}
		c.JSON(status, ierr.NewErrorResponse(err))
	}
}
