package middleware

import (
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/invoicesystem/invoicesystem/internal/config"
	"github.com/invoicesystem/invoicesystem/internal/types"
)

// SentryMiddleware attaches a sentry hub to each request and tags it with the
// request id and matched route. It passes straight through while sentry is disabled.
func SentryMiddleware(cfg *config.Configuration) gin.HandlersChain {
	if !cfg.Sentry.Enabled {
		return gin.HandlersChain{func(c *gin.Context) { c.Next() }}
	}

	return gin.HandlersChain{
		sentrygin.New(sentrygin.Options{
			Repanic:         true,
			WaitForDelivery: false,
			Timeout:         2 * time.Second,
		}),
		tagSentryScope,
	}
}

func tagSentryScope(c *gin.Context) {
	if hub := sentrygin.GetHubFromContext(c); hub != nil {
		hub.ConfigureScope(func(scope *sentry.Scope) {
			scope.SetTag("request_id", types.GetRequestID(c.Request.Context()))
			scope.SetTag("route", c.FullPath())
		})
	}
	c.Next()
}
