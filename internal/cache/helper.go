package cache

import (
	"context"

	"github.com/getsentry/sentry-go"
)

// opSpan traces a single cache operation. The zero value is inert, which is
// what requests without a sentry hub get.
type opSpan struct {
	span *sentry.Span
}

func startOpSpan(ctx context.Context, operation, key string) opSpan {
	if sentry.GetHubFromContext(ctx) == nil {
		return opSpan{}
	}

	span := sentry.StartSpan(ctx, "db.cache", sentry.WithDescription("cache.inmemory."+operation))
	span.SetData("operation", operation)
	span.SetData("key", key)
	return opSpan{span: span}
}

func (s opSpan) set(name string, value interface{}) {
	if s.span != nil {
		s.span.SetData(name, value)
	}
}

func (s opSpan) finish() {
	if s.span == nil {
		return
	}
	s.span.Status = sentry.SpanStatusOK
	s.span.Finish()
}
