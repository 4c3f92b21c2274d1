package cache

import (
	"context"

	"github.com/getsentry/sentry-go"
)

// startSpan opens a span named after sentry's cache module ops
// (cache.get, cache.put, cache.remove). Without a hub on ctx it returns nil
// and every other helper is a no-op.
func startSpan(ctx context.Context, op, key string) *sentry.Span {
	if sentry.GetHubFromContext(ctx) == nil {
		return nil
	}

	span := sentry.StartSpan(ctx, op)
	span.Description = key
	span.SetData("cache.key", []string{key})
	span.SetData("cache.backend", "go-cache")
	return span
}

// finishLookup records whether a get found its key. An absent key is a
// normal outcome for an expired session, so the span stays OK either way.
func finishLookup(span *sentry.Span, hit bool) {
	if span == nil {
		return
	}
	span.SetData("cache.hit", hit)
	span.Status = sentry.SpanStatusOK
	span.Finish()
}

func finishWrite(span *sentry.Span) {
	if span == nil {
		return
	}
	span.Status = sentry.SpanStatusOK
	span.Finish()
}
