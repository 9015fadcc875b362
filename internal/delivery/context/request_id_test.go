package context

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "req-1"))

	t.Run("returns the request-scoped logger when present", func(t *testing.T) {
		ctx := WithLogger(context.Background(), scoped)

		assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
	})

	t.Run("falls back when no logger is stored", func(t *testing.T) {
		assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	})
}
