package alog_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RgDivine/recordkeep/alog"
)

func TestTest(t *testing.T) {
	t.Parallel()

	t.Run("t is nil", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			alog.Test(nil)
		})
	})

	t.Run("assertions", func(t *testing.T) {
		t.Parallel()

		logger := alog.Test(t)
		logger.Empty()

		logger.InfoContext(ctx, "first message", slog.String("key", "value"))
		logger.DebugContext(ctx, "second message")

		logger.NotEmpty()
		logger.Total(2)
		logger.Contains("first message")
		logger.Contains("key=value")
		logger.NotContains("third message")

		assert.Len(t, logger.Lines(), 2)
		assert.Contains(t, logger.String(), "second message")
	})

	t.Run("level can be adjusted", func(t *testing.T) {
		t.Parallel()

		logger := alog.Test(t)
		assert.Equal(t, slog.LevelDebug, logger.Level(), "test logger records debug by default")

		logger.SetLevel(slog.LevelInfo)
		logger.DebugContext(ctx, "dropped")

		logger.Empty()
	})
}
