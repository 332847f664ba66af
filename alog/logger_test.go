package alog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RgDivine/recordkeep/alog"
)

var ctx = context.Background()

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("default logger", func(t *testing.T) {
		t.Parallel()

		logger := alog.New()
		assert.NotNil(t, logger)
		assert.IsType(t, &slog.Logger{}, logger)
	})

	t.Run("logs to multiple handlers", func(t *testing.T) {
		t.Parallel()

		buf0 := &bytes.Buffer{}
		buf1 := &bytes.Buffer{}

		logger := alog.New(
			alog.WithHandler(slog.NewTextHandler(buf0, nil)),
			alog.WithHandler(slog.NewTextHandler(buf1, nil)),
		)

		logger.InfoContext(ctx, "some message")

		assert.Contains(t, buf0.String(), "some message")
		assert.Contains(t, buf1.String(), "some message")
	})

	t.Run("default level is info", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		logger := alog.New(alog.WithHandler(slog.NewTextHandler(buf, nil)))

		logger.DebugContext(ctx, "debug message")
		assert.Empty(t, buf.String())

		logger.InfoContext(ctx, "info message")
		assert.Contains(t, buf.String(), "info message")
	})

	t.Run("with level", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		logger := alog.New(
			alog.WithLevel(slog.LevelDebug),
			alog.WithHandler(slog.NewTextHandler(buf, nil)),
		)

		logger.DebugContext(ctx, "debug message")
		assert.Contains(t, buf.String(), "debug message")
	})
}

func TestUnwrap(t *testing.T) {
	t.Parallel()

	t.Run("change level at run time", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		logger := alog.New(alog.WithHandler(slog.NewTextHandler(buf, nil)))

		logger.DebugContext(ctx, "dropped")

		alog.Unwrap(logger).SetLevel(slog.LevelDebug)
		assert.Equal(t, slog.LevelDebug, alog.Unwrap(logger).Level())

		logger.DebugContext(ctx, "debug message")
		assert.Contains(t, buf.String(), "debug message")
		assert.NotContains(t, buf.String(), "dropped")
	})

	t.Run("level is shared with loggers derived via With", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		logger := alog.New(alog.WithHandler(slog.NewTextHandler(buf, nil)))
		derived := logger.With(slog.String("component", "test"))

		alog.Unwrap(logger).SetLevel(slog.LevelDebug)

		derived.DebugContext(ctx, "debug message")
		assert.Contains(t, buf.String(), "debug message")
		assert.Contains(t, buf.String(), "component=test")
	})

	t.Run("foreign logger", func(t *testing.T) {
		t.Parallel()

		logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
		assert.Nil(t, alog.Unwrap(logger))
	})
}

func TestNewNoop(t *testing.T) {
	t.Parallel()

	logger := alog.NewNoop()
	assert.NotNil(t, logger)

	// must not panic or output anything.
	logger.InfoContext(ctx, "some message")
}
