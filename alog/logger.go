// Package alog provides structured logging for the record demos.
//
// It is a thin layer over log/slog: a logger can fan out to multiple
// slog.Handlers and its level can be changed at run time via Unwrap.
package alog

import (
	"context"
	"log/slog"
	"os"
)

// Logger interface is a subset of slog.Logger, with the aim to encourage the
// use of the methods offering context.Context, and of the levels DEBUG and
// INFO over others, but without preventing them, see:
// https://dave.cheney.net/2015/11/05/lets-talk-about-logging
type Logger interface {
	Log(ctx context.Context, level slog.Level, msg string, args ...any)
	LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr)
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
}

// Option allows to initialise a logger with custom options.
type Option func(handler *fanoutHandler)

// WithHandler adds a slog.Handler to be logged to.
// You can set as many as you want.
func WithHandler(h slog.Handler) Option {
	return func(handler *fanoutHandler) {
		handler.handlers = append(handler.handlers, h)
	}
}

// WithLevel initialises the logger with a starting level.
// To change the level at run time use Unwrap(logger).SetLevel(level).
func WithLevel(level slog.Level) Option {
	return func(handler *fanoutHandler) {
		handler.level = &level
	}
}

// New returns a logger for the demo applications.
//
// If no options are given it logs text to stderr at level info.
// Otherwise, use WithHandler to set your own handlers.
func New(opts ...Option) *slog.Logger {
	return slog.New(newFanoutHandler(opts...))
}

func newFanoutHandler(opts ...Option) *fanoutHandler {
	defaultLevel := slog.LevelInfo

	handler := &fanoutHandler{
		handlers: []slog.Handler{},
		level:    &defaultLevel,
	}

	for _, opt := range opts {
		opt(handler)
	}

	if len(handler.handlers) == 0 {
		handler.handlers = []slog.Handler{slog.NewTextHandler(os.Stderr, defaultHandlerOptions())}
	}

	return handler
}

// fanoutHandler logs to multiple handlers and controls the level for all of
// them. It does not output anything directly and relies on the other
// slog.Handlers to do so.
type fanoutHandler struct {
	handlers []slog.Handler

	// level is shared between all "copies" made via WithAttrs and WithGroup,
	// so SetLevel changes the level everywhere.
	level *slog.Level
}

var _ slog.Handler = (*fanoutHandler)(nil)

var _ AdjustableLogger = (*fanoutHandler)(nil)

func (l *fanoutHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= *l.level
}

func (l *fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, h := range l.handlers {
		err := h.Handle(ctx, record)
		if err != nil {
			return err //nolint:wrapcheck // handler errors are returned as they are
		}
	}

	return nil
}

func (l *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(l.handlers))
	for i, h := range l.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}

	return &fanoutHandler{handlers: handlers, level: l.level}
}

func (l *fanoutHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(l.handlers))
	for i, h := range l.handlers {
		handlers[i] = h.WithGroup(name)
	}

	return &fanoutHandler{handlers: handlers, level: l.level}
}

// SetLevel changes the level for all handlers set with WithHandler,
// even the ones "copied" via any WithX method.
func (l *fanoutHandler) SetLevel(level slog.Level) {
	*l.level = level
}

// Level returns the log level of the handler.
func (l *fanoutHandler) Level() slog.Level {
	return l.level.Level()
}

// AdjustableLogger is an extension to Logger and slog.Logger and offers
// additional control over the logger at run time.
// Unwrap a logger to get access to this features.
type AdjustableLogger interface {
	SetLevel(level slog.Level)
	Level() slog.Level
}

// Unwrap unwraps the given logger and returns an AdjustableLogger.
// In case of an invalid implementation of logger, it returns nil.
func Unwrap(logger Logger) AdjustableLogger { //nolint:ireturn // interface required to return a TestLogger and fanoutHandler
	if l, ok := logger.(*TestLogger); ok {
		return l
	}

	if l, ok := logger.(*slog.Logger); ok {
		if h, ok := l.Handler().(*fanoutHandler); ok {
			return h
		}
	}

	return nil
}

func defaultHandlerOptions() *slog.HandlerOptions {
	return &slog.HandlerOptions{
		AddSource:   false,
		Level:       nil, // this level is ignored, fanoutHandler's level is used for all handlers.
		ReplaceAttr: nil,
	}
}
