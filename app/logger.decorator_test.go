package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RgDivine/recordkeep/alog"
	"github.com/RgDivine/recordkeep/app"
)

var (
	ctx             = context.Background()
	errUseCaseFails = errors.New("use case fails")
)

//nolint:dupl // decorators are basically identical but need a different signature and log output
func TestRequestLoggingDecorator_H(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		logger := alog.Test(t)
		handler := app.NewLoggedRequest[request, response](logger, &requestSuccessHandler{})

		_, err := handler.H(ctx, request{})
		assert.NoError(t, err)

		logger.Total(2)
		logger.Contains("executing request")
		logger.Contains("request executed successfully")
		logger.Contains("app_test.request")
	})

	t.Run("failure", func(t *testing.T) {
		t.Parallel()

		logger := alog.Test(t)
		handler := app.NewLoggedRequest[request, response](logger, &requestFailureHandler{})

		_, err := handler.H(ctx, request{})
		assert.Error(t, err)

		logger.Total(2)
		logger.Contains("failed to execute request")
		logger.Contains(errUseCaseFails.Error())
	})
}

//nolint:dupl // decorators are basically identical but need a different signature and log output
func TestCommandLoggingDecorator_H(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		logger := alog.Test(t)
		handler := app.NewLoggedCommand[request](logger, &commandSuccessHandler{})

		err := handler.H(ctx, request{})
		assert.NoError(t, err)

		logger.Total(2)
		logger.Contains("executing command")
		logger.Contains("command executed successfully")
	})

	t.Run("failure", func(t *testing.T) {
		t.Parallel()

		logger := alog.Test(t)
		handler := app.NewLoggedCommand[request](logger, &commandFailureHandler{})

		err := handler.H(ctx, request{})
		assert.Error(t, err)

		logger.Total(2)
		logger.Contains("failed to execute command")
	})
}

//nolint:dupl // decorators are basically identical but need a different signature and log output
func TestQueryLoggingDecorator_H(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		logger := alog.Test(t)
		handler := app.NewLoggedQuery[request, response](logger, &querySuccessHandler{})

		_, err := handler.H(ctx, request{})
		assert.NoError(t, err)

		logger.Total(2)
		logger.Contains("executing query")
		logger.Contains("query executed successfully")
	})
}

type (
	request  struct{}
	response struct{}

	requestSuccessHandler struct{}
	requestFailureHandler struct{}
	commandSuccessHandler struct{}
	commandFailureHandler struct{}
	querySuccessHandler   struct{}
)

func (h *requestSuccessHandler) H(_ context.Context, _ request) (response, error) {
	return response{}, nil
}

func (h *requestFailureHandler) H(_ context.Context, _ request) (response, error) {
	return response{}, errUseCaseFails
}

func (h *commandSuccessHandler) H(_ context.Context, _ request) error {
	return nil
}

func (h *commandFailureHandler) H(_ context.Context, _ request) error {
	return errUseCaseFails
}

func (h *querySuccessHandler) H(_ context.Context, _ request) (response, error) {
	return response{}, nil
}
