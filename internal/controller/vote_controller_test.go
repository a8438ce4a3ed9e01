package controller

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"predictplay-be/internal/config"
	"predictplay-be/internal/pkg/clock"
	"predictplay-be/internal/pkg/logger"
	"predictplay-be/internal/pkg/serverutils"
	"predictplay-be/internal/repository/memory"
	"predictplay-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopPublisher struct{}

func (nopPublisher) Publish(ctx context.Context, topic string, payload interface{}) error {
	return nil
}

func newVoteApp() *fiber.App {
	store := memory.NewStore()
	uowFactory := memory.NewRepositoryFactory(store)
	clk := clock.NewFixedClock(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
	voteService := service.NewVoteService(uowFactory, nopPublisher{}, config.TopicConfig{}, clk, logger.NewNopLogger())

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewVoteController(voteService).RegisterRoutes(api)
	return app
}

func TestVoteMalformedBodyIsValidationError(t *testing.T) {
	app := newVoteApp()

	req := httptest.NewRequest("POST", "/api/vote/v1", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body serverutils.Response[any]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, serverutils.CodeValidation, body.Code)
}
