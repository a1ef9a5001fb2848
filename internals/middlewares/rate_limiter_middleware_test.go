package middlewares

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratelimitApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/ping", handler, func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	return app
}

func TestLoginRateLimiterMembatasiPerIP(t *testing.T) {
	app := ratelimitApp(LoginRateLimiter())

	for i := 0; i < 5; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "request ke-%d masih di bawah limit", i+1)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestGlobalRateLimiterMembatasiPerIP(t *testing.T) {
	app := ratelimitApp(GlobalRateLimiter())

	for i := 0; i < 100; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "request ke-%d masih di bawah limit", i+1)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}
