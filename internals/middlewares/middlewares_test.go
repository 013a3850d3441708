package middlewares

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnsmate_backend/internals/exceptions"
)

func newApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
}

func readBody(t *testing.T, app *fiber.App, method, path string) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, path, nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestErrorHandlerCommonException(t *testing.T) {
	app := newApp()
	app.Get("/coupon", func(c *fiber.Ctx) error {
		return errors.Wrap(exceptions.New(exceptions.CouponNotFound), "use")
	})

	status, body := readBody(t, app, "GET", "/coupon")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, body, `"error_code":"COUPON_NOT_FOUND"`)
	assert.Contains(t, body, `"message":"coupon not found"`)
}

func TestErrorHandlerFiberError(t *testing.T) {
	app := newApp()
	app.Get("/bad", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "bad input")
	})

	status, body := readBody(t, app, "GET", "/bad")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, `"error_code":"BAD_REQUEST"`)
}

func TestErrorHandlerValidation(t *testing.T) {
	type req struct {
		Name string `json:"name" validate:"required"`
	}
	app := newApp()
	app.Get("/v", func(c *fiber.Ctx) error {
		return validator.New().Struct(req{})
	})

	status, body := readBody(t, app, "GET", "/v")
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, body, "VALIDATION_ERROR")
}

func TestErrorHandlerUnknown(t *testing.T) {
	app := newApp()
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("db down") })

	status, body := readBody(t, app, "GET", "/boom")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.NotContains(t, body, "db down")
}

func TestRequestIDEchoed(t *testing.T) {
	app := newApp()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString(RequestIDFrom(c)) })

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(RequestIDHeader))

	resp, err = app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))
}

func TestCorsPreflight(t *testing.T) {
	app := newApp()
	app.Use(CorsMiddleware())
	app.Get("/lecture", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest("OPTIONS", "/lecture", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "PATCH")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
}

func TestPrometheusCountsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	prom, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	app := newApp()
	app.Use(prom.Handler())
	app.Get("/lecture/:code", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/coupon/:code", func(c *fiber.Ctx) error { return exceptions.New(exceptions.CouponNotFound) })
	app.Get("/metrics", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	_, _ = readBody(t, app, "GET", "/lecture/12")
	_, _ = readBody(t, app, "GET", "/coupon/3")
	_, _ = readBody(t, app, "GET", "/metrics")

	assert.Equal(t, 1.0, testutil.ToFloat64(prom.requestCount.WithLabelValues("GET", "/lecture/:code", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(prom.requestCount.WithLabelValues("GET", "/coupon/:code", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(prom.requestCount))
}
