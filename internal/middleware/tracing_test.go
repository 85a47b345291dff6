package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogspot/internal/observability"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestTracingMiddlewareSetsTraceID(t *testing.T) {
	// Sampler ratio 0 keeps the exporter quiet; trace IDs are still generated.
	shutdown, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:  "blogspot-test",
		Enabled:      true,
		Exporter:     "stdout",
		SamplerRatio: 0,
	})
	require.NoError(t, err)
	defer func() { _ = shutdown(context.Background()) }()

	app := fiber.New()
	app.Use(TracingMiddleware())

	var localTraceID, ctxTraceID string
	app.Get("/ping", func(c *fiber.Ctx) error {
		localTraceID, _ = c.Locals("traceID").(string)
		ctxTraceID = trace.SpanFromContext(c.UserContext()).SpanContext().TraceID().String()
		return c.SendString("pong")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	header := resp.Header.Get("X-Trace-ID")
	require.NotEmpty(t, header)
	assert.NotEqual(t, "00000000000000000000000000000000", header,
		"a real tracer provider must be installed")
	assert.Equal(t, header, localTraceID)
	assert.Equal(t, header, ctxTraceID, "span must flow through the request context")
}

func TestTracingMiddlewareHonorsTraceparent(t *testing.T) {
	shutdown, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:  "blogspot-test",
		Enabled:      true,
		Exporter:     "stdout",
		SamplerRatio: 0,
	})
	require.NoError(t, err)
	defer func() { _ = shutdown(context.Background()) }()

	app := fiber.New()
	app.Use(TracingMiddleware())
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	const upstreamTraceID = "4bf92f3577b34da6a3ce929d0e0e4736"
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("traceparent", "00-"+upstreamTraceID+"-00f067aa0ba902b7-00")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, upstreamTraceID, resp.Header.Get("X-Trace-ID"),
		"incoming trace context must be continued, not replaced")
}

func TestInitTracingDisabled(t *testing.T) {
	shutdown, err := observability.InitTracing(observability.TracingConfig{
		ServiceName: "blogspot-test",
		Enabled:     false,
	})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}
