package telemetry

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/jsamuelsen/daily-wisdom/telemetry"

// HeaderTraceID carries the request's trace ID back to the client.
const HeaderTraceID = "X-Trace-ID"

// unmatchedRoute labels requests that hit no route, keeping the route
// attribute low-cardinality.
const unmatchedRoute = "unmatched"

// Metrics holds the HTTP server instruments.
type Metrics struct {
	requestDuration metric.Float64Histogram
	requestTotal    metric.Int64Counter
	activeRequests  metric.Int64UpDownCounter
}

// NewMetrics creates HTTP server instruments on meter, or on the global
// meter provider when meter is nil.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	if meter == nil {
		meter = otel.Meter(instrumentationName)
	}

	requestDuration, durErr := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	requestTotal, totalErr := meter.Int64Counter(
		"http.server.request.total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	activeRequests, activeErr := meter.Int64UpDownCounter(
		"http.server.active_requests",
		metric.WithDescription("Number of active HTTP requests"),
	)
	if err := errors.Join(durErr, totalErr, activeErr); err != nil {
		return nil, err
	}

	return &Metrics{
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		activeRequests:  activeRequests,
	}, nil
}

// Middleware records request metrics on the global meter provider and
// echoes the trace ID in the X-Trace-ID header. It must run after
// TracingMiddleware so the span already exists.
func Middleware(serviceName string) gin.HandlerFunc {
	metrics, err := NewMetrics(nil)
	if err != nil {
		otel.Handle(err)
	}

	return metrics.handler(serviceName)
}

func (m *Metrics) handler(serviceName string) gin.HandlerFunc {
	service := attribute.String("service.name", serviceName)

	return func(c *gin.Context) {
		start := time.Now()

		// Headers must be set before the handler writes the body.
		if sc := trace.SpanFromContext(c.Request.Context()).SpanContext(); sc.HasTraceID() {
			c.Header(HeaderTraceID, sc.TraceID().String())
		}

		if m == nil {
			c.Next()
			return
		}

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}

		ctx := c.Request.Context()
		base := []attribute.KeyValue{
			service,
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", route),
		}

		m.activeRequests.Add(ctx, 1, metric.WithAttributes(base...))
		defer m.activeRequests.Add(ctx, -1, metric.WithAttributes(base...))

		c.Next()

		attrs := metric.WithAttributes(append(base, attribute.Int("http.status_code", c.Writer.Status()))...)
		m.requestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
		m.requestTotal.Add(ctx, 1, attrs)
	}
}

// TracingMiddleware starts a server span per request via otelgin.
func TracingMiddleware(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName)
}
