// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/daily-wisdom/internal/platform/logging"
)

const (
	// HeaderRequestID identifies a single request.
	HeaderRequestID = "X-Request-ID"

	// HeaderCorrelationID spans a whole client transaction, e.g. a page of
	// favorites followed by a share.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyRequestID is the gin context key holding the request ID.
	ContextKeyRequestID = "request_id"

	// ContextKeyCorrelationID is the gin context key holding the correlation ID.
	ContextKeyCorrelationID = "correlation_id"

	// maxIDLength bounds inbound IDs; they are echoed to the quotes API and logs.
	maxIDLength = 128

	unknownID = "unknown"
)

type ctxKey int

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyCorrelationID
)

// idKind describes one propagated identifier.
type idKind struct {
	header string
	ginKey string
	ctxKey ctxKey
	logger func(context.Context, string) context.Context
}

var (
	requestIDKind = idKind{
		header: HeaderRequestID,
		ginKey: ContextKeyRequestID,
		ctxKey: ctxKeyRequestID,
		logger: logging.WithRequestID,
	}
	correlationIDKind = idKind{
		header: HeaderCorrelationID,
		ginKey: ContextKeyCorrelationID,
		ctxKey: ctxKeyCorrelationID,
		logger: logging.WithCorrelationID,
	}
)

// RequestID accepts a well-formed X-Request-ID or generates a UUID, then
// exposes it to handlers, the response headers, the context logger and
// outbound quote API calls.
func RequestID() gin.HandlerFunc {
	return requestIDKind.middleware()
}

// CorrelationID is RequestID for X-Correlation-ID.
func CorrelationID() gin.HandlerFunc {
	return correlationIDKind.middleware()
}

func (k idKind) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(k.header)
		if !validID(id) {
			id = uuid.NewString()
		}

		c.Set(k.ginKey, id)
		c.Header(k.header, id)

		ctx := context.WithValue(c.Request.Context(), k.ctxKey, id)
		c.Request = c.Request.WithContext(k.logger(ctx, id))

		c.Next()
	}
}

// validID reports whether an inbound ID is short printable ASCII.
func validID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}

	for i := range len(id) {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}

	return true
}

// GetRequestID returns the request ID, or "" before RequestID has run.
func GetRequestID(c *gin.Context) string {
	return getIDFromContext(c, ContextKeyRequestID)
}

// MustGetRequestID is GetRequestID with an "unknown" fallback.
func MustGetRequestID(c *gin.Context) string {
	return orUnknown(GetRequestID(c))
}

// GetCorrelationID returns the correlation ID, or "" before CorrelationID has run.
func GetCorrelationID(c *gin.Context) string {
	return getIDFromContext(c, ContextKeyCorrelationID)
}

// MustGetCorrelationID is GetCorrelationID with an "unknown" fallback.
func MustGetCorrelationID(c *gin.Context) string {
	return orUnknown(GetCorrelationID(c))
}

func getIDFromContext(c *gin.Context, key string) string {
	return c.GetString(key)
}

func orUnknown(id string) string {
	if id == "" {
		return unknownID
	}
	return id
}

// RequestIDFromContext returns the request ID stored on ctx.
func RequestIDFromContext(ctx context.Context) string {
	return idFromContext(ctx, ctxKeyRequestID)
}

// CorrelationIDFromContext returns the correlation ID stored on ctx.
func CorrelationIDFromContext(ctx context.Context) string {
	return idFromContext(ctx, ctxKeyCorrelationID)
}

func idFromContext(ctx context.Context, key ctxKey) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(key).(string)
	return id
}

// ContextWithRequestID stores a request ID for outbound propagation.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

// ContextWithCorrelationID stores a correlation ID for outbound propagation.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyCorrelationID, id)
}

// InjectIDs copies the IDs on ctx into outbound request headers.
func InjectIDs(ctx context.Context, h http.Header) {
	for _, k := range []idKind{requestIDKind, correlationIDKind} {
		if id := idFromContext(ctx, k.ctxKey); id != "" {
			h.Set(k.header, id)
		}
	}
}
