package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/daily-wisdom/internal/adapters/http/dto"
	"github.com/jsamuelsen/daily-wisdom/internal/platform/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// logLines decodes JSON log output into one map per line.
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for line := range strings.SplitSeq(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		lines = append(lines, m)
	}
	return lines
}

func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: logging.LevelTrace}))
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		headerID string
	}{
		{name: "generates UUID when no header present"},
		{name: "passes through existing header", headerID: "existing-req-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var fromGin, fromCtx string

			router := gin.New()
			router.Use(RequestID())
			router.GET("/test", func(c *gin.Context) {
				fromGin = GetRequestID(c)
				fromCtx = RequestIDFromContext(c.Request.Context())
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.headerID != "" {
				req.Header.Set(HeaderRequestID, tt.headerID)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, fromGin, w.Header().Get(HeaderRequestID))
			assert.Equal(t, fromGin, fromCtx, "outbound calls see the same id as the handler")

			if tt.headerID == "" {
				_, err := uuid.Parse(fromGin)
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tt.headerID, fromGin)
			}
		})
	}
}

func TestCorrelationIDMiddleware(t *testing.T) {
	t.Parallel()

	var fromGin, fromCtx string

	router := gin.New()
	router.Use(CorrelationID())
	router.GET("/test", func(c *gin.Context) {
		fromGin = GetCorrelationID(c)
		fromCtx = CorrelationIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(HeaderCorrelationID, "txn-789")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "txn-789", fromGin)
	assert.Equal(t, "txn-789", fromCtx)
	assert.Equal(t, "txn-789", w.Header().Get(HeaderCorrelationID))
}

func TestMustGetIDs(t *testing.T) {
	t.Parallel()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))
	assert.Equal(t, "unknown", MustGetRequestID(c))
	assert.Equal(t, "unknown", MustGetCorrelationID(c))

	c.Set(ContextKeyRequestID, "req-1")
	c.Set(ContextKeyCorrelationID, "corr-1")
	assert.Equal(t, "req-1", MustGetRequestID(c))
	assert.Equal(t, "corr-1", MustGetCorrelationID(c))

	c.Set(ContextKeyRequestID, 42)
	assert.Empty(t, getIDFromContext(c, ContextKeyRequestID), "non-string values are ignored")
}

func TestContextLogger_IDsReachRequestLog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	router := gin.New()
	router.Use(ContextLogger(bufferLogger(&buf)), RequestID(), CorrelationID(), Logging())
	router.GET("/api/v1/quotes/random", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes/random", nil)
	req.Header.Set(HeaderRequestID, "req-abc")
	router.ServeHTTP(httptest.NewRecorder(), req)

	lines := logLines(t, &buf)
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, "req-abc", line["request_id"])
		assert.NotEmpty(t, line["correlation_id"])
	}
	assert.Equal(t, "request completed", lines[1]["msg"])
	assert.Equal(t, "/api/v1/quotes/random", lines[1]["route"])
}

func TestLogging(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		path      string
		status    int
		skip      []string
		wantLines int
		wantLevel string
		wantPath  string
	}{
		{name: "ok", path: "/api/test", status: http.StatusOK, wantLines: 2, wantLevel: "INFO", wantPath: "/api/test"},
		{name: "query string", path: "/api/test?limit=10", status: http.StatusOK, wantLines: 2, wantLevel: "INFO", wantPath: "/api/test?limit=10"},
		{name: "client error at warn", path: "/api/test", status: http.StatusBadRequest, wantLines: 2, wantLevel: "WARN"},
		{name: "server error at error", path: "/api/test", status: http.StatusServiceUnavailable, wantLines: 2, wantLevel: "ERROR"},
		{name: "health paths skipped", path: "/-/live", status: http.StatusOK},
		{name: "explicit skip", path: "/api/test", status: http.StatusOK, skip: []string{"/api/test"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			router := gin.New()
			router.Use(ContextLogger(bufferLogger(&buf)), Logging(tt.skip...))
			handler := func(c *gin.Context) { c.Status(tt.status) }
			router.GET("/api/test", handler)
			router.GET("/-/live", handler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.Equal(t, tt.status, w.Code)

			lines := logLines(t, &buf)
			require.Len(t, lines, tt.wantLines)
			if tt.wantLines == 0 {
				return
			}

			completed := lines[len(lines)-1]
			assert.Equal(t, tt.wantLevel, completed["level"])
			assert.InDelta(t, float64(tt.status), completed["status"], 0)
			if tt.wantPath != "" {
				assert.Equal(t, tt.wantPath, completed["path"])
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	t.Run("normal request passes through", func(t *testing.T) {
		t.Parallel()

		router := gin.New()
		router.Use(Recovery())
		router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("panicking handler returns 500 envelope", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		router := gin.New()
		router.Use(ContextLogger(bufferLogger(&buf)), Recovery())
		router.GET("/test", func(*gin.Context) { panic("something went wrong") })

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(HeaderRequestID, "req-panic")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrorCodeInternal, resp.Error.Code)
		assert.Equal(t, "req-panic", resp.TraceID)

		lines := logLines(t, &buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "panic recovered", lines[0]["msg"])
		assert.Contains(t, lines[0]["stack"], "runtime/debug")
	})

	t.Run("response already written", func(t *testing.T) {
		t.Parallel()

		router := gin.New()
		router.Use(Recovery())
		router.GET("/test", func(c *gin.Context) {
			c.String(http.StatusAccepted, "partial")
			panic("late failure")
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, "partial", w.Body.String())
	})
}

func TestRequestTimeout(t *testing.T) {
	t.Parallel()

	t.Run("sets deadline", func(t *testing.T) {
		t.Parallel()

		var deadline time.Time
		var hasDeadline bool

		router := gin.New()
		router.Use(RequestTimeout(time.Second))
		router.GET("/test", func(c *gin.Context) {
			deadline, hasDeadline = c.Request.Context().Deadline()
			c.Status(http.StatusOK)
		})

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))

		require.True(t, hasDeadline)
		assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 500*time.Millisecond)
	})

	t.Run("zero disables", func(t *testing.T) {
		t.Parallel()

		var hasDeadline bool

		router := gin.New()
		router.Use(RequestTimeout(0))
		router.GET("/test", func(c *gin.Context) {
			_, hasDeadline = c.Request.Context().Deadline()
		})

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.False(t, hasDeadline)
	})

	t.Run("expired deadline renders 504", func(t *testing.T) {
		t.Parallel()

		router := gin.New()
		router.Use(RequestTimeout(10 * time.Millisecond))
		router.GET("/test", func(c *gin.Context) {
			<-c.Request.Context().Done()
			dto.HandleError(c, c.Request.Context().Err())
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, http.StatusGatewayTimeout, w.Code)
		assert.Contains(t, w.Body.String(), dto.ErrorCodeTimeout)
	})
}

func TestContextLogger_NilLoggerIsNoop(t *testing.T) {
	t.Parallel()

	var ctx context.Context

	router := gin.New()
	router.Use(ContextLogger(nil))
	router.GET("/test", func(c *gin.Context) { ctx = c.Request.Context() })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.NotNil(t, logging.FromContext(ctx))
}
