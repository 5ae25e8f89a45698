//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/daily-wisdom/internal/adapters/clients"
	"github.com/jsamuelsen/daily-wisdom/internal/adapters/clients/acl"
	httpadapter "github.com/jsamuelsen/daily-wisdom/internal/adapters/http"
	"github.com/jsamuelsen/daily-wisdom/internal/adapters/http/handlers"
	"github.com/jsamuelsen/daily-wisdom/internal/adapters/storage"
	"github.com/jsamuelsen/daily-wisdom/internal/app"
	"github.com/jsamuelsen/daily-wisdom/internal/domain"
	"github.com/jsamuelsen/daily-wisdom/internal/platform/config"
	"github.com/jsamuelsen/daily-wisdom/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeQuotesAPI serves GET /quotes in the upstream envelope. Page p with
// limit l holds ids (p-1)*l+1 .. p*l; pages past totalPages are empty.
type fakeQuotesAPI struct {
	server     *httptest.Server
	totalPages int

	requests      atomic.Int64
	down          atomic.Bool
	lastRequestID atomic.Value
}

func newFakeQuotesAPI(t *testing.T, totalPages int) *fakeQuotesAPI {
	t.Helper()

	api := &fakeQuotesAPI{totalPages: totalPages}
	api.lastRequestID.Store("")
	api.server = httptest.NewServer(http.HandlerFunc(api.serve))
	t.Cleanup(api.server.Close)

	return api
}

func (a *fakeQuotesAPI) serve(w http.ResponseWriter, r *http.Request) {
	a.requests.Add(1)
	a.lastRequestID.Store(r.Header.Get("X-Request-ID"))

	if a.down.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	if r.URL.Path != "/quotes" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	quotes := []map[string]any{}
	if page >= 1 && page <= a.totalPages {
		for i := 1; i <= limit; i++ {
			id := (page-1)*limit + i
			quotes = append(quotes, map[string]any{
				"id":         id,
				"content":    "Quote number " + strconv.Itoa(id),
				"author":     "Author " + strconv.Itoa(id),
				"authorSlug": "author-" + strconv.Itoa(id),
				"tags":       []string{"Wisdom"},
			})
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"statusCode": http.StatusOK,
		"success":    true,
		"message":    "Quotes fetched successfully",
		"data": map[string]any{
			"page":       page,
			"limit":      limit,
			"totalPages": a.totalPages,
			"totalItems": a.totalPages * limit,
			"data":       quotes,
		},
	})
}

// recordingClipboard keeps everything copied to it.
type recordingClipboard struct {
	mu     sync.Mutex
	copied []string
	fail   atomic.Bool
}

func (c *recordingClipboard) Name() string    { return "recording" }
func (c *recordingClipboard) Available() bool { return !c.fail.Load() }

func (c *recordingClipboard) Copy(_ context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.copied = append(c.copied, text)
	return nil
}

func (c *recordingClipboard) texts() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]string(nil), c.copied...)
}

// stack is the whole service wired in process against a fake quotes API.
type stack struct {
	api       *fakeQuotesAPI
	server    *httptest.Server
	store     storage.Store
	favorites *app.FavoritesStore
	clipboard *recordingClipboard
	registry  *prometheus.Registry
}

type stackOptions struct {
	driver      string
	storageDir  string
	concurrency int
}

func testClientConfig(baseURL string) *clients.Config {
	return &clients.Config{
		BaseURL:     baseURL,
		ServiceName: "quote-service",
		Timeout:     2 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     2,
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     20 * time.Millisecond,
			Multiplier:      2.0,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   50,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
		Transport: config.TransportConfig{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
		Logger: discardLogger(),
	}
}

func newStack(t *testing.T, api *fakeQuotesAPI, opts stackOptions) *stack {
	t.Helper()

	ctx := context.Background()
	logger := discardLogger()

	if opts.driver == "" {
		opts.driver = storage.DriverFile
	}
	if opts.storageDir == "" {
		opts.storageDir = t.TempDir()
	}

	httpClient, err := clients.New(testClientConfig(api.server.URL))
	require.NoError(t, err)

	quoteClient := acl.NewQuoteClient(acl.QuoteClientConfig{Client: httpClient, Logger: logger})

	store, err := storage.New(ctx, config.StorageConfig{
		Driver:     opts.driver,
		Dir:        opts.storageDir,
		SQLitePath: filepath.Join(opts.storageDir, "favorites.db"),
	}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	health := ports.NewHealthRegistry()
	require.NoError(t, health.RegisterOptional(quoteClient))
	require.NoError(t, health.Register(store))

	registry := prometheus.NewRegistry()
	metrics := app.NewMetrics(registry)
	cache := app.NewQuoteCache(512, time.Minute)
	markers := app.NewCopiedMarkers(app.CopiedMarkerTTL)
	clipboard := &recordingClipboard{}

	favorites := app.NewFavoritesStore(app.FavoritesStoreConfig{Store: store, Logger: logger})
	quotes := app.NewQuoteService(app.QuoteServiceConfig{
		QuoteClient: quoteClient,
		Cache:       cache,
		Logger:      logger,
	})
	resolver := app.NewResolver(app.ResolverConfig{
		QuoteClient: quoteClient,
		Cache:       cache,
		Metrics:     metrics,
		Concurrency: opts.concurrency,
		Logger:      logger,
	})
	share := app.NewShareService(app.ShareServiceConfig{
		Clipboards: []ports.Clipboard{clipboard},
		Markers:    markers,
		Metrics:    metrics,
		Logger:     logger,
	})

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.RouterConfig{
		Logger:           logger,
		AppConfig:        &config.AppConfig{Name: "daily-wisdom", Version: "test", Environment: "test"},
		HealthHandler:    handlers.NewHealthHandler(health, handlers.NewBuildInfo("test", "none", "now"), registry),
		QuoteHandler:     handlers.NewQuoteHandler(quotes, favorites, markers),
		FavoritesHandler: handlers.NewFavoritesHandler(favorites, resolver, markers),
		ShareHandler:     handlers.NewShareHandler(share, markers),
		Timeout:          10 * time.Second,
	})

	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)

	return &stack{
		api:       api,
		server:    server,
		store:     store,
		favorites: favorites,
		clipboard: clipboard,
		registry:  registry,
	}
}

// do sends a request to the stack and returns the status and body.
func (s *stack) do(t *testing.T, method, path string, body io.Reader) (int, []byte) {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, s.server.URL+path, body)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, data
}

// storedIDs reads the favorites key straight from storage.
func (s *stack) storedIDs(t *testing.T) []int {
	t.Helper()

	raw, err := s.store.Get(context.Background(), app.FavoritesKey)
	if domain.IsNotFound(err) {
		return nil
	}
	require.NoError(t, err)

	var ids []int
	require.NoError(t, json.Unmarshal(raw, &ids))
	return ids
}
