package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/jsamuelsen/daily-wisdom/internal/adapters/clients"
	"github.com/jsamuelsen/daily-wisdom/internal/domain"
	"github.com/jsamuelsen/daily-wisdom/internal/platform/logging"
)

const (
	quotesPath = "/quotes"

	// DefaultServiceName is used when QuoteClientConfig.ServiceName is empty.
	DefaultServiceName = "quote-service"
)

// QuoteClientConfig contains configuration for the quote client.
type QuoteClientConfig struct {
	// Client is the HTTP client to use for requests.
	// The client's BaseURL should be set to the public API root,
	// e.g. https://api.freeapi.app/api/v1/public.
	Client *clients.Client

	// ServiceName names the upstream in errors, logs and health checks.
	ServiceName string

	// Logger is the structured logger.
	Logger *slog.Logger
}

// QuoteClient implements ports.QuoteClient against the FreeAPI public quotes
// endpoint. Upstream DTOs never leave this file.
type QuoteClient struct {
	api    upstream
	logger *slog.Logger
}

// NewQuoteClient creates a new quote client adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewQuoteClient(cfg QuoteClientConfig) *QuoteClient {
	if cfg.Client == nil {
		panic("QuoteClient: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	name := cfg.ServiceName
	if name == "" {
		name = DefaultServiceName
	}

	return &QuoteClient{
		api:    upstream{client: cfg.Client, name: name},
		logger: logger,
	}
}

// quotesEnvelope is the response of GET /quotes.
type quotesEnvelope struct {
	Success    bool       `json:"success"`
	StatusCode int        `json:"statusCode"`
	Message    string     `json:"message"`
	Data       quotesPage `json:"data"`
}

type quotesPage struct {
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"totalPages"`
	TotalItems int         `json:"totalItems"`
	Data       []freeQuote `json:"data"`
}

type freeQuote struct {
	ID           int      `json:"id"`
	Content      string   `json:"content"`
	Author       string   `json:"author"`
	Tags         []string `json:"tags"`
	AuthorSlug   string   `json:"authorSlug"`
	Length       int      `json:"length"`
	DateAdded    string   `json:"dateAdded"`
	DateModified string   `json:"dateModified"`
}

// ListQuotes fetches one page of quotes.
// Implements ports.QuoteClient.
func (c *QuoteClient) ListQuotes(ctx context.Context, page, limit int) (*domain.QuotePage, error) {
	if err := ValidatePositive(page, "page"); err != nil {
		return nil, err
	}
	if err := ValidatePositive(limit, "limit"); err != nil {
		return nil, err
	}

	query := url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}

	c.logger.Log(ctx, logging.LevelTrace, "starting request",
		slog.String("path", quotesPath),
		slog.Int("page", page),
		slog.Int("limit", limit))

	envelope, err := getJSON[quotesEnvelope](ctx, c.api, quotesPath, query, "list quotes")
	if err != nil {
		c.logger.DebugContext(ctx, "quote page request failed",
			slog.Int("page", page),
			slog.String("error", err.Error()))

		return nil, err
	}

	if !envelope.Success {
		return nil, c.handleUnsuccessful(ctx, envelope)
	}

	quotes, skipped := TranslateSlice(envelope.Data.Data, translateQuote)
	for _, err := range skipped {
		c.logger.WarnContext(ctx, "skipping malformed quote",
			slog.Int("page", page),
			slog.Any("error", err))
	}

	c.logger.Log(ctx, logging.LevelTrace, "translated external DTO to domain",
		slog.Int("page", page),
		slog.Int("quotes", len(quotes)),
		slog.Int("total_pages", envelope.Data.TotalPages))

	return &domain.QuotePage{
		Page:       page,
		Limit:      limit,
		Quotes:     quotes,
		TotalPages: envelope.Data.TotalPages,
	}, nil
}

// handleUnsuccessful converts a 2xx response with success=false to a domain error.
func (c *QuoteClient) handleUnsuccessful(ctx context.Context, envelope *quotesEnvelope) error {
	reason := envelope.Message
	if reason == "" {
		reason = "response reported success=false"
	}

	c.logger.WarnContext(ctx, "quote API reported failure",
		slog.Int("status_code", envelope.StatusCode),
		slog.String("message", envelope.Message))

	return domain.NewUnavailableError(c.api.name, reason)
}

// translateQuote converts the upstream quote to a domain Quote.
func translateQuote(ext *freeQuote) (domain.Quote, error) {
	if err := ValidatePositive(ext.ID, "id"); err != nil {
		return domain.Quote{}, err
	}

	return domain.Quote{
		ID:           ext.ID,
		Content:      ext.Content,
		Author:       ext.Author,
		Tags:         ext.Tags,
		AuthorSlug:   ext.AuthorSlug,
		Length:       ext.Length,
		DateAdded:    ext.DateAdded,
		DateModified: ext.DateModified,
	}, nil
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (c *QuoteClient) Name() string {
	return c.api.name
}

// Check fetches the smallest possible page to verify connectivity.
// Implements ports.HealthChecker.
func (c *QuoteClient) Check(ctx context.Context) error {
	if _, err := c.ListQuotes(ctx, 1, 1); err != nil {
		return fmt.Errorf("quote API health check: %w", err)
	}

	return nil
}
