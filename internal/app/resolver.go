package app

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/jsamuelsen/daily-wisdom/internal/domain"
	"github.com/jsamuelsen/daily-wisdom/internal/ports"
)

// Resolver defaults.
const (
	DefaultMaxPages    = 20
	DefaultResolvePage = 10
)

// ResolverConfig contains configuration for the favorites resolver.
type ResolverConfig struct {
	QuoteClient ports.QuoteClient

	// Cache is optional; a cached quote resolves without any request.
	Cache *QuoteCache

	// Metrics is optional.
	Metrics *Metrics

	// MaxPages bounds the scan for a single id.
	MaxPages int

	// PageSize is the page size used while scanning.
	PageSize int

	// Concurrency is the number of ids looked up at once. 1 scans ids one
	// after another.
	Concurrency int

	Logger *slog.Logger
}

// Resolver turns favorite ids back into quotes.
//
// The quotes API has no lookup by id, so each id is found by scanning pages
// 1..MaxPages and stopping at the first page that holds it. An id that is
// not found, or whose scan hits an error, is dropped from the result; the
// other ids are unaffected.
type Resolver struct {
	quoteClient ports.QuoteClient
	cache       *QuoteCache
	metrics     *Metrics
	maxPages    int
	pageSize    int
	concurrency int
	logger      *slog.Logger
}

// NewResolver creates a favorites resolver.
// Panics if QuoteClient is nil.
func NewResolver(cfg ResolverConfig) *Resolver {
	if cfg.QuoteClient == nil {
		panic("Resolver: QuoteClient is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := &Resolver{
		quoteClient: cfg.QuoteClient,
		cache:       cfg.Cache,
		metrics:     cfg.Metrics,
		maxPages:    cfg.MaxPages,
		pageSize:    cfg.PageSize,
		concurrency: cfg.Concurrency,
		logger:      logger.With(slog.String("component", "resolver")),
	}

	if r.maxPages <= 0 {
		r.maxPages = DefaultMaxPages
	}
	if r.pageSize <= 0 {
		r.pageSize = DefaultResolvePage
	}
	if r.concurrency <= 0 {
		r.concurrency = 1
	}

	return r
}

// Resolve returns the quotes for ids, in the order of ids. Unresolvable ids
// are absent. When ctx is done the remaining lookups are abandoned and what
// was resolved so far is returned.
func (r *Resolver) Resolve(ctx context.Context, ids []int) []domain.Quote {
	results := r.lookupAll(ctx, ids)

	quotes := make([]domain.Quote, 0, len(ids))
	for _, res := range results {
		if res.Err == nil {
			quotes = append(quotes, res.Value)
		}
	}

	r.logger.DebugContext(ctx, "favorites resolved",
		slog.Int("requested", len(ids)),
		slog.Int("resolved", len(quotes)))

	return quotes
}

// ResolvedPage is one window of resolved favorites.
type ResolvedPage struct {
	Quotes []domain.Quote

	// NextOffset is where the following window starts; only meaningful when
	// HasMore is true.
	NextOffset int
	HasMore    bool

	// Total is the number of ids, resolved or not.
	Total int
}

// ResolvePage resolves ids[offset:offset+limit]. Windows are cut over ids,
// so a window can hold fewer than limit quotes when some ids do not resolve.
func (r *Resolver) ResolvePage(ctx context.Context, ids []int, offset, limit int) ResolvedPage {
	total := len(ids)
	offset = min(max(offset, 0), total)
	end := total
	if limit > 0 {
		end = min(offset+limit, total)
	}

	return ResolvedPage{
		Quotes:     r.Resolve(ctx, ids[offset:end]),
		NextOffset: end,
		HasMore:    end < total,
		Total:      total,
	}
}

func (r *Resolver) lookupAll(ctx context.Context, ids []int) []PartialResult[domain.Quote] {
	return mapLimit(ctx, r.concurrency, ids, r.lookup)
}

// lookup finds a single id.
func (r *Resolver) lookup(ctx context.Context, id int) (domain.Quote, error) {
	if quote, ok := r.cache.Quote(id); ok {
		r.metrics.recordCacheLookup(true)
		return quote, nil
	}
	if r.cache != nil {
		r.metrics.recordCacheLookup(false)
	}

	for page := 1; page <= r.maxPages; page++ {
		result, err := r.page(ctx, page)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return domain.Quote{}, err
			}

			r.metrics.recordUnresolved(reasonError)
			r.logger.DebugContext(ctx, "favorite lookup failed",
				slog.Int("quote_id", id),
				slog.Int("page", page),
				slog.Any("error", err))

			return domain.Quote{}, err
		}

		if quote, ok := result.Find(id); ok {
			return quote, nil
		}

		if result.TotalPages > 0 && page >= result.TotalPages {
			break
		}
	}

	err := domain.NewNotFoundError("quote", strconv.Itoa(id))
	r.metrics.recordUnresolved(reasonNotFound)
	r.logger.DebugContext(ctx, "favorite not found",
		slog.Int("quote_id", id),
		slog.Int("max_pages", r.maxPages),
		slog.Any("error", err))

	return domain.Quote{}, err
}

func (r *Resolver) page(ctx context.Context, page int) (*domain.QuotePage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if cached, ok := r.cache.Page(page, r.pageSize); ok {
		return cached, nil
	}

	result, err := r.quoteClient.ListQuotes(ctx, page, r.pageSize)
	if err != nil {
		return nil, err
	}

	r.cache.AddPage(result)

	return result, nil
}
