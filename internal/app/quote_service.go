// Package app contains application services that orchestrate use cases.
// Services depend on port interfaces, never on adapters.
package app

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/jsamuelsen/daily-wisdom/internal/domain"
	"github.com/jsamuelsen/daily-wisdom/internal/ports"
)

// Defaults for random selection.
const (
	DefaultRandomPageMax = 10
	DefaultPageLimit     = 10
)

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	QuoteClient ports.QuoteClient

	// Cache, when set, is offered every page the service fetches.
	Cache *QuoteCache

	// RandomPageMax is the highest page a random quote is drawn from.
	RandomPageMax int

	// PageLimit is the page size used for random quotes.
	PageLimit int

	// Rand is the random source. Defaults to a time-seeded PCG.
	Rand *rand.Rand

	Logger *slog.Logger
}

// QuoteService fetches random quotes.
//
// Selection is two-stage: a page uniformly from 1..RandomPageMax, then a
// quote uniformly from that page. Quotes on short pages are therefore
// slightly more likely than quotes on full pages.
type QuoteService struct {
	quoteClient ports.QuoteClient
	cache       *QuoteCache
	pageMax     int
	pageLimit   int
	logger      *slog.Logger

	mu  sync.Mutex // guards rnd
	rnd *rand.Rand
}

// NewQuoteService creates a new quote service with the provided dependencies.
// Panics if QuoteClient is nil.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.QuoteClient == nil {
		panic("QuoteService: QuoteClient is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	pageMax := cfg.RandomPageMax
	if pageMax <= 0 {
		pageMax = DefaultRandomPageMax
	}

	pageLimit := cfg.PageLimit
	if pageLimit <= 0 {
		pageLimit = DefaultPageLimit
	}

	rnd := cfg.Rand
	if rnd == nil {
		seed := uint64(time.Now().UnixNano())
		rnd = rand.New(rand.NewPCG(seed, seed>>1|1))
	}

	return &QuoteService{
		quoteClient: cfg.QuoteClient,
		cache:       cfg.Cache,
		pageMax:     pageMax,
		pageLimit:   pageLimit,
		logger:      logger.With(slog.String("component", "quotes")),
		rnd:         rnd,
	}
}

// FetchRandom returns a random quote.
//
// Errors:
//   - domain.ErrUnavailable when the API cannot be reached or reports failure
//   - domain.ErrEmptyResult when the chosen page holds no quotes
func (s *QuoteService) FetchRandom(ctx context.Context) (*domain.Quote, error) {
	page := s.intN(s.pageMax) + 1

	s.logger.DebugContext(ctx, "fetching random quote", slog.Int("page", page))

	result, err := s.quoteClient.ListQuotes(ctx, page, s.pageLimit)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch random quote",
			slog.Int("page", page),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.cache.AddPage(result)

	if len(result.Quotes) == 0 {
		err := domain.NewEmptyResultError(page, s.pageLimit)
		s.logger.WarnContext(ctx, "random page was empty", slog.Any("error", err))
		return nil, err
	}

	quote := result.Quotes[s.intN(len(result.Quotes))]

	s.logger.InfoContext(ctx, "fetched random quote",
		slog.Int("quote_id", quote.ID),
		slog.String("author", quote.Author),
	)

	return &quote, nil
}

func (s *QuoteService) intN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rnd.IntN(n)
}
