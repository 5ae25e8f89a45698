package app

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/jsamuelsen/daily-wisdom/internal/domain"
)

type pageKey struct {
	page, limit int
}

// QuoteCache remembers quotes and pages seen from the quotes API.
// Entries expire after the configured TTL. A nil *QuoteCache is a valid,
// always-empty cache.
type QuoteCache struct {
	quotes *expirable.LRU[int, domain.Quote]
	pages  *expirable.LRU[pageKey, *domain.QuotePage]
}

// NewQuoteCache returns a cache holding up to size quotes and size pages.
// It returns nil when size is not positive.
func NewQuoteCache(size int, ttl time.Duration) *QuoteCache {
	if size <= 0 {
		return nil
	}

	return &QuoteCache{
		quotes: expirable.NewLRU[int, domain.Quote](size, nil, ttl),
		pages:  expirable.NewLRU[pageKey, *domain.QuotePage](size, nil, ttl),
	}
}

// AddPage stores the page and every quote on it.
func (c *QuoteCache) AddPage(p *domain.QuotePage) {
	if c == nil || p == nil {
		return
	}

	c.pages.Add(pageKey{page: p.Page, limit: p.Limit}, p)
	for _, q := range p.Quotes {
		c.quotes.Add(q.ID, q)
	}
}

// Quote returns a cached quote by id.
func (c *QuoteCache) Quote(id int) (domain.Quote, bool) {
	if c == nil {
		return domain.Quote{}, false
	}

	return c.quotes.Get(id)
}

// Page returns a cached page.
func (c *QuoteCache) Page(page, limit int) (*domain.QuotePage, bool) {
	if c == nil {
		return nil, false
	}

	return c.pages.Get(pageKey{page: page, limit: limit})
}

// Len returns the number of cached quotes.
func (c *QuoteCache) Len() int {
	if c == nil {
		return 0
	}

	return c.quotes.Len()
}
