package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/daily-wisdom/internal/adapters/http/dto"
	"github.com/jsamuelsen/daily-wisdom/internal/app"
	"github.com/jsamuelsen/daily-wisdom/internal/domain"
)

// QuoteHandler handles quote-related HTTP endpoints.
type QuoteHandler struct {
	quotes    *app.QuoteService
	favorites *app.FavoritesStore
	markers   *app.CopiedMarkers
}

// NewQuoteHandler creates a new quote handler. favorites and markers are
// optional and only feed the favorited and copied flags.
func NewQuoteHandler(quotes *app.QuoteService, favorites *app.FavoritesStore, markers *app.CopiedMarkers) *QuoteHandler {
	return &QuoteHandler{
		quotes:    quotes,
		favorites: favorites,
		markers:   markers,
	}
}

// QuoteResponse is the HTTP response structure for a quote.
// It carries every field of the quote record plus per-quote UI state.
type QuoteResponse struct {
	ID           int      `json:"id"`
	Content      string   `json:"content"`
	Author       string   `json:"author"`
	Tags         []string `json:"tags,omitempty"`
	AuthorSlug   string   `json:"authorSlug,omitempty"`
	Length       int      `json:"length,omitempty"`
	DateAdded    string   `json:"dateAdded,omitempty"`
	DateModified string   `json:"dateModified,omitempty"`
	Favorited    bool     `json:"favorited"`
	Copied       bool     `json:"copied"`
}

func toQuoteResponse(q *domain.Quote, favorited, copied bool) *QuoteResponse {
	return &QuoteResponse{
		ID:           q.ID,
		Content:      q.Content,
		Author:       q.Author,
		Tags:         q.Tags,
		AuthorSlug:   q.AuthorSlug,
		Length:       q.Length,
		DateAdded:    q.DateAdded,
		DateModified: q.DateModified,
		Favorited:    favorited,
		Copied:       copied,
	}
}

// GetRandomQuote handles GET /api/v1/quotes/random.
//
// A failed upstream call answers 503 SERVICE_UNAVAILABLE and a page without
// quotes answers 404 EMPTY_RESULT; both are worth retrying.
func (h *QuoteHandler) GetRandomQuote(c *gin.Context) {
	ctx := c.Request.Context()

	quote, err := h.quotes.FetchRandom(ctx)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	favorited := h.favorites != nil && h.favorites.Contains(ctx, quote.ID)
	copied := h.markers != nil && h.markers.IsCopied(quote.ID)

	c.JSON(http.StatusOK, toQuoteResponse(quote, favorited, copied))
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	rg.GET("/quotes/random", h.GetRandomQuote)
}
