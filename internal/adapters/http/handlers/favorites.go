package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/daily-wisdom/internal/adapters/http/dto"
	"github.com/jsamuelsen/daily-wisdom/internal/app"
	"github.com/jsamuelsen/daily-wisdom/internal/domain"
)

// FavoritesHandler handles the favorites endpoints.
type FavoritesHandler struct {
	favorites *app.FavoritesStore
	resolver  *app.Resolver
	markers   *app.CopiedMarkers
}

// NewFavoritesHandler creates a favorites handler. markers is optional.
func NewFavoritesHandler(favorites *app.FavoritesStore, resolver *app.Resolver, markers *app.CopiedMarkers) *FavoritesHandler {
	return &FavoritesHandler{
		favorites: favorites,
		resolver:  resolver,
		markers:   markers,
	}
}

// FavoritesResponse lists favorite ids in the order they were added.
type FavoritesResponse struct {
	IDs   []int `json:"ids"`
	Count int   `json:"count"`
}

// FavoriteChangeResponse is returned by add, remove and toggle.
type FavoriteChangeResponse struct {
	FavoritesResponse

	// Favorited reports whether the quote is a favorite after the change.
	Favorited bool `json:"favorited"`

	// Saved is false when the change could not be persisted and was
	// rolled back; IDs then show the unchanged set.
	Saved bool `json:"saved"`
}

func toFavoritesResponse(ids domain.FavoriteIDSet) FavoritesResponse {
	return FavoritesResponse{IDs: ids.IDs(), Count: ids.Len()}
}

// ListFavorites handles GET /api/v1/favorites.
func (h *FavoritesHandler) ListFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, toFavoritesResponse(h.favorites.List(c.Request.Context())))
}

// AddFavorite handles PUT /api/v1/favorites/:id.
func (h *FavoritesHandler) AddFavorite(c *gin.Context) {
	h.change(c, func(id int) (domain.FavoriteIDSet, error) {
		return h.favorites.Add(c.Request.Context(), id)
	})
}

// RemoveFavorite handles DELETE /api/v1/favorites/:id.
func (h *FavoritesHandler) RemoveFavorite(c *gin.Context) {
	h.change(c, func(id int) (domain.FavoriteIDSet, error) {
		return h.favorites.Remove(c.Request.Context(), id)
	})
}

// ToggleFavorite handles POST /api/v1/favorites/:id/toggle.
func (h *FavoritesHandler) ToggleFavorite(c *gin.Context) {
	h.change(c, func(id int) (domain.FavoriteIDSet, error) {
		ids, _, err := h.favorites.Toggle(c.Request.Context(), id)
		return ids, err
	})
}

// change parses the id, applies fn and reports the resulting set.
// Storage failures are not HTTP errors: the response carries saved=false.
func (h *FavoritesHandler) change(c *gin.Context, fn func(id int) (domain.FavoriteIDSet, error)) {
	id, err := dto.ParseQuoteID(c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	ids, err := fn(id)
	if err != nil && !domain.IsStorage(err) {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, FavoriteChangeResponse{
		FavoritesResponse: toFavoritesResponse(ids),
		Favorited:         ids.Contains(id),
		Saved:             err == nil,
	})
}

// ListFavoriteQuotes handles GET /api/v1/favorites/quotes?limit=&cursor=.
//
// Each page resolves a window of favorite ids against the quotes API.
// Ids that cannot be resolved are left out, so a page may hold fewer items
// than limit while hasMore is still true.
func (h *FavoritesHandler) ListFavoriteQuotes(c *gin.Context) {
	var req dto.PaginationRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		if fields := dto.ValidationErrors(err); len(fields) > 0 {
			dto.RespondWithValidationErrors(c, fields)
			return
		}
		dto.AbortWithCode(c, dto.ErrorCodeBadRequest, "invalid query parameters")
		return
	}

	offset, err := req.Offset()
	if err != nil {
		if errors.Is(err, dto.ErrInvalidCursor) {
			dto.AbortWithCode(c, dto.ErrorCodeBadRequest, "invalid cursor")
			return
		}
		dto.HandleError(c, err)
		return
	}

	ctx := c.Request.Context()
	ids := h.favorites.List(ctx).IDs()
	page := h.resolver.ResolvePage(ctx, ids, offset, req.GetLimit())

	if err := ctx.Err(); err != nil {
		dto.HandleError(c, err)
		return
	}

	items := make([]*QuoteResponse, 0, len(page.Quotes))
	for i := range page.Quotes {
		q := &page.Quotes[i]
		items = append(items, toQuoteResponse(q, true, h.markers != nil && h.markers.IsCopied(q.ID)))
	}

	c.JSON(http.StatusOK, dto.NewOffsetPage(items, page.NextOffset, page.HasMore, page.Total))
}

// RegisterFavoritesRoutes registers favorites routes on the given router group.
func (h *FavoritesHandler) RegisterFavoritesRoutes(rg *gin.RouterGroup) {
	favorites := rg.Group("/favorites")
	favorites.GET("", h.ListFavorites)
	favorites.GET("/quotes", h.ListFavoriteQuotes)
	favorites.PUT("/:id", h.AddFavorite)
	favorites.DELETE("/:id", h.RemoveFavorite)
	favorites.POST("/:id/toggle", h.ToggleFavorite)
}
