package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/daily-wisdom/internal/adapters/http/dto"
	"github.com/jsamuelsen/daily-wisdom/internal/app"
	"github.com/jsamuelsen/daily-wisdom/internal/domain"
)

// ShareHandler handles the share-or-copy action.
type ShareHandler struct {
	share   *app.ShareService
	markers *app.CopiedMarkers
}

// NewShareHandler creates a share handler.
func NewShareHandler(share *app.ShareService, markers *app.CopiedMarkers) *ShareHandler {
	return &ShareHandler{share: share, markers: markers}
}

// ShareRequest is the quote to share, as the client displays it.
type ShareRequest struct {
	ID      int    `json:"id"      validate:"quoteid"`
	Content string `json:"content" validate:"required,notempty,max=2000"`
	Author  string `json:"author"  validate:"required,notempty,max=200"`
}

// ShareResponse reports which tier handled the quote.
type ShareResponse struct {
	// Outcome is "shared", "copied" or "failed".
	Outcome string `json:"outcome"`

	// Copied mirrors the short-lived "Copied" marker for the quote.
	Copied bool `json:"copied"`
}

// Share handles POST /api/v1/share.
//
// Every outcome, including "failed", answers 200: the quote itself is fine
// and the client only needs to tell the user nothing landed anywhere.
func (h *ShareHandler) Share(c *gin.Context) {
	var req ShareRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		if fields := dto.ValidationErrors(err); len(fields) > 0 {
			dto.RespondWithValidationErrors(c, fields)
			return
		}
		dto.AbortWithCode(c, dto.ErrorCodeBadRequest, "request body must be a quote")
		return
	}

	quote := &domain.Quote{ID: req.ID, Content: req.Content, Author: req.Author}

	// The error is a ClipboardError already logged by the service.
	outcome, _ := h.share.ShareOrCopy(c.Request.Context(), quote)

	c.JSON(http.StatusOK, ShareResponse{
		Outcome: string(outcome),
		Copied:  h.markers != nil && h.markers.IsCopied(req.ID),
	})
}

// RegisterShareRoutes registers the share route on the given router group.
func (h *ShareHandler) RegisterShareRoutes(rg *gin.RouterGroup) {
	rg.POST("/share", h.Share)
}
