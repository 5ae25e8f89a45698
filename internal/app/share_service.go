package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/daily-wisdom/internal/domain"
	"github.com/jsamuelsen/daily-wisdom/internal/ports"
)

// DefaultShareTitle is the title handed to share targets.
const DefaultShareTitle = "Inspiring Quote"

const tierShare = "share"

// ShareServiceConfig contains configuration for the share service.
type ShareServiceConfig struct {
	// Sharer is the native share target. Optional.
	Sharer ports.Sharer

	// Clipboards are tried in order after the share target.
	Clipboards []ports.Clipboard

	// Markers receives the quote id after a successful copy. Optional.
	Markers *CopiedMarkers

	Title   string
	URL     string
	Metrics *Metrics
	Logger  *slog.Logger
}

// ShareService shares a quote, falling back to copying it.
type ShareService struct {
	sharer     ports.Sharer
	clipboards []ports.Clipboard
	markers    *CopiedMarkers
	title      string
	url        string
	metrics    *Metrics
	logger     *slog.Logger
}

// NewShareService creates a share service.
func NewShareService(cfg ShareServiceConfig) *ShareService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	title := cfg.Title
	if title == "" {
		title = DefaultShareTitle
	}

	return &ShareService{
		sharer:     cfg.Sharer,
		clipboards: cfg.Clipboards,
		markers:    cfg.Markers,
		title:      title,
		url:        cfg.URL,
		metrics:    cfg.Metrics,
		logger:     logger.With(slog.String("component", "share")),
	}
}

// ShareOrCopy delivers "{content}" - {author} through the first tier that
// works: the share target, then each clipboard in order. Capabilities are
// probed on every call.
//
// The returned error is a domain.ClipboardError and is only set when the
// outcome is domain.ShareOutcomeFailed.
func (s *ShareService) ShareOrCopy(ctx context.Context, quote *domain.Quote) (domain.ShareOutcome, error) {
	text := quote.ShareText()

	var attempts []error

	if s.sharer != nil && s.sharer.Available() {
		err := s.sharer.Share(ctx, domain.SharePayload{Title: s.title, Text: text, URL: s.url})
		if err == nil {
			s.done(ctx, quote.ID, domain.ShareOutcomeShared, tierShare)
			return domain.ShareOutcomeShared, nil
		}

		attempts = append(attempts, fmt.Errorf("%s: %w", tierShare, err))
		s.logger.DebugContext(ctx, "share target declined, falling back to copy",
			slog.Int("quote_id", quote.ID),
			slog.Any("error", err))
	}

	for _, cb := range s.clipboards {
		if !cb.Available() {
			attempts = append(attempts, fmt.Errorf("%s: %w", cb.Name(), errNotAvailable))
			continue
		}

		if err := cb.Copy(ctx, text); err != nil {
			attempts = append(attempts, fmt.Errorf("%s: %w", cb.Name(), err))
			s.logger.DebugContext(ctx, "copy failed, trying next fallback",
				slog.String("tier", cb.Name()),
				slog.Any("error", err))
			continue
		}

		if s.markers != nil {
			s.markers.Mark(quote.ID)
		}
		s.done(ctx, quote.ID, domain.ShareOutcomeCopied, cb.Name())

		return domain.ShareOutcomeCopied, nil
	}

	err := domain.NewClipboardError(attempts...)
	s.metrics.recordShare(string(domain.ShareOutcomeFailed), "none")
	s.logger.ErrorContext(ctx, "failed to share or copy quote",
		slog.Int("quote_id", quote.ID),
		slog.Any("error", err))

	return domain.ShareOutcomeFailed, err
}

var errNotAvailable = errors.New("not available")

func (s *ShareService) done(ctx context.Context, id int, outcome domain.ShareOutcome, tier string) {
	s.metrics.recordShare(string(outcome), tier)
	s.logger.InfoContext(ctx, "quote "+string(outcome),
		slog.Int("quote_id", id),
		slog.String("tier", tier))
}
