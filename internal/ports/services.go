// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter for anything that may block
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrUnavailable, etc.)
//   - Keep interfaces small and focused
package ports

import (
	"context"

	"github.com/jsamuelsen/daily-wisdom/internal/domain"
)

// QuoteClient reads pages of the remote quotes catalogue.
//
// Implementations translate the upstream envelope into domain types:
//   - transport failures and non-2xx responses return domain.ErrUnavailable
//   - a response with success=false returns domain.ErrUnavailable
//   - a page with zero quotes is returned as-is; callers decide whether
//     that is an error
type QuoteClient interface {
	// ListQuotes fetches one page of quotes. Pages are 1-based.
	ListQuotes(ctx context.Context, page, limit int) (*domain.QuotePage, error)
}

// KeyValueStore persists small opaque values by key.
// Durability is best effort: a successful Put must be visible to the next Get
// in the same process and, for persistent drivers, after a restart.
type KeyValueStore interface {
	// Get returns the value stored under key.
	// Returns domain.ErrNotFound if the key was never written.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put replaces the value stored under key.
	Put(ctx context.Context, key string, value []byte) error
}

// Sharer hands a payload to a native share target.
type Sharer interface {
	// Available reports whether a share target exists on this host.
	// The share service probes it before every attempt.
	Available() bool

	// Share delivers the payload. An error means the target refused it or
	// the user dismissed it; callers fall back to copying.
	Share(ctx context.Context, payload domain.SharePayload) error
}

// Clipboard places text somewhere the user can paste it from.
// Multiple implementations are tried in order by the share service.
type Clipboard interface {
	// Name identifies the clipboard in logs, e.g. "system" or "osc52".
	Name() string

	// Available reports whether the clipboard can be used on this host.
	Available() bool

	// Copy writes text to the clipboard.
	Copy(ctx context.Context, text string) error
}
