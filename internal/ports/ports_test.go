package ports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name string
	err  error
}

func (s *stubChecker) Name() string { return s.name }

func (s *stubChecker) Check(context.Context) error { return s.err }

type slowChecker struct {
	name string
}

func (c *slowChecker) Name() string { return c.name }

func (c *slowChecker) Check(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

func TestRegister_DuplicateName(t *testing.T) {
	registry := NewHealthRegistry()

	require.NoError(t, registry.Register(&stubChecker{name: "storage"}))

	err := registry.RegisterOptional(&stubChecker{name: "storage"})

	require.ErrorIs(t, err, ErrDuplicateChecker)
	assert.Contains(t, err.Error(), "storage")
	assert.Len(t, registry.checkers, 1)
}

func TestCheckAll_NoCheckers(t *testing.T) {
	result := NewHealthRegistry().CheckAll(context.Background())

	require.NotNil(t, result)
	assert.Equal(t, HealthStatusHealthy, result.Status)
	assert.Empty(t, result.Checks)
	assert.False(t, result.Timestamp.IsZero())
}

func TestCheckAll_Status(t *testing.T) {
	failing := errors.New("connection refused")

	tests := []struct {
		name       string
		critical   []*stubChecker
		optional   []*stubChecker
		wantStatus HealthStatus
	}{
		{
			name:       "all healthy",
			critical:   []*stubChecker{{name: "storage"}},
			optional:   []*stubChecker{{name: "quote-service"}},
			wantStatus: HealthStatusHealthy,
		},
		{
			name:       "optional failure degrades",
			critical:   []*stubChecker{{name: "storage"}},
			optional:   []*stubChecker{{name: "quote-service", err: failing}},
			wantStatus: HealthStatusDegraded,
		},
		{
			name:       "critical failure wins over optional failure",
			critical:   []*stubChecker{{name: "storage", err: failing}},
			optional:   []*stubChecker{{name: "quote-service", err: failing}},
			wantStatus: HealthStatusUnhealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewHealthRegistry()
			for _, c := range tt.critical {
				require.NoError(t, registry.Register(c))
			}
			for _, c := range tt.optional {
				require.NoError(t, registry.RegisterOptional(c))
			}

			result := registry.CheckAll(context.Background())

			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Len(t, result.Checks, len(tt.critical)+len(tt.optional))
			for _, c := range tt.optional {
				assert.True(t, result.Checks[c.name].Optional)
				if c.err != nil {
					assert.Equal(t, c.err.Error(), result.Checks[c.name].Message)
				}
			}
		})
	}
}

func TestCheckAll_ContextCancelled(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(&slowChecker{name: "storage"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := registry.CheckAll(ctx)

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Contains(t, result.Checks["storage"].Message, "context canceled")
}
