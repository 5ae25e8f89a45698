package acl

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/daily-wisdom/internal/adapters/clients"
	"github.com/jsamuelsen/daily-wisdom/internal/domain"
)

func TestGetJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		status  int
		body    string
		want    string
		wantErr string
	}{
		{name: "decodes body", status: http.StatusOK, body: `{"name": "quotes"}`, want: "quotes"},
		{name: "truncated body", status: http.StatusOK, body: `{`, wantErr: "fetch: decoding response"},
		{name: "error status", status: http.StatusBadGateway, body: `{"message": "gateway down"}`, wantErr: "HTTP 502: gateway down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuery url.Values
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotQuery = r.URL.Query()
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			t.Cleanup(server.Close)

			client, err := clients.New(testConfig(server.URL))
			require.NoError(t, err)

			got, err := getJSON[payload](context.Background(), upstream{client: client, name: "quotes"},
				"/quotes", url.Values{"page": {"2"}}, "fetch")

			assert.Equal(t, "2", gotQuery.Get("page"))
			if tt.wantErr != "" {
				require.ErrorIs(t, err, domain.ErrUnavailable)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestTranslateSlice(t *testing.T) {
	items := []freeQuote{{ID: 1, Content: "a"}, {ID: 2, Content: "b"}}

	quotes, skipped := TranslateSlice(items, translateQuote)
	assert.Empty(t, skipped)
	require.Len(t, quotes, 2)
	assert.Equal(t, 2, quotes[1].ID)

	empty, skipped := TranslateSlice([]freeQuote{}, translateQuote)
	assert.Empty(t, skipped)
	assert.Empty(t, empty)

	quotes, skipped = TranslateSlice([]freeQuote{{ID: 0}, {ID: 1}, {ID: -3}, {ID: 2}}, translateQuote)
	require.Len(t, quotes, 2)
	assert.Equal(t, 1, quotes[0].ID)
	assert.Equal(t, 2, quotes[1].ID)
	require.Len(t, skipped, 2)
	require.ErrorIs(t, skipped[0], domain.ErrValidation)
	assert.Contains(t, skipped[0].Error(), "translating item 0")
	assert.Contains(t, skipped[1].Error(), "translating item 2")
}

func TestValidatePositive(t *testing.T) {
	require.NoError(t, ValidatePositive(1, "page"))
	require.NoError(t, ValidatePositive(0.5, "ratio"))

	err := ValidatePositive(0, "page")
	require.ErrorIs(t, err, domain.ErrValidation)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "page", ve.Field)
	assert.Equal(t, 0, ve.Value)
}
