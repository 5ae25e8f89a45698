package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/jsamuelsen/daily-wisdom/internal/adapters/clients"
	"github.com/jsamuelsen/daily-wisdom/internal/domain"
)

// maxResponseBody bounds a decoded response body. A page of 100 quotes is
// well under this.
const maxResponseBody = 4 << 20

// upstream pairs a resilient client with the service name reported in
// domain errors.
type upstream struct {
	client *clients.Client
	name   string
}

// getJSON performs a GET and decodes a 2xx JSON body into T. Every failure
// is returned as a domain error naming the operation, except context errors
// which pass through unchanged.
func getJSON[T any](ctx context.Context, u upstream, path string, query url.Values, operation string) (*T, error) {
	resp, err := u.client.Get(ctx, path, query)
	if err != nil {
		return nil, MapHTTPError(nil, err, u.name, operation)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, MapHTTPError(resp, nil, u.name, operation)
	}

	var out T
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBody)).Decode(&out); err != nil {
		return nil, domain.NewUnavailableError(u.name, fmt.Sprintf("%s: decoding response: %v", operation, err))
	}

	return &out, nil
}

// ValidatePositive rejects zero and negative values with a domain
// validation error naming fieldName.
func ValidatePositive[T ~int | ~int64 | ~float64](value T, fieldName string) error {
	if value <= 0 {
		return domain.NewValidationErrorWithValue(fieldName, "must be positive", value)
	}

	return nil
}

// Translator converts one upstream DTO into a domain value.
type Translator[External any, Domain any] func(ext *External) (Domain, error)

// TranslateSlice translates every item it can. Items the translator rejects
// are left out and reported in skipped, each naming its index.
func TranslateSlice[E any, D any](items []E, translate Translator[E, D]) (result []D, skipped []error) {
	result = make([]D, 0, len(items))

	for i := range items {
		translated, err := translate(&items[i])
		if err != nil {
			skipped = append(skipped, fmt.Errorf("translating item %d: %w", i, err))
			continue
		}

		result = append(result, translated)
	}

	return result, skipped
}
