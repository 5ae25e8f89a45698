// Package acl implements the Anti-Corruption Layer for the quotes API.
//
// The upstream wraps every page in an envelope:
//
//	{
//	  "success": true,
//	  "statusCode": 200,
//	  "message": "Quotes fetched successfully",
//	  "data": {
//	    "page": 3, "limit": 10, "totalPages": 150,
//	    "data": [{"id": 42, "content": "...", "author": "..."}]
//	  }
//	}
//
// [QuoteClient] decodes it, validates each quote and returns a
// [domain.QuotePage]. Nothing from the envelope leaks past this package.
//
// # Error Handling Strategy
//
// The quotes API is read-only and anonymous, so every failure is a
// NetworkError ([domain.ErrUnavailable]):
//   - transport errors, open circuit, exhausted retries
//   - any non-2xx status (429 is reported as "rate limit exceeded")
//   - a 2xx response with "success": false
//   - a body that cannot be decoded or carries a quote without a positive id
//
// Context cancellation is passed through wrapped, not converted.
// An empty page is not an error here; the application layer decides.
package acl
