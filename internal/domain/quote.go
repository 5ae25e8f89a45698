package domain

import "fmt"

// Quote represents a quotation with its author.
// This is a domain entity - it has no knowledge of external systems.
// Quotes are immutable once fetched.
type Quote struct {
	// ID is the unique, externally assigned identifier.
	ID int

	// Content is the text of the quote.
	Content string

	// Author is who said or wrote the quote.
	Author string

	// Tags are categories or themes associated with the quote.
	Tags []string

	// AuthorSlug is the URL-safe author name used by the quotes API.
	AuthorSlug string

	// Length is the character length reported by the quotes API.
	Length int

	// DateAdded and DateModified are ISO dates as reported upstream.
	DateAdded    string
	DateModified string
}

// ShareText formats the quote the way it is shared or copied:
//
//	"{content}" - {author}
func (q *Quote) ShareText() string {
	return fmt.Sprintf("\"%s\" - %s", q.Content, q.Author)
}

// QuotePage is one page of the paginated quotes API.
type QuotePage struct {
	Page   int
	Limit  int
	Quotes []Quote

	// TotalPages is the upstream page count, 0 when unknown.
	TotalPages int
}

// Find returns the quote with the given id from the page.
func (p *QuotePage) Find(id int) (Quote, bool) {
	for _, q := range p.Quotes {
		if q.ID == id {
			return q, true
		}
	}

	return Quote{}, false
}
