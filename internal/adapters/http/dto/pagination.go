package dto

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strconv"
)

// DefaultLimit is the default number of favorites per page.
// Each unresolved favorite can cost a full catalogue scan, so pages are small.
const DefaultLimit = 10

// MaxLimit is the maximum allowed favorites per page.
const MaxLimit = 50

// cursorFieldOffset names the position encoded by offset cursors.
const cursorFieldOffset = "offset"

// Cursor errors.
var (
	// ErrInvalidCursor is returned when cursor decoding fails.
	ErrInvalidCursor = errors.New("invalid cursor")

	// ErrNoCursor indicates no cursor was provided (first page request).
	// This is not an error condition but signals the start of pagination.
	ErrNoCursor = errors.New("no cursor provided")
)

// PaginationRequest represents pagination parameters from the request.
type PaginationRequest struct {
	// Cursor is an opaque string from a previous response's NextCursor.
	Cursor string `form:"cursor" json:"cursor"`

	// Limit is the maximum number of items to return (1-50, default 10).
	Limit int `form:"limit" json:"limit" validate:"omitempty,gte=1,lte=50"`
}

// GetLimit returns the limit with defaults applied.
func (p *PaginationRequest) GetLimit() int {
	if p.Limit <= 0 {
		return DefaultLimit
	}

	return min(p.Limit, MaxLimit)
}

// DecodeCursor decodes the cursor string into CursorData.
// Returns ErrNoCursor if cursor is empty (first page request).
func (p *PaginationRequest) DecodeCursor() (*CursorData, error) {
	if p.Cursor == "" {
		return nil, ErrNoCursor
	}

	return DecodeCursor(p.Cursor)
}

// Offset returns the position the cursor points at, or 0 without a cursor.
func (p *PaginationRequest) Offset() (int, error) {
	cursor, err := p.DecodeCursor()
	if errors.Is(err, ErrNoCursor) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	if cursor.Field != cursorFieldOffset {
		return 0, ErrInvalidCursor
	}

	offset, err := strconv.Atoi(cursor.Value)
	if err != nil || offset < 0 {
		return 0, ErrInvalidCursor
	}

	return offset, nil
}

// PaginatedResponse is a generic paginated response structure.
type PaginatedResponse[T any] struct {
	// Items is the array of items for this page.
	Items []T `json:"items"`

	// NextCursor is the cursor to use for the next page.
	// Empty if there are no more items.
	NextCursor string `json:"nextCursor,omitempty"`

	// HasMore indicates whether there are more items after this page.
	HasMore bool `json:"hasMore"`

	// Total is the number of entries being paged over, when known.
	Total int `json:"total,omitempty"`
}

// NewOffsetPage builds a response whose next cursor points at nextOffset.
// Items may be fewer than the page size when entries were skipped.
func NewOffsetPage[T any](items []T, nextOffset int, hasMore bool, total int) *PaginatedResponse[T] {
	if items == nil {
		items = []T{}
	}

	resp := &PaginatedResponse[T]{
		Items:   items,
		HasMore: hasMore,
		Total:   total,
	}
	if hasMore {
		resp.NextCursor = OffsetCursor(nextOffset)
	}

	return resp
}

// OffsetCursor encodes a position in an ordered list.
func OffsetCursor(offset int) string {
	return EncodeCursor(NewCursor(cursorFieldOffset, strconv.Itoa(offset), ""))
}

// CursorData contains the data encoded in a pagination cursor.
type CursorData struct {
	// Field is the name of the position field (e.g., "offset").
	Field string `json:"f"`

	// Value is the value of the field at the cursor position.
	Value string `json:"v"`

	// ID optionally pins the item the cursor was issued after.
	ID string `json:"id,omitempty"`
}

// EncodeCursor encodes cursor data to a base64 string.
func EncodeCursor(data *CursorData) string {
	if data == nil {
		return ""
	}

	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return ""
	}

	return base64.URLEncoding.EncodeToString(jsonBytes)
}

// DecodeCursor decodes a base64 cursor string to cursor data.
// Returns ErrNoCursor if the encoded string is empty.
func DecodeCursor(encoded string) (*CursorData, error) {
	if encoded == "" {
		return nil, ErrNoCursor
	}

	jsonBytes, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	var data CursorData

	err = json.Unmarshal(jsonBytes, &data)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	return &data, nil
}

// NewCursor creates a new cursor from field, value, and ID.
func NewCursor(field, value, id string) *CursorData {
	return &CursorData{
		Field: field,
		Value: value,
		ID:    id,
	}
}
