package app

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CopiedMarkerTTL is how long a quote shows as "Copied" after a copy.
const CopiedMarkerTTL = 2500 * time.Millisecond

const maxCopiedMarkers = 256

// CopiedMarkers tracks quotes copied within the last TTL. Markers are never
// persisted and expire on their own.
type CopiedMarkers struct {
	lru *expirable.LRU[int, struct{}]
}

// NewCopiedMarkers returns markers that expire after ttl, or after
// CopiedMarkerTTL when ttl is not positive.
func NewCopiedMarkers(ttl time.Duration) *CopiedMarkers {
	if ttl <= 0 {
		ttl = CopiedMarkerTTL
	}

	return &CopiedMarkers{
		lru: expirable.NewLRU[int, struct{}](maxCopiedMarkers, nil, ttl),
	}
}

// Mark flags id as copied, restarting its TTL.
func (m *CopiedMarkers) Mark(id int) {
	m.lru.Add(id, struct{}{})
}

// IsCopied reports whether id was copied within the TTL.
func (m *CopiedMarkers) IsCopied(id int) bool {
	_, ok := m.lru.Get(id)
	return ok
}
