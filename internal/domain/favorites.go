package domain

import "slices"

// FavoriteIDSet is an ordered sequence of unique quote ids.
// Order is insertion order: the most recent addition is last.
// The zero value is an empty set ready to use.
//
// Operations never mutate the receiver; they return the resulting set, so a
// caller can roll back by keeping the previous value.
type FavoriteIDSet struct {
	ids []int
}

// NewFavoriteIDSet builds a set from ids, dropping duplicates.
// The first occurrence of an id decides its position.
func NewFavoriteIDSet(ids ...int) FavoriteIDSet {
	var s FavoriteIDSet
	for _, id := range ids {
		s, _ = s.Add(id)
	}

	return s
}

// Add appends id when it is not already a member.
// The returned bool reports whether the set changed.
func (s FavoriteIDSet) Add(id int) (FavoriteIDSet, bool) {
	if s.Contains(id) {
		return s, false
	}

	ids := make([]int, len(s.ids), len(s.ids)+1)
	copy(ids, s.ids)

	return FavoriteIDSet{ids: append(ids, id)}, true
}

// Remove deletes id. Removing a non-member is a no-op.
// The returned bool reports whether the set changed.
func (s FavoriteIDSet) Remove(id int) (FavoriteIDSet, bool) {
	idx := slices.Index(s.ids, id)
	if idx < 0 {
		return s, false
	}

	ids := make([]int, 0, len(s.ids)-1)
	ids = append(ids, s.ids[:idx]...)
	ids = append(ids, s.ids[idx+1:]...)

	return FavoriteIDSet{ids: ids}, true
}

// Toggle removes id when present and adds it otherwise.
// The returned bool reports membership after the toggle.
func (s FavoriteIDSet) Toggle(id int) (FavoriteIDSet, bool) {
	if next, removed := s.Remove(id); removed {
		return next, false
	}

	next, _ := s.Add(id)

	return next, true
}

// Contains reports whether id is a member.
func (s FavoriteIDSet) Contains(id int) bool {
	return slices.Contains(s.ids, id)
}

// IDs returns a copy of the ids in insertion order, never nil.
func (s FavoriteIDSet) IDs() []int {
	ids := make([]int, len(s.ids))
	copy(ids, s.ids)

	return ids
}

// Len returns the number of ids.
func (s FavoriteIDSet) Len() int {
	return len(s.ids)
}

// Equal reports whether both sets hold the same ids in the same order.
func (s FavoriteIDSet) Equal(other FavoriteIDSet) bool {
	return slices.Equal(s.ids, other.ids)
}
