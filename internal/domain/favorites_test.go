package domain

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFavoriteIDSet_DropsDuplicates(t *testing.T) {
	s := NewFavoriteIDSet(3, 1, 3, 2, 1)

	assert.Equal(t, []int{3, 1, 2}, s.IDs())
	assert.Equal(t, 3, s.Len())
}

func TestFavoriteIDSet_ZeroValue(t *testing.T) {
	var s FavoriteIDSet

	assert.Equal(t, 0, s.Len())
	assert.NotNil(t, s.IDs())
	assert.Empty(t, s.IDs())
	assert.False(t, s.Contains(1))
}

func TestFavoriteIDSet_AddRemove(t *testing.T) {
	tests := []struct {
		name     string
		start    []int
		apply    func(FavoriteIDSet) (FavoriteIDSet, bool)
		want     []int
		modified bool
	}{
		{
			name:     "add new id appends",
			start:    []int{1, 2},
			apply:    func(s FavoriteIDSet) (FavoriteIDSet, bool) { return s.Add(3) },
			want:     []int{1, 2, 3},
			modified: true,
		},
		{
			name:     "add existing id is a no-op",
			start:    []int{1, 2},
			apply:    func(s FavoriteIDSet) (FavoriteIDSet, bool) { return s.Add(1) },
			want:     []int{1, 2},
			modified: false,
		},
		{
			name:     "remove member keeps order",
			start:    []int{1, 2, 3},
			apply:    func(s FavoriteIDSet) (FavoriteIDSet, bool) { return s.Remove(2) },
			want:     []int{1, 3},
			modified: true,
		},
		{
			name:     "remove non-member is a no-op",
			start:    []int{1, 2},
			apply:    func(s FavoriteIDSet) (FavoriteIDSet, bool) { return s.Remove(9) },
			want:     []int{1, 2},
			modified: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewFavoriteIDSet(tt.start...)

			got, modified := tt.apply(s)

			assert.Equal(t, tt.want, got.IDs())
			assert.Equal(t, tt.modified, modified)
			assert.Equal(t, tt.start, s.IDs(), "receiver must not change")
		})
	}
}

func TestFavoriteIDSet_RemoveThenReAddMovesToEnd(t *testing.T) {
	s := NewFavoriteIDSet(1, 2, 3)

	s, _ = s.Remove(1)
	s, _ = s.Add(1)

	assert.Equal(t, []int{2, 3, 1}, s.IDs())
}

func TestFavoriteIDSet_Toggle(t *testing.T) {
	s := NewFavoriteIDSet(5)

	s, member := s.Toggle(7)
	assert.True(t, member)
	assert.Equal(t, []int{5, 7}, s.IDs())

	s, member = s.Toggle(5)
	assert.False(t, member)
	assert.Equal(t, []int{7}, s.IDs())
}

// Random add/remove sequences must match a reference model and never hold duplicates.
func TestFavoriteIDSet_RandomSequencesMatchModel(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for round := range 200 {
		var s FavoriteIDSet
		var model []int

		for range 50 {
			id := rng.IntN(10)
			if rng.IntN(2) == 0 {
				s, _ = s.Add(id)
				if !slices.Contains(model, id) {
					model = append(model, id)
				}
			} else {
				s, _ = s.Remove(id)
				if idx := slices.Index(model, id); idx >= 0 {
					model = slices.Delete(model, idx, idx+1)
				}
			}
		}

		ids := s.IDs()
		if model == nil {
			model = []int{}
		}
		assert.Equal(t, model, ids, "round %d", round)

		seen := make(map[int]bool, len(ids))
		for _, id := range ids {
			assert.False(t, seen[id], "duplicate id %d in round %d", id, round)
			seen[id] = true
		}
	}
}

func TestFavoriteIDSet_IDsReturnsCopy(t *testing.T) {
	s := NewFavoriteIDSet(1, 2)

	ids := s.IDs()
	ids[0] = 99

	assert.Equal(t, []int{1, 2}, s.IDs())
}

func TestFavoriteIDSet_Equal(t *testing.T) {
	assert.True(t, NewFavoriteIDSet(1, 2).Equal(NewFavoriteIDSet(1, 2)))
	assert.False(t, NewFavoriteIDSet(1, 2).Equal(NewFavoriteIDSet(2, 1)))
	assert.True(t, FavoriteIDSet{}.Equal(NewFavoriteIDSet()))
}

func TestQuote_ShareText(t *testing.T) {
	q := Quote{ID: 1, Content: `Be "here" now`, Author: "Ram Dass"}

	assert.Equal(t, `"Be "here" now" - Ram Dass`, q.ShareText())
}

func TestQuotePage_Find(t *testing.T) {
	page := QuotePage{Quotes: []Quote{{ID: 1}, {ID: 42, Author: "A"}}}

	q, ok := page.Find(42)
	assert.True(t, ok)
	assert.Equal(t, "A", q.Author)

	_, ok = page.Find(7)
	assert.False(t, ok)
}
