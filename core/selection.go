package core

import (
	"slices"

	"github.com/huangsam/compareview/schema"
)

// Selection is the bounded, ordered set of item ids chosen for comparison.
// Ids are kept in candidate input order, so colors and columns stay stable
// across toggles. The set never exceeds its maximum and never holds an id
// that is absent from its candidate set.
type Selection struct {
	ids        []string
	max        int
	candidates *ItemSet
}

// NewSelection returns an empty selection over candidates.
// A non-positive max falls back to schema.DefaultMaxSelections.
func NewSelection(candidates *ItemSet, max int) *Selection {
	if max <= 0 {
		max = schema.DefaultMaxSelections
	}
	return &Selection{
		ids:        make([]string, 0, max),
		max:        max,
		candidates: candidates,
	}
}

// Initialize replaces the state wholesale: the candidate set becomes
// candidates and the selection becomes its first min(k, n, max) ids.
func (s *Selection) Initialize(candidates *ItemSet, k int) {
	s.candidates = candidates
	n := min(max(k, 0), candidates.Len(), s.max)
	s.ids = s.ids[:0]
	for i := range n {
		s.ids = append(s.ids, candidates.At(i).ID)
	}
}

// Toggle removes id when selected and adds it when there is room.
// At capacity, or for an id outside the candidate set, it does nothing.
// It reports whether the selection changed.
func (s *Selection) Toggle(id string) bool {
	if i := slices.Index(s.ids, id); i >= 0 {
		s.ids = slices.Delete(s.ids, i, i+1)
		return true
	}
	if !s.candidates.Has(id) || len(s.ids) >= s.max {
		return false
	}
	s.ids = slices.Insert(s.ids, s.insertAt(id), id)
	return true
}

// insertAt finds the position that keeps ids in candidate input order.
func (s *Selection) insertAt(id string) int {
	pos := s.candidates.indexOf(id)
	for i, cur := range s.ids {
		if s.candidates.indexOf(cur) > pos {
			return i
		}
	}
	return len(s.ids)
}

// Contains reports whether id is selected.
func (s *Selection) Contains(id string) bool {
	return slices.Contains(s.ids, id)
}

// IDs returns the selected ids in input order.
func (s *Selection) IDs() []string {
	return slices.Clone(s.ids)
}

// Len returns the number of selected ids.
func (s *Selection) Len() int { return len(s.ids) }

// Max returns the capacity.
func (s *Selection) Max() int { return s.max }

// Full reports whether another id would be rejected.
func (s *Selection) Full() bool { return len(s.ids) >= s.max }

// Replace clears the selection and adds ids in order. Unknown ids are skipped
// and ids past capacity are dropped.
func (s *Selection) Replace(ids []string) {
	s.ids = s.ids[:0]
	for _, id := range ids {
		if !s.Contains(id) {
			s.Toggle(id)
		}
	}
}
