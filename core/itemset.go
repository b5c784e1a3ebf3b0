package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/huangsam/compareview/schema"
)

// Sentinel errors for invalid input.
var (
	ErrEmptyID          = errors.New("item id must not be empty")
	ErrPaddedID         = errors.New("item id has surrounding whitespace")
	ErrDuplicateID      = errors.New("duplicate item id")
	ErrUnknownFormat    = errors.New("unknown format kind")
	ErrUnknownViewMode  = errors.New("unknown view mode")
	ErrUnknownChartKind = errors.New("unknown chart kind")
	ErrDuplicateMetric  = errors.New("duplicate metric key")
)

// ItemSet is an immutable, validated candidate set. Its pointer is the
// candidate-set identity: a Viewer resets its selection only when it is
// handed a different *ItemSet.
type ItemSet struct {
	items []schema.Item
	index map[string]int
}

// NewItemSet copies items into a new candidate set, rejecting empty, padded and
// duplicate ids. Ids are kept exactly as given; a copy with an empty Label
// takes its ID as the label, the caller's items are never modified.
func NewItemSet(items []schema.Item) (*ItemSet, error) {
	set := &ItemSet{
		items: make([]schema.Item, len(items)),
		index: make(map[string]int, len(items)),
	}
	for i, item := range items {
		id := item.ID
		if strings.TrimSpace(id) == "" {
			return nil, fmt.Errorf("item at position %d: %w", i, ErrEmptyID)
		}
		if strings.TrimSpace(id) != id {
			return nil, fmt.Errorf("%w %q at position %d", ErrPaddedID, id, i)
		}
		if prev, ok := set.index[id]; ok {
			return nil, fmt.Errorf("%w %q at positions %d and %d", ErrDuplicateID, id, prev, i)
		}
		if item.Label == "" {
			item.Label = id
		}
		set.items[i] = item
		set.index[id] = i
	}
	return set, nil
}

// Len returns the number of candidates. A nil set is empty.
func (s *ItemSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Items returns a copy of the candidates in input order.
func (s *ItemSet) Items() []schema.Item {
	if s == nil {
		return nil
	}
	out := make([]schema.Item, len(s.items))
	copy(out, s.items)
	return out
}

// At returns the candidate at input position i.
func (s *ItemSet) At(i int) schema.Item {
	return s.items[i]
}

// Lookup returns the candidate with the given id.
func (s *ItemSet) Lookup(id string) (schema.Item, bool) {
	if s == nil {
		return schema.Item{}, false
	}
	i, ok := s.index[id]
	if !ok {
		return schema.Item{}, false
	}
	return s.items[i], true
}

// Has reports whether id belongs to the set.
func (s *ItemSet) Has(id string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[id]
	return ok
}

func (s *ItemSet) indexOf(id string) int {
	if i, ok := s.index[id]; ok {
		return i
	}
	return -1
}
