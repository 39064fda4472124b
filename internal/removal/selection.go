// Package removal implements the pending-removal workflow of the
// manage screen: mark rows while the screen is open, then apply the
// whole selection at once.
package removal

import (
	"errors"
	"sync"

	"github.com/christoffels/menu/internal/drinks"
	"github.com/christoffels/menu/internal/menu"
)

// ErrNoSelection is returned by Commit when nothing is marked.
var ErrNoSelection = errors.New("no items selected for removal")

// Selection is the set of keys marked for removal: food item ids,
// drink entry ids, or legacy derived drink keys. A Selection lives for
// a single screen visit and resets itself on a successful commit.
type Selection struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

func NewSelection() *Selection {
	return &Selection{keys: make(map[string]struct{})}
}

// Toggle marks the key if unmarked and unmarks it if marked.
func (s *Selection) Toggle(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.keys[key]; ok {
		delete(s.keys, key)
		return
	}
	s.keys[key] = struct{}{}
}

func (s *Selection) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.keys[key]
	return ok
}

func (s *Selection) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.keys)
}

// Keys returns a copy of the marked set.
func (s *Selection) Keys() map[string]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Selection) snapshot() map[string]struct{} {
	out := make(map[string]struct{}, len(s.keys))
	for k := range s.keys {
		out[k] = struct{}{}
	}
	return out
}

// Clear drops the whole selection, as when the screen is reopened.
func (s *Selection) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys = make(map[string]struct{})
}

// Commit applies the selection against both sides of the menu and
// resets it, reporting how many rows were removed. Both removals work
// from the same snapshot of the set, so a commit is never half
// applied. An empty selection fails with ErrNoSelection and mutates
// nothing.
func (s *Selection) Commit(foods *menu.Catalog, dr *drinks.Catalog) (int, error) {
	s.mu.Lock()
	if len(s.keys) == 0 {
		s.mu.Unlock()
		return 0, ErrNoSelection
	}
	keys := s.snapshot()
	s.keys = make(map[string]struct{})
	s.mu.Unlock()

	removed := foods.RemoveByIDs(keys)
	removed += dr.RemoveByKeys(keys)
	return removed, nil
}
