package drinks

import (
	"errors"
	"regexp"
	"sync"

	"github.com/christoffels/menu/internal/enum"
	"github.com/christoffels/menu/internal/menu"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Errors returned by the drinks catalog.
var (
	ErrNameRequired    = errors.New("name is required")
	ErrInvalidCategory = errors.New("invalid drink category")
	ErrDuplicateDrink  = errors.New("drink already exists in category")
)

// Entry is a single drink in one of the two categories. Entries carry
// a real id assigned at creation; the historical whitespace-derived
// display key survives only as a legacy removal-selection key.
type Entry struct {
	ID       string
	Category string
	Name     string
	Price    decimal.Decimal
}

// Key returns the legacy derived selection key for the entry.
func (e Entry) Key() string {
	return DrinkKey(e.Category, e.Name)
}

// AddEntryRequest is the raw form input for adding a drink.
type AddEntryRequest struct {
	Name  string
	Price string
}

// Catalog owns the drinks side of the menu: one ordered list per
// category, append on add.
type Catalog struct {
	mu         sync.RWMutex
	byCategory map[string][]Entry
}

func NewCatalog() *Catalog {
	return &Catalog{byCategory: make(map[string][]Entry)}
}

// Add validates the request and appends the new drink to its
// category. Duplicate detection is by exact name within the category.
func (c *Catalog) Add(category string, req AddEntryRequest) (Entry, error) {
	if !isValidCategory(category) {
		return Entry{}, ErrInvalidCategory
	}
	if req.Name == "" {
		return Entry{}, ErrNameRequired
	}
	price, err := menu.ParsePrice(req.Price)
	if err != nil {
		return Entry{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.byCategory[category] {
		if e.Name == req.Name {
			return Entry{}, ErrDuplicateDrink
		}
	}

	entry := Entry{
		ID:       uuid.NewString(),
		Category: category,
		Name:     req.Name,
		Price:    price,
	}
	c.byCategory[category] = append(c.byCategory[category], entry)
	return entry, nil
}

// RemoveByKeys removes, in every category, the entries whose id or
// legacy derived key is in keys, and reports how many were removed.
// Keys with no matching entry are ignored.
func (c *Catalog) RemoveByKeys(keys map[string]struct{}) int {
	if len(keys) == 0 {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for category, entries := range c.byCategory {
		kept := entries[:0]
		for _, e := range entries {
			if _, byID := keys[e.ID]; byID {
				removed++
				continue
			}
			if _, byKey := keys[e.Key()]; byKey {
				removed++
				continue
			}
			kept = append(kept, e)
		}
		c.byCategory[category] = kept
	}
	return removed
}

// Get returns the drink with the given id, searching both categories.
func (c *Catalog) Get(id string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, entries := range c.byCategory {
		for _, e := range entries {
			if e.ID == id {
				return e, true
			}
		}
	}
	return Entry{}, false
}

// Entries returns a copy of one category in insertion order.
func (c *Catalog) Entries(category string) []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entries := c.byCategory[category]
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Len counts drinks across both categories.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, entries := range c.byCategory {
		n += len(entries)
	}
	return n
}

var whitespace = regexp.MustCompile(`\s+`)

// DrinkKey derives the selection key the UI historically used for a
// drink row, e.g. "cold-Ice-water". It is whitespace-sensitive and not
// collision-free; new code should select drinks by their entry id.
func DrinkKey(category, name string) string {
	prefix := "cold"
	if category == enum.DrinkCategoryHot {
		prefix = "hot"
	}
	return prefix + "-" + whitespace.ReplaceAllString(name, "-")
}

func isValidCategory(category string) bool {
	for _, c := range enum.DrinkCategories {
		if c == category {
			return true
		}
	}
	return false
}
