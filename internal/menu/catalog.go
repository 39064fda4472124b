package menu

import (
	"errors"
	"sync"

	"github.com/christoffels/menu/internal/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Errors returned by the food catalog.
var (
	ErrNameRequired        = errors.New("name is required")
	ErrCourseRequired      = errors.New("course is required")
	ErrInvalidCourse       = errors.New("invalid course")
	ErrDescriptionRequired = errors.New("description is required")
	ErrPriceRequired       = errors.New("price is required")
	ErrInvalidPrice        = errors.New("invalid price")
	ErrNegativePrice       = errors.New("price must be >= 0")
	ErrDuplicateItem       = errors.New("item already exists")
)

// ImageRef is an opaque reference to an item photo. Asset names a
// bundled asset, URI points at a user-picked file. The catalog never
// inspects either; at most one is set.
type ImageRef struct {
	Asset string `yaml:"asset,omitempty"`
	URI   string `yaml:"uri,omitempty"`
}

func (r ImageRef) IsZero() bool {
	return r.Asset == "" && r.URI == ""
}

// Item is a single dish on the food menu. Items are immutable once
// created; an edit is expressed as remove + add.
type Item struct {
	ID          string
	Name        string
	Description string
	Course      string
	Price       decimal.Decimal
	Image       ImageRef
}

// AddItemRequest is the raw form input for adding a dish. Price
// arrives as a string because that is what the form produces.
type AddItemRequest struct {
	Name        string
	Description string
	Course      string
	Price       string
	Image       ImageRef
}

// Catalog owns the food side of the menu. Newly added dishes are
// prepended so the latest creation displays first.
type Catalog struct {
	mu     sync.RWMutex
	policy string
	items  []Item
}

// NewCatalog creates an empty catalog using the given duplicate
// detection policy; empty means enum.DuplicatePolicyNameAndCourse.
func NewCatalog(policy string) *Catalog {
	if policy == "" {
		policy = enum.DuplicatePolicyNameAndCourse
	}
	return &Catalog{policy: policy}
}

// Add validates the request, assigns a fresh id, and prepends the new
// dish. The returned Item is the stored value.
func (c *Catalog) Add(req AddItemRequest) (Item, error) {
	if req.Name == "" {
		return Item{}, ErrNameRequired
	}
	if req.Course == "" {
		return Item{}, ErrCourseRequired
	}
	if !isFoodCourse(req.Course) {
		return Item{}, ErrInvalidCourse
	}
	if req.Description == "" {
		return Item{}, ErrDescriptionRequired
	}
	price, err := ParsePrice(req.Price)
	if err != nil {
		return Item{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, it := range c.items {
		if c.isDuplicate(it, req.Name, req.Course) {
			return Item{}, ErrDuplicateItem
		}
	}

	item := Item{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Course:      req.Course,
		Price:       price,
		Image:       req.Image,
	}
	c.items = append([]Item{item}, c.items...)
	return item, nil
}

func (c *Catalog) isDuplicate(existing Item, name, course string) bool {
	if existing.Name != name {
		return false
	}
	if c.policy == enum.DuplicatePolicyNameOnly {
		return true
	}
	return existing.Course == course
}

// RemoveByIDs removes every dish whose id is in ids and reports how
// many were removed. Ids with no matching dish are ignored.
func (c *Catalog) RemoveByIDs(ids map[string]struct{}) int {
	if len(ids) == 0 {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	removed := 0
	for _, it := range c.items {
		if _, marked := ids[it.ID]; marked {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	c.items = kept
	return removed
}

// Get returns the dish with the given id.
func (c *Catalog) Get(id string) (Item, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Items returns a copy of the catalog in display order.
func (c *Catalog) Items() []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// ByCourse filters the catalog to a single course, preserving display
// order.
func (c *Catalog) ByCourse(course string) []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []Item
	for _, it := range c.items {
		if it.Course == course {
			out = append(out, it)
		}
	}
	return out
}

// GroupByCourse groups dishes by course. Only courses that actually
// have dishes appear as keys; drinks never do, they live in their own
// catalog.
func (c *Catalog) GroupByCourse() map[string][]Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	grouped := make(map[string][]Item)
	for _, it := range c.items {
		grouped[it.Course] = append(grouped[it.Course], it)
	}
	return grouped
}

// Section is one course worth of dishes, ready for sectioned display.
type Section struct {
	Course string
	Items  []Item
}

// Sections returns the non-empty courses in canonical order.
func (c *Catalog) Sections() []Section {
	grouped := c.GroupByCourse()
	var sections []Section
	for _, course := range enum.FoodCourses {
		if items := grouped[course]; len(items) > 0 {
			sections = append(sections, Section{Course: course, Items: items})
		}
	}
	return sections
}

// ParsePrice parses a form price string into a non-negative decimal.
func ParsePrice(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Decimal{}, ErrPriceRequired
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidPrice
	}
	if d.IsNegative() {
		return decimal.Decimal{}, ErrNegativePrice
	}
	return d, nil
}

func isFoodCourse(course string) bool {
	for _, c := range enum.FoodCourses {
		if c == course {
			return true
		}
	}
	return false
}
