package cart

import (
	"errors"
	"sync"

	"github.com/christoffels/menu/internal/drinks"
	"github.com/christoffels/menu/internal/enum"
	"github.com/christoffels/menu/internal/menu"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNotInOrder is returned by RemoveFirst when no line matches the id.
var ErrNotInOrder = errors.New("item not in order")

// drinkDescription is the fixed description given to every drink line.
const drinkDescription = "A refreshing beverage"

// Line is one entry on the order. Name and price are snapshots taken
// when the line was added; later menu edits do not reach back into the
// cart.
type Line struct {
	ID          string
	Name        string
	Description string
	Course      string
	Price       decimal.Decimal
}

// Cart is the ordered list of lines a customer has added. The same
// dish may appear on several lines.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// AddFood appends a dish as-is; the line keeps the dish's id, so
// adding the same dish twice yields two lines with the same id.
func (c *Cart) AddFood(item menu.Item) Line {
	line := Line{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Course:      item.Course,
		Price:       item.Price,
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, line)
	return line
}

// AddDrink synthesizes an order line for a drink: fresh id, the Drinks
// course tag, and the fixed description.
func (c *Cart) AddDrink(entry drinks.Entry) Line {
	line := Line{
		ID:          uuid.NewString(),
		Name:        entry.Name,
		Description: drinkDescription,
		Course:      enum.CourseDrinks,
		Price:       entry.Price,
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, line)
	return line
}

// RemoveFirst removes the first line whose id matches. A missing id
// reports ErrNotInOrder rather than silently doing nothing, so the
// screen can tell the user.
func (c *Cart) RemoveFirst(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, line := range c.lines {
		if line.ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}
	return ErrNotInOrder
}

// Clear empties the cart. Used on logout.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns a copy of the order in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// Total sums the line prices; zero for an empty cart. Rounding is the
// caller's concern, at display time.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Price)
	}
	return total
}
