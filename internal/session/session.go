// Package session owns all application state for one run of the app:
// who is logged in, both sides of the menu, and the order cart. One
// Session is built at startup and shared by every screen; screens
// mutate it only through its methods and re-render off its events.
package session

import (
	"errors"
	"log"

	"github.com/christoffels/menu/internal/auth"
	"github.com/christoffels/menu/internal/cart"
	"github.com/christoffels/menu/internal/config"
	"github.com/christoffels/menu/internal/drinks"
	"github.com/christoffels/menu/internal/enum"
	"github.com/christoffels/menu/internal/menu"
	"github.com/christoffels/menu/internal/notify"
	"github.com/christoffels/menu/internal/removal"
	"github.com/christoffels/menu/internal/seed"
	"github.com/christoffels/menu/internal/stats"
)

// Errors returned by session-level operations.
var (
	ErrItemNotFound  = errors.New("menu item not found")
	ErrDrinkNotFound = errors.New("drink not found")
)

// Session is the single source of truth: catalogs, cart, gate and hub
// behind one shared reference.
type Session struct {
	gate *auth.Gate
	hub  *notify.Hub

	Menu   *menu.Catalog
	Drinks *drinks.Catalog
	Order  *cart.Cart
}

// New builds a seeded session and starts its event hub.
func New(cfg *config.Config) (*Session, error) {
	s := &Session{
		gate:   auth.NewGate(cfg.AdminUsername, cfg.AdminPasswordHash),
		hub:    notify.NewHub(),
		Menu:   menu.NewCatalog(cfg.DuplicatePolicy),
		Drinks: drinks.NewCatalog(),
		Order:  cart.New(),
	}

	data, err := seed.Load()
	if err != nil {
		return nil, err
	}
	if err := data.Apply(s.Menu, s.Drinks); err != nil {
		return nil, err
	}

	go s.hub.Run()
	return s, nil
}

// Hub exposes the event hub so screens can subscribe.
func (s *Session) Hub() *notify.Hub {
	return s.hub
}

// Login resolves the role for the attempt.
func (s *Session) Login(username, password string) (string, error) {
	return s.gate.Login(username, password)
}

// Logout empties the cart; the menu survives for the next visitor.
func (s *Session) Logout() {
	s.Order.Clear()
	s.publish(notify.TopicOrder, "order.cleared", struct{}{})
}

// AddItem adds a dish to the food menu and announces it.
func (s *Session) AddItem(req menu.AddItemRequest) (menu.Item, error) {
	item, err := s.Menu.Add(req)
	if err != nil {
		return menu.Item{}, err
	}
	s.publish(notify.TopicMenu, "menu.item_added", map[string]string{
		"id":   item.ID,
		"name": item.Name,
	})
	return item, nil
}

// AddDrink adds a drink to the given category and announces it.
func (s *Session) AddDrink(category string, req drinks.AddEntryRequest) (drinks.Entry, error) {
	entry, err := s.Drinks.Add(category, req)
	if err != nil {
		return drinks.Entry{}, err
	}
	s.publish(notify.TopicDrinks, "drinks.entry_added", map[string]string{
		"id":       entry.ID,
		"name":     entry.Name,
		"category": entry.Category,
	})
	return entry, nil
}

// OrderFood puts the dish with the given id on the order.
func (s *Session) OrderFood(itemID string) (cart.Line, error) {
	item, ok := s.Menu.Get(itemID)
	if !ok {
		return cart.Line{}, ErrItemNotFound
	}
	line := s.Order.AddFood(item)
	s.publish(notify.TopicOrder, "order.line_added", map[string]string{
		"id":   line.ID,
		"name": line.Name,
	})
	return line, nil
}

// OrderDrink puts the drink with the given id on the order.
func (s *Session) OrderDrink(drinkID string) (cart.Line, error) {
	entry, ok := s.Drinks.Get(drinkID)
	if !ok {
		return cart.Line{}, ErrDrinkNotFound
	}
	line := s.Order.AddDrink(entry)
	s.publish(notify.TopicOrder, "order.line_added", map[string]string{
		"id":   line.ID,
		"name": line.Name,
	})
	return line, nil
}

// NewRemoval starts a fresh removal selection for a manage-screen
// visit.
func (s *Session) NewRemoval() *removal.Selection {
	return removal.NewSelection()
}

// CommitRemoval applies the selection against both catalogs.
func (s *Session) CommitRemoval(sel *removal.Selection) (int, error) {
	removed, err := sel.Commit(s.Menu, s.Drinks)
	if err != nil {
		return 0, err
	}
	s.publish(notify.TopicMenu, "menu.items_removed", map[string]int{
		"removed": removed,
	})
	return removed, nil
}

// Stats derives the stats bundle from the current catalogs.
func (s *Session) Stats() stats.MenuStats {
	return stats.Compute(
		s.Menu.Items(),
		s.Drinks.Entries(enum.DrinkCategoryCold),
		s.Drinks.Entries(enum.DrinkCategoryHot),
	)
}

func (s *Session) publish(topic, eventType string, payload any) {
	if err := s.hub.Publish(topic, eventType, payload); err != nil {
		log.Printf("ERROR: publish %s: %v", eventType, err)
	}
}
