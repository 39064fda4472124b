// Package seed carries the fixed initial menu. The data is a constant
// embedded at build time, not configuration: the app starts with the
// same menu on every run.
package seed

import (
	_ "embed"
	"fmt"

	"github.com/christoffels/menu/internal/drinks"
	"github.com/christoffels/menu/internal/enum"
	"github.com/christoffels/menu/internal/menu"
	"gopkg.in/yaml.v3"
)

//go:embed menu.yaml
var menuYAML []byte

// Item is one dish in the seed file.
type Item struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Course      string        `yaml:"course"`
	Price       string        `yaml:"price"`
	Image       menu.ImageRef `yaml:"image"`
}

// Drink is one drink in the seed file.
type Drink struct {
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
}

// Data is the parsed seed file.
type Data struct {
	Menu   []Item             `yaml:"menu"`
	Drinks map[string][]Drink `yaml:"drinks"`
}

// Load parses the embedded seed file.
func Load() (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(menuYAML, &data); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return &data, nil
}

// Apply fills both catalogs with the seed contents. The catalogs are
// expected to be empty; a duplicate or validation failure in the seed
// file is a programming error and is reported as such.
func (d *Data) Apply(foods *menu.Catalog, dr *drinks.Catalog) error {
	// Add prepends, so walk the dishes backwards to end up with the
	// file's order on screen.
	for i := len(d.Menu) - 1; i >= 0; i-- {
		it := d.Menu[i]
		if _, err := foods.Add(menu.AddItemRequest{
			Name:        it.Name,
			Description: it.Description,
			Course:      it.Course,
			Price:       it.Price,
			Image:       it.Image,
		}); err != nil {
			return fmt.Errorf("seed dish %q: %w", it.Name, err)
		}
	}
	for _, category := range enum.DrinkCategories {
		for _, sd := range d.Drinks[category] {
			if _, err := dr.Add(category, drinks.AddEntryRequest{
				Name:  sd.Name,
				Price: sd.Price,
			}); err != nil {
				return fmt.Errorf("seed drink %q: %w", sd.Name, err)
			}
		}
	}
	return nil
}
