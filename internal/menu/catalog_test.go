package menu

import (
	"errors"
	"testing"

	"github.com/christoffels/menu/internal/enum"
)

func validRequest() AddItemRequest {
	return AddItemRequest{
		Name:        "Roasted Tomato Soup",
		Description: "Rich roasted tomato soup topped with basil oil and croutons.",
		Course:      enum.CourseStarter,
		Price:       "70",
	}
}

func TestAddValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AddItemRequest)
		wantErr error
	}{
		{
			name:    "missing name",
			mutate:  func(r *AddItemRequest) { r.Name = "" },
			wantErr: ErrNameRequired,
		},
		{
			name:    "missing course",
			mutate:  func(r *AddItemRequest) { r.Course = "" },
			wantErr: ErrCourseRequired,
		},
		{
			name:    "drinks is not a food course",
			mutate:  func(r *AddItemRequest) { r.Course = enum.CourseDrinks },
			wantErr: ErrInvalidCourse,
		},
		{
			name:    "unknown course",
			mutate:  func(r *AddItemRequest) { r.Course = "Brunch" },
			wantErr: ErrInvalidCourse,
		},
		{
			name:    "missing description",
			mutate:  func(r *AddItemRequest) { r.Description = "" },
			wantErr: ErrDescriptionRequired,
		},
		{
			name:    "missing price",
			mutate:  func(r *AddItemRequest) { r.Price = "" },
			wantErr: ErrPriceRequired,
		},
		{
			name:    "malformed price",
			mutate:  func(r *AddItemRequest) { r.Price = "seventy" },
			wantErr: ErrInvalidPrice,
		},
		{
			name:    "negative price",
			mutate:  func(r *AddItemRequest) { r.Price = "-1" },
			wantErr: ErrNegativePrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCatalog("")
			req := validRequest()
			tt.mutate(&req)
			_, err := c.Add(req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Add() error = %v, want %v", err, tt.wantErr)
			}
			if c.Len() != 0 {
				t.Errorf("catalog mutated on failed add: len = %d", c.Len())
			}
		})
	}
}

func TestAddAssignsUniqueIDs(t *testing.T) {
	c := NewCatalog("")
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		req := validRequest()
		req.Name = req.Name + " " + string(rune('A'+i))
		item, err := c.Add(req)
		if err != nil {
			t.Fatalf("Add() failed: %v", err)
		}
		if item.ID == "" {
			t.Fatal("Add() returned empty id")
		}
		if seen[item.ID] {
			t.Fatalf("duplicate id issued: %s", item.ID)
		}
		seen[item.ID] = true
	}
}

func TestAddPrepends(t *testing.T) {
	c := NewCatalog("")
	first := validRequest()
	second := validRequest()
	second.Name = "Seared Scallops with Herb Sauce"

	if _, err := c.Add(first); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if _, err := c.Add(second); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	items := c.Items()
	if items[0].Name != second.Name {
		t.Errorf("newest item not first: got %q", items[0].Name)
	}
}

func TestDuplicateDetection(t *testing.T) {
	t.Run("name and course", func(t *testing.T) {
		c := NewCatalog(enum.DuplicatePolicyNameAndCourse)
		soup := AddItemRequest{Name: "Soup", Description: "d", Course: enum.CourseStarter, Price: "50"}
		if _, err := c.Add(soup); err != nil {
			t.Fatalf("first Add() failed: %v", err)
		}
		if _, err := c.Add(soup); !errors.Is(err, ErrDuplicateItem) {
			t.Errorf("second Add() error = %v, want ErrDuplicateItem", err)
		}
		if c.Len() != 1 {
			t.Errorf("catalog size = %d, want 1", c.Len())
		}

		// Same name in a different course is allowed under this policy.
		dessertSoup := soup
		dessertSoup.Course = enum.CourseDessert
		if _, err := c.Add(dessertSoup); err != nil {
			t.Errorf("same name, different course: Add() error = %v", err)
		}
	})

	t.Run("name only", func(t *testing.T) {
		c := NewCatalog(enum.DuplicatePolicyNameOnly)
		soup := AddItemRequest{Name: "Soup", Description: "d", Course: enum.CourseStarter, Price: "50"}
		if _, err := c.Add(soup); err != nil {
			t.Fatalf("first Add() failed: %v", err)
		}
		dessertSoup := soup
		dessertSoup.Course = enum.CourseDessert
		if _, err := c.Add(dessertSoup); !errors.Is(err, ErrDuplicateItem) {
			t.Errorf("same name, different course: error = %v, want ErrDuplicateItem", err)
		}
	})
}

func TestRemoveByIDs(t *testing.T) {
	c := NewCatalog("")
	var ids []string
	for _, name := range []string{"A", "B", "C"} {
		req := validRequest()
		req.Name = name
		item, err := c.Add(req)
		if err != nil {
			t.Fatalf("Add() failed: %v", err)
		}
		ids = append(ids, item.ID)
	}

	removed := c.RemoveByIDs(map[string]struct{}{
		ids[0]:       {},
		ids[2]:       {},
		"not-an-id":  {},
		"another-no": {},
	})
	if removed != 2 {
		t.Errorf("RemoveByIDs() = %d, want 2", removed)
	}
	if c.Len() != 1 {
		t.Errorf("catalog size = %d, want 1", c.Len())
	}
	if _, ok := c.Get(ids[1]); !ok {
		t.Error("surviving item missing")
	}

	// Same call again is a no-op.
	if removed := c.RemoveByIDs(map[string]struct{}{ids[0]: {}}); removed != 0 {
		t.Errorf("repeat RemoveByIDs() = %d, want 0", removed)
	}
}

func TestGroupByCourse(t *testing.T) {
	c := NewCatalog("")
	for _, tc := range []struct{ name, course string }{
		{"Lobster Thermidor", enum.CourseSpecials},
		{"Roasted Tomato Soup", enum.CourseStarter},
		{"Seared Scallops", enum.CourseStarter},
	} {
		req := validRequest()
		req.Name = tc.name
		req.Course = tc.course
		if _, err := c.Add(req); err != nil {
			t.Fatalf("Add() failed: %v", err)
		}
	}

	grouped := c.GroupByCourse()
	if len(grouped) != 2 {
		t.Errorf("got %d courses, want 2", len(grouped))
	}
	if len(grouped[enum.CourseStarter]) != 2 {
		t.Errorf("starters = %d, want 2", len(grouped[enum.CourseStarter]))
	}
	if _, ok := grouped[enum.CourseDessert]; ok {
		t.Error("empty course should not appear as a key")
	}

	sections := c.Sections()
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	// Canonical ordering: Specials before Starter.
	if sections[0].Course != enum.CourseSpecials || sections[1].Course != enum.CourseStarter {
		t.Errorf("section order = %s, %s", sections[0].Course, sections[1].Course)
	}
}

func TestByCourse(t *testing.T) {
	c := NewCatalog("")
	req := validRequest()
	if _, err := c.Add(req); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if got := len(c.ByCourse(enum.CourseStarter)); got != 1 {
		t.Errorf("ByCourse(Starter) = %d items, want 1", got)
	}
	if got := len(c.ByCourse(enum.CourseDessert)); got != 0 {
		t.Errorf("ByCourse(Dessert) = %d items, want 0", got)
	}
}
