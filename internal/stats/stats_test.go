package stats

import (
	"testing"

	"github.com/christoffels/menu/internal/drinks"
	"github.com/christoffels/menu/internal/enum"
	"github.com/christoffels/menu/internal/menu"
	"github.com/shopspring/decimal"
)

func dish(course string, price int64) menu.Item {
	return menu.Item{Course: course, Price: decimal.NewFromInt(price)}
}

func drink(price int64) drinks.Entry {
	return drinks.Entry{Price: decimal.NewFromInt(price)}
}

func TestAveragePrice(t *testing.T) {
	items := []menu.Item{
		dish(enum.CourseStarter, 100),
		dish(enum.CourseStarter, 200),
		dish(enum.CourseDessert, 95),
	}

	got := AveragePrice(items, enum.CourseStarter)
	if !got.Equal(decimal.NewFromInt(150)) {
		t.Errorf("AveragePrice(Starter) = %s, want 150", got)
	}

	// No dishes in the course: zero, not a division by zero.
	if got := AveragePrice(items, enum.CourseMainCourse); !got.Equal(decimal.Zero) {
		t.Errorf("AveragePrice(empty course) = %s, want 0", got)
	}
}

func TestAveragePriceUnevenDivision(t *testing.T) {
	items := []menu.Item{
		dish(enum.CourseStarter, 10),
		dish(enum.CourseStarter, 10),
		dish(enum.CourseStarter, 11),
	}
	got := AveragePrice(items, enum.CourseStarter)
	want, _ := decimal.NewFromString("10.3333333333333333")
	if !got.Equal(want) {
		t.Errorf("AveragePrice() = %s, want %s", got, want)
	}
}

func TestAverageDrinkPrice(t *testing.T) {
	if got := AverageDrinkPrice(nil); !got.Equal(decimal.Zero) {
		t.Errorf("AverageDrinkPrice(nil) = %s, want 0", got)
	}
	got := AverageDrinkPrice([]drinks.Entry{drink(25), drink(35)})
	if !got.Equal(decimal.NewFromInt(30)) {
		t.Errorf("AverageDrinkPrice() = %s, want 30", got)
	}
}

func TestTotalItemCount(t *testing.T) {
	items := []menu.Item{dish(enum.CourseStarter, 70)}
	cold := []drinks.Entry{drink(30), drink(15)}
	hot := []drinks.Entry{drink(25)}
	if got := TotalItemCount(items, cold, hot); got != 4 {
		t.Errorf("TotalItemCount() = %d, want 4", got)
	}
	if got := TotalItemCount(nil, nil, nil); got != 0 {
		t.Errorf("TotalItemCount(empty) = %d, want 0", got)
	}
}

func TestCompute(t *testing.T) {
	items := []menu.Item{
		dish(enum.CourseDessert, 95),
		dish(enum.CourseSpecials, 300),
	}
	cold := []drinks.Entry{drink(30)}
	hot := []drinks.Entry{drink(25), drink(40)}

	st := Compute(items, cold, hot)
	if st.TotalItems != 5 {
		t.Errorf("TotalItems = %d, want 5", st.TotalItems)
	}
	// Only non-empty courses appear, in canonical order.
	if len(st.CourseAverages) != 2 {
		t.Fatalf("got %d course averages, want 2", len(st.CourseAverages))
	}
	if st.CourseAverages[0].Course != enum.CourseSpecials {
		t.Errorf("first course = %s, want Specials", st.CourseAverages[0].Course)
	}
	if st.CourseAverages[1].Course != enum.CourseDessert {
		t.Errorf("second course = %s, want Dessert", st.CourseAverages[1].Course)
	}
	if !st.ColdAverage.Equal(decimal.NewFromInt(30)) {
		t.Errorf("ColdAverage = %s, want 30", st.ColdAverage)
	}
	if !st.HotAverage.Equal(decimal.NewFromFloat(32.5)) {
		t.Errorf("HotAverage = %s, want 32.5", st.HotAverage)
	}
}
