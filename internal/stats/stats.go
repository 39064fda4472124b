// Package stats derives display numbers from menu snapshots. All
// functions are pure; nothing here holds state.
package stats

import (
	"github.com/christoffels/menu/internal/drinks"
	"github.com/christoffels/menu/internal/enum"
	"github.com/christoffels/menu/internal/menu"
	"github.com/shopspring/decimal"
)

// TotalItemCount counts every dish plus every drink in both
// categories.
func TotalItemCount(items []menu.Item, cold, hot []drinks.Entry) int {
	return len(items) + len(cold) + len(hot)
}

// AveragePrice is the arithmetic mean price of the dishes in the given
// course, or zero when the course has no dishes.
func AveragePrice(items []menu.Item, course string) decimal.Decimal {
	sum := decimal.Zero
	count := 0
	for _, it := range items {
		if it.Course == course {
			sum = sum.Add(it.Price)
			count++
		}
	}
	return mean(sum, count)
}

// AverageDrinkPrice is the arithmetic mean price of the given drink
// entries, or zero when there are none.
func AverageDrinkPrice(entries []drinks.Entry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.Price)
	}
	return mean(sum, len(entries))
}

func mean(sum decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(count)))
}

// CourseAverage pairs a course with its mean price.
type CourseAverage struct {
	Course  string
	Average decimal.Decimal
}

// MenuStats is the bundle the stats boxes render.
type MenuStats struct {
	TotalItems     int
	CourseAverages []CourseAverage // canonical course order, non-empty courses only
	ColdAverage    decimal.Decimal
	HotAverage     decimal.Decimal
}

// Compute derives the full stats bundle from one consistent snapshot
// of both catalogs.
func Compute(items []menu.Item, cold, hot []drinks.Entry) MenuStats {
	s := MenuStats{
		TotalItems:  TotalItemCount(items, cold, hot),
		ColdAverage: AverageDrinkPrice(cold),
		HotAverage:  AverageDrinkPrice(hot),
	}
	for _, course := range enum.FoodCourses {
		avg := AveragePrice(items, course)
		if avg.IsPositive() {
			s.CourseAverages = append(s.CourseAverages, CourseAverage{Course: course, Average: avg})
		}
	}
	return s
}
