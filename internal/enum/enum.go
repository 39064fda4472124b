package enum

// ── Courses ──

// CourseDrinks is reserved for order lines synthesized from the drinks
// menu; it is never a valid course for a food item.
const (
	CourseSpecials   = "Specials"
	CourseStarter    = "Starter"
	CourseMainCourse = "Main Course"
	CourseDessert    = "Dessert"
	CourseDrinks     = "Drinks"
)

// FoodCourses is the canonical ordering used when grouping the food
// menu for display.
var FoodCourses = []string{
	CourseSpecials,
	CourseStarter,
	CourseMainCourse,
	CourseDessert,
}

// ── Drink categories ──

const (
	DrinkCategoryCold = "Cold drinks"
	DrinkCategoryHot  = "Hot drinks"
)

var DrinkCategories = []string{DrinkCategoryCold, DrinkCategoryHot}

// ── Configurable behavior ──

// Duplicate detection policies for the food catalog. The source app's
// revisions disagreed on this, so the choice is explicit configuration.
const (
	DuplicatePolicyNameAndCourse = "NAME_AND_COURSE"
	DuplicatePolicyNameOnly      = "NAME_ONLY"
)

const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
)
