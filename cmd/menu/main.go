// Command menu is a small terminal front-end for the menu core. It
// stands in for the mobile screens: login, browse, filter, manage and
// checkout all drive the same shared session.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/christoffels/menu/internal/config"
	"github.com/christoffels/menu/internal/drinks"
	"github.com/christoffels/menu/internal/enum"
	"github.com/christoffels/menu/internal/menu"
	"github.com/christoffels/menu/internal/notify"
	"github.com/christoffels/menu/internal/session"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment defaults")
	}
	cfg := config.Load()

	sess, err := session.New(cfg)
	if err != nil {
		log.Fatalf("build session: %v", err)
	}

	app := &app{
		cfg:    cfg,
		sess:   sess,
		events: sess.Hub().Subscribe(notify.TopicMenu, notify.TopicDrinks, notify.TopicOrder),
		in:     bufio.NewScanner(os.Stdin),
	}
	app.run()
}

// row maps a display number from the latest listing back to the entity
// behind it.
type row struct {
	id      string
	isDrink bool
	label   string
}

type app struct {
	cfg    *config.Config
	sess   *session.Session
	events *notify.Subscriber
	in     *bufio.Scanner

	role string
	rows []row
}

func (a *app) run() {
	fmt.Println("Welcome to Christoffel's Menu")
	for {
		if a.role == "" && !a.login() {
			return
		}
		fmt.Print("> ")
		if !a.in.Scan() {
			return
		}
		line := strings.TrimSpace(a.in.Text())
		if line == "" {
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")
		switch cmd {
		case "help":
			a.help()
		case "menu":
			a.showMenu()
		case "filter":
			a.filter(arg)
		case "order":
			a.order(arg)
		case "cart":
			a.showCart()
		case "checkout":
			a.checkout()
		case "add":
			a.addItem()
		case "remove":
			a.removeItems()
		case "logout":
			a.sess.Logout()
			a.role = ""
		case "quit", "exit":
			return
		default:
			fmt.Println("unknown command, try 'help'")
		}
		a.drainEvents()
	}
}

func (a *app) login() bool {
	for {
		username, ok := a.prompt("Username: ")
		if !ok {
			return false
		}
		password, _ := a.prompt("Password: ")
		role, err := a.sess.Login(username, password)
		if err != nil {
			fmt.Println("login failed:", err)
			continue
		}
		a.role = role
		if role == enum.RoleAdmin {
			fmt.Println("Welcome Chef")
		} else {
			fmt.Println("We hope you have an amazing experience with us")
		}
		a.help()
		return true
	}
}

func (a *app) help() {
	fmt.Println("commands: menu, filter <course|all>, order <n>, cart, checkout, logout, quit")
	if a.role == enum.RoleAdmin {
		fmt.Println("admin:    add, remove")
	}
}

// prompt reads one line; ok is false once stdin is exhausted.
func (a *app) prompt(label string) (string, bool) {
	fmt.Print(label)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

// ask is prompt for callers that treat EOF like an empty answer.
func (a *app) ask(label string) string {
	s, _ := a.prompt(label)
	return s
}

// showMenu renders the stats header, the food sections and the drinks
// block, numbering every orderable row.
func (a *app) showMenu() {
	a.rows = a.rows[:0]
	st := a.sess.Stats()
	fmt.Printf("Total menu items: %d\n", st.TotalItems)
	for _, ca := range st.CourseAverages {
		fmt.Printf("  %s: %s%s\n", ca.Course, a.cfg.CurrencySymbol, ca.Average.StringFixed(2))
	}
	fmt.Printf("  Hot Drinks: %s%s\n", a.cfg.CurrencySymbol, st.HotAverage.StringFixed(2))
	fmt.Printf("  Cold Drinks: %s%s\n", a.cfg.CurrencySymbol, st.ColdAverage.StringFixed(2))

	for _, section := range a.sess.Menu.Sections() {
		fmt.Printf("\n== %s ==\n", section.Course)
		for _, it := range section.Items {
			a.printFoodRow(it)
		}
	}
	a.printDrinks()
}

func (a *app) printFoodRow(it menu.Item) {
	a.rows = append(a.rows, row{id: it.ID, label: it.Name})
	fmt.Printf("%3d. %s - %s%s\n     %s\n",
		len(a.rows), it.Name, a.cfg.CurrencySymbol, it.Price.StringFixed(2), it.Description)
}

func (a *app) printDrinks() {
	fmt.Printf("\n== %s ==\n", enum.CourseDrinks)
	for _, category := range enum.DrinkCategories {
		fmt.Printf("%s:\n", category)
		for _, e := range a.sess.Drinks.Entries(category) {
			a.rows = append(a.rows, row{id: e.ID, isDrink: true, label: e.Name})
			fmt.Printf("%3d. %s - %s%s\n", len(a.rows), e.Name, a.cfg.CurrencySymbol, e.Price.StringFixed(2))
		}
	}
}

func (a *app) filter(arg string) {
	a.rows = a.rows[:0]
	switch strings.ToLower(arg) {
	case "", "all":
		for _, it := range a.sess.Menu.Items() {
			a.printFoodRow(it)
		}
		a.printDrinks()
	case "drinks":
		a.printDrinks()
	default:
		course, ok := matchCourse(arg)
		if !ok {
			fmt.Println("unknown course:", arg)
			return
		}
		for _, it := range a.sess.Menu.ByCourse(course) {
			a.printFoodRow(it)
		}
	}
}

func matchCourse(arg string) (string, bool) {
	for _, course := range enum.FoodCourses {
		if strings.EqualFold(course, arg) ||
			strings.EqualFold(strings.ReplaceAll(course, " ", ""), arg) {
			return course, true
		}
	}
	return "", false
}

func (a *app) rowByNumber(arg string) (row, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(a.rows) {
		fmt.Println("pick a number from the last listing, e.g. 'order 3'")
		return row{}, false
	}
	return a.rows[n-1], true
}

func (a *app) order(arg string) {
	r, ok := a.rowByNumber(arg)
	if !ok {
		return
	}
	var err error
	if r.isDrink {
		_, err = a.sess.OrderDrink(r.id)
	} else {
		_, err = a.sess.OrderFood(r.id)
	}
	if err != nil {
		fmt.Println("could not add to order:", err)
		return
	}
	fmt.Printf("%s has been added to your order.\n", r.label)
}

func (a *app) showCart() {
	lines := a.sess.Order.Lines()
	if len(lines) == 0 {
		fmt.Println("Your order is empty.")
		return
	}
	for i, line := range lines {
		fmt.Printf("%3d. %s - %s%s\n", i+1, line.Name, a.cfg.CurrencySymbol, line.Price.StringFixed(2))
	}
	fmt.Printf("Total amount: %s%s\n", a.cfg.CurrencySymbol, a.sess.Order.Total().StringFixed(2))
}

func (a *app) checkout() {
	a.showCart()
}

func (a *app) requireAdmin() bool {
	if a.role != enum.RoleAdmin {
		fmt.Println("admin only")
		return false
	}
	return true
}

// addItem walks the add-item form: name, course/category, description
// for food, price.
func (a *app) addItem() {
	if !a.requireAdmin() {
		return
	}
	name := a.ask("Dish/Drink name: ")
	kind := a.ask("Course (Specials, Starter, Main Course, Dessert, Hot Drink, Cold Drink): ")

	var err error
	switch strings.ToLower(kind) {
	case "hot drink":
		_, err = a.sess.AddDrink(enum.DrinkCategoryHot, drinks.AddEntryRequest{Name: name, Price: a.ask("Price: ")})
	case "cold drink":
		_, err = a.sess.AddDrink(enum.DrinkCategoryCold, drinks.AddEntryRequest{Name: name, Price: a.ask("Price: ")})
	default:
		course, ok := matchCourse(kind)
		if !ok {
			fmt.Println("unknown course:", kind)
			return
		}
		_, err = a.sess.AddItem(menu.AddItemRequest{
			Name:        name,
			Course:      course,
			Description: a.ask("Description: "),
			Price:       a.ask("Price: "),
			Image:       menu.ImageRef{URI: a.ask("Image path (optional): ")},
		})
	}
	if err != nil {
		fmt.Println("could not add item:", err)
		return
	}
	fmt.Printf("%s has been added to the menu.\n", name)
}

// removeItems runs the removal workflow: list everything, toggle rows,
// save once.
func (a *app) removeItems() {
	if !a.requireAdmin() {
		return
	}
	sel := a.sess.NewRemoval()
	a.filter("all")
	fmt.Println("Mark rows with their number, then 'save' to apply or 'cancel' to abort.")
	for {
		input := a.ask("remove> ")
		switch input {
		case "save":
			removed, err := a.sess.CommitRemoval(sel)
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Printf("Removed %d item(s) from the menu.\n", removed)
			return
		case "cancel", "":
			return
		default:
			r, ok := a.rowByNumber(input)
			if !ok {
				continue
			}
			sel.Toggle(r.id)
			if sel.Has(r.id) {
				fmt.Printf("%s marked for removal\n", r.label)
			} else {
				fmt.Printf("%s unmarked\n", r.label)
			}
		}
	}
}

// drainEvents prints any notifications that arrived while the last
// command ran.
func (a *app) drainEvents() {
	for {
		select {
		case ev := <-a.events.C:
			fmt.Printf("  · %s %s\n", ev.Type, ev.Payload)
		default:
			return
		}
	}
}
