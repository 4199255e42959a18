package catalog

import (
	"cafe-kiosk/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Size tiers shared by every drink.
var sizeDimension = NewDimension("size",
	NewOption("Small", decimal.Zero),
	NewOption("Medium", decimal.NewFromInt(15)),
	NewOption("Large", decimal.NewFromInt(25)),
)

// Catalog is the read-only menu. It holds entries in menu-board order.
type Catalog struct {
	categories []Category
	entries    []Entry
	byKind     map[Kind]Entry
}

func NewCatalog(categories []Category, entries ...Entry) *Catalog {
	byKind := make(map[Kind]Entry, len(entries))
	for _, e := range entries {
		byKind[e.Kind()] = e
	}
	return &Catalog{
		categories: categories,
		entries:    entries,
		byKind:     byKind,
	}
}

// NewDefaultCatalog builds the café menu.
func NewDefaultCatalog() *Catalog {
	return NewCatalog(
		[]Category{CategoryMainCourse, CategoryDrinks, CategoryPastries},

		NewEntry(KindPasta, "Pasta", CategoryMainCourse, decimal.NewFromInt(60),
			labelsOnly("type", "Spaghetti", "Carbonara")),
		NewEntry(KindBurger, "Burger", CategoryMainCourse, decimal.NewFromInt(75),
			labelsOnly("type", "Plain")),
		NewEntry(KindFries, "Fries", CategoryMainCourse, decimal.NewFromInt(50),
			labelsOnly("type", "Cheese", "Sour Cream")),

		NewEntry(KindMilktea, "Milktea", CategoryDrinks, decimal.NewFromInt(55),
			sizeDimension, labelsOnly("flavor", "Salted Caramel", "Okinawa", "WinterMelon", "Matcha")),
		NewEntry(KindCoffee, "Coffee", CategoryDrinks, decimal.NewFromInt(60),
			sizeDimension, labelsOnly("flavor", "Ice Caramel", "Espresso", "Americano", "Latte")),
		NewEntry(KindFruitSoda, "Fruit Soda", CategoryDrinks, decimal.NewFromInt(45),
			sizeDimension, labelsOnly("flavor", "Lemon", "Strawberry", "Lychee", "Green Apple")),

		NewEntry(KindCake, "Cake", CategoryPastries, decimal.NewFromInt(85),
			labelsOnly("flavor", "Chocolate", "Red Velvet", "Carrot")),
		NewEntry(KindDonut, "Donut", CategoryPastries, decimal.NewFromInt(45),
			labelsOnly("flavor", "Caramel", "Chocolate Sprinkles", "Red Velvet")),
		NewEntry(KindCupcake, "Cupcake", CategoryPastries, decimal.NewFromInt(50),
			labelsOnly("flavor", "Chocolate", "Red Velvet", "Carrot")),
	)
}

func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Catalog) EntriesIn(category Category) []Entry {
	var out []Entry
	for _, e := range c.entries {
		if e.Category() == category {
			out = append(out, e)
		}
	}
	return out
}

func (c *Catalog) Lookup(kind Kind) (Entry, error) {
	e, ok := c.byKind[kind]
	if !ok {
		return Entry{}, errs.Wrapf(ErrUnknownKind, "kind %q", kind)
	}
	return e, nil
}

// CategoryAt maps a 1-based menu position to a category.
func (c *Catalog) CategoryAt(position int) (Category, error) {
	if position < 1 || position > len(c.categories) {
		return "", errs.Wrapf(ErrInvalidSelection, "category choice %d is outside 1..%d", position, len(c.categories))
	}
	return c.categories[position-1], nil
}

// KindAt maps 1-based category and item positions, as shown on the menu, to a kind.
func (c *Catalog) KindAt(categoryPosition, itemPosition int) (Kind, error) {
	category, err := c.CategoryAt(categoryPosition)
	if err != nil {
		return "", err
	}
	items := c.EntriesIn(category)
	if itemPosition < 1 || itemPosition > len(items) {
		return "", errs.Wrapf(ErrInvalidSelection, "%s item choice %d is outside 1..%d",
			category.Title(), itemPosition, len(items))
	}
	return items[itemPosition-1].Kind(), nil
}

// Resolve turns a kind and its 1-based choice indices into a ConfiguredItem.
// Out-of-range choices fail with ErrInvalidSelection; nothing is defaulted.
func (c *Catalog) Resolve(kind Kind, choices ...int) (ConfiguredItem, error) {
	e, err := c.Lookup(kind)
	if err != nil {
		return ConfiguredItem{}, err
	}
	return e.Configure(choices...)
}
