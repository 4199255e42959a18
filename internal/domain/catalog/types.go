package catalog

import "cafe-kiosk/internal/pkg/errs"

var (
	ErrInvalidSelection = errs.New("invalid selection")
	ErrUnknownKind      = errs.New("unknown catalog kind")
)

type Kind string

const (
	KindMilktea   Kind = "milktea"
	KindCoffee    Kind = "coffee"
	KindFruitSoda Kind = "fruit_soda"
	KindCake      Kind = "cake"
	KindDonut     Kind = "donut"
	KindCupcake   Kind = "cupcake"
	KindPasta     Kind = "pasta"
	KindBurger    Kind = "burger"
	KindFries     Kind = "fries"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindMilktea, KindCoffee, KindFruitSoda,
		KindCake, KindDonut, KindCupcake,
		KindPasta, KindBurger, KindFries:
		return true
	default:
		return false
	}
}

type Category string

const (
	CategoryMainCourse Category = "main_course"
	CategoryDrinks     Category = "drinks"
	CategoryPastries   Category = "pastries"
)

func (c Category) String() string {
	return string(c)
}

// Title is the heading shown on the menu board.
func (c Category) Title() string {
	switch c {
	case CategoryMainCourse:
		return "Main Course"
	case CategoryDrinks:
		return "Drinks"
	case CategoryPastries:
		return "Pastries"
	default:
		return string(c)
	}
}
