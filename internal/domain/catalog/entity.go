package catalog

import (
	"strings"

	"cafe-kiosk/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Entry describes one purchasable kind. Entries are never mutated after the
// catalog is built, so a catalog can be shared between sessions.
type Entry struct {
	kind       Kind
	name       string
	category   Category
	basePrice  decimal.Decimal
	dimensions []Dimension
}

func NewEntry(kind Kind, name string, category Category, basePrice decimal.Decimal, dimensions ...Dimension) Entry {
	return Entry{
		kind:       kind,
		name:       name,
		category:   category,
		basePrice:  basePrice,
		dimensions: dimensions,
	}
}

func (e Entry) Kind() Kind                 { return e.kind }
func (e Entry) Name() string               { return e.name }
func (e Entry) Category() Category         { return e.category }
func (e Entry) BasePrice() decimal.Decimal { return e.basePrice }

func (e Entry) Dimensions() []Dimension {
	out := make([]Dimension, len(e.dimensions))
	copy(out, e.dimensions)
	return out
}

// Configure resolves one choice per dimension, in dimension order. Price deltas
// are added to the base price and option labels are joined with a space.
func (e Entry) Configure(choices ...int) (ConfiguredItem, error) {
	if len(choices) != len(e.dimensions) {
		return ConfiguredItem{}, errs.Wrapf(ErrInvalidSelection,
			"%s expects %d choice(s), got %d", e.name, len(e.dimensions), len(choices))
	}

	price := e.basePrice
	labels := make([]string, 0, len(e.dimensions))
	for i, dim := range e.dimensions {
		opt, ok := dim.Pick(choices[i])
		if !ok {
			return ConfiguredItem{}, errs.Wrapf(ErrInvalidSelection,
				"%s %s choice %d is outside 1..%d", e.name, dim.Name(), choices[i], dim.Len())
		}
		price = price.Add(opt.PriceDelta())
		labels = append(labels, opt.Label())
	}

	return NewConfiguredItem(e.name, price, strings.Join(labels, " ")), nil
}
