//go:build unit || e2e

package builder

import (
	"time"

	"cafe-kiosk/internal/domain/catalog"
	domorder "cafe-kiosk/internal/domain/order"
	reqdto "cafe-kiosk/internal/handler/dto/request"
	"cafe-kiosk/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type lineSpec struct {
	Kind     catalog.Kind
	Choices  []int
	Quantity int
}

type OrderBuilder struct {
	Catalog  *catalog.Catalog
	TimeIn   time.Time
	Block    time.Duration
	PerBlock decimal.Decimal
	Lines    []lineSpec
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		Catalog:  catalog.NewDefaultCatalog(),
		TimeIn:   time.Date(2025, 3, 14, 9, 15, 0, 0, time.UTC),
		Block:    domorder.DefaultSurchargeBlock,
		PerBlock: domorder.DefaultSurchargePerBlock,
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *OrderBuilder) BuildPolicy() domorder.SurchargePolicy {
	return domorder.NewSurchargePolicy(b.Block, b.PerBlock)
}

func (b *OrderBuilder) BuildDomain() (*domorder.Order, error) {
	o := domorder.NewOrder(b.TimeIn, b.BuildPolicy())
	for _, l := range b.Lines {
		item, err := b.Catalog.Resolve(l.Kind, l.Choices...)
		if err != nil {
			return nil, err
		}
		if err := o.AddItem(item, l.Quantity); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// BuildCheckout builds the order and checks it out after the given stay.
func (b *OrderBuilder) BuildCheckout(stay time.Duration) (*domorder.CheckoutSummary, error) {
	o, err := b.BuildDomain()
	if err != nil {
		return nil, err
	}
	return o.Checkout(b.TimeIn.Add(stay))
}

// BuildOrderView builds the order and maps it the way OrderQueries does.
func (b *OrderBuilder) BuildOrderView() (*queries.OrderView, error) {
	o, err := b.BuildDomain()
	if err != nil {
		return nil, err
	}
	lines := make([]queries.LineView, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		lines = append(lines, queries.ToLineView(l))
	}
	return &queries.OrderView{
		OrderID:  o.ID(),
		Status:   o.Status().String(),
		TimeIn:   o.TimeIn(),
		Lines:    lines,
		Subtotal: o.Subtotal(),
	}, nil
}

// BuildAddItemRequestDTO returns a valid request for two medium matcha milkteas.
func (b *OrderBuilder) BuildAddItemRequestDTO() reqdto.AddItemRequest {
	return reqdto.AddItemRequest{
		Kind:     catalog.KindMilktea.String(),
		Choices:  []int{2, 4},
		Quantity: 2,
	}
}

// Fluent builder methods
func (b *OrderBuilder) WithTimeIn(t time.Time) *OrderBuilder {
	b.TimeIn = t
	return b
}

func (b *OrderBuilder) WithSurcharge(block time.Duration, perBlock int64) *OrderBuilder {
	b.Block = block
	b.PerBlock = decimal.NewFromInt(perBlock)
	return b
}

func (b *OrderBuilder) WithLine(kind catalog.Kind, quantity int, choices ...int) *OrderBuilder {
	b.Lines = append(b.Lines, lineSpec{Kind: kind, Choices: choices, Quantity: quantity})
	return b
}

func (b *OrderBuilder) AsLunchOrder() *OrderBuilder {
	return b.
		WithLine(catalog.KindBurger, 1, 1).
		WithLine(catalog.KindPasta, 2, 2)
}
