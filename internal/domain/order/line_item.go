package order

import (
	"cafe-kiosk/internal/domain/catalog"

	"github.com/shopspring/decimal"
)

type LineItem struct {
	item     catalog.ConfiguredItem
	quantity int
}

func (l LineItem) Item() catalog.ConfiguredItem { return l.item }
func (l LineItem) Quantity() int                { return l.quantity }
func (l LineItem) DisplayIdentity() string      { return l.item.DisplayIdentity() }
func (l LineItem) UnitPrice() decimal.Decimal   { return l.item.ResolvedPrice() }

func (l LineItem) TotalPrice() decimal.Decimal {
	return l.item.ResolvedPrice().Mul(decimal.NewFromInt(int64(l.quantity)))
}
