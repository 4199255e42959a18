package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuCategoryView is one section of the menu board. Positions are 1-based and
// are the numbers a patron types at the kiosk.
type MenuCategoryView struct {
	Position int            `json:"position"`
	Category string         `json:"category"`
	Title    string         `json:"title"`
	Items    []MenuItemView `json:"items"`
}

type MenuItemView struct {
	Position   int             `json:"position"`
	Kind       string          `json:"kind"`
	Name       string          `json:"name"`
	BasePrice  decimal.Decimal `json:"base_price"`
	Dimensions []DimensionView `json:"dimensions"`
}

type DimensionView struct {
	Name    string       `json:"name"`
	Options []OptionView `json:"options"`
}

type OptionView struct {
	Position   int             `json:"position"`
	Label      string          `json:"label"`
	PriceDelta decimal.Decimal `json:"price_delta"`
}

type LineView struct {
	Quantity    int             `json:"quantity"`
	DisplayName string          `json:"display_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

type OrderView struct {
	OrderID  uuid.UUID       `json:"order_id"`
	Status   string          `json:"status"`
	TimeIn   time.Time       `json:"time_in"`
	TimeOut  *time.Time      `json:"time_out,omitempty"`
	Lines    []LineView      `json:"lines"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

func (v *OrderView) IsEmpty() bool {
	return len(v.Lines) == 0
}
