package order

import (
	"math"
	"time"

	"cafe-kiosk/internal/domain/catalog"
	"cafe-kiosk/internal/pkg/errs"
	"cafe-kiosk/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is the running ledger of one kiosk session. Lines keep insertion order
// and are unique by display identity. Once checked out the order is closed and
// every mutation fails.
type Order struct {
	id       uuid.UUID
	lines    []LineItem
	index    map[string]int
	timeIn   time.Time
	timeOut  *time.Time
	status   Status
	policy   SurchargePolicy
	checkout *CheckoutSummary
}

func NewOrder(timeIn time.Time, policy SurchargePolicy) *Order {
	return &Order{
		id:     uuid.New(),
		index:  make(map[string]int),
		timeIn: timeIn,
		status: StatusOpen,
		policy: policy,
	}
}

// AddItem merges quantity into the line with the same display identity, or
// appends a new line at the end. A merge that would overflow the line
// quantity is rejected and leaves the order unchanged.
func (o *Order) AddItem(item catalog.ConfiguredItem, quantity int) error {
	if o.status == StatusClosed {
		return ErrOrderClosed
	}
	if quantity < 1 {
		return errs.Wrapf(ErrInvalidQuantity, "got %d", quantity)
	}

	key := item.DisplayIdentity()
	if i, ok := o.index[key]; ok {
		if quantity > math.MaxInt-o.lines[i].quantity {
			return errs.Wrapf(ErrInvalidQuantity, "%d more of %q would overflow quantity %d", quantity, key, o.lines[i].quantity)
		}
		o.lines[i].quantity += quantity
		return nil
	}

	o.index[key] = len(o.lines)
	o.lines = append(o.lines, LineItem{item: item, quantity: quantity})
	return nil
}

func (o *Order) Lines() []LineItem {
	out := make([]LineItem, len(o.lines))
	copy(out, o.lines)
	return out
}

// Line returns the line for a display identity, if present.
func (o *Order) Line(displayIdentity string) (LineItem, bool) {
	i, ok := o.index[displayIdentity]
	if !ok {
		return LineItem{}, false
	}
	return o.lines[i], true
}

func (o *Order) IsEmpty() bool {
	return len(o.lines) == 0
}

func (o *Order) Subtotal() decimal.Decimal {
	totals := make([]decimal.Decimal, len(o.lines))
	for i, l := range o.lines {
		totals[i] = l.TotalPrice()
	}
	return money.Sum(totals...)
}

func (o *Order) Elapsed(now time.Time) time.Duration {
	elapsed := now.Sub(o.timeIn)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

func (o *Order) Surcharge(now time.Time) decimal.Decimal {
	return o.policy.For(o.Elapsed(now))
}

// Checkout closes the order. It can succeed only once.
func (o *Order) Checkout(now time.Time) (*CheckoutSummary, error) {
	if o.status == StatusClosed {
		return nil, ErrAlreadyCheckedOut
	}

	timeOut := now
	elapsed := o.Elapsed(timeOut)

	summary := &CheckoutSummary{
		orderID:   o.id,
		timeIn:    o.timeIn,
		timeOut:   timeOut,
		elapsed:   elapsed,
		lines:     o.Lines(),
		subtotal:  o.Subtotal(),
		surcharge: o.policy.For(elapsed),
	}

	o.timeOut = &timeOut
	o.status = StatusClosed
	o.checkout = summary
	return summary, nil
}

func (o *Order) IsOpen() bool {
	return o.status == StatusOpen
}

func (o *Order) IsClosed() bool {
	return o.status == StatusClosed
}

func (o *Order) ID() uuid.UUID                     { return o.id }
func (o *Order) TimeIn() time.Time                 { return o.timeIn }
func (o *Order) TimeOut() *time.Time               { return o.timeOut }
func (o *Order) Status() Status                    { return o.status }
func (o *Order) Policy() SurchargePolicy           { return o.policy }
func (o *Order) CheckoutSummary() *CheckoutSummary { return o.checkout }
