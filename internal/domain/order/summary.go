package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutSummary is the immutable result of closing an order.
type CheckoutSummary struct {
	orderID   uuid.UUID
	timeIn    time.Time
	timeOut   time.Time
	elapsed   time.Duration
	lines     []LineItem
	subtotal  decimal.Decimal
	surcharge decimal.Decimal
}

func (s *CheckoutSummary) OrderID() uuid.UUID         { return s.orderID }
func (s *CheckoutSummary) TimeIn() time.Time          { return s.timeIn }
func (s *CheckoutSummary) TimeOut() time.Time         { return s.timeOut }
func (s *CheckoutSummary) Elapsed() time.Duration     { return s.elapsed }
func (s *CheckoutSummary) Subtotal() decimal.Decimal  { return s.subtotal }
func (s *CheckoutSummary) Surcharge() decimal.Decimal { return s.surcharge }

func (s *CheckoutSummary) Total() decimal.Decimal {
	return s.subtotal.Add(s.surcharge)
}

func (s *CheckoutSummary) Lines() []LineItem {
	out := make([]LineItem, len(s.lines))
	copy(out, s.lines)
	return out
}

// ElapsedHoursMinutes splits the stay into whole hours and remaining minutes.
func (s *CheckoutSummary) ElapsedHoursMinutes() (hours, minutes int64) {
	totalMinutes := int64(s.elapsed / time.Minute)
	return totalMinutes / 60, totalMinutes % 60
}
