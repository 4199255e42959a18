package queries

import (
	"context"
	"time"

	domorder "cafe-kiosk/internal/domain/order"
	"cafe-kiosk/internal/pkg/errs"
	"cafe-kiosk/internal/usecase/shared"
)

var ErrNotCheckedOut = errs.ErrNotCheckedOut

//go:generate mockgen -source=order.go -destination=../../../tests/mock/queries/order.go -package=queries

type OrderQueries interface {
	CurrentOrder(ctx context.Context) (*OrderView, error)
	// Receipt returns the checkout summary of the active order once it is closed.
	Receipt(ctx context.Context) (*domorder.CheckoutSummary, error)
}

type orderQueriesImpl struct {
	session *shared.Session
}

func NewOrderQueries(session *shared.Session) OrderQueries {
	return &orderQueriesImpl{session: session}
}

func (q *orderQueriesImpl) CurrentOrder(ctx context.Context) (*OrderView, error) {
	var view *OrderView
	err := q.session.Within(ctx, func(_ context.Context, o *domorder.Order) error {
		view = toOrderView(o)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *orderQueriesImpl) Receipt(ctx context.Context) (*domorder.CheckoutSummary, error) {
	var summary *domorder.CheckoutSummary
	err := q.session.Within(ctx, func(_ context.Context, o *domorder.Order) error {
		summary = o.CheckoutSummary()
		if summary == nil {
			return ErrNotCheckedOut
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func toOrderView(o *domorder.Order) *OrderView {
	lines := o.Lines()
	views := make([]LineView, 0, len(lines))
	for _, l := range lines {
		views = append(views, ToLineView(l))
	}
	var timeOut *time.Time
	if t := o.TimeOut(); t != nil {
		v := *t
		timeOut = &v
	}
	return &OrderView{
		OrderID:  o.ID(),
		Status:   o.Status().String(),
		TimeIn:   o.TimeIn(),
		TimeOut:  timeOut,
		Lines:    views,
		Subtotal: o.Subtotal(),
	}
}

func ToLineView(l domorder.LineItem) LineView {
	return LineView{
		Quantity:    l.Quantity(),
		DisplayName: l.DisplayIdentity(),
		UnitPrice:   l.UnitPrice(),
		TotalPrice:  l.TotalPrice(),
	}
}
