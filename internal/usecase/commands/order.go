package commands

import (
	"context"
	"log/slog"
	"time"

	"cafe-kiosk/internal/domain/catalog"
	domorder "cafe-kiosk/internal/domain/order"
	"cafe-kiosk/internal/pkg/errs"
	"cafe-kiosk/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AddItemRequest struct {
	Kind     catalog.Kind
	Choices  []int
	Quantity int
}

// AddItemResult describes the affected line after the merge.
type AddItemResult struct {
	DisplayName string
	Quantity    int
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
	Subtotal    decimal.Decimal
	Merged      bool
}

type SessionStarted struct {
	OrderID uuid.UUID
	TimeIn  time.Time
}

//go:generate mockgen -source=order.go -destination=../../../tests/mock/commands/order.go -package=commands

type OrderCommands interface {
	AddItem(ctx context.Context, req AddItemRequest) (*AddItemResult, error)
	AddConfiguredItem(ctx context.Context, item catalog.ConfiguredItem, quantity int) (*AddItemResult, error)
	Checkout(ctx context.Context) (*domorder.CheckoutSummary, error)
	StartSession(ctx context.Context) (*SessionStarted, error)
}

type orderCommandsImpl struct {
	session *shared.Session
	logger  *slog.Logger
}

func NewOrderCommands(session *shared.Session, logger *slog.Logger) OrderCommands {
	return &orderCommandsImpl{session: session, logger: logger}
}

func (uc *orderCommandsImpl) AddItem(ctx context.Context, req AddItemRequest) (*AddItemResult, error) {
	item, err := uc.session.Catalog().Resolve(req.Kind, req.Choices...)
	if err != nil {
		uc.logger.WarnContext(ctx, "selection rejected",
			"kind", req.Kind.String(), "choices", req.Choices, "error", err)
		return nil, err
	}
	return uc.AddConfiguredItem(ctx, item, req.Quantity)
}

func (uc *orderCommandsImpl) AddConfiguredItem(ctx context.Context, item catalog.ConfiguredItem, quantity int) (*AddItemResult, error) {
	var result *AddItemResult
	err := uc.session.Within(ctx, func(ctx context.Context, o *domorder.Order) error {
		_, existed := o.Line(item.DisplayIdentity())
		if derr := o.AddItem(item, quantity); derr != nil {
			return derr
		}

		line, _ := o.Line(item.DisplayIdentity())
		result = &AddItemResult{
			DisplayName: line.DisplayIdentity(),
			Quantity:    line.Quantity(),
			UnitPrice:   line.UnitPrice(),
			LineTotal:   line.TotalPrice(),
			Subtotal:    o.Subtotal(),
			Merged:      existed,
		}
		uc.logger.InfoContext(ctx, "item added",
			"order_id", o.ID().String(),
			"item", line.DisplayIdentity(),
			"added", quantity,
			"line_quantity", line.Quantity(),
			"subtotal", result.Subtotal.StringFixed(2))
		return nil
	})
	if err != nil {
		uc.logger.WarnContext(ctx, "add item rejected",
			"item", item.DisplayIdentity(), "quantity", quantity, "error", err)
		return nil, err
	}
	return result, nil
}

func (uc *orderCommandsImpl) Checkout(ctx context.Context) (*domorder.CheckoutSummary, error) {
	var summary *domorder.CheckoutSummary
	err := uc.session.Within(ctx, func(ctx context.Context, o *domorder.Order) error {
		s, derr := o.Checkout(uc.session.Clock().Now())
		if derr != nil {
			return derr
		}
		summary = s
		return nil
	})
	if err != nil {
		uc.logger.WarnContext(ctx, "checkout rejected", "error", err)
		return nil, errs.Wrap(err, "checkout")
	}

	uc.logger.InfoContext(ctx, "order checked out",
		"order_id", summary.OrderID().String(),
		"elapsed", summary.Elapsed(),
		"subtotal", summary.Subtotal().StringFixed(2),
		"surcharge", summary.Surcharge().StringFixed(2),
		"total", summary.Total().StringFixed(2))
	return summary, nil
}

func (uc *orderCommandsImpl) StartSession(ctx context.Context) (*SessionStarted, error) {
	o, err := uc.session.Restart(ctx)
	if err != nil {
		return nil, err
	}
	uc.logger.InfoContext(ctx, "session started", "order_id", o.ID().String(), "time_in", o.TimeIn())
	return &SessionStarted{OrderID: o.ID(), TimeIn: o.TimeIn()}, nil
}
