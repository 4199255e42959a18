package shared

import (
	"context"
	"sync"

	"cafe-kiosk/internal/domain/catalog"
	"cafe-kiosk/internal/domain/order"
	"cafe-kiosk/internal/pkg/clock"
	"cafe-kiosk/internal/pkg/errs"
)

// Session is the kiosk's session context: it owns the single active Order
// together with the read-only catalog and the clock. Presenters reach the
// order only through Within, which serializes access.
type Session struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	clock   clock.Clock
	order   *order.Order
}

func NewSession(cat *catalog.Catalog, clk clock.Clock, policy order.SurchargePolicy) *Session {
	return &Session{
		catalog: cat,
		clock:   clk,
		order:   order.NewOrder(clk.Now(), policy),
	}
}

func (s *Session) Catalog() *catalog.Catalog { return s.catalog }
func (s *Session) Clock() clock.Clock        { return s.clock }

// Within runs fn with exclusive access to the active order.
func (s *Session) Within(ctx context.Context, fn func(ctx context.Context, o *order.Order) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, s.order)
}

// Restart replaces a closed order with a fresh one stamped at the current time.
func (s *Session) Restart(ctx context.Context) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.order.IsOpen() {
		return nil, ErrSessionStillOpen
	}
	s.order = order.NewOrder(s.clock.Now(), s.order.Policy())
	return s.order, nil
}

var ErrSessionStillOpen = errs.ErrSessionStillOpen
