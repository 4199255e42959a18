//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"cafe-kiosk/internal/domain/catalog"
	domorder "cafe-kiosk/internal/domain/order"
	"cafe-kiosk/internal/pkg/clock"
	"cafe-kiosk/internal/pkg/errs"
	"cafe-kiosk/internal/usecase/commands"
	"cafe-kiosk/internal/usecase/shared"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type OrderCommandsTestSuite struct {
	suite.Suite
	ctx     context.Context
	clock   *clock.MockClock
	session *shared.Session
	cmds    commands.OrderCommands
	timeIn  time.Time
}

func (s *OrderCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.timeIn = time.Date(2025, 3, 14, 13, 0, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.timeIn)
	s.session = shared.NewSession(catalog.NewDefaultCatalog(), s.clock, domorder.DefaultSurchargePolicy())
	s.cmds = commands.NewOrderCommands(s.session, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestOrderCommandsSuite(t *testing.T) {
	suite.Run(t, new(OrderCommandsTestSuite))
}

func (s *OrderCommandsTestSuite) TestAddItem() {
	s.Run("first add creates a line", func() {
		res, err := s.cmds.AddItem(s.ctx, commands.AddItemRequest{Kind: catalog.KindMilktea, Choices: []int{2, 4}, Quantity: 2})
		s.Require().NoError(err)
		s.Equal("Milktea (Medium Matcha)", res.DisplayName)
		s.Equal(2, res.Quantity)
		s.False(res.Merged)
		s.True(res.UnitPrice.Equal(decimal.NewFromInt(70)))
		s.True(res.LineTotal.Equal(decimal.NewFromInt(140)))
	})

	s.Run("repeat add merges", func() {
		res, err := s.cmds.AddItem(s.ctx, commands.AddItemRequest{Kind: catalog.KindMilktea, Choices: []int{2, 4}, Quantity: 1})
		s.Require().NoError(err)
		s.True(res.Merged)
		s.Equal(3, res.Quantity)
		s.True(res.LineTotal.Equal(decimal.NewFromInt(210)))
		s.True(res.Subtotal.Equal(decimal.NewFromInt(210)))
	})

	s.Run("invalid selection", func() {
		_, err := s.cmds.AddItem(s.ctx, commands.AddItemRequest{Kind: catalog.KindCoffee, Choices: []int{5, 1}, Quantity: 1})
		s.Require().Error(err)
		s.True(errs.Is(err, catalog.ErrInvalidSelection))
	})

	s.Run("invalid quantity", func() {
		_, err := s.cmds.AddItem(s.ctx, commands.AddItemRequest{Kind: catalog.KindBurger, Choices: []int{1}, Quantity: 0})
		s.Require().Error(err)
		s.True(errs.Is(err, domorder.ErrInvalidQuantity))
	})

	s.Run("pre-configured item", func() {
		item := catalog.NewConfiguredItem("Burger", decimal.NewFromInt(75), "Plain")
		res, err := s.cmds.AddConfiguredItem(s.ctx, item, 1)
		s.Require().NoError(err)
		s.True(res.Subtotal.Equal(decimal.NewFromInt(285)))
	})
}

func (s *OrderCommandsTestSuite) TestCheckout() {
	_, err := s.cmds.AddItem(s.ctx, commands.AddItemRequest{Kind: catalog.KindBurger, Choices: []int{1}, Quantity: 1})
	s.Require().NoError(err)
	_, err = s.cmds.AddItem(s.ctx, commands.AddItemRequest{Kind: catalog.KindPasta, Choices: []int{2}, Quantity: 2})
	s.Require().NoError(err)

	s.clock.Add(45 * time.Minute)

	summary, err := s.cmds.Checkout(s.ctx)
	s.Require().NoError(err)
	s.Equal(s.timeIn, summary.TimeIn())
	s.Equal(s.timeIn.Add(45*time.Minute), summary.TimeOut())
	s.True(summary.Subtotal().Equal(decimal.NewFromInt(195)))
	s.True(summary.Surcharge().Equal(decimal.NewFromInt(50)))
	s.True(summary.Total().Equal(decimal.NewFromInt(245)))

	s.Run("second checkout fails", func() {
		s.clock.Add(time.Hour)
		_, err := s.cmds.Checkout(s.ctx)
		s.Require().Error(err)
		s.True(errs.Is(err, domorder.ErrAlreadyCheckedOut))
	})

	s.Run("add after checkout fails", func() {
		_, err := s.cmds.AddItem(s.ctx, commands.AddItemRequest{Kind: catalog.KindBurger, Choices: []int{1}, Quantity: 1})
		s.Require().Error(err)
		s.True(errs.Is(err, domorder.ErrOrderClosed))
	})
}

func (s *OrderCommandsTestSuite) TestStartSession() {
	s.Run("refused while the order is open", func() {
		_, err := s.cmds.StartSession(s.ctx)
		s.Require().Error(err)
		s.True(errs.Is(err, shared.ErrSessionStillOpen))
	})

	s.Run("fresh order after checkout", func() {
		_, err := s.cmds.AddItem(s.ctx, commands.AddItemRequest{Kind: catalog.KindCake, Choices: []int{1}, Quantity: 1})
		s.Require().NoError(err)
		_, err = s.cmds.Checkout(s.ctx)
		s.Require().NoError(err)

		s.clock.Add(2 * time.Hour)
		started, err := s.cmds.StartSession(s.ctx)
		s.Require().NoError(err)
		s.Equal(s.timeIn.Add(2*time.Hour), started.TimeIn)

		res, err := s.cmds.AddItem(s.ctx, commands.AddItemRequest{Kind: catalog.KindCake, Choices: []int{1}, Quantity: 1})
		s.Require().NoError(err)
		s.Equal(1, res.Quantity)
		s.True(res.Subtotal.Equal(decimal.NewFromInt(85)))
	})
}
