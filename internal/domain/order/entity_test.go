//go:build unit

package order_test

import (
	"math"
	"testing"
	"time"

	"cafe-kiosk/internal/domain/catalog"
	"cafe-kiosk/internal/domain/order"
	"cafe-kiosk/internal/pkg/errs"
	"cafe-kiosk/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lineView struct {
	Quantity int
	Name     string
	Total    string
}

func viewLines(lines []order.LineItem) []lineView {
	out := make([]lineView, 0, len(lines))
	for _, l := range lines {
		out = append(out, lineView{
			Quantity: l.Quantity(),
			Name:     l.DisplayIdentity(),
			Total:    l.TotalPrice().StringFixed(2),
		})
	}
	return out
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestOrderAddItem(t *testing.T) {
	cat := catalog.NewDefaultCatalog()

	t.Run("same identity merges into one line", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().
			WithLine(catalog.KindMilktea, 2, 2, 4).
			WithLine(catalog.KindMilktea, 1, 2, 4).
			BuildDomain()
		require.NoError(t, err)

		want := []lineView{{Quantity: 3, Name: "Milktea (Medium Matcha)", Total: "210.00"}}
		if diff := cmp.Diff(want, viewLines(o.Lines())); diff != "" {
			t.Errorf("lines mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("merging keeps the original position", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().
			WithLine(catalog.KindCoffee, 1, 1, 2).
			WithLine(catalog.KindCake, 1, 1).
			WithLine(catalog.KindCoffee, 2, 1, 2).
			BuildDomain()
		require.NoError(t, err)

		lines := o.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, "Coffee (Small Espresso)", lines[0].DisplayIdentity())
		assert.Equal(t, 3, lines[0].Quantity())
		assert.Equal(t, "Cake (Chocolate)", lines[1].DisplayIdentity())
	})

	t.Run("different variations stay separate", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().
			WithLine(catalog.KindMilktea, 1, 1, 4).
			WithLine(catalog.KindMilktea, 1, 2, 4).
			BuildDomain()
		require.NoError(t, err)
		assert.Len(t, o.Lines(), 2)
	})

	t.Run("items built outside the catalog merge by identity", func(t *testing.T) {
		o := order.NewOrder(time.Now(), order.DefaultSurchargePolicy())
		resolved, err := cat.Resolve(catalog.KindBurger, 1)
		require.NoError(t, err)

		require.NoError(t, o.AddItem(resolved, 1))
		require.NoError(t, o.AddItem(catalog.NewConfiguredItem("Burger", dec(75), "Plain"), 4))

		line, ok := o.Line("Burger (Plain)")
		require.True(t, ok)
		assert.Equal(t, 5, line.Quantity())
		assert.Len(t, o.Lines(), 1)
	})

	t.Run("non-positive quantity is rejected and order unchanged", func(t *testing.T) {
		o := order.NewOrder(time.Now(), order.DefaultSurchargePolicy())
		item, err := cat.Resolve(catalog.KindFries, 1)
		require.NoError(t, err)
		require.NoError(t, o.AddItem(item, 1))

		for _, q := range []int{0, -1, -50} {
			err := o.AddItem(item, q)
			require.Error(t, err)
			assert.True(t, errs.Is(err, order.ErrInvalidQuantity), "quantity %d", q)
		}

		line, _ := o.Line(item.DisplayIdentity())
		assert.Equal(t, 1, line.Quantity())
		assert.True(t, o.Subtotal().Equal(dec(50)))
	})

	t.Run("merge that would overflow the quantity is rejected", func(t *testing.T) {
		o := order.NewOrder(time.Now(), order.DefaultSurchargePolicy())
		item, err := cat.Resolve(catalog.KindBurger, 1)
		require.NoError(t, err)
		require.NoError(t, o.AddItem(item, math.MaxInt))
		before := o.Subtotal()

		err = o.AddItem(item, 1)
		require.Error(t, err)
		assert.True(t, errs.Is(err, order.ErrInvalidQuantity))

		line, ok := o.Line(item.DisplayIdentity())
		require.True(t, ok)
		assert.Equal(t, math.MaxInt, line.Quantity())
		assert.True(t, line.TotalPrice().IsPositive())
		assert.True(t, o.Subtotal().Equal(before), "got %s", o.Subtotal())
	})

	t.Run("lines snapshot is detached from the order", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().AsLunchOrder().BuildDomain()
		require.NoError(t, err)

		snapshot := o.Lines()
		item, err := cat.Resolve(catalog.KindBurger, 1)
		require.NoError(t, err)
		require.NoError(t, o.AddItem(item, 10))

		assert.Equal(t, 1, snapshot[0].Quantity())
	})
}

func TestOrderSubtotal(t *testing.T) {
	t.Run("empty order is zero", func(t *testing.T) {
		o := order.NewOrder(time.Now(), order.DefaultSurchargePolicy())
		assert.True(t, o.IsEmpty())
		assert.True(t, o.Subtotal().IsZero())
	})

	t.Run("burger and two carbonara", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().AsLunchOrder().BuildDomain()
		require.NoError(t, err)
		assert.True(t, o.Subtotal().Equal(dec(195)), "got %s", o.Subtotal())
	})

	t.Run("adding q units raises subtotal by price times q", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().AsLunchOrder().BuildDomain()
		require.NoError(t, err)
		before := o.Subtotal()

		item := catalog.NewConfiguredItem("Coffee", decimal.RequireFromString("60.15"), "Small Latte")
		require.NoError(t, o.AddItem(item, 7))

		delta := o.Subtotal().Sub(before)
		assert.True(t, delta.Equal(decimal.RequireFromString("421.05")), "got %s", delta)
	})

	t.Run("fractional prices add exactly", func(t *testing.T) {
		o := order.NewOrder(time.Now(), order.DefaultSurchargePolicy())
		for i := 0; i < 10; i++ {
			item := catalog.NewConfiguredItem("Sample", decimal.RequireFromString("0.10"), "")
			require.NoError(t, o.AddItem(item, 1))
		}
		assert.Equal(t, "1.00", o.Subtotal().StringFixed(2))
		assert.True(t, o.Subtotal().Equal(decimal.NewFromInt(1)))
	})
}

func TestOrderCheckout(t *testing.T) {
	timeIn := time.Date(2025, 3, 14, 9, 15, 0, 0, time.UTC)

	t.Run("45 minutes adds one block", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().WithTimeIn(timeIn).AsLunchOrder().BuildDomain()
		require.NoError(t, err)

		summary, err := o.Checkout(timeIn.Add(45 * time.Minute))
		require.NoError(t, err)

		assert.Equal(t, timeIn, summary.TimeIn())
		assert.Equal(t, timeIn.Add(45*time.Minute), summary.TimeOut())
		assert.Equal(t, 45*time.Minute, summary.Elapsed())
		assert.True(t, summary.Subtotal().Equal(dec(195)))
		assert.True(t, summary.Surcharge().Equal(dec(50)))
		assert.True(t, summary.Total().Equal(dec(245)))
		assert.Equal(t, o.ID(), summary.OrderID())
		assert.Len(t, summary.Lines(), 2)
	})

	t.Run("closes the order", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().WithTimeIn(timeIn).AsLunchOrder().BuildDomain()
		require.NoError(t, err)

		_, err = o.Checkout(timeIn.Add(time.Minute))
		require.NoError(t, err)

		assert.True(t, o.IsClosed())
		assert.Equal(t, order.StatusClosed, o.Status())
		require.NotNil(t, o.TimeOut())
		assert.Equal(t, timeIn.Add(time.Minute), *o.TimeOut())
		assert.NotNil(t, o.CheckoutSummary())
	})

	t.Run("second checkout fails and totals stay put", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().WithTimeIn(timeIn).AsLunchOrder().BuildDomain()
		require.NoError(t, err)

		first, err := o.Checkout(timeIn.Add(10 * time.Minute))
		require.NoError(t, err)
		subtotal := o.Subtotal()

		second, err := o.Checkout(timeIn.Add(3 * time.Hour))
		require.Error(t, err)
		assert.True(t, errs.Is(err, order.ErrAlreadyCheckedOut))
		assert.Nil(t, second)

		assert.True(t, o.Subtotal().Equal(subtotal))
		assert.Equal(t, timeIn.Add(10*time.Minute), *o.TimeOut())
		assert.Same(t, first, o.CheckoutSummary())
	})

	t.Run("add after checkout fails", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().WithTimeIn(timeIn).AsLunchOrder().BuildDomain()
		require.NoError(t, err)
		_, err = o.Checkout(timeIn)
		require.NoError(t, err)

		err = o.AddItem(catalog.NewConfiguredItem("Burger", dec(75), "Plain"), 1)
		require.Error(t, err)
		assert.True(t, errs.Is(err, order.ErrOrderClosed))
		assert.True(t, o.Subtotal().Equal(dec(195)))
	})

	t.Run("summary lines are a snapshot", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().WithTimeIn(timeIn).AsLunchOrder().BuildDomain()
		require.NoError(t, err)
		summary, err := o.Checkout(timeIn)
		require.NoError(t, err)

		lines := summary.Lines()
		lines[0] = order.LineItem{}
		assert.Equal(t, "Burger (Plain)", summary.Lines()[0].DisplayIdentity())
	})

	t.Run("empty order can be checked out", func(t *testing.T) {
		o := order.NewOrder(timeIn, order.DefaultSurchargePolicy())
		summary, err := o.Checkout(timeIn.Add(61 * time.Minute))
		require.NoError(t, err)
		assert.True(t, summary.Subtotal().IsZero())
		assert.True(t, summary.Total().Equal(dec(100)))

		h, m := summary.ElapsedHoursMinutes()
		assert.Equal(t, int64(1), h)
		assert.Equal(t, int64(1), m)
	})

	t.Run("clock before time in charges nothing", func(t *testing.T) {
		o := order.NewOrder(timeIn, order.DefaultSurchargePolicy())
		summary, err := o.Checkout(timeIn.Add(-5 * time.Minute))
		require.NoError(t, err)
		assert.Zero(t, summary.Elapsed())
		assert.True(t, summary.Surcharge().IsZero())
	})
}
