package receipt

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	domorder "cafe-kiosk/internal/domain/order"
	"cafe-kiosk/internal/pkg/config"
	"cafe-kiosk/internal/pkg/money"

	"github.com/shopspring/decimal"
)

const (
	Width       = 40
	ClockLayout = "03:04 PM"

	labelWidth = 32
	nameWidth  = 30
)

var (
	doubleRule = strings.Repeat("=", Width)
	singleRule = strings.Repeat("-", Width)
)

// Renderer formats checkout summaries as fixed-width text for the kiosk
// printer. Timestamps are shown in the kiosk's zone on a 12-hour clock.
type Renderer struct {
	shopName string
	symbol   string
	loc      *time.Location
}

func NewRenderer(cfg config.KioskConfig) (*Renderer, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return &Renderer{shopName: cfg.ShopName, symbol: cfg.CurrencySymbol, loc: loc}, nil
}

func (r *Renderer) Clock(t time.Time) string {
	return t.In(r.loc).Format(ClockLayout)
}

func (r *Renderer) Amount(d decimal.Decimal) string {
	return money.Format(r.symbol, d)
}

func (r *Renderer) ShopName() string {
	return r.shopName
}

// Line formats one order line as quantity, padded name and amount.
func (r *Renderer) Line(quantity int, name string, amount decimal.Decimal) string {
	return fmt.Sprintf("%-2d %-*s %s", quantity, nameWidth, name, r.Amount(amount))
}

func (r *Renderer) Render(s *domorder.CheckoutSummary) string {
	var b strings.Builder
	_ = r.Write(&b, s)
	return b.String()
}

func (r *Renderer) Write(w io.Writer, s *domorder.CheckoutSummary) error {
	hours, minutes := s.ElapsedHoursMinutes()

	lines := []string{
		doubleRule,
		center(letterSpaced(r.shopName)),
		center(letterSpaced("OFFICIAL")),
		center(letterSpaced("RECEIPT")),
		doubleRule,
		"Time In: " + r.Clock(s.TimeIn()),
		"Time Out: " + r.Clock(s.TimeOut()),
		fmt.Sprintf("Duration: %dh %dm", hours, minutes),
		singleRule,
		"Items Purchased:",
		singleRule,
	}
	for _, l := range s.Lines() {
		lines = append(lines, r.Line(l.Quantity(), l.DisplayIdentity(), l.TotalPrice()))
	}
	lines = append(lines, singleRule, r.total("Subtotal:", s.Subtotal()))
	if s.Surcharge().IsPositive() {
		lines = append(lines, r.total("Time-Based Charge:", s.Surcharge()))
	}
	lines = append(lines,
		singleRule,
		r.total("TOTAL AMOUNT:", s.Total()),
		doubleRule,
		center("THANK YOU FOR DINING WITH US!"),
		center("PLEASE COME AGAIN :)"),
		doubleRule,
	)

	for _, l := range lines {
		if _, err := io.WriteString(w, strings.TrimRight(l, " ")+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) total(label string, amount decimal.Decimal) string {
	return fmt.Sprintf("%-*s%s", labelWidth, label, r.Amount(amount))
}

// letterSpaced turns "CAFÉ JAVA" into "C A F É  J A V A".
func letterSpaced(s string) string {
	words := strings.Fields(strings.ToUpper(s))
	for i, w := range words {
		words[i] = strings.Join(strings.Split(w, ""), " ")
	}
	return strings.Join(words, "  ")
}

func center(s string) string {
	n := utf8.RuneCountInString(s)
	if n >= Width {
		return s
	}
	return strings.Repeat(" ", (Width-n)/2) + s
}
