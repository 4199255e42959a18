package response

import (
	"fmt"
	"time"

	domorder "cafe-kiosk/internal/domain/order"
	"cafe-kiosk/internal/usecase/commands"
	"cafe-kiosk/internal/usecase/queries"
)

type LineResponse struct {
	Quantity    int    `json:"quantity"`
	DisplayName string `json:"display_name"`
	UnitPrice   string `json:"unit_price"`
	TotalPrice  string `json:"total_price"`
}

type OrderResponse struct {
	OrderID  string         `json:"order_id"`
	Status   string         `json:"status"`
	TimeIn   time.Time      `json:"time_in"`
	TimeOut  *time.Time     `json:"time_out,omitempty"`
	Lines    []LineResponse `json:"lines"`
	Subtotal string         `json:"subtotal"`
}

type AddItemResponse struct {
	DisplayName string `json:"display_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	LineTotal   string `json:"line_total"`
	Subtotal    string `json:"subtotal"`
	Merged      bool   `json:"merged"`
}

type CheckoutResponse struct {
	OrderID        string         `json:"order_id"`
	TimeIn         time.Time      `json:"time_in"`
	TimeOut        time.Time      `json:"time_out"`
	ElapsedMinutes int64          `json:"elapsed_minutes"`
	Duration       string         `json:"duration"`
	Lines          []LineResponse `json:"lines"`
	Subtotal       string         `json:"subtotal"`
	Surcharge      string         `json:"surcharge"`
	Total          string         `json:"total"`
}

type SessionResponse struct {
	OrderID string    `json:"order_id"`
	TimeIn  time.Time `json:"time_in"`
}

func FromOrderView(v *queries.OrderView) (*OrderResponse, error) {
	res := &OrderResponse{}
	if err := copyInto(res, v); err != nil {
		return nil, err
	}
	if res.Lines == nil {
		res.Lines = []LineResponse{}
	}
	return res, nil
}

func FromAddItemResult(r *commands.AddItemResult) (*AddItemResponse, error) {
	res := &AddItemResponse{}
	if err := copyInto(res, r); err != nil {
		return nil, err
	}
	return res, nil
}

func FromCheckoutSummary(s *domorder.CheckoutSummary) (*CheckoutResponse, error) {
	lines := s.Lines()
	views := make([]queries.LineView, 0, len(lines))
	for _, l := range lines {
		views = append(views, queries.ToLineView(l))
	}
	lineRes := make([]LineResponse, 0, len(views))
	if err := copyInto(&lineRes, &views); err != nil {
		return nil, err
	}

	hours, minutes := s.ElapsedHoursMinutes()
	return &CheckoutResponse{
		OrderID:        s.OrderID().String(),
		TimeIn:         s.TimeIn(),
		TimeOut:        s.TimeOut(),
		ElapsedMinutes: hours*60 + minutes,
		Duration:       fmt.Sprintf("%dh %dm", hours, minutes),
		Lines:          lineRes,
		Subtotal:       formatAmount(s.Subtotal()),
		Surcharge:      formatAmount(s.Surcharge()),
		Total:          formatAmount(s.Total()),
	}, nil
}

func FromSessionStarted(s *commands.SessionStarted) *SessionResponse {
	return &SessionResponse{OrderID: s.OrderID.String(), TimeIn: s.TimeIn}
}
