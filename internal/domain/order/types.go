package order

import "cafe-kiosk/internal/pkg/errs"

var (
	ErrInvalidQuantity   = errs.New("quantity must be a positive integer")
	ErrOrderClosed       = errs.New("order is closed")
	ErrAlreadyCheckedOut = errs.New("order is already checked out")
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

func (s Status) String() string {
	return string(s)
}
