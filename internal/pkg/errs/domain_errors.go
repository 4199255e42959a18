package errs

// Session-level sentinel errors shared by the usecase and handler layers
var (
	ErrSessionStillOpen = New("current order is still open")
	ErrNotCheckedOut    = New("order has not been checked out")
)
