package api

import (
	"net/http"

	"cafe-kiosk/internal/domain/catalog"
	domorder "cafe-kiosk/internal/domain/order"
	"cafe-kiosk/internal/handler/httperr"
	"cafe-kiosk/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUsecaseError maps ledger and catalog sentinels to statuses.
func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, catalog.ErrInvalidSelection):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid selection", nil)
	case errs.Is(err, catalog.ErrUnknownKind):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown item kind", nil)
	case errs.Is(err, domorder.ErrInvalidQuantity):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid quantity", nil)
	case errs.Is(err, domorder.ErrOrderClosed):
		httperr.AbortWithError(c, http.StatusConflict, err, "Order is closed", nil)
	case errs.Is(err, domorder.ErrAlreadyCheckedOut):
		httperr.AbortWithError(c, http.StatusConflict, err, "Order already checked out", nil)
	case errs.Is(err, errs.ErrSessionStillOpen):
		httperr.AbortWithError(c, http.StatusConflict, err, "Current order is still open", nil)
	case errs.Is(err, errs.ErrNotCheckedOut):
		httperr.AbortWithError(c, http.StatusConflict, err, "Order not checked out yet", nil)
	default:
		httperr.Abort(c, http.StatusInternalServerError, err)
	}
}
