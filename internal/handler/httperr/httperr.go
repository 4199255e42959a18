package httperr

import (
	"net/http"

	"cafe-kiosk/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError records err on the context for the request log and writes
// the uniform JSON error body.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort is AbortWithError with the default message for status.
func Abort(c *gin.Context, status int, err error) {
	AbortWithError(c, status, err, DefaultMessage(status), nil)
}

func DefaultMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Invalid request"
	case http.StatusNotFound:
		return "Not found"
	case http.StatusConflict:
		return "Conflict"
	default:
		return "Internal error"
	}
}
