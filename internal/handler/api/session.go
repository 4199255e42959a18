package api

import (
	"net/http"

	resdto "cafe-kiosk/internal/handler/dto/response"
	"cafe-kiosk/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	cmds commands.OrderCommands
}

func NewSessionHandler(cmds commands.OrderCommands) *SessionHandler {
	return &SessionHandler{cmds: cmds}
}

// @Summary Start session
// @Description Replace a checked-out order with a fresh one stamped with the current time
// @Tags session
// @Produce json
// @Success 201 {object} resdto.SessionResponse
// @Failure 409 {object} httperr.Response
// @Router /api/sessions [post]
func (h *SessionHandler) Start(c *gin.Context) {
	started, err := h.cmds.StartSession(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSessionStarted(started))
}
