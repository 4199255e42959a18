package api

import (
	"net/http"

	resdto "cafe-kiosk/internal/handler/dto/response"
	"cafe-kiosk/internal/handler/httperr"
	"cafe-kiosk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	q queries.MenuQueries
}

func NewMenuHandler(q queries.MenuQueries) *MenuHandler {
	return &MenuHandler{q: q}
}

// @Summary List menu
// @Description Menu categories in kiosk order with items, base prices and variation choices
// @Tags menu
// @Produce json
// @Success 200 {array} resdto.MenuCategoryResponse
// @Failure 500 {object} httperr.Response
// @Router /api/menu [get]
func (h *MenuHandler) List(c *gin.Context) {
	menu, err := h.q.ListMenu(c.Request.Context())
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err)
		return
	}
	res, err := resdto.FromMenu(menu)
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
