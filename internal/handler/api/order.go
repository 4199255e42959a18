package api

import (
	"net/http"

	reqdto "cafe-kiosk/internal/handler/dto/request"
	resdto "cafe-kiosk/internal/handler/dto/response"
	"cafe-kiosk/internal/handler/httperr"
	"cafe-kiosk/internal/handler/receipt"
	"cafe-kiosk/internal/usecase/commands"
	"cafe-kiosk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cmds     commands.OrderCommands
	q        queries.OrderQueries
	renderer *receipt.Renderer
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries, renderer *receipt.Renderer) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q, renderer: renderer}
}

// @Summary Current order
// @Description Lines in insertion order with subtotal and status of the kiosk's active order
// @Tags order
// @Produce json
// @Success 200 {object} resdto.OrderResponse
// @Failure 500 {object} httperr.Response
// @Router /api/order [get]
func (h *OrderHandler) Get(c *gin.Context) {
	view, err := h.q.CurrentOrder(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromOrderView(view)
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Add item
// @Description Resolve a catalog kind with its choices and add it to the order. Same display name merges into one line.
// @Tags order
// @Accept json
// @Produce json
// @Param request body reqdto.AddItemRequest true "Add item request"
// @Success 201 {object} resdto.AddItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/order/items [post]
func (h *OrderHandler) AddItem(c *gin.Context) {
	var req reqdto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	result, err := h.cmds.AddItem(c.Request.Context(), cmd)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromAddItemResult(result)
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary Checkout
// @Description Close the order and compute subtotal, stay surcharge and total
// @Tags order
// @Produce json
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 409 {object} httperr.Response
// @Router /api/order/checkout [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	summary, err := h.cmds.Checkout(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromCheckoutSummary(summary)
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Receipt
// @Description Printable receipt of the checked-out order
// @Tags order
// @Produce plain
// @Success 200 {string} string
// @Failure 409 {object} httperr.Response
// @Router /api/order/receipt [get]
func (h *OrderHandler) Receipt(c *gin.Context) {
	summary, err := h.q.Receipt(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.String(http.StatusOK, h.renderer.Render(summary))
}
