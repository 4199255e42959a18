//go:build unit

package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"cafe-kiosk/internal/domain/catalog"
	domorder "cafe-kiosk/internal/domain/order"
	"cafe-kiosk/internal/handler"
	"cafe-kiosk/internal/handler/api"
	resdto "cafe-kiosk/internal/handler/dto/response"
	"cafe-kiosk/internal/handler/middleware"
	"cafe-kiosk/internal/handler/receipt"
	"cafe-kiosk/internal/pkg/clock"
	"cafe-kiosk/internal/pkg/config"
	"cafe-kiosk/internal/usecase/commands"
	"cafe-kiosk/internal/usecase/queries"
	"cafe-kiosk/internal/usecase/shared"
	"cafe-kiosk/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKioskServer(t *testing.T) (*gin.Engine, *clock.MockClock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := clock.NewMockClock(time.Date(2025, 3, 14, 14, 0, 0, 0, time.UTC))
	cat := catalog.NewDefaultCatalog()
	session := shared.NewSession(cat, clk, domorder.DefaultSurchargePolicy())
	cmds := commands.NewOrderCommands(session, logger)
	renderer, err := receipt.NewRenderer(cfg.Kiosk)
	require.NoError(t, err)

	engine := gin.New()
	handler.NewRouter(engine, cfg, logger,
		api.NewMenuHandler(queries.NewMenuQueries(cat)),
		api.NewOrderHandler(cmds, queries.NewOrderQueries(session), renderer),
		api.NewSessionHandler(cmds),
	)
	return engine, clk
}

func TestHealth(t *testing.T) {
	router, _ := newKioskServer(t)

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/health", nil)

	var body map[string]string
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestRequestIDIsEchoed(t *testing.T) {
	router, _ := newKioskServer(t)

	rec := httptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/health", nil,
		map[string]string{middleware.RequestIDHeader: "kiosk-1"})
	httptest.AssertHeaders(t, rec, map[string]string{middleware.RequestIDHeader: "kiosk-1"})
}

func TestKioskSessionOverHTTP(t *testing.T) {
	router, clk := newKioskServer(t)

	addItem := func(kind string, quantity int, choices ...int) resdto.AddItemResponse {
		t.Helper()
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/order/items",
			map[string]any{"kind": kind, "choices": choices, "quantity": quantity})
		var res resdto.AddItemResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &res)
		return res
	}

	first := addItem("milktea", 2, 2, 4)
	assert.False(t, first.Merged)
	second := addItem("milktea", 1, 2, 4)
	assert.True(t, second.Merged)
	assert.Equal(t, 3, second.Quantity)
	assert.Equal(t, "210.00", second.LineTotal)

	rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/order/items",
		map[string]any{"kind": "coffee", "choices": []int{5, 1}, "quantity": 1})
	httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid selection")

	rec = httptest.PerformRequest(t, router, http.MethodGet, "/api/order/receipt", nil)
	httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Order not checked out yet")

	rec = httptest.PerformRequest(t, router, http.MethodPost, "/api/sessions", nil)
	httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Current order is still open")

	clk.Add(61 * time.Minute)

	rec = httptest.PerformRequest(t, router, http.MethodPost, "/api/order/checkout", nil)
	var checkout resdto.CheckoutResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &checkout)
	assert.Equal(t, "210.00", checkout.Subtotal)
	assert.Equal(t, "100.00", checkout.Surcharge)
	assert.Equal(t, "310.00", checkout.Total)
	httptest.AssertHeaders(t, rec, map[string]string{"Cache-Control": "no-store"})

	rec = httptest.PerformRequest(t, router, http.MethodPost, "/api/order/checkout", nil)
	httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Order already checked out")

	rec = httptest.PerformRequest(t, router, http.MethodPost, "/api/order/items",
		map[string]any{"kind": "burger", "choices": []int{1}, "quantity": 1})
	httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Order is closed")

	rec = httptest.PerformRequest(t, router, http.MethodGet, "/api/order/receipt", nil)
	body := httptest.AssertTextResponse(t, rec, http.StatusOK)
	assert.Contains(t, body, "Time In: 02:00 PM")
	assert.Contains(t, body, "Time Out: 03:01 PM")
	assert.Contains(t, body, "3  Milktea (Medium Matcha)        ₱210.00")

	rec = httptest.PerformRequest(t, router, http.MethodPost, "/api/sessions", nil)
	var started resdto.SessionResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &started)
	assert.NotEqual(t, checkout.OrderID, started.OrderID)

	rec = httptest.PerformRequest(t, router, http.MethodGet, "/api/order", nil)
	var current resdto.OrderResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &current)
	assert.Equal(t, "open", current.Status)
	assert.Empty(t, current.Lines)
}
